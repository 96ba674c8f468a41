package entity

type User struct {
	Base
	Name           string `gorm:"unique"`
	Email          string
	HashedPassword string
}
