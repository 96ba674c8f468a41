package entity

import (
	"database/sql"
	"time"

	"github.com/stridelab/backend/pkg/enum"
)

type Gender string

var (
	GenderMale   = enum.New(Gender("male"))
	GenderFemale = enum.New(Gender("female"))
	GenderOther  = enum.New(Gender("other"))
)

type Profile struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	DisplayName string
	City        string
	Country     string
	Gender      sql.NullString

	WeightKg sql.NullFloat64
	HeightCm sql.NullFloat64
	Age      sql.NullInt64

	Bio string
}
