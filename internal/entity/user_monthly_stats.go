package entity

import "time"

type UserMonthlyStats struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Year  int `gorm:"primaryKey"`
	Month int `gorm:"primaryKey"`

	TotalDistanceM   float64
	TotalDurationSec int
}
