package entity

import "time"

type Follower struct {
	CreatedAt time.Time

	FollowerID   string `gorm:"primaryKey"`
	FollowerUser User   `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`

	FolloweeID   string `gorm:"primaryKey"`
	FolloweeUser User   `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE"`
}
