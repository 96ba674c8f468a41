package entity

import "database/sql"

type Comment struct {
	Base

	ActivityID string   `gorm:"index"`
	Activity   Activity `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Body string

	// Reply chains form a tree rooted at a null parent.
	ParentCommentID sql.NullString
	ParentComment   *Comment `gorm:"foreignKey:ParentCommentID"`
}
