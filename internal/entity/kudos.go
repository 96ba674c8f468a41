package entity

type Kudos struct {
	Base

	ActivityID string   `gorm:"uniqueIndex:idx_kudos_activity_user"`
	Activity   Activity `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`

	UserID string `gorm:"uniqueIndex:idx_kudos_activity_user"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Kudos) TableName() string {
	return "kudos"
}
