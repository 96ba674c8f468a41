package entity

import (
	"context"

	"github.com/stridelab/backend/pkg/xcontext"
)

type Migration struct {
	Version string `gorm:"primaryKey"`
}

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Profile{},
		&Activity{},
		&ActivityPoint{},
		&Comment{},
		&Kudos{},
		&Follower{},
		&UserMonthlyStats{},
		&RefreshToken{},
		&Migration{},
	)
}
