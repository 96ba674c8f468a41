package migration

import (
	"context"

	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/pkg/xcontext"
)

// Migrators maps a schema version to the function bringing the database to
// that version. Versions are applied explicitly via the migrate command.
var Migrators = map[string]func(context.Context) error{
	"0000": migrate0000,
	"0001": migrate0001,
}

// Migrate records the given version as applied.
func Record(ctx context.Context, version string) error {
	return xcontext.DB(ctx).Create(&entity.Migration{Version: version}).Error
}

// Applied reports whether a version was already applied.
func Applied(ctx context.Context, version string) (bool, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Migration{}).
		Where("version=?", version).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
