package migration

import (
	"context"

	"github.com/stridelab/backend/internal/entity"
	"github.com/stridelab/backend/pkg/xcontext"
)

// migrate0001 adds an index on activities.start_time for the monthly
// aggregation queries.
func migrate0001(ctx context.Context) error {
	if xcontext.DB(ctx).Migrator().HasIndex(&entity.Activity{}, "idx_activities_start_time") {
		return nil
	}

	return xcontext.DB(ctx).
		Exec("CREATE INDEX idx_activities_start_time ON activities(start_time)").Error
}
