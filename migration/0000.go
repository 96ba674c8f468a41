package migration

import (
	"context"

	"github.com/stridelab/backend/internal/entity"
)

// migrate0000 creates the full schema at the latest version.
func migrate0000(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}
