package main

import (
	"fmt"

	"github.com/stridelab/backend/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadDatabase()

	version := cctx.String("version")
	migrator, ok := migration.Migrators[version]
	if !ok {
		return fmt.Errorf("not found version %s", version)
	}

	applied, err := migration.Applied(s.ctx, version)
	if err == nil && applied {
		s.logger.Infof("Version %s already applied", version)
		return nil
	}

	if err := migrator(s.ctx); err != nil {
		return err
	}

	if err := migration.Record(s.ctx, version); err != nil {
		return err
	}

	s.logger.Infof("Applied version %s", version)
	return nil
}
