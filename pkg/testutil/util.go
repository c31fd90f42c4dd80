package testutil

import (
	"context"

	"github.com/standup-lab/backend/config"
	"github.com/standup-lab/backend/migration"
	"github.com/standup-lab/backend/pkg/logger"
	"github.com/standup-lab/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockContext returns a context carrying an empty in-memory database plus
// the configs and logger every domain expects.
func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}

	// The in-memory database exists per connection; keep the pool at one
	// so every query sees the same database.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	cfg := config.Configs{
		Env: "testing",
		ApiServer: config.ServerConfigs{
			Port: "8080",
		},
		Selection: config.SelectionConfigs{
			MaxPickRetry:     3,
			ArchiveBatchSize: 2,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.Migrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}
