package migration

import (
	"context"

	"github.com/standup-lab/backend/internal/entity"
	"github.com/standup-lab/backend/pkg/xcontext"
)

// When this migrator is called, no need to call other migrators.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.Participant{},
		&entity.Round{},
		&entity.Selection{},
		&entity.Migration{},
	)
}
