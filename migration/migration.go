package migration

import (
	"context"
	"errors"
	"sort"

	"github.com/standup-lab/backend/internal/entity"
	"github.com/standup-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type migrateFunc func(ctx context.Context) error

// Migrators maps a version to its migrator. The migrate command can run a
// single version explicitly; Migrate applies every pending version in
// order.
var Migrators = map[string]migrateFunc{
	"0000": migrate0000,
	"auto": AutoMigrate,
}

// Migrate applies every not-yet-recorded versioned migrator in ascending
// version order.
func Migrate(ctx context.Context) error {
	if err := xcontext.DB(ctx).AutoMigrate(&entity.Migration{}); err != nil {
		return err
	}

	versions := make([]string, 0, len(Migrators))
	for version := range Migrators {
		if version == "auto" {
			continue
		}
		versions = append(versions, version)
	}
	sort.Strings(versions)

	for _, version := range versions {
		err := xcontext.DB(ctx).Take(&entity.Migration{}, "version=?", version).Error
		if err == nil {
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := Migrators[version](ctx); err != nil {
			return err
		}

		if err := xcontext.DB(ctx).Create(&entity.Migration{Version: version}).Error; err != nil {
			return err
		}
	}

	return nil
}
