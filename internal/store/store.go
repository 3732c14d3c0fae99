// Package store opens the record store selected by configuration.
package store

import (
	"octofit-backend/internal/config"
	"octofit-backend/internal/database"
	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/repository"
	"octofit-backend/internal/repository/memory"
)

// Open returns the configured store and a function releasing its resources
func Open(cfg *config.Config) (*repository.Store, func() error, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		return memory.NewStore(), func() error { return nil }, nil

	case config.StoreDriverPostgres:
		db, err := database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return repository.NewStore(db), closeFn, nil
	}

	return nil, nil, apperrors.ErrUnsupportedStoreDriver
}
