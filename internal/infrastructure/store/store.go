package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"catalogapi/internal/adapter/repository"
	domainrepo "catalogapi/internal/domain/repository"
	"catalogapi/internal/infrastructure/database"
	"catalogapi/pkg/config"
	"catalogapi/pkg/logger"
)

const DriverFirestore = "firestore"

// Store is an opened product repository plus whatever must be closed with it.
type Store struct {
	Products domainrepo.ProductRepository
	closeFn  func() error
}

func (s *Store) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// Open connects the product repository selected by cfg.DatabaseDriver. SQL
// drivers are migrated before use.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.DatabaseDriver {
	case database.DriverSQLite, database.DriverPostgres:
		dsn := cfg.DatabasePath
		if cfg.DatabaseDriver == database.DriverPostgres {
			dsn = cfg.DatabaseURL
		}

		db, err := database.Open(cfg.DatabaseDriver, dsn)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db, cfg.DatabaseDriver); err != nil {
			db.Close()
			return nil, err
		}

		logger.Info("Connected to %s database", cfg.DatabaseDriver)
		return &Store{
			Products: repository.NewSQLProductRepository(db, repository.Dialect(cfg.DatabaseDriver)),
			closeFn:  db.Close,
		}, nil

	case DriverFirestore:
		var opts []option.ClientOption
		if cfg.CredentialsFile != "" {
			logger.Info("Using Firebase service account from file: %s", cfg.CredentialsFile)
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
		}

		client, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
		if err != nil {
			return nil, fmt.Errorf("create firestore client: %w", err)
		}

		logger.Info("Connected to Firestore project %s", cfg.FirebaseProject)
		return &Store{
			Products: repository.NewFirestoreProductRepository(client),
			closeFn:  client.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}
