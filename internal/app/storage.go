package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cleaning_assignments/internal/adapter/persistence/memory"
	"cleaning_assignments/internal/adapter/persistence/postgres"
	"cleaning_assignments/internal/adapter/persistence/repository"
	"cleaning_assignments/internal/infrastructure/config"
	"cleaning_assignments/internal/infrastructure/database"
	"cleaning_assignments/internal/usecase/interfaces"
)

// Storage is one backend's set of repositories.
type Storage struct {
	Assignments interfaces.IAssignmentRepository
	Quotes      interfaces.IQuoteRepository
	Providers   interfaces.IProviderRepository
	Index       interfaces.IAvailabilityIndex
	Inbox       interfaces.INotificationInbox

	close func()
}

func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage connects the backend named by STORAGE_BACKEND.
func OpenStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return openMemory(cfg, logger)
	case config.BackendPostgres:
		return openPostgres(ctx, cfg, logger)
	case config.BackendDynamoDB:
		return openDynamoDB(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func openMemory(cfg config.Config, logger *slog.Logger) (*Storage, error) {
	store := memory.NewStore()
	if cfg.MemorySeedFile != "" {
		f, err := os.Open(cfg.MemorySeedFile)
		if err != nil {
			return nil, fmt.Errorf("open seed file: %w", err)
		}
		defer f.Close()
		if err := store.LoadSeed(f); err != nil {
			return nil, err
		}
		logger.Info("[app][storage] memory store seeded", "file", cfg.MemorySeedFile)
	}

	return &Storage{
		Assignments: memory.NewAssignmentRepository(store),
		Quotes:      memory.NewQuoteRepository(store),
		Providers:   memory.NewProviderRepository(store),
		Index:       memory.NewAvailabilityIndex(store),
		Inbox:       memory.NewNotificationInbox(store),
	}, nil
}

func openPostgres(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Storage, error) {
	if cfg.MigrateOnStart {
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return nil, err
		}
	}
	pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	logger.Info("[app][storage] connected to postgres")

	return &Storage{
		Assignments: postgres.NewAssignmentRepository(pool),
		Quotes:      postgres.NewQuoteRepository(pool),
		Providers:   postgres.NewCleanerRepository(pool),
		Index:       postgres.NewAvailabilityIndex(pool),
		Inbox:       postgres.NewNotificationInbox(pool),
		close:       pool.Close,
	}, nil
}

func openDynamoDB(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Storage, error) {
	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettings{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.DynamoDBEndpoint,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("[app][storage] dynamodb client ready", "region", cfg.AWSRegion, "endpoint", cfg.DynamoDBEndpoint)

	quotes := repository.NewQuoteDynamoRepository(ddb)
	return &Storage{
		Assignments: repository.NewAssignmentDynamoRepository(ddb, quotes),
		Quotes:      quotes,
		Providers:   repository.NewCleanerDynamoRepository(ddb),
		Index:       repository.NewCleanerSlotIndex(ddb),
		Inbox:       repository.NewNotificationDynamoRepository(ddb),
	}, nil
}
