package cmd

import (
	"context"
	"fmt"

	"font-catalog/core/catalog"
	"font-catalog/core/config"
	"font-catalog/core/database"
	"font-catalog/core/logger"
	"font-catalog/core/provider/bucket"
	"font-catalog/core/provider/dirscan"
	"font-catalog/core/provider/fontdb"
	"font-catalog/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newProvider builds the enumeration backend selected by the configuration.
// The returned *gorm.DB is non-nil only for the database source.
func newProvider(cfg *config.Config, logg *zap.Logger) (catalog.Provider, *gorm.DB, error) {
	if !cfg.Fonts.IsValidSource() {
		return nil, nil, fmt.Errorf("unknown font source %q", cfg.Fonts.Source)
	}

	switch cfg.Fonts.Source {
	case config.SourceBucket:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("creating storage client: %w", err)
		}
		return bucket.New(client, cfg.Storage.Bucket, logg), nil, nil
	case config.SourceDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to font registry: %w", err)
		}
		return fontdb.New(db), db, nil
	default:
		return dirscan.New(cfg.Fonts.DirList(), logg), nil, nil
	}
}

// loadCollection builds the full catalog from the configured source.
func loadCollection(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*catalog.Collection, error) {
	provider, _, err := newProvider(cfg, logg)
	if err != nil {
		return nil, err
	}
	return catalog.New(ctx, provider)
}

// setup loads the configuration and creates the logger for CLI commands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}
