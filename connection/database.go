package connection

import (
	"context"
	"fmt"
	"log/slog"

	"taskmaster/config"
	"taskmaster/store"
)

// OpenStore connects to the backend named by the database config.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store.SQLStore, error) {
	opts := cfg.StoreOptions()
	if opts.URL != "" {
		logger.Info("connecting to database", "url", store.MaskDSN(opts.URL))
	} else {
		logger.Info("connecting to database", "path", opts.SQLitePath)
	}

	st, err := store.Open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Info(fmt.Sprintf("Using %s Database", st.Dialect().Label()))
	return st, nil
}

// InitDatabase creates the schema and the master account.
func InitDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	st, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	return store.NewInitializer(st, cfg.StoreSeed(), logger).Ensure(ctx)
}
