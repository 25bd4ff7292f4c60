package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	drv "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/coffeeshops/modules/coffeeshop/mongostore"
	"github.com/dmitrymomot/coffeeshops/pkg/config"
	"github.com/dmitrymomot/coffeeshops/pkg/logger"
	"github.com/dmitrymomot/coffeeshops/pkg/mongo"
	"github.com/dmitrymomot/coffeeshops/pkg/session"
)

// baseConfig is what every command needs: logging and the document store.
type baseConfig struct {
	Env   string `env:"APP_ENV" envDefault:"development"`
	Name  string `env:"APP_NAME" envDefault:"coffeeshops"`
	Mongo mongo.Config
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "coffeeshops",
		Short:         "Coffee shop directory and review site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.LoadEnv(envFiles...)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default: .env if present)")

	root.AddCommand(newServeCmd(), newSeedCmd(), newIndexesCmd())
	return root
}

func newLogger(cfg baseConfig) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(config.ParseEnvironment(cfg.Env), cfg.Name),
		logger.WithContextExtractors(
			logger.RequestIDExtractor(),
			func(ctx context.Context) (slog.Attr, bool) {
				username, ok := session.UsernameFromContext(ctx)
				return logger.Username(username), ok
			},
		),
	)
}

// openStore connects to MongoDB and makes sure the indexes exist.
// Callers disconnect the returned client.
func openStore(ctx context.Context, cfg mongo.Config, log *slog.Logger) (*drv.Client, *mongostore.Store, error) {
	client, err := mongo.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	db := client.Database(cfg.Database)

	if err := mongo.EnsureIndexes(ctx, db, mongostore.Indexes()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ensure indexes: %w", err)
	}
	log.InfoContext(ctx, "connected to mongodb", slog.String("database", cfg.Database), logger.Component("mongo"))

	return client, mongostore.New(db), nil
}
