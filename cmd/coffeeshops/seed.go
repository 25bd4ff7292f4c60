package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/coffeeshops/modules/coffeeshop"
	"github.com/dmitrymomot/coffeeshops/pkg/config"
	"github.com/dmitrymomot/coffeeshops/pkg/logger"
)

var errEmptySeed = errors.New("seed file has no shops")

type seedFile struct {
	Shops []coffeeshop.CoffeeShop `yaml:"shops"`
}

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert coffee shops from a YAML file",
		Long: `Upsert coffee shops by name from a YAML file:

  shops:
    - name: Primero
      address: Quezon City
      hours: 7am - 9pm`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shops, err := readSeedFile(file)
			if err != nil {
				return err
			}

			var cfg baseConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			log := newLogger(cfg)
			ctx := cmd.Context()

			client, store, err := openStore(ctx, cfg.Mongo, log)
			if err != nil {
				return err
			}
			defer func() { _ = client.Disconnect(ctx) }()

			created, err := store.UpsertShops(ctx, shops)
			if err != nil {
				return err
			}
			log.InfoContext(ctx, "shops seeded",
				slog.Int("total", len(shops)),
				slog.Int("created", created),
				logger.Component("seed"),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "data/shops.yaml", "YAML file with shops")
	return cmd
}

func readSeedFile(path string) ([]coffeeshop.CoffeeShop, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(f.Shops) == 0 {
		return nil, errEmptySeed
	}
	for i, shop := range f.Shops {
		if strings.TrimSpace(shop.Name) == "" {
			return nil, fmt.Errorf("parse seed file: shop %d has no name", i+1)
		}
	}
	return f.Shops, nil
}
