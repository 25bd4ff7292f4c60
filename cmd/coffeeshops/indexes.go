package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/coffeeshops/pkg/config"
)

func newIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the database indexes and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg baseConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}

			client, _, err := openStore(cmd.Context(), cfg.Mongo, newLogger(cfg))
			if err != nil {
				return err
			}
			return client.Disconnect(cmd.Context())
		},
	}
}
