// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tno-evidence/internal/fetch"
	"github.com/pdiddy/tno-evidence/internal/secrets"
	"github.com/pdiddy/tno-evidence/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Download an orbital catalog",
	Long: `Fetch downloads a CSV orbital catalog to the configured catalog path. The
URL comes from the argument or from fetch.url in the config. The download
is validated as a catalog before it replaces any existing file, and an
existing catalog is kept unless --force is given. A bearer token is read
from fetch.token or from .secrets/catalog-token.

HTTP 429 and 503 responses are retried with exponential backoff, honouring
Retry-After.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlag("catalog.path", cmd.Flags().Lookup("catalog")); err != nil {
			return err
		}
		if err := viper.BindPFlag("fetch.timeout", cmd.Flags().Lookup("timeout")); err != nil {
			return err
		}
		return viper.BindPFlag("fetch.max_retries", cmd.Flags().Lookup("max-retries"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			viper.Set("fetch.url", args[0])
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")

		token, err := secrets.Lookup(cfg.Fetch.SecretsDir, secrets.CatalogToken, cfg.Fetch.Token, slog.Default())
		if err != nil {
			return err
		}
		cfg.Fetch.Token = token

		res, err := fetch.Catalog(cmd.Context(), fetch.NewClient(cfg.Fetch), cfg.Fetch, cfg.Catalog.Path, force, slog.Default())
		if err != nil {
			return err
		}
		if res.Skipped {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already exists (use --force to replace)\n", res.Path)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records, %d bytes\n", res.Path, res.Records, res.Bytes)
		return nil
	},
}

func init() {
	def := types.DefaultConfig()
	fetchCmd.Flags().String("catalog", def.Catalog.Path, "destination path for the catalog CSV")
	fetchCmd.Flags().Duration("timeout", def.Fetch.Timeout, "HTTP request timeout")
	fetchCmd.Flags().Int("max-retries", def.Fetch.MaxRetries, "retries on HTTP 429/503")
	fetchCmd.Flags().Bool("force", false, "replace an existing catalog")

	rootCmd.AddCommand(fetchCmd)
}
