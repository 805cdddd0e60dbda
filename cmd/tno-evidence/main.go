// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tno-evidence CLI.
// Each analysis is a subcommand: kozai, extreme, survey, and fetch.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tno-evidence/internal/logging"
	"github.com/pdiddy/tno-evidence/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the tno-evidence CLI.
var rootCmd = &cobra.Command{
	Use:   "tno-evidence",
	Short: "Score trans-Neptunian orbits for evidence of a distant perturber",
	Long: `tno-evidence reads a catalog of trans-Neptunian object orbits and scores the
population for signatures of an undiscovered distant planet.

Each analysis is a subcommand: kozai ranks Kozai-Lidov candidates, extreme
characterises the a > 250 AU, q > 30 AU population, and survey sweeps the
selection thresholds. fetch downloads a catalog over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.SetDefaultCLILogger(viper.GetString("log_level"))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tno-evidence.yaml or ~/.config/tno-evidence/tno-evidence.yaml)")
	rootCmd.PersistentFlags().String("log-level", types.DefaultConfig().LogLevel, "log level: debug, info, warn, error")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	setDefaults(types.DefaultConfig())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tno-evidence")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tno-evidence"))
		}
	}

	viper.SetEnvPrefix("TNO_EVIDENCE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every configuration key so that environment
// variables are seen by Unmarshal even when no config file sets the key.
func setDefaults(cfg types.Config) {
	viper.SetDefault("log_level", cfg.LogLevel)
	viper.SetDefault("catalog.path", cfg.Catalog.Path)
	viper.SetDefault("report.dir", cfg.Report.Dir)
	viper.SetDefault("report.format", string(cfg.Report.Format))
	viper.SetDefault("report.top_n", cfg.Report.TopN)
	viper.SetDefault("report.stdout", cfg.Report.Stdout)
	viper.SetDefault("fetch.url", cfg.Fetch.URL)
	viper.SetDefault("fetch.timeout", cfg.Fetch.Timeout)
	viper.SetDefault("fetch.user_agent", cfg.Fetch.UserAgent)
	viper.SetDefault("fetch.max_retries", cfg.Fetch.MaxRetries)
	viper.SetDefault("fetch.token", cfg.Fetch.Token)
	viper.SetDefault("fetch.secrets_dir", cfg.Fetch.SecretsDir)

	th := cfg.Thresholds
	viper.SetDefault("thresholds.extreme_min_a", th.ExtremeMinA)
	viper.SetDefault("thresholds.extreme_min_q", th.ExtremeMinQ)
	viper.SetDefault("thresholds.kozai_min_e", th.KozaiMinE)
	viper.SetDefault("thresholds.kozai_min_i", th.KozaiMinI)
	viper.SetDefault("thresholds.kozai_min_a", th.KozaiMinA)
	viper.SetDefault("thresholds.sweep_a", th.SweepA)
	viper.SetDefault("thresholds.sweep_e", th.SweepE)
	viper.SetDefault("thresholds.strong_evidence", th.StrongEvidence)
	viper.SetDefault("thresholds.moderate_evidence", th.ModerateEvidence)
	viper.SetDefault("thresholds.high_eccentricity", th.HighEccentricity)
	viper.SetDefault("thresholds.high_inclination", th.HighInclination)
	viper.SetDefault("thresholds.high_perturbation", th.HighPerturbation)
	viper.SetDefault("thresholds.medium_perturbation", th.MediumPerturbation)
}

// loadConfig builds the run configuration from defaults, the config file,
// environment variables, and flags, in increasing precedence.
func loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// bindReportFlags registers the output flags shared by the analysis
// commands and binds them to their config keys.
func bindReportFlags(cmd *cobra.Command) {
	def := types.DefaultConfig()
	cmd.Flags().String("catalog", def.Catalog.Path, "path to the orbital catalog CSV")
	cmd.Flags().String("report-dir", def.Report.Dir, "directory for reports and data exports")
	cmd.Flags().String("format", string(def.Report.Format), "data export format: json, yaml, or both")
	cmd.Flags().Int("top-n", def.Report.TopN, "number of entries in ranked listings")
	cmd.Flags().Bool("stdout", false, "also print the text report to stdout")
}

// bindReportKeys attaches the flags of the running command to viper. It
// runs in PreRunE because several commands register flags with the same
// names and only the invoked command's values apply.
func bindReportKeys(cmd *cobra.Command) error {
	for key, flag := range map[string]string{
		"catalog.path":  "catalog",
		"report.dir":    "report-dir",
		"report.format": "format",
		"report.top_n":  "top-n",
		"report.stdout": "stdout",
	} {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
