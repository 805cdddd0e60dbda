// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tno-evidence/internal/report"
	"github.com/pdiddy/tno-evidence/internal/scorer"
	"github.com/pdiddy/tno-evidence/pkg/types"
)

var extremeCmd = &cobra.Command{
	Use:   "extreme",
	Short: "Characterise extreme TNOs and their Planet Nine signature",
	Long: `Extreme selects objects with a > 250 AU and q > 30 AU, summarises their
orbital elements, and measures clustering in the argument and longitude of
perihelion.

Writes ETNO_PLANET_NINE_ANALYSIS.txt and ETNO_PLANET_NINE_DATA.{json,yaml}.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindReportKeys(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, err = runAnalysis(cfg, report.ExtremeFiles, extremeAnalysis, cmd.OutOrStdout(), slog.Default())
		return err
	},
}

func extremeAnalysis(s *scorer.Scorer, records []types.OrbitalRecord, cfg types.Config) (string, any) {
	res := s.Extreme(records)
	return report.Extreme(res, cfg.Thresholds, cfg.Report.TopN), res
}

func init() {
	bindReportFlags(extremeCmd)
	rootCmd.AddCommand(extremeCmd)
}
