// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tno-evidence/internal/report"
	"github.com/pdiddy/tno-evidence/internal/scorer"
	"github.com/pdiddy/tno-evidence/pkg/types"
)

var kozaiCmd = &cobra.Command{
	Use:   "kozai",
	Short: "Rank Kozai-Lidov candidates and estimate the perturber",
	Long: `Kozai selects objects with e > 0.5, i > 30° and a > 50 AU, derives the
Kozai parameter, angular momentum, ω circulation, resonance strength and
oscillation period of each, and ranks them by a combined evidence score.
The report closes with a perturber estimate, resonance clusters, and an
oscillation summary.

Writes KOZAI_LIDOV_ANALYSIS.txt and KOZAI_LIDOV_DATA.{json,yaml}.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindReportKeys(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, err = runAnalysis(cfg, report.KozaiFiles, kozaiAnalysis, cmd.OutOrStdout(), slog.Default())
		return err
	},
}

func kozaiAnalysis(s *scorer.Scorer, records []types.OrbitalRecord, cfg types.Config) (string, any) {
	res := s.Kozai(records)
	return report.Kozai(res, cfg.Thresholds, cfg.Report.TopN), res
}

func init() {
	bindReportFlags(kozaiCmd)
	rootCmd.AddCommand(kozaiCmd)
}
