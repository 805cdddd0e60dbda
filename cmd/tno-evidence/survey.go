// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tno-evidence/internal/report"
	"github.com/pdiddy/tno-evidence/internal/scorer"
	"github.com/pdiddy/tno-evidence/pkg/types"
)

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Sweep selection thresholds across the catalog",
	Long: `Survey reports the extreme core, the high-a and high-q populations, and
sweeps the semi-major axis and eccentricity thresholds configured under
thresholds.sweep_a and thresholds.sweep_e.

Writes COMPREHENSIVE_ANALYSIS.txt and COMPREHENSIVE_DATA.{json,yaml}.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindReportKeys(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, err = runAnalysis(cfg, report.SurveyFiles, surveyAnalysis, cmd.OutOrStdout(), slog.Default())
		return err
	},
}

func surveyAnalysis(s *scorer.Scorer, records []types.OrbitalRecord, cfg types.Config) (string, any) {
	res := s.Survey(records)
	return report.Survey(res, cfg.Thresholds, cfg.Report.TopN), res
}

func init() {
	bindReportFlags(surveyCmd)
	rootCmd.AddCommand(surveyCmd)
}
