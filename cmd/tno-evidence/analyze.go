// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pdiddy/tno-evidence/internal/catalog"
	"github.com/pdiddy/tno-evidence/internal/report"
	"github.com/pdiddy/tno-evidence/internal/scorer"
	"github.com/pdiddy/tno-evidence/pkg/types"
)

// analysis renders one report from a loaded catalog. It returns the text
// report and the value exported as JSON or YAML.
type analysis func(s *scorer.Scorer, records []types.OrbitalRecord, cfg types.Config) (string, any)

// runAnalysis loads the configured catalog, runs fn, and saves its report
// and data exports under the report directory.
func runAnalysis(cfg types.Config, files report.Files, fn analysis, stdout io.Writer, logger *slog.Logger) ([]string, error) {
	records, summary, err := catalog.Load(cfg.Catalog.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if summary.HasSkipped() {
		logger.Warn("catalog contained malformed records",
			"skipped", summary.Skipped, "total", summary.Total())
	}

	s := scorer.New(cfg.Thresholds, logger)
	text, data := fn(s, records, cfg)

	paths, err := report.Save(cfg.Report.Dir, files, text, data, cfg.Report.Format)
	if err != nil {
		return paths, err
	}
	for _, p := range paths {
		logger.Info("wrote", "path", p)
	}

	if cfg.Report.Stdout && stdout != nil {
		fmt.Fprint(stdout, text)
	}
	return paths, nil
}
