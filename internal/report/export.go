// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tno-evidence/pkg/types"
)

// Files names the text report and the export base name of one analysis.
type Files struct {
	Text string
	Data string
}

var (
	KozaiFiles   = Files{Text: "KOZAI_LIDOV_ANALYSIS.txt", Data: "KOZAI_LIDOV_DATA"}
	ExtremeFiles = Files{Text: "ETNO_PLANET_NINE_ANALYSIS.txt", Data: "ETNO_PLANET_NINE_DATA"}
	SurveyFiles  = Files{Text: "COMPREHENSIVE_ANALYSIS.txt", Data: "COMPREHENSIVE_DATA"}
)

// WriteJSON writes v as indented JSON to path.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// WriteYAML writes v as YAML to path.
func WriteYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Save writes text and the exports of data selected by format into dir,
// creating dir if needed. It returns the paths written.
func Save(dir string, files Files, text string, data any, format types.ExportFormat) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}

	textPath := filepath.Join(dir, files.Text)
	if err := os.WriteFile(textPath, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", files.Text, err)
	}
	written := []string{textPath}

	if format == types.ExportJSON || format == types.ExportBoth {
		path := filepath.Join(dir, files.Data+".json")
		if err := WriteJSON(path, data); err != nil {
			return written, fmt.Errorf("writing %s: %w", filepath.Base(path), err)
		}
		written = append(written, path)
	}
	if format == types.ExportYAML || format == types.ExportBoth {
		path := filepath.Join(dir, files.Data+".yaml")
		if err := WriteYAML(path, data); err != nil {
			return written, fmt.Errorf("writing %s: %w", filepath.Base(path), err)
		}
		written = append(written, path)
	}
	return written, nil
}
