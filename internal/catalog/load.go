// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog reads TNO orbital catalogs from CSV.
//
// The first row is a header; columns are matched by name so their order
// does not matter. Rows with an unparseable or NaN numeric field are
// skipped and counted, never fatal.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pdiddy/tno-evidence/pkg/types"
)

// Catalog column headers.
const (
	ColName              = "Object_Name"
	ColSemiMajorAxis     = "Semi_Major_Axis_AU"
	ColEccentricity      = "Eccentricity"
	ColInclination       = "Inclination_deg"
	ColPerihelion        = "Perihelion_AU"
	ColAphelion          = "Aphelion_AU"
	ColPeriod            = "Period_Years"
	ColAscendingNode     = "Ascending_Node_deg"
	ColArgOfPerihelion   = "Perihelion_Arg_deg"
	ColAbsoluteMagnitude = "Absolute_Magnitude"
	ColPerturbation      = "Perturbation_Strength"
	ColApsidalPrecession = "Apsidal_Precession_Rate_deg_per_period"
	ColNodalPrecession   = "Nodal_Precession_Rate_deg_per_period"
	ColResonance         = "Resonance_Strength"
	ColPerturbationType  = "Primary_Perturbation_Type"
	ColDistantFlag       = "Distant_Object_Flag"
	ColClassification    = "Classification"
)

// Header lists every column in the order the catalog publishes them.
var Header = []string{
	ColName, ColSemiMajorAxis, ColEccentricity, ColInclination,
	ColPerihelion, ColAphelion, ColPeriod, ColAscendingNode,
	ColArgOfPerihelion, ColAbsoluteMagnitude, ColPerturbation,
	ColApsidalPrecession, ColNodalPrecession, ColResonance,
	ColPerturbationType, ColDistantFlag, ColClassification,
}

// requiredColumns must be present in the header.
var requiredColumns = []string{
	ColName, ColSemiMajorAxis, ColEccentricity, ColInclination,
	ColPerihelion, ColAphelion, ColAscendingNode, ColArgOfPerihelion,
}

// RequiredColumns returns the headers every catalog must carry.
func RequiredColumns() []string {
	return slices.Clone(requiredColumns)
}

var (
	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrEmptyCatalog is returned when the input holds no header or no
	// loadable record.
	ErrEmptyCatalog = errors.New("empty catalog")
)

// MalformedRecordError describes a row that could not be parsed.
type MalformedRecordError struct {
	Line   int
	Name   string
	Column string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d (%s): column %s: %v", e.Line, e.Name, e.Column, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

var (
	errNaN = errors.New("value is NaN")
	errInf = errors.New("value is infinite")
)

// LoadSummary holds counts from one catalog load.
type LoadSummary struct {
	Loaded  int
	Skipped int
}

// Total returns the number of data rows read.
func (s LoadSummary) Total() int {
	return s.Loaded + s.Skipped
}

// HasSkipped reports whether any rows were rejected.
func (s LoadSummary) HasSkipped() bool {
	return s.Skipped > 0
}

// Load reads the catalog at path.
func Load(path string, logger *slog.Logger) ([]types.OrbitalRecord, LoadSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadSummary{}, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	records, summary, err := Read(f, logger)
	if err != nil {
		return nil, summary, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, summary, nil
}

// Read parses a catalog from r. Malformed rows are logged at WARN and
// skipped. A nil logger falls back to slog.Default().
func Read(r io.Reader, logger *slog.Logger) ([]types.OrbitalRecord, LoadSummary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.WithGroup("catalog")

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, LoadSummary{}, ErrEmptyCatalog
	}
	if err != nil {
		return nil, LoadSummary{}, fmt.Errorf("reading header: %w", err)
	}

	cols, err := indexHeader(header)
	if err != nil {
		return nil, LoadSummary{}, err
	}

	var (
		records []types.OrbitalRecord
		summary LoadSummary
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var perr *csv.ParseError
		if errors.As(err, &perr) {
			summary.Skipped++
			logger.Warn("skipping malformed record", "line", perr.Line, "error", perr.Err)
			continue
		}
		if err != nil {
			return nil, summary, fmt.Errorf("reading catalog: %w", err)
		}

		line, _ := cr.FieldPos(0)
		rec, err := cols.parse(row, line)
		if err != nil {
			summary.Skipped++
			logger.Warn("skipping malformed record", "line", line, "error", err)
			continue
		}
		records = append(records, rec)
		summary.Loaded++
	}

	if len(records) == 0 {
		return nil, summary, fmt.Errorf("no valid records: %w", ErrEmptyCatalog)
	}
	logger.Info("catalog loaded", "loaded", summary.Loaded, "skipped", summary.Skipped)
	return records, summary, nil
}

// columns maps column names to their position in a row.
type columns map[string]int

func indexHeader(header []string) (columns, error) {
	cols := make(columns, len(header))
	for k, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		cols[h] = k
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

// rowParser accumulates the first field error of one row.
type rowParser struct {
	cols columns
	row  []string
	line int
	name string
	err  error
}

// text returns the trimmed cell for col, or "" when the column is absent
// or the row is short.
func (p *rowParser) text(col string) (string, bool) {
	k, ok := p.cols[col]
	if !ok || k >= len(p.row) {
		return "", false
	}
	return strings.TrimSpace(p.row[k]), true
}

// float parses col. Required columns must hold a number; optional ones
// default to zero when absent or blank.
func (p *rowParser) float(col string, required bool) float64 {
	if p.err != nil {
		return 0
	}
	s, ok := p.text(col)
	if !ok || s == "" {
		if required {
			p.fail(col, errors.New("value is empty"))
		}
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.fail(col, err)
		return 0
	}
	if math.IsNaN(v) {
		p.fail(col, errNaN)
		return 0
	}
	if math.IsInf(v, 0) {
		p.fail(col, errInf)
		return 0
	}
	return v
}

// flag parses an integer or boolean flag; blank is false.
func (p *rowParser) flag(col string) bool {
	if p.err != nil {
		return false
	}
	s, ok := p.text(col)
	if !ok || s == "" {
		return false
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		p.fail(col, fmt.Errorf("invalid flag %q", s))
		return false
	}
	return v != 0
}

func (p *rowParser) fail(col string, err error) {
	p.err = &MalformedRecordError{Line: p.line, Name: p.name, Column: col, Err: err}
}

func (c columns) parse(row []string, line int) (types.OrbitalRecord, error) {
	p := &rowParser{cols: c, row: row, line: line}
	p.name, _ = p.text(ColName)
	if p.name == "" {
		return types.OrbitalRecord{}, &MalformedRecordError{Line: line, Column: ColName, Err: errors.New("value is empty")}
	}
	perturbationType, _ := p.text(ColPerturbationType)
	classification, _ := p.text(ColClassification)

	r := types.OrbitalRecord{
		Name:                 p.name,
		A:                    p.float(ColSemiMajorAxis, true),
		E:                    p.float(ColEccentricity, true),
		I:                    p.float(ColInclination, true),
		Q:                    p.float(ColPerihelion, true),
		AD:                   p.float(ColAphelion, true),
		Period:               p.float(ColPeriod, false),
		AscendingNode:        p.float(ColAscendingNode, true),
		ArgOfPerihelion:      p.float(ColArgOfPerihelion, true),
		AbsoluteMagnitude:    p.float(ColAbsoluteMagnitude, false),
		PerturbationStrength: p.float(ColPerturbation, false),
		ApsidalPrecession:    p.float(ColApsidalPrecession, false),
		NodalPrecession:      p.float(ColNodalPrecession, false),
		CatalogResonance:     p.float(ColResonance, false),
		PerturbationType:     perturbationType,
		Distant:              p.flag(ColDistantFlag),
		Classification:       classification,
	}
	if p.err != nil {
		return types.OrbitalRecord{}, p.err
	}
	return r, nil
}
