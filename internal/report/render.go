// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders analysis results as plain-text reports and writes
// them, with JSON or YAML exports, to the report directory.
package report

import (
	"fmt"
	"strings"

	"github.com/pdiddy/tno-evidence/pkg/types"
)

const width = 78

// writer wraps strings.Builder with the section helpers shared by every
// report.
type writer struct {
	sb strings.Builder
}

func (w *writer) title(lines ...string) {
	w.sb.WriteString(strings.Repeat("=", width) + "\n")
	for _, l := range lines {
		pad := max((width-len(l))/2, 0)
		w.sb.WriteString(strings.Repeat(" ", pad) + l + "\n")
	}
	w.sb.WriteString(strings.Repeat("=", width) + "\n\n")
}

func (w *writer) section(heading string) {
	w.sb.WriteString("\n" + heading + "\n")
	w.sb.WriteString(strings.Repeat("-", width) + "\n")
}

func (w *writer) linef(format string, args ...any) {
	fmt.Fprintf(&w.sb, format+"\n", args...)
}

func (w *writer) blank() {
	w.sb.WriteString("\n")
}

func (w *writer) String() string {
	return w.sb.String()
}

// field renders the mean, range, median and std-dev of one statistic.
func (w *writer) field(label string, f types.FieldSummary, unit, verb string) {
	w.linef("%s:", label)
	w.linef("  Mean:    "+verb+"%s | Std Dev: "+verb+"%s", f.Mean, unit, f.StdDev, unit)
	w.linef("  Range:   "+verb+"%s - "+verb+"%s", f.Min, unit, f.Max, unit)
	w.linef("  Median:  "+verb+"%s", f.Median, unit)
}

// recordTable renders up to topN records as a fixed-width table. topN <= 0
// renders every record.
func (w *writer) recordTable(records []types.OrbitalRecord, topN int) {
	if len(records) == 0 {
		w.linef("  (none)")
		return
	}
	w.linef("  %-28s %9s %7s %7s %8s %9s %6s", "Object", "a (AU)", "e", "i (°)", "q (AU)", "ad (AU)", "pert")
	for _, r := range limit(records, topN) {
		w.linef("  %-28s %9.1f %7.4f %7.1f %8.1f %9.1f %6.3f",
			truncate(r.Name, 28), r.A, r.E, r.I, r.Q, r.AD, r.PerturbationStrength)
	}
	if topN > 0 && len(records) > topN {
		w.linef("  ... and %d more", len(records)-topN)
	}
}

func (w *writer) nameList(label string, names []string) {
	if len(names) == 0 {
		w.linef("%s: none", label)
		return
	}
	w.linef("%s (%d): %s", label, len(names), strings.Join(names, ", "))
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// fraction formats k/n, guarding n == 0.
func fraction(k, n int) string {
	if n == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%s)", k, n, percent(float64(k)/float64(n)))
}
