// Package report renders coverage tables as fixed-width text.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/meza/lcov-summary/internal/lcov"
	"github.com/meza/lcov-summary/internal/tui"
)

const (
	separatorWidth = 95
	rowFormat      = "%-60s | %-10d | %-10d | %s%%"
	headerFormat   = "%-60s | %-10s | %-10s | %-8s"
	percentFormat  = "%6.2f"
	totalLabel     = "TOTAL"
)

// Render produces the summary table for a coverage table: a header, one row
// per file in ascending lexicographic path order, and a TOTAL row. When
// colorize is set the percentage cells are tinted by coverage band; padding is
// applied before styling so alignment is unaffected.
func Render(table lcov.Table, colorize bool) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf(headerFormat, "File", "Lines", "Covered", "Coverage"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", separatorWidth))
	builder.WriteString("\n")

	paths := make([]string, 0, len(table))
	for path := range table {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	totalLines := 0
	totalCovered := 0

	for _, path := range paths {
		record := table[path]
		builder.WriteString(renderRow(path, record, colorize))
		builder.WriteString("\n")

		totalLines += record.Total
		totalCovered += record.Covered
	}

	builder.WriteString(strings.Repeat("-", separatorWidth))
	builder.WriteString("\n")
	builder.WriteString(renderRow(totalLabel, lcov.Record{Total: totalLines, Covered: totalCovered}, colorize))

	return builder.String()
}

func renderRow(label string, record lcov.Record, colorize bool) string {
	percent := percentage(record)
	cell := fmt.Sprintf(percentFormat, percent)
	if colorize {
		cell = tui.PercentageStyle(percent).Render(cell)
	}
	return fmt.Sprintf(rowFormat, label, record.Total, record.Covered, cell)
}

// percentage guards against division by zero: a file with no instrumented
// lines reports 0.00%.
func percentage(record lcov.Record) float64 {
	if record.Total == 0 {
		return 0
	}
	return float64(record.Covered) / float64(record.Total) * 100
}
