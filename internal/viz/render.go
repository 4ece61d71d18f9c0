// Package viz renders result tables and terminal diagrams for the
// physkit CLI.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// Header renders a styled section heading.
func Header(title string) string {
	return headerStyle.Render(title)
}

// Table renders label/value rows with aligned styled labels.
func Table(rows [][2]string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row[0]))
		b.WriteString(valueStyle.Render(row[1]))
		b.WriteString("\n")
	}
	return b.String()
}

// Row formats a numeric result row for Table.
func Row(label string, value float64, unit string) [2]string {
	return [2]string{label, fmt.Sprintf("%.6g %s", value, unit)}
}

// Plot renders a data series as a terminal graph with a caption.
func Plot(data []float64, caption string) string {
	graph := asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
	return graphStyle.Render(graph)
}

// Note renders dimmed helper text under a result block.
func Note(text string) string {
	return noteStyle.Render(text)
}
