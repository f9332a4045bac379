package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/statusdeck/statusdeck/internal/status"
)

const (
	dashboardTitle = "Coding Service Status"

	// Status column plus border/padding allowance on top of the widest name.
	tableWidthPadding = 12
	minTableWidth     = 50
)

func renderDashboard(results []status.Result, selected int, lastRefresh time.Time, refresh time.Duration, refreshing bool, statusLine string, keyboard bool) string {
	var b strings.Builder
	b.WriteString(renderTable(results, selected))
	b.WriteString("\n")
	b.WriteString(renderFooter(results, lastRefresh, refresh, refreshing, keyboard))
	if statusLine != "" {
		b.WriteString("\n")
		b.WriteString(statusLine)
	}
	b.WriteString("\n")
	return b.String()
}

// renderTable draws the name-sorted results with the selected row marked.
// Pass selected = -1 to mark nothing.
func renderTable(results []status.Result, selected int) string {
	nameW := len("SERVICE")
	for _, r := range results {
		if w := len([]rune(r.Service)); w > nameW {
			nameW = w
		}
	}

	rows := make([]string, 0, len(results)+1)
	rows = append(rows, headerStyle.Render(padRight("SERVICE", nameW)+"  STATUS"))
	for i, r := range results {
		name := padRight(r.Service, nameW)
		cell := r.Glyph() + " " + styleFor(r.Bucket()).Render(r.Indicator)
		if i == selected {
			rows = append(rows, selectedNameStyle.Render(name)+"  "+cell+" ←")
		} else {
			rows = append(rows, nameStyle.Render(name)+"  "+cell)
		}
	}

	table := borderStyle.Render(strings.Join(rows, "\n"))
	return titleStyle.Render(dashboardTitle) + "\n" + table
}

func renderFooter(results []status.Result, lastRefresh time.Time, refresh time.Duration, refreshing bool, keyboard bool) string {
	width := tableWidth(results)

	updated := "Last updated: never"
	if !lastRefresh.IsZero() {
		updated = fmt.Sprintf("Last updated: %s (%s)",
			lastRefresh.Format("2006-01-02 15:04:05"), humanize.Time(lastRefresh))
	}
	if refreshing {
		updated += " • refreshing..."
	}

	var controls string
	if keyboard {
		controls = fmt.Sprintf("Controls: ↑/↓ select | Enter open | Q quit | Refresh: %ds", int(refresh.Seconds()))
	} else {
		controls = fmt.Sprintf("Refresh: %ds | Press Ctrl+C to exit", int(refresh.Seconds()))
	}

	line := dimStyle.Width(width)
	return line.Render(updated) + "\n" + line.Render(controls)
}

func tableWidth(results []status.Result) int {
	longest := 0
	for _, r := range results {
		if w := len([]rune(r.Service)); w > longest {
			longest = w
		}
	}
	if w := longest + tableWidthPadding; w > minTableWidth {
		return w
	}
	return minTableWidth
}

func padRight(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
