// Package ui renders dashboard output for the terminal.
//
// Rendering is kept as pure string formatting — every Format* function takes
// data and returns a string, no printing. That keeps the functions testable
// (color is disabled under tests via color.NoColor) and leaves the caller in
// charge of where output goes.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/sakif/property-board/internal/client"
	"github.com/sakif/property-board/internal/model"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

// FormatKPIStrip renders the three summary numbers on one line:
// total listings, average price, max price.
func FormatKPIStrip(kpi client.KPI) string {
	return fmt.Sprintf("%s %s   %s %s   %s %s\n",
		faint("Total:"), bold(fmt.Sprintf("%d", kpi.Count)),
		faint("Avg Price:"), bold(fmt.Sprintf("$%.0f", kpi.AvgPrice)),
		faint("Max Price:"), bold(fmt.Sprintf("$%.0f", kpi.MaxPrice)),
	)
}

// FormatProperty renders one listing as a two-line entry.
func FormatProperty(p model.Property) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		faint(p.ID),
		bold(p.Title),
		green(fmt.Sprintf("$%.0f", p.Price)),
	))
	sb.WriteString(fmt.Sprintf("         %s %s   %s %s\n",
		faint("Location:"), cyan(p.Location),
		faint("Updated:"), faint(p.UpdatedAt.Format("2006-01-02 15:04")),
	))

	return sb.String()
}

// FormatDashboard renders a full poller state: error banner (if any), the
// KPI strip, and every listing in snapshot order.
func FormatDashboard(state client.State) string {
	var sb strings.Builder

	if state.LastError != "" {
		sb.WriteString(ErrorBanner(state.LastError))
	}
	sb.WriteString(FormatKPIStrip(client.ComputeKPI(state.Snapshot)))
	sb.WriteString("\n")

	if len(state.Snapshot) == 0 {
		sb.WriteString(faint("  no properties yet\n"))
		return sb.String()
	}

	for _, p := range state.Snapshot {
		sb.WriteString(FormatProperty(p))
	}

	return sb.String()
}

// ErrorBanner renders a single user-visible failure line, the stale-data
// warning shown when a refresh fails but the previous snapshot is kept.
func ErrorBanner(msg string) string {
	return red("! ") + msg + faint(" (showing last known data)") + "\n"
}

// Success renders a confirmation line for completed mutations.
func Success(msg string) string {
	return green("✓ ") + msg
}
