package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/taskflow/internal/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	RunE:  runStats,
}

var (
	statLabelStyle = lipgloss.NewStyle().Width(14).Foreground(lipgloss.Color("245"))
	statValueStyle = lipgloss.NewStyle().Bold(true)
	barFullStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	barEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

func runStats(cmd *cobra.Command, args []string) error {
	var s stats.Summary
	if err := apiGetJSON("/stats", &s); err != nil {
		return err
	}
	fmt.Println(renderStats(s))
	return nil
}

func renderStats(s stats.Summary) string {
	row := func(label string, v int) string {
		return statLabelStyle.Render(label) + statValueStyle.Render(fmt.Sprint(v))
	}

	lines := []string{
		row("Total", s.Total),
		row("Pending", s.Pending),
		row("In Progress", s.InProgress),
		row("Completed", s.Completed),
		row("High open", s.HighPriorityOpen),
		row("Overdue", s.OverdueOpen),
		statLabelStyle.Render("Progress") + progressBar(s.ProgressPercent, 20) + fmt.Sprintf(" %d%%", s.ProgressPercent),
	}
	return strings.Join(lines, "\n")
}

func progressBar(percent, width int) string {
	full := percent * width / 100
	if full > width {
		full = width
	}
	return barFullStyle.Render(strings.Repeat("█", full)) +
		barEmptyStyle.Render(strings.Repeat("░", width-full))
}
