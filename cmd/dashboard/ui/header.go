package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginBottom(1).
			Bold(true).
			Underline(true)

	headerStyle = lipgloss.NewStyle().
			Width(dashboardWidth).
			Padding(0, 1).
			Background(lipgloss.Color("#c72828")).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true)
)

func headerView(count int) string {
	left := "GoRestaurant"
	right := fmt.Sprintf("%d plates · press a for a new plate", count)

	gap := dashboardWidth - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
}
