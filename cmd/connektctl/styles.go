package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

// printRow prints one "label: value" line, aligned for labels up to 24 runes.
func printRow(label string, value interface{}) {
	fmt.Printf("  %s %v\n", labelStyle.Width(26).Render(label+":"), value)
}

func printPlaceholders(fields []string) {
	if len(fields) == 0 {
		return
	}
	fmt.Println(mutedStyle.Render(fmt.Sprintf("  placeholder values: %v", fields)))
}
