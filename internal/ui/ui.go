package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	primaryColor = lipgloss.Color("#00B3A4") // Teal
	successColor = lipgloss.Color("#04B575") // Green
	errorColor   = lipgloss.Color("#FF5F87") // Pink/Red
	warningColor = lipgloss.Color("#FFAF00") // Orange
	mutedColor   = lipgloss.Color("#626262") // Gray
	accentColor  = lipgloss.Color("#00D9FF") // Cyan

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginTop(1).
			MarginBottom(1).
			PaddingLeft(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginTop(1).
			PaddingLeft(1)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	infoStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	checkmark = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true).
			SetString("✓")

	cross = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true).
		SetString("✗")

	arrow = lipgloss.NewStyle().
		Foreground(accentColor).
		SetString("→")

	dot = lipgloss.NewStyle().
		Foreground(mutedColor).
		SetString("•")

	stepStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(lipgloss.Color("#FAFAFA"))

	keyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)
)

// PrintTitle prints a major title.
func PrintTitle(title string) {
	fmt.Println(titleStyle.Render("╭─ " + title + " ─╮"))
}

// PrintHeader prints a section header.
func PrintHeader(title string) {
	fmt.Println(headerStyle.Render("\n▸ " + title))
}

// PrintStep prints a step with indentation.
func PrintStep(step string) {
	fmt.Println(stepStyle.Render(arrow.String() + " " + step))
}

// PrintItem prints an item in a list.
func PrintItem(item string) {
	fmt.Println(itemStyle.Render(dot.String() + " " + item))
}

// PrintSuccess prints a success message.
func PrintSuccess(message string) {
	fmt.Println(stepStyle.Render(checkmark.String() + " " + successStyle.Render(message)))
}

// PrintError prints an error message.
func PrintError(message string) {
	fmt.Println(stepStyle.Render(cross.String() + " " + errorStyle.Render(message)))
}

// PrintWarning prints a warning message.
func PrintWarning(message string) {
	fmt.Println(stepStyle.Render("⚠ " + warningStyle.Render(message)))
}

// PrintInfo prints a muted informational message.
func PrintInfo(message string) {
	fmt.Println(stepStyle.Render(infoStyle.Render(message)))
}

// PrintKeyValue prints a key-value pair.
func PrintKeyValue(key, value string) {
	fmt.Println(stepStyle.Render(keyStyle.Render(key+":") + " " + value))
}

// PrintTreeRow prints one row of an assembly tree at the given depth.
func PrintTreeRow(depth int, marker, text string) {
	indent := lipgloss.NewStyle().PaddingLeft(2 + depth*2)
	fmt.Println(indent.Render(infoStyle.Render(marker) + " " + text))
}

// Muted renders text in the muted style without printing it.
func Muted(text string) string {
	return infoStyle.Render(text)
}

// Highlight renders text in the accent style without printing it.
func Highlight(text string) string {
	return keyStyle.Render(text)
}
