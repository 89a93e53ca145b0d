package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderRetagHelp renders the help text for the retag command with lipgloss styling
func renderRetagHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginTop(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))

	commandStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14"))

	commentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Examples"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Interactive - prompt for a version comment"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("dpxver retag dpx_widget.yaml"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Scripted - supply the comment up front"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("dpxver retag dpx_widget.yaml -m \"tuned lever fit\""))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("CI - never prompt, default message only"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("dpxver retag dpx_widget.yaml --no-input"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("How names are matched"))
	b.WriteString("\n")
	b.WriteString("  " + commentStyle.Render("The prefix comes from the document name: dpx_widget.f3d -> dpx_."))
	b.WriteString("\n")
	b.WriteString("  " + commentStyle.Render("dpx_lever and dpx-lever both match; std_screw is skipped."))
	b.WriteString("\n")
	b.WriteString("  " + commentStyle.Render("Old tags are replaced: dpx_bracket_v2 becomes dpx_bracket_v4."))
	b.WriteString("\n")

	return b.String()
}
