package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderBuildHelp renders the help text for the build command with lipgloss styling
func renderBuildHelp() string {
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

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Examples"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Build a rig and write the scene next to it"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("gorig build biped.yaml -o biped-scene.yaml"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Build and print the highlighted scene"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("gorig build finger.yaml --print --style dracula"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Chain keys:"))
	b.WriteString("\n")

	keys := []struct {
		key  string
		desc string
	}{
		{"name, side", "Base name and side (M, L or R) of the joints"},
		{"mode", "arbitrary, linear or planar"},
		{"positions", "World positions, one per joint"},
		{"orientations", "Joint orients in degrees (arbitrary)"},
		{"aim, twist", "Axis labels such as +x and -y"},
		{"twist_vector", "World up vector (linear)"},
		{"skip_last", "Use the last position only to aim"},
		{"lock, unlock", "Attribute aliases locked on every joint"},
		{"parent", "Existing joint the chain root is parented under"},
		{"zero_group", "Insert an offset group above the chain root"},
	}

	maxWidth := 0
	for _, k := range keys {
		if len(k.key) > maxWidth {
			maxWidth = len(k.key)
		}
	}

	for _, k := range keys {
		padding := strings.Repeat(" ", maxWidth-len(k.key)+2)
		b.WriteString("  " + keyStyle.Render(k.key) + padding + commentStyle.Render(k.desc))
		b.WriteString("\n")
	}

	return b.String()
}
