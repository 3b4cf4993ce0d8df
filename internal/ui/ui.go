package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Output receives everything the printers write
var Output io.Writer = os.Stdout

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4") // Purple
	secondaryColor = lipgloss.Color("#00D9FF") // Cyan
	successColor   = lipgloss.Color("#04B575") // Green
	errorColor     = lipgloss.Color("#FF5F87") // Pink/Red
	warningColor   = lipgloss.Color("#FFAF00") // Orange
	mutedColor     = lipgloss.Color("#626262") // Gray
	accentColor    = lipgloss.Color("#FFD700") // Gold

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginTop(1).
			MarginBottom(1).
			PaddingLeft(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor).
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

	keyStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	checkmark = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true).
			SetString("✓")

	cross = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true).
		SetString("✗")

	arrow = lipgloss.NewStyle().
		Foreground(secondaryColor).
		SetString("→")

	dot = lipgloss.NewStyle().
		Foreground(mutedColor).
		SetString("•")

	stepStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)
)

// column widths of the joint table: name, parent, position, orient
var tableWidths = []int{22, 22, 26, 26}

func writeLine(s string) {
	fmt.Fprintln(Output, s)
}

// PrintTitle prints a major title
func PrintTitle(title string) {
	writeLine(titleStyle.Render("╭─ " + title + " ─╮"))
}

// PrintHeader prints a section header
func PrintHeader(title string) {
	writeLine(headerStyle.Render("\n▸ " + title))
}

// PrintStep prints a step with indentation
func PrintStep(step string) {
	writeLine(stepStyle.Render(arrow.String() + " " + step))
}

// PrintItem prints an item in a list
func PrintItem(item string) {
	writeLine(itemStyle.Render(dot.String() + " " + item))
}

// PrintList prints a labelled list of items
func PrintList(label string, items []string) {
	writeLine(stepStyle.Render(label + ":"))
	for _, item := range items {
		PrintItem(item)
	}
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	writeLine(stepStyle.Render(checkmark.String() + " " + successStyle.Render(message)))
}

// PrintError prints an error message
func PrintError(message string) {
	writeLine(stepStyle.Render(cross.String() + " " + errorStyle.Render(message)))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	writeLine(stepStyle.Render("⚠ " + warningStyle.Render(message)))
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	writeLine(stepStyle.Render(infoStyle.Render(message)))
}

// PrintBox prints text in a rounded box
func PrintBox(content string) {
	writeLine(boxStyle.Render(content))
}

// PrintSeparator prints a visual separator
func PrintSeparator() {
	writeLine(infoStyle.Render("─────────────────────────────────────────────"))
}

// PrintKeyValue prints a key-value pair
func PrintKeyValue(key, value string) {
	writeLine(stepStyle.Render(keyStyle.Render(key+":") + " " + value))
}

func fitColumn(col string, width int) string {
	if len(col) > width {
		return col[:width-3] + "..."
	}
	return col + strings.Repeat(" ", width-len(col))
}

// PrintTableRow prints a formatted table row with columns
func PrintTableRow(columns ...string) {
	var cells []string
	for i, col := range columns {
		if i >= len(tableWidths) {
			break
		}
		cells = append(cells, fitColumn(col, tableWidths[i]))
	}
	if len(cells) == 0 {
		return
	}
	writeLine(stepStyle.Render(strings.Join(cells, " │ ")))
}

// PrintTableHeader prints a table header and its separator line
func PrintTableHeader(headers ...string) {
	var cells, lines []string
	for i, header := range headers {
		if i >= len(tableWidths) {
			break
		}
		cells = append(cells, fitColumn(header, tableWidths[i]))
		lines = append(lines, strings.Repeat("─", tableWidths[i]))
	}
	writeLine(stepStyle.Render(keyStyle.Render(strings.Join(cells, " │ "))))
	writeLine(stepStyle.Render(infoStyle.Render(strings.Join(lines, "─┼─"))))
}

// IsVerbose checks if verbose output is enabled
func IsVerbose() bool {
	if os.Getenv("CI") != "" {
		return true
	}
	for _, arg := range os.Args {
		if arg == "--progress=plain" || arg == "--verbose" || arg == "-v" {
			return true
		}
	}
	return false
}

// PrintProgress prints a progress bar that overwrites itself
func PrintProgress(current, total int, message string) {
	if IsVerbose() || total <= 0 {
		return
	}

	barWidth := 30
	filled := (current * barWidth) / total
	if filled > barWidth {
		filled = barWidth
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	pct := (current * 100) / total

	fmt.Fprintf(Output, "\r  [%s] %d%% %s", bar, pct, message)

	if current >= total {
		fmt.Fprintln(Output)
	}
}

// Reporter prints warnings from the rig builders and counts them
type Reporter struct {
	Prefix string
	count  int
}

// NewReporter creates a reporter whose warnings start with prefix
func NewReporter(prefix string) *Reporter {
	return &Reporter{Prefix: prefix}
}

// Warn prints a warning
func (r *Reporter) Warn(msg string) {
	r.count++
	if r.Prefix != "" {
		msg = r.Prefix + ": " + msg
	}
	PrintWarning(msg)
}

// Count returns the number of warnings printed
func (r *Reporter) Count() int {
	return r.count
}
