// Package report prints the summary of a conversion.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/retroenv/bin2hex/internal/hexfile"
)

// Report describes a finished conversion.
type Report struct {
	Input  string
	Output string
	Stats  hexfile.Stats
}

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
}

func newStyles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		label: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3)),
	}
}

// Write outputs the conversion summary.
func (r Report) Write(writer io.Writer) error {
	s := newStyles()
	stats := r.Stats

	output := r.Output
	if output == "" {
		output = "console"
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("bin2hex: (%s)", stats.Mode.Description())),
		"",
		fmt.Sprintf("Converted %s -> %s", r.Input, output),
		"",
		s.label.Render("Start address") + fmt.Sprintf(" %10d (0x%08X)", stats.StartAddress, stats.StartAddress),
		s.label.Render("End address  ") + fmt.Sprintf(" %10d (0x%08X)", stats.EndAddress, stats.EndAddress),
		s.label.Render("File size    ") + fmt.Sprintf(" %10d (0x%08X)", stats.Size, stats.Size),
		s.label.Render("Record length") + fmt.Sprintf(" %10d       (0x%02X)", stats.RecordLength, stats.RecordLength),
		s.label.Render("Records      ") + fmt.Sprintf(" %10d", stats.Records),
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
