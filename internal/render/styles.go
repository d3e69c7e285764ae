package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

// Successf prints a green check line.
func Successf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", successStyle.Render("✓"), fmt.Sprintf(format, args...))
}

// Warningf prints a "warning:" line.
func Warningf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", warningStyle.Render("warning:"), fmt.Sprintf(format, args...))
}

// Errorf prints an "error:" line.
func Errorf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", errorStyle.Render("error:"), fmt.Sprintf(format, args...))
}
