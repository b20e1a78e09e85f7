// SPDX-License-Identifier: MPL-2.0

package extensions

import (
	"fmt"
	"io"
	"os"

	"gearbox-cli/pkg/toolkit"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// PrintCapability is the attachment name for the print extension.
const PrintCapability = "print"

// Shared palette for command output, tuned for dark terminal backgrounds.
var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// Printer writes styled output for command bodies.
type Printer struct {
	out    io.Writer
	logger *log.Logger
}

// NewPrinter creates a Printer writing to out. A nil out falls back to
// stdout; a nil logger discards debug lines.
func NewPrinter(out io.Writer, logger *log.Logger) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Printer{out: out, logger: logger}
}

// Info prints an unstyled line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Success prints a line styled for positive outcomes.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, successStyle.Render(msg))
}

// Warning prints a line styled for caution states.
func (p *Printer) Warning(msg string) {
	fmt.Fprintln(p.out, warningStyle.Render(msg))
}

// Error prints a line styled for failures.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out, errorStyle.Render(msg))
}

// Highlight prints a line styled for commands and interactive elements.
func (p *Printer) Highlight(msg string) {
	fmt.Fprintln(p.out, highlightStyle.Render(msg))
}

// Muted prints a de-emphasized line.
func (p *Printer) Muted(msg string) {
	fmt.Fprintln(p.out, mutedStyle.Render(msg))
}

// Debug forwards a structured debug line to the runtime logger.
func (p *Printer) Debug(msg string, keyvals ...any) {
	p.logger.Debug(msg, keyvals...)
}

// RegisterPrint registers the print extension on rt.
func RegisterPrint(rt *toolkit.Runtime, out io.Writer, logger *log.Logger) error {
	printer := NewPrinter(out, logger)
	return rt.AddExtension(PrintCapability, func(rc *toolkit.RunContext) error {
		rc.Attach(PrintCapability, printer)
		return nil
	})
}
