// Package ui renders autobot's console messages. The hook runs inside
// git's commit pipeline, so output is a single summary line on stderr,
// styled only when stderr is a terminal.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"})
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "196"})
	prefixStyle  = lipgloss.NewStyle().Faint(true)
)

// Printer writes hook summary messages
type Printer struct {
	out     io.Writer
	colored bool
}

// NewPrinter creates a Printer writing to stderr, with styling enabled
// only when stderr is a terminal.
func NewPrinter() *Printer {
	return &Printer{
		out:     os.Stderr,
		colored: isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
}

// NewPrinterTo creates a Printer writing plain text to w
func NewPrinterTo(w io.Writer) *Printer {
	return &Printer{out: w}
}

// Linked reports how many new links were appended to the config
func (p *Printer) Linked(count int, configFile string) {
	noun := "files"
	if count == 1 {
		noun = "file"
	}
	msg := fmt.Sprintf("linked %d new %s in %s", count, noun, configFile)
	p.println(p.style(successStyle, msg))
}

// SyncFailed reports a recovered synchronization failure. The commit
// still proceeds; the config was restored from its backup.
func (p *Printer) SyncFailed(err error) {
	p.println(p.style(errorStyle, fmt.Sprintf("config sync failed, original config restored: %v", err)))
}

// Fatal reports an error that blocks the commit
func (p *Printer) Fatal(err error) {
	p.println(p.style(errorStyle, err.Error()))
}

func (p *Printer) style(s lipgloss.Style, msg string) string {
	if !p.colored {
		return msg
	}
	return s.Render(msg)
}

func (p *Printer) println(msg string) {
	prefix := "autobot:"
	if p.colored {
		prefix = prefixStyle.Render(prefix)
	}
	fmt.Fprintf(p.out, "%s %s\n", prefix, msg)
}
