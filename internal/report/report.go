// Package report prints the human-readable progress lines both tools emit.
// Output is informational only. Every line is mirrored to a zap logger so
// --verbose runs carry structured context, and warnings are collected for
// the caller's result.
package report

import (
	"fmt"
	"io"

	"github.com/agentx-labs/projectforge/internal/logging"
	"go.uber.org/zap"
)

// Printer writes progress lines to an io.Writer.
type Printer struct {
	w        io.Writer
	log      *zap.Logger
	warnings []string
}

// New returns a Printer writing to w. A nil w discards output and a nil log
// disables diagnostics.
func New(w io.Writer, log *zap.Logger) *Printer {
	if w == nil {
		w = io.Discard
	}
	return &Printer{w: w, log: logging.OrNop(log)}
}

// Section starts a new group of lines.
func (p *Printer) Section(format string, args ...any) {
	fmt.Fprintf(p.w, "\n"+format+"\n", args...)
}

// Line prints an unadorned line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Done reports one completed item, such as a copied file.
func (p *Printer) Done(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(p.w, "  + %s\n", msg)
	p.log.Debug(msg)
}

// Warn reports a non-fatal condition and records it.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.warnings = append(p.warnings, msg)
	fmt.Fprintf(p.w, "  ! %s\n", msg)
	p.log.Warn(msg)
}

// Warnings returns a copy of every warning recorded so far.
func (p *Printer) Warnings() []string {
	return append([]string(nil), p.warnings...)
}

// Logger returns the diagnostics logger.
func (p *Printer) Logger() *zap.Logger {
	return p.log
}
