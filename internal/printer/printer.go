// Package printer writes human-facing console output. Styling is applied only
// when the destination is a terminal, so redirected output stays plain.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/styles"
)

type ctxKey struct{}

// Printer formats progress and status lines.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer writing to w. Color is enabled when w is a terminal.
func New(w io.Writer) *Printer {
	return &Printer{w: w, color: isTerminal(w)}
}

// NewPlain returns a Printer that never styles its output.
func NewPlain(w io.Writer) *Printer {
	return &Printer{w: w}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// NewContext returns a context carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or a stdout Printer when none is set.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stdout)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Color reports whether output is styled.
func (p *Printer) Color() bool {
	return p.color
}

// Render applies s when color is enabled.
func (p *Printer) Render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Printf writes an unadorned line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// Infof writes an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.status(styles.InfoStyle, styles.IconInfo, format, args...)
}

// Successf writes a success line.
func (p *Printer) Successf(format string, args ...any) {
	p.status(styles.SuccessStyle, styles.IconSuccess, format, args...)
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.status(styles.WarnStyle, styles.IconWarn, format, args...)
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.status(styles.ErrorStyle, styles.IconError, format, args...)
}

// Section writes a header followed by a divider sized to the header.
func (p *Printer) Section(title string) {
	p.Printf("%s", p.Render(styles.HeaderStyle, title))
	p.Printf("%s", p.Render(styles.DividerStyle, strings.Repeat("─", lipgloss.Width(title))))
}

func (p *Printer) status(s lipgloss.Style, icon, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.Printf("%s %s", p.Render(s, icon), msg)
}
