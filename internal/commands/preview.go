package commands

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/styles"
	"github.com/realprogrammersusevim/canvas-todo/internal/core/things"
	"github.com/realprogrammersusevim/canvas-todo/internal/printer"
)

const defaultPreviewWidth = 80

// previewDispatcher prints payloads instead of sending them to Things. It
// backs --dry-run.
type previewDispatcher struct {
	p   *printer.Printer
	loc *time.Location
	now func() time.Time

	// md renders notes when output is a terminal; nil prints them raw.
	md *glamour.TermRenderer
}

func newPreviewDispatcher(p *printer.Printer, loc *time.Location) *previewDispatcher {
	d := &previewDispatcher{p: p, loc: loc, now: time.Now}

	if p.Color() {
		md, err := glamour.NewTermRenderer(
			glamour.WithStyles(styles.GlamourStyle()),
			glamour.WithWordWrap(terminalWidth()),
		)
		if err == nil {
			d.md = md
		}
	}

	return d
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultPreviewWidth
	}
	return min(w, 120)
}

func (d *previewDispatcher) Dispatch(_ context.Context, payload things.Payload) error {
	p := d.p

	p.Printf("")
	p.Printf("%s %s", p.Render(styles.MutedStyle, styles.IconArrow), p.Render(styles.TitleStyle, payload.Title))

	if due, ok := payload.DueIn(d.loc); ok {
		rel := humanize.RelTime(due, d.now(), "ago", "from now")
		p.Printf("  deadline: %s", p.Render(styles.DeadlineStyle, payload.Deadline+" ("+rel+")"))
	} else {
		p.Printf("  deadline: %s", p.Render(styles.MutedStyle, "none"))
	}

	if payload.ListName != "" {
		p.Printf("  list:     %s", payload.ListName)
	}

	tags := make([]string, len(payload.Tags))
	for i, t := range payload.Tags {
		tags[i] = p.Render(styles.TagStyle, t)
	}
	p.Printf("  tags:     %s", strings.Join(tags, " "))

	p.Printf("  notes:")
	p.Printf("%s", d.renderNotes(payload.Notes))

	p.Printf("  %s", p.Render(styles.URLStyle, things.URL(payload)))

	return nil
}

func (d *previewDispatcher) renderNotes(notes string) string {
	if d.md != nil {
		if out, err := d.md.Render(notes); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}

	lines := strings.Split(notes, "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}
