// Package things builds Things 3 "add" payloads from assignments and
// serializes them into the Things URL scheme.
package things

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/assignment"
)

const (
	// SentinelTag marks every task created by an import.
	SentinelTag = "New"

	// DateLayout is the deadline format accepted by Things.
	DateLayout = "2006-01-02"
)

// Payload is a single task to create in Things.
type Payload struct {
	Title    string
	Notes    string
	Tags     []string
	Deadline string // YYYY-MM-DD, empty when the assignment has no due date
	ListName string // empty sends the task to the inbox
}

// Builder maps assignments to payloads. The zero value produces tasks tagged
// only with SentinelTag, bound for the inbox, with notes that omit the
// description.
type Builder struct {
	Tags     []string
	ListName string

	// Describe converts a raw description into note text.
	Describe func(html string) string
}

// Build creates the payload for c.
func (b Builder) Build(c assignment.Candidate) Payload {
	r := c.Record

	p := Payload{
		Title:    fmt.Sprintf("%s: %s", r.CourseName, r.Title),
		Notes:    "Link: " + r.HTMLURL,
		Tags:     append(slices.Clone(b.Tags), SentinelTag),
		ListName: b.ListName,
	}

	if b.Describe != nil {
		if desc := strings.TrimSpace(b.Describe(r.Description)); desc != "" {
			p.Notes += "\n\n" + desc
		}
	}

	if c.Due != nil {
		p.Deadline = c.Due.Format(DateLayout)
	}

	return p
}

// DueIn reports the deadline as a local date, if any.
func (p Payload) DueIn(loc *time.Location) (time.Time, bool) {
	if p.Deadline == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, p.Deadline, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
