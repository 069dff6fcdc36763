// Package assignment defines the LMS-side domain types consumed by the import
// pipeline along with due date normalization and dispatch ordering.
package assignment

import (
	"strings"
	"time"
)

// Course is a course visible to the current user. Courses the user cannot
// access are reported by the LMS without a name.
type Course struct {
	ID   string
	Name string
}

// Restricted reports whether the course hides its details from the user.
func (c Course) Restricted() bool {
	return c.Name == ""
}

// Record is a single assignment observed during a run.
type Record struct {
	ID          string // stable LMS identifier
	CourseName  string
	Title       string
	DueAt       string // raw LMS timestamp, may be empty
	Description string // raw HTML body, may be empty
	HTMLURL     string // permalink back to the assignment
}

// Candidate is a record that has not been imported yet, paired with its
// normalized due moment. Due is nil when the record has no usable due date.
type Candidate struct {
	Record Record
	Due    *time.Time
}

// NewCandidate normalizes the record's due date into loc.
func NewCandidate(r Record, loc *time.Location) Candidate {
	c := Candidate{Record: r}
	if due, ok := ParseDue(r.DueAt, loc); ok {
		c.Due = &due
	}
	return c
}

// ParseDue converts an LMS timestamp (RFC 3339, usually UTC with a trailing
// "Z") into loc. Empty and malformed input both report false.
func ParseDue(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}

	if loc == nil {
		loc = time.Local
	}

	return t.In(loc), true
}
