package assignment

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// FarFuture stands in for a missing due date when ordering. It is later than
// any due date the LMS can report.
var FarFuture = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)

// Order sorts candidates into dispatch order, descending on
// (due or FarFuture, lowercase course name). Undated candidates come first,
// then dated ones from the latest deadline to the soonest. Each dispatched task
// lands on top of the inbox, so the soonest deadline ends up topmost.
func Order(candidates []Candidate) {
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		// b before a: descending
		if c := b.sortDue().Compare(a.sortDue()); c != 0 {
			return c
		}
		return cmp.Compare(strings.ToLower(b.Record.CourseName), strings.ToLower(a.Record.CourseName))
	})
}

func (c Candidate) sortDue() time.Time {
	if c.Due == nil {
		return FarFuture
	}
	return *c.Due
}
