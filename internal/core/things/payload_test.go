package things

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/assignment"
)

func upper(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

func TestBuilder_Build(t *testing.T) {
	record := assignment.Record{
		ID:         "999",
		CourseName: "Calculus I",
		Title:      "Homework 4",
		DueAt:      "2024-03-01T23:59:00Z",
		HTMLURL:    "https://canvas.example.edu/courses/1/assignments/999",
	}

	t.Run("scenario without description", func(t *testing.T) {
		p := Builder{}.Build(assignment.NewCandidate(record, time.UTC))

		assert.Equal(t, "Calculus I: Homework 4", p.Title)
		assert.Equal(t, "Link: https://canvas.example.edu/courses/1/assignments/999", p.Notes)
		assert.Equal(t, "2024-03-01", p.Deadline)
		assert.Equal(t, []string{SentinelTag}, p.Tags)
		assert.Empty(t, p.ListName)
	})

	t.Run("deadline follows local offset", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		p := Builder{}.Build(assignment.NewCandidate(record, tokyo))
		assert.Equal(t, "2024-03-02", p.Deadline)
	})

	t.Run("description appended after blank line", func(t *testing.T) {
		r := record
		r.Description = "  read chapter 4  "
		p := Builder{Describe: upper}.Build(assignment.NewCandidate(r, time.UTC))

		assert.Equal(t, "Link: "+record.HTMLURL+"\n\nREAD CHAPTER 4", p.Notes)
	})

	t.Run("blank converted description leaves only the link", func(t *testing.T) {
		r := record
		r.Description = "   "
		p := Builder{Describe: upper}.Build(assignment.NewCandidate(r, time.UTC))

		assert.Equal(t, "Link: "+record.HTMLURL, p.Notes)
	})

	t.Run("no due date omits deadline", func(t *testing.T) {
		r := record
		r.DueAt = ""
		p := Builder{}.Build(assignment.NewCandidate(r, time.UTC))
		assert.Empty(t, p.Deadline)
	})

	t.Run("list name from config", func(t *testing.T) {
		p := Builder{ListName: "School"}.Build(assignment.NewCandidate(record, time.UTC))
		assert.Equal(t, "School", p.ListName)
	})
}

func TestBuilder_TagsDoNotAlias(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "Canvas"
	b := Builder{Tags: base}

	first := b.Build(assignment.Candidate{Record: assignment.Record{ID: "1"}})
	second := b.Build(assignment.Candidate{Record: assignment.Record{ID: "2"}})

	assert.Equal(t, []string{"Canvas", SentinelTag}, first.Tags)
	assert.Equal(t, []string{"Canvas", SentinelTag}, second.Tags)
	assert.Equal(t, []string{"Canvas"}, b.Tags)

	first.Tags[0] = "mutated"
	assert.Equal(t, "Canvas", second.Tags[0])
	assert.Equal(t, "Canvas", base[0])
}

func TestPayload_DueIn(t *testing.T) {
	due, ok := Payload{Deadline: "2024-03-01"}.DueIn(time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), due)

	_, ok = Payload{}.DueIn(time.UTC)
	assert.False(t, ok)
}
