package things

import (
	"net/url"
	"strings"
)

// AddURL is the Things URL scheme endpoint for creating a task.
const AddURL = "things:///add?"

// URL serializes p into a Things "add" URL. Every value is percent-encoded
// with spaces as %20; Things does not decode "+" as a space.
func URL(p Payload) string {
	params := []struct{ key, value string }{
		{"title", p.Title},
		{"notes", p.Notes},
		{"tags", strings.Join(p.Tags, ",")},
		{"show-quick-entry", "false"},
	}
	if p.ListName != "" {
		params = append(params, struct{ key, value string }{"list", p.ListName})
	}
	if p.Deadline != "" {
		params = append(params, struct{ key, value string }{"deadline", p.Deadline})
	}

	var b strings.Builder
	b.WriteString(AddURL)
	for i, kv := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(kv.key)
		b.WriteByte('=')
		b.WriteString(escape(kv.value))
	}

	return b.String()
}

func escape(s string) string {
	// QueryEscape writes a literal "+" as %2B, so every remaining "+" was a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
