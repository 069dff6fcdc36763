// Package htmltext converts LMS rich-text bodies into markdown suitable for
// task notes.
package htmltext

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

var converter = md.NewConverter("", true, nil)

// ToMarkdown converts an HTML fragment to trimmed markdown. Empty input
// returns an empty string. If the fragment cannot be converted the trimmed
// input is returned unchanged.
func ToMarkdown(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	out, err := converter.ConvertString(html)
	if err != nil {
		return strings.TrimSpace(html)
	}

	return strings.TrimSpace(out)
}
