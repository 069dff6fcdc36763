package importer

import (
	"github.com/bmatcuk/doublestar/v4"
)

// CourseFilter selects courses by name using doublestar glob patterns. An
// empty Include matches every course. Exclude wins over Include.
type CourseFilter struct {
	Include []string
	Exclude []string
}

// Allows reports whether the course named name should be synced.
func (f CourseFilter) Allows(name string) bool {
	for _, p := range f.Exclude {
		if match(p, name) {
			return false
		}
	}

	if len(f.Include) == 0 {
		return true
	}

	for _, p := range f.Include {
		if match(p, name) {
			return true
		}
	}
	return false
}

// match reports a pattern match; invalid patterns never match and are
// rejected earlier by config validation.
func match(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}
