// internal/report/layout.go
package report

import (
	"path/filepath"
	"regexp"
	"strings"
)

// noInputLabel names pages for scenarios that ran without an input. It only
// appears in file names and navigation; the data model keeps the empty
// string.
const noInputLabel = "no_input"

var unsafeTagChars = regexp.MustCompile(`[^a-z0-9_]+`)

// sanitizeTag makes a page tag filesystem-safe: lowercased, every run of
// characters outside [a-z0-9_] collapsed to a single underscore, outer
// underscores trimmed. The result never contains the "-" page-path
// separator, so distinct tag sequences cannot collapse to one path.
func sanitizeTag(tag string) string {
	lowered := strings.ToLower(tag)
	cleaned := unsafeTagChars.ReplaceAllString(lowered, "_")
	return strings.Trim(cleaned, "_")
}

// pagePath resolves the relative file path for one page. The index (no
// tags) reuses the base file's leaf name unchanged; every other page
// interleaves its sanitized tags in front of the leaf, joined with "-".
// Pure function of its arguments: identical calls yield identical paths.
func pagePath(base string, tags ...string) string {
	leaf := filepath.Base(base)
	if len(tags) == 0 {
		return leaf
	}
	parts := make([]string, 0, len(tags)+1)
	for _, tag := range tags {
		parts = append(parts, sanitizeTag(tag))
	}
	parts = append(parts, leaf)
	return strings.Join(parts, "-")
}

// inputLabel returns the tag label for an input group.
func inputLabel(input string) string {
	if input == "" {
		return noInputLabel
	}
	return input
}
