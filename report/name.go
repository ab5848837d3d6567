package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts a topic into a filename-safe fragment: lowercase, every run
// of non-alphanumeric characters collapsed to a single hyphen, capped at 50
// bytes, trimmed of leading and trailing hyphens. Idempotent.
func Slug(topic string) string {
	s := strings.ToLower(strings.TrimSpace(topic))
	s = nonAlnum.ReplaceAllString(s, "-")
	if len(s) > 50 {
		s = s[:50]
	}
	return strings.Trim(s, "-")
}

// FileName returns the deterministic markdown file name for a topic and
// date. Re-running on the same day overwrites the previous file.
func FileName(topic string, date time.Time) string {
	return fmt.Sprintf("learning-plan-%s-%s.md", Slug(topic), date.Format("2006-01-02"))
}
