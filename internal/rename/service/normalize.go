package service

import "strings"

// separators that CM360-style names mix freely
var sepReplacer = strings.NewReplacer(" ", " ", "_", " ", "-", " ", ".", " ")

// Normalize lowers the string and collapses all separator characters
// (space, underscore, hyphen, period) into single spaces. It never fails
// and is idempotent; the result is used for comparison only and must not
// leak into responses.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = sepReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
