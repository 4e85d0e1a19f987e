package utils

import (
	"strconv"
	"strings"
)

// ParseDecimal parses user-supplied decimal form values, tolerating comma
// decimal separators and non-breaking spaces ("0,7", "0.7", " 0,70 ").
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	repl := strings.NewReplacer(" ", "", " ", "", " ", "", ",", ".")
	s = repl.Replace(s)
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
