package service

import (
	"regexp"
	"strings"
)

// Anchors are the structural signals extracted from one name. Plain text
// similarity ignores them (or is actively misled: two same-size ads for
// different markets read nearly identically), so the resolver uses them to
// gate and verify fuzzy scores.
type Anchors struct {
	Size     string              // canonical "WxH" token, "" if absent
	IDTokens map[string]struct{} // alphanumeric tokens, len >= 6
	Primary  string              // single most discriminating word, "" if absent
	Region   string              // region code from the configured table, "" if absent
}

// Region is one market in the closed region table. Variants are the combined
// codes accepted anywhere in a name (first variant is the canonical code),
// Hints are short language tokens that imply the region when they appear as
// a whole word or path segment.
type Region struct {
	Code     string
	Variants []string
	Hints    []string
}

var sizeRe = regexp.MustCompile(`(\d{2,4})\s*[xX]\s*(\d{2,4})`)

// SizeToken returns the first "WxH" pixel-size token found in the raw
// string, whitespace stripped and lower-cased ("728x90"), or "".
func SizeToken(s string) string {
	m := sizeRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1] + "x" + m[2]
}

const idTokenMinLen = 6

// IDTokens collects the long alphanumeric words of the normalized string,
// the ones that tend to be creative IDs rather than vocabulary.
func IDTokens(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(Normalize(s)) {
		w = stripNonAlnum(w)
		if len(w) >= idTokenMinLen {
			out[w] = struct{}{}
		}
	}
	return out
}

const primaryMinLen = 5

// PrimaryToken picks the single most discriminating word of a name: the
// longest word (>= 5 chars) before any parenthetical annotation that is not
// the size token, not purely numeric, and not in the stoplist. Ties go to
// the earlier word. Returns "" when nothing qualifies.
func PrimaryToken(s string, stoplist map[string]struct{}) string {
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	size := SizeToken(s)
	best := ""
	for _, w := range strings.Fields(Normalize(s)) {
		w = stripNonAlnum(w)
		if len(w) < primaryMinLen || w == size || isNumeric(w) {
			continue
		}
		if _, stop := stoplist[w]; stop {
			continue
		}
		if len(w) > len(best) {
			best = w
		}
	}
	return best
}

// DetectRegion resolves the region code of a raw name against the region
// table: first any combined code substring (table order is priority order),
// then whole-word / path-segment language hints. "" when nothing matches.
func DetectRegion(s string, regions []Region) string {
	low := strings.ToLower(s)
	for _, r := range regions {
		for _, v := range r.Variants {
			if strings.Contains(low, v) {
				return r.Code
			}
		}
	}
	words := make(map[string]struct{})
	for _, w := range strings.Fields(Normalize(strings.ReplaceAll(low, "/", " "))) {
		words[stripNonAlnum(w)] = struct{}{}
	}
	for _, r := range regions {
		for _, h := range r.Hints {
			if _, ok := words[h]; ok {
				return r.Code
			}
		}
	}
	return ""
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
