// Creative-name column discovery shared by the xlsx/xls/csv readers.
// Trafficking sheets put the CM360 name column in wildly different places;
// the heuristics below mirror what trafficking teams actually ship.
package fileio

import (
	"regexp"
	"strings"
)

var (
	// Country_Campaign_Platform_CreativeID_Size and friends
	cm360LikeRe  = regexp.MustCompile(`^[A-Za-z0-9]+_[A-Za-z0-9]+_.*_.*`)
	headerLikeRe = regexp.MustCompile(`(?i)^(CREATIVE NAME|SIZE|PLACEMENT|DISPLAY|PLACEMENT NAME)`)
	dateRe       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// Historically, wide trafficking sheets carry the creative name in this
// 0-based column when nothing else identifies it.
const legacyTraffickingColumn = 17

func cell(rows [][]string, r, c int) string {
	if r < 0 || r >= len(rows) || c < 0 || c >= len(rows[r]) {
		return ""
	}
	return strings.TrimSpace(rows[r][c])
}

func columnCount(rows [][]string) int {
	n := 0
	for _, r := range rows {
		if len(r) > n {
			n = len(r)
		}
	}
	return n
}

func columnValues(rows [][]string, c int) []string {
	out := make([]string, 0, len(rows))
	for r := range rows {
		if v := cell(rows, r, c); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func uniqueUnderscored(vals []string, minLen int) int {
	seen := make(map[string]struct{})
	for _, v := range vals {
		if len(v) > minLen && strings.Contains(v, "_") {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}

// findCreativeColumn locates the column holding creative names, in order:
// explicit index, partial header match, a "creative name"-style header,
// the legacy trafficking column, and finally the column with the most
// unique underscored values. Returns -1 when nothing qualifies.
func findCreativeColumn(rows [][]string, opts NamesOptions) int {
	cols := columnCount(rows)
	if cols == 0 {
		return -1
	}
	if opts.ColumnIndex >= 0 && opts.ColumnIndex < cols {
		return opts.ColumnIndex
	}
	if h := strings.ToLower(strings.TrimSpace(opts.ColumnHeader)); h != "" {
		probe := len(rows)
		if probe > 5 {
			probe = 5
		}
		for r := 0; r < probe; r++ {
			for c := 0; c < cols; c++ {
				if strings.Contains(strings.ToLower(cell(rows, r, c)), h) {
					return c
				}
			}
		}
	}
	// a header that literally says "creative name", with underscored
	// values below it
	probe := len(rows)
	if probe > 5 {
		probe = 5
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < probe; r++ {
			v := strings.ToLower(cell(rows, r, c))
			if v == "" {
				continue
			}
			if looksLikeCreativeHeader(v) {
				if uniqueUnderscored(columnValues(rows, c), 0) >= 2 {
					return c
				}
				break
			}
		}
	}
	if cols > legacyTraffickingColumn && len(rows) > 20 {
		if uniqueUnderscored(columnValues(rows, legacyTraffickingColumn), 5) >= 3 {
			return legacyTraffickingColumn
		}
	}
	best, bestCount := -1, 0
	for c := 0; c < cols; c++ {
		if n := uniqueUnderscored(columnValues(rows, c), 5); n >= 3 && n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

func looksLikeCreativeHeader(v string) bool {
	switch v {
	case "creative name", "creative_name", "cm360 creative name":
		return true
	}
	return strings.HasPrefix(v, "creative") && strings.Contains(v, "name")
}

// cleanNames drops header rows, dates and junk, requires the underscore
// shape, and deduplicates preserving order.
func cleanNames(vals []string) []string {
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if len(v) <= 2 || !strings.Contains(v, "_") {
			continue
		}
		if headerLikeRe.MatchString(v) || dateRe.MatchString(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// countCM360Like estimates how many values of a column look like CM360
// names: underscored, pipe-free, Country_Campaign_..._... shaped.
func countCM360Like(vals []string) (unique, like int) {
	seen := make(map[string]struct{})
	for _, v := range vals {
		if len(v) <= 5 || !strings.Contains(v, "_") || strings.Contains(v, "|") {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		if cm360LikeRe.MatchString(v) {
			like++
		}
	}
	return len(seen), like
}
