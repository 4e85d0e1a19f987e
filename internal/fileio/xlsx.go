package fileio

import (
	"bytes"
	"io"
	"strings"

	excelize "github.com/xuri/excelize/v2"
)

// scoreSheetName prefers trafficking-style worksheet names.
func scoreSheetName(name string) int {
	n := strings.ToUpper(name)
	for _, hint := range []string{"T1", "NCL", "TRAFFIC", "TS ", "CREATIVE"} {
		if strings.Contains(n, hint) {
			return 2
		}
	}
	if strings.Contains(n, "T-") || strings.Contains(n, "SHEET") {
		return 1
	}
	return 0
}

func readXLSXNames(r io.Reader, opts NamesOptions) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoNames
	}

	var rows [][]string
	if opts.SheetName != "" && hasSheet(sheets, opts.SheetName) {
		if rows, err = f.GetRows(opts.SheetName); err != nil {
			return nil, err
		}
	} else {
		// scan every sheet, keep the one with the most CM360-looking
		// column; sheet-name hints break ties
		bestScore, bestLike := -1, -1
		for _, name := range sheets {
			rr, err := f.GetRows(name)
			if err != nil || len(rr) < 10 {
				continue
			}
			col := findCreativeColumn(rr, opts)
			if col < 0 {
				continue
			}
			unique, like := countCM360Like(columnValues(rr, col))
			if unique < 3 || like < 3 {
				continue
			}
			s := scoreSheetName(name)
			if s > bestScore || (s == bestScore && like > bestLike) {
				bestScore, bestLike = s, like
				rows = rr
			}
		}
		if rows == nil {
			if rows, err = f.GetRows(sheets[0]); err != nil {
				return nil, err
			}
		}
	}

	col := findCreativeColumn(rows, opts)
	if col < 0 {
		return nil, ErrNoNames
	}
	names := cleanNames(columnValues(rows, col))
	if len(names) == 0 {
		return nil, ErrNoNames
	}
	return names, nil
}

func hasSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
