package fileio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrNoNames is returned when a sheet parsed fine but no column held
// CM360-style creative names.
var ErrNoNames = errors.New("no creative names found in the sheet")

// NamesOptions narrows where the creative-name column is looked for.
// Zero value (with ColumnIndex -1) means full auto-detection.
type NamesOptions struct {
	SheetName    string // exact worksheet name, "" = scan all sheets
	ColumnHeader string // case-insensitive partial header match
	ColumnIndex  int    // 0-based column, <0 = unset
}

// ReadAnyNames picks a parser by extension and returns the canonical
// creative names of the sheet, deduplicated, in sheet order.
func ReadAnyNames(r io.Reader, filename string, opts NamesOptions) ([]string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xlsm":
		return readXLSXNames(r, opts)
	case ".xls":
		return readXLSNames(r, opts)
	case ".csv":
		return readCSVNames(r, opts)
	default:
		return nil, fmt.Errorf("unsupported sheet format: %s", filename)
	}
}
