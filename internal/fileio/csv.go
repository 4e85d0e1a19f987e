package fileio

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSVNames reads a CSV export, auto-detecting the encoding (European
// agency exports are often windows-1252 rather than UTF-8) and extracting
// the creative-name column.
func readCSVNames(r io.Reader, opts NamesOptions) ([]string, error) {
	br := bufio.NewReader(r)

	peek, _ := br.Peek(2048)
	cs := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			cs = strings.ToLower(det.Charset)
		}
	}

	var dec io.Reader = br
	switch {
	case strings.Contains(cs, "utf"):
		// already Unicode
	case cs == "windows-1251" || cs == "cp1251":
		dec = transform.NewReader(br, charmap.Windows1251.NewDecoder())
	default:
		// any other single-byte detection: treat as windows-1252,
		// the usual encoding of European agency exports (identity
		// on plain ASCII)
		dec = transform.NewReader(br, charmap.Windows1252.NewDecoder())
	}

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, ErrNoNames
	}

	col := findCreativeColumn(rows, opts)
	if col < 0 {
		col = 0
	}
	names := cleanNames(columnValues(rows, col))
	if len(names) == 0 {
		return nil, ErrNoNames
	}
	return names, nil
}
