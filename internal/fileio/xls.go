// Legacy .xls reader: extrame/xls does not expose a reliable row width, so
// the table width is probed cell by cell before reading.
package fileio

import (
	"bytes"
	"errors"
	"io"
	"strings"

	xls "github.com/extrame/xls"
)

const probeMaxCols = 512

func xlsMaxCols(sheet *xls.WorkSheet) int {
	maxCols := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := 0; j < probeMaxCols; j++ {
			if strings.TrimSpace(row.Col(j)) != "" && j+1 > maxCols {
				maxCols = j + 1
			}
		}
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

func readXLSNames(r io.Reader, opts NamesOptions) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var wb *xls.WorkBook
	var lastErr error
	for _, cs := range []string{"utf-8", "windows-1252", "windows-1251"} {
		wb, lastErr = xls.OpenReader(bytes.NewReader(b), cs)
		if lastErr == nil && wb != nil {
			break
		}
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrNoNames
	}

	maxCols := xlsMaxCols(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		cols := make([]string, maxCols)
		if row := sheet.Row(i); row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = row.Col(j)
			}
		}
		rows = append(rows, cols)
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
