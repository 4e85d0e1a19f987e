package main

import (
	"archive/zip"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"renamer-service/internal/archive"
	"renamer-service/internal/fileio"
	renSvc "renamer-service/internal/rename/service"
)

func newPreviewCommand() *cobra.Command {
	var (
		zipPath      string
		sheetPath    string
		threshold    float64
		sheetName    string
		columnHeader string
		columnIndex  int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show how archive filenames resolve against a trafficking sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			sheetFile, err := os.Open(sheetPath)
			if err != nil {
				return err
			}
			defer sheetFile.Close()
			names, err := fileio.ReadAnyNames(sheetFile, sheetPath, fileio.NamesOptions{
				SheetName:    sheetName,
				ColumnHeader: columnHeader,
				ColumnIndex:  columnIndex,
			})
			if err != nil {
				return err
			}

			zr, err := zip.OpenReader(zipPath)
			if err != nil {
				return err
			}
			defer zr.Close()
			entries := archive.Entries(&zr.Reader)
			stems := make([]string, len(entries))
			for i, e := range entries {
				stems[i] = e.Stem
			}

			matches := renSvc.Default().ResolveAll(stems, names, threshold)

			rows := make([][]string, len(entries))
			for i, e := range entries {
				matched := "-"
				if matches[i].MatchedName != nil {
					matched = *matches[i].MatchedName + e.Ext
				}
				rows[i] = []string{
					e.Path,
					matched,
					strconv.FormatFloat(matches[i].Score, 'f', 1, 64),
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"File", "Resolved name", "Score"}, rows, 2))
			fmt.Fprintf(cmd.OutOrStdout(), "%d files, %d sheet names\n", len(entries), len(names))
			return nil
		},
	}

	cmd.Flags().StringVar(&zipPath, "zip", "", "Creatives ZIP archive")
	cmd.Flags().StringVar(&sheetPath, "sheet", "", "Trafficking sheet (.xlsx/.xls/.csv)")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.7, "Minimum accepted score (0..1)")
	cmd.Flags().StringVar(&sheetName, "sheet-name", "", "Worksheet name (default: auto-detect)")
	cmd.Flags().StringVar(&columnHeader, "column", "", "Creative-name column header (default: auto-detect)")
	cmd.Flags().IntVar(&columnIndex, "column-index", -1, "Creative-name column index, 0-based")
	_ = cmd.MarkFlagRequired("zip")
	_ = cmd.MarkFlagRequired("sheet")

	return cmd
}
