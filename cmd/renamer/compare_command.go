package main

import (
	"archive/zip"
	"fmt"

	"github.com/spf13/cobra"

	"renamer-service/internal/archive"
)

func newCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <zip1> <zip2>",
		Short: "Diff two creative archives by filename and content hash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			z1, err := zip.OpenReader(args[0])
			if err != nil {
				return err
			}
			defer z1.Close()
			z2, err := zip.OpenReader(args[1])
			if err != nil {
				return err
			}
			defer z2.Close()

			res := archive.Compare(&z1.Reader, &z2.Reader)

			var rows [][]string
			for _, n := range res.SameContent {
				rows = append(rows, []string{n, "same"})
			}
			for _, n := range res.DifferentContent {
				rows = append(rows, []string{n, "different"})
			}
			for _, n := range res.OnlyIn1 {
				rows = append(rows, []string{n, "only in " + args[0]})
			}
			for _, n := range res.OnlyIn2 {
				rows = append(rows, []string{n, "only in " + args[1]})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"File", "Status"}, rows))
			fmt.Fprintf(cmd.OutOrStdout(), "%d same, %d different, %d+%d unmatched\n",
				res.Summary.SameContentCount, res.Summary.DifferentContentCount,
				res.Summary.OnlyIn1Count, res.Summary.OnlyIn2Count)
			return nil
		},
	}
}
