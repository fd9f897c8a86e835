package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"folio/internal/epub"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "parse <book.epub>",
		Short: "Show book metadata and reading order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := epub.Parse(args[0], epub.WithLogger(ctx.log()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(book)
			}

			md := book.Metadata
			fmt.Fprintf(out, "Title:     %s\n", md.Title)
			fmt.Fprintf(out, "Author:    %s\n", md.Author)
			if md.Publisher != "" {
				fmt.Fprintf(out, "Publisher: %s\n", md.Publisher)
			}
			if md.Language != "" {
				fmt.Fprintf(out, "Language:  %s\n", md.Language)
			}
			if md.ISBN != "" {
				fmt.Fprintf(out, "ISBN:      %s\n", md.ISBN)
			}
			if book.CoverPath != "" {
				fmt.Fprintf(out, "Cover:     %s\n", book.CoverPath)
			}
			fmt.Fprintf(out, "Chapters:  %d\n\n", len(book.Spine))

			rows := make([][]string, 0, len(book.Spine))
			for i, item := range book.Spine {
				rows = append(rows, []string{strconv.Itoa(i + 1), item.ID, item.Href})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "ID", "HREF"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit machine-readable JSON")
	return cmd
}
