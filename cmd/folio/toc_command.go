package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/epub"
)

func newTOCCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toc <book.epub>",
		Short: "Show the table of contents tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := epub.Parse(args[0], epub.WithLogger(ctx.log()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(book.TOC) == 0 {
				fmt.Fprintln(out, "No table of contents found.")
				return nil
			}
			printTOCItems(out, book.TOC, 0)
			return nil
		},
	}
}

func printTOCItems(out io.Writer, items []epub.TOCItem, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, item := range items {
		label := item.Label
		if label == "" {
			label = item.Href
		}
		fmt.Fprintf(out, "%s- %s (%s)\n", indent, label, item.Href)
		printTOCItems(out, item.Children, depth+1)
	}
}
