package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/store"
)

func newSummariesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "summaries <book-id>",
		Short: "List stored summaries for a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, st *store.Store) error {
				summaries, err := st.GetAllSummaries(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if jsonOutput {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(summaries)
				}
				if len(summaries) == 0 {
					fmt.Fprintln(out, "No summaries stored for this book.")
					return nil
				}

				rows := make([][]string, 0, len(summaries))
				for _, s := range summaries {
					rows = append(rows, []string{
						strconv.Itoa(s.ChapterIndex + 1),
						s.ChapterTitle,
						s.Model,
						truncate(s.Summary, 80),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "TITLE", "MODEL", "SUMMARY"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit machine-readable JSON")
	return cmd
}
