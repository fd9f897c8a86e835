package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/epub"
	"folio/internal/services"
	"folio/internal/store"
	"folio/internal/summarize"
)

func newSummarizeCommand(ctx *commandContext) *cobra.Command {
	var chapters string
	var force bool
	var bookID string

	cmd := &cobra.Command{
		Use:   "summarize <book.epub>",
		Short: "Summarize chapters with the configured language model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := epub.Open(args[0], epub.WithLogger(ctx.log()))
			if err != nil {
				return err
			}
			defer doc.Close()

			id := strings.TrimSpace(bookID)
			if id == "" {
				id, err = fileBookID(args[0])
				if err != nil {
					return err
				}
			}

			indices, err := parseChapterRanges(chapters, doc.ChapterCount())
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				provider, err := ctx.factory.Acquire(cfg)
				if err != nil {
					return err
				}
				svc, err := summarize.NewService(doc, st, provider, cfg.Summarizer, summarize.WithLogger(ctx.log()))
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Summarizing %d chapter(s) of %q with %s\n\n", len(indices), doc.Metadata().Title, provider.Model())

				runCtx := services.WithRequestID(cmd.Context(), uuid.NewString())
				summaries, err := svc.SummarizeChapters(runCtx, id, indices, summarize.Options{ForceRefresh: force})
				if err != nil {
					return err
				}
				for _, summary := range summaries {
					title := summary.ChapterTitle
					if title == "" {
						title = fmt.Sprintf("Chapter %d", summary.ChapterIndex+1)
					}
					fmt.Fprintf(out, "## %s\n\n%s\n\n", title, summary.Summary)
				}
				if failed := len(indices) - len(summaries); failed > 0 {
					fmt.Fprintf(out, "%d chapter(s) failed, see the log for details.\n", failed)
				}
				fmt.Fprintf(out, "Book ID: %s\n", id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&chapters, "chapters", "", "Chapter selection, e.g. 1,3-5 (default: all)")
	cmd.Flags().BoolVar(&force, "force", false, "Regenerate even when cached or persisted summaries exist")
	cmd.Flags().StringVar(&bookID, "book-id", "", "Book identifier (default: SHA-256 of the file)")
	return cmd
}
