package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"folio/internal/epub"
	"folio/internal/textutil"
)

func newCoverCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	var width int

	cmd := &cobra.Command{
		Use:   "cover <book.epub>",
		Short: "Export the cover image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := epub.ExtractCoverData(args[0], epub.WithLogger(ctx.log()))
			if err != nil {
				return err
			}
			if data == nil {
				return fmt.Errorf("no cover image found in %s", args[0])
			}

			target := strings.TrimSpace(outPath)
			if target == "" {
				base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				target = textutil.SanitizeFileName(base) + "-cover.jpg"
			}

			img, err := imaging.Decode(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("decode cover image: %w", err)
			}
			if width > 0 && img.Bounds().Dx() > width {
				img = imaging.Resize(img, width, 0, imaging.Lanczos)
			}
			if err := imaging.Save(img, target); err != nil {
				return fmt.Errorf("save cover image: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote cover to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination path (format inferred from extension)")
	cmd.Flags().IntVar(&width, "width", 0, "Resize to this width, preserving aspect ratio")
	return cmd
}
