package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mpvnotes/internal/capture"
	"mpvnotes/internal/subtitle"
)

func newCapturesCommand(ctx *commandContext) *cobra.Command {
	capturesCmd := &cobra.Command{
		Use:   "captures",
		Short: "Inspect stored frame captures",
	}

	capturesCmd.AddCommand(newCapturesListCommand(ctx))
	capturesCmd.AddCommand(newCapturesDeleteCommand(ctx))

	return capturesCmd
}

func newCapturesListCommand(ctx *commandContext) *cobra.Command {
	var media string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List captures, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := capture.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			captures, err := store.List(cmd.Context(), media)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(captures) == 0 {
				fmt.Fprintln(out, "No captures recorded")
				return nil
			}

			rows := make([][]string, 0, len(captures))
			for _, c := range captures {
				rows = append(rows, []string{
					shortID(c.ID),
					filepath.Base(c.Media),
					subtitle.FormatSeconds(c.PositionSeconds),
					ocrSnippet(c.OCRText),
					c.CreatedAt.Local().Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Media", "Position", "OCR", "Created"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&media, "media", "m", "", "Only captures for this media path")
	return cmd
}

func newCapturesDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a capture row (screenshot file is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := capture.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			target, err := findCapture(cmd, store, args[0])
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), target.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted capture %s\n", shortID(target.ID))
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func ocrSnippet(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > 40 {
		return text[:37] + "..."
	}
	return text
}
