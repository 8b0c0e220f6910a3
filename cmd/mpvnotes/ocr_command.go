package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mpvnotes/internal/capture"
	"mpvnotes/internal/ocr"
)

func newOCRCommand(ctx *commandContext) *cobra.Command {
	var captureID string

	cmd := &cobra.Command{
		Use:   "ocr [image]",
		Short: "Run the OCR engine over an image or a stored capture",
		Long: `OCR prints the text the configured engine recognizes in an image file.
With --capture the engine runs over that capture's screenshot and the
recognized text is stored on the capture row as well as printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runner := ocr.NewRunner(cfg)

			if strings.TrimSpace(captureID) != "" {
				store, err := capture.Open(cfg)
				if err != nil {
					return err
				}
				defer store.Close()

				target, err := findCapture(cmd, store, captureID)
				if err != nil {
					return err
				}
				text, err := runner.Recognize(cmd.Context(), target.ScreenshotPath)
				if err != nil {
					return err
				}
				if err := store.SetOCRText(cmd.Context(), target.ID, text); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("either an image argument or --capture is required")
			}
			imagePath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			text, err := runner.Recognize(cmd.Context(), imagePath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&captureID, "capture", "", "Capture id (or unique prefix) to recognize and update")
	return cmd
}

// findCapture resolves a full id or a unique prefix against the store.
func findCapture(cmd *cobra.Command, store *capture.Store, id string) (*capture.Capture, error) {
	all, err := store.List(cmd.Context(), "")
	if err != nil {
		return nil, err
	}
	var match *capture.Capture
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
		if strings.HasPrefix(all[i].ID, id) {
			if match != nil {
				return nil, fmt.Errorf("capture id prefix %q is ambiguous", id)
			}
			match = &all[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", capture.ErrNotFound, id)
	}
	return match, nil
}
