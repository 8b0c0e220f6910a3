package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mpvnotes/internal/capture"
	"mpvnotes/internal/notes"
	"mpvnotes/internal/ocr"
	"mpvnotes/internal/player"
	"mpvnotes/internal/subtitle"
	"mpvnotes/internal/textutil"
)

func newShotCommand(ctx *commandContext) *cobra.Command {
	var runOCR bool
	var appendNote bool

	cmd := &cobra.Command{
		Use:   "shot",
		Short: "Capture the current video frame",
		Long: `Shot writes the current frame to the screenshot directory and records a
capture row with the media path and playback position. With --ocr the
configured engine runs over the frame and the recognized text is stored
alongside it. With --note an entry linking the frame is appended to the
notes file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			return ctx.withPlayer(func(ctrl player.Controller) error {
				position, err := ctrl.Position(cmd.Context())
				if err != nil {
					return err
				}
				media, err := ctrl.MediaPath(cmd.Context())
				if err != nil {
					return fmt.Errorf("determine current media: %w", err)
				}
				seconds := int(position)

				outPath := filepath.Join(cfg.Paths.ShotDir, shotFileName(media, seconds))
				if err := ctrl.Screenshot(cmd.Context(), outPath); err != nil {
					return err
				}

				store, err := capture.Open(cfg)
				if err != nil {
					return err
				}
				defer store.Close()

				saved, err := store.Add(cmd.Context(), capture.Capture{
					Media:           media,
					PositionSeconds: seconds,
					ScreenshotPath:  outPath,
				})
				if err != nil {
					return err
				}

				if runOCR {
					text, ocrErr := ocr.NewRunner(cfg).Recognize(cmd.Context(), outPath)
					switch {
					case errors.Is(ocrErr, ocr.ErrEngineMissing):
						ctx.ensureLogger().Warn("ocr skipped", "error", ocrErr)
					case ocrErr != nil:
						return ocrErr
					default:
						if err := store.SetOCRText(cmd.Context(), saved.ID, text); err != nil {
							return err
						}
					}
				}

				if appendNote {
					entry := notes.Entry(media, seconds, cfg.Notes) + notes.ImageLink(outPath) + "\n\n"
					if err := notes.Append(cfg.Paths.NotesFile, entry); err != nil {
						return err
					}
				}

				ctx.ensureLogger().Info("frame captured",
					"capture", saved.ID,
					"position", subtitle.FormatSeconds(seconds),
					"file", filepath.Base(outPath),
				)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", saved.ID, outPath)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&runOCR, "ocr", false, "Run the OCR engine over the captured frame")
	cmd.Flags().BoolVar(&appendNote, "note", false, "Append a note entry linking the frame")
	return cmd
}

// shotFileName builds a screenshot name from the media stem and the playback
// position, e.g. talk-000123.png for 00:01:23.
func shotFileName(media string, seconds int) string {
	stem := filepath.Base(media)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))
	stem = textutil.SanitizeFileName(stem)
	if stem == "" {
		stem = "frame"
	}
	stamp := strings.ReplaceAll(subtitle.FormatSeconds(seconds), ":", "")
	return stem + "-" + stamp + ".png"
}
