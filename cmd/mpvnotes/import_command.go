package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mpvnotes/internal/notes"
	"mpvnotes/internal/subtitle"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var media string
	var links bool
	var width int
	var appendToNotes bool

	cmd := &cobra.Command{
		Use:   "import <subtitle-file>",
		Short: "Normalize a subtitle file into timestamped note text",
		Long: `Import strips a subtitle file (srv1, srv2, srv3, ttml, or vtt) down to
paragraph-chunked text where each paragraph starts with an HH:MM:SS marker.
With --links every marker becomes an Org link jumping into the media.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			subPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			if _, err := os.Stat(subPath); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("subtitle file does not exist: %s", subPath)
				}
				return fmt.Errorf("inspect subtitle file: %w", err)
			}

			fillWidth := cfg.Notes.FillWidth
			if width > 0 {
				fillWidth = width
			}
			mediaRef := media
			if mediaRef == "" {
				mediaRef = guessMedia(subPath)
			}

			text, err := subtitle.NormalizeFile(subPath, subtitle.NormalizeOptions{
				FillWidth:     fillWidth,
				AnnotateLinks: links,
				Media:         mediaRef,
				LinkScheme:    cfg.Notes.LinkScheme,
			})
			if err != nil {
				return err
			}

			ctx.ensureLogger().Info("subtitle import",
				"file", filepath.Base(subPath),
				"links", links,
			)

			if appendToNotes && cfg.Paths.NotesFile != "" {
				entry := notes.Heading(mediaRef, cfg.Notes.HeadingLevel) + "\n" + text
				return notes.Append(cfg.Paths.NotesFile, entry)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVarP(&media, "media", "m", "", "Media file the links should point at (default: subtitle path with media guess)")
	cmd.Flags().BoolVarP(&links, "links", "l", false, "Rewrite timestamps into Org mpv links")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Paragraph fill width (default from config)")
	cmd.Flags().BoolVar(&appendToNotes, "append", false, "Append under a heading in the configured notes file")
	return cmd
}

// guessMedia derives a plausible media path from a subtitle path by dropping
// the subtitle extension and any trailing language tag (talk.en.vtt ->
// talk.mkv is not guessable, so the bare stem is used).
func guessMedia(subPath string) string {
	stem := subPath[:len(subPath)-len(filepath.Ext(subPath))]
	// A two- or three-letter language tag before the subtitle extension is
	// part of the subtitle name, not the media name.
	if ext := filepath.Ext(stem); len(ext) == 3 || len(ext) == 4 {
		tag := ext[1:]
		if isLanguageTag(tag) {
			stem = stem[:len(stem)-len(ext)]
		}
	}
	return stem
}

func isLanguageTag(tag string) bool {
	for _, r := range tag {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return len(tag) == 2 || len(tag) == 3
}
