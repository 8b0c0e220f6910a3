package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"mpvnotes/internal/notes"
	"mpvnotes/internal/player"
	"mpvnotes/internal/subtitle"
)

func newOpenCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "open <media>",
		Short: "Load a media file in the player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			return ctx.withPlayer(func(ctrl player.Controller) error {
				return ctrl.Load(cmd.Context(), path)
			})
		},
	}
}

func newNoteCommand(ctx *commandContext) *cobra.Command {
	var media string

	cmd := &cobra.Command{
		Use:   "note [media]",
		Short: "Append a note entry linking to the current playback position",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				media = args[0]
			}
			return ctx.withPlayer(func(ctrl player.Controller) error {
				position, err := ctrl.Position(cmd.Context())
				if err != nil {
					return err
				}
				if media == "" {
					media, err = ctrl.MediaPath(cmd.Context())
					if err != nil {
						return fmt.Errorf("determine current media: %w", err)
					}
				}
				if cfg.Notes.PauseOnCreate {
					if err := ctrl.Pause(cmd.Context()); err != nil {
						return err
					}
				}
				seconds := int(position) - cfg.Notes.LagSeconds
				if seconds < 0 {
					seconds = 0
				}
				entry := notes.Entry(media, seconds, cfg.Notes)
				if err := notes.Append(cfg.Paths.NotesFile, entry); err != nil {
					return err
				}
				ctx.ensureLogger().Info("note created",
					"position", subtitle.FormatSeconds(seconds),
					"media", filepath.Base(media),
				)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&media, "media", "m", "", "Media reference for the link (default: ask the player)")
	return cmd
}

func newJumpCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "jump <path::timestamp>",
		Short: "Follow a timestamp link: load the media and seek",
		Long: `Jump parses a link target of the form path::HH:MM:SS (or path::seconds),
loads the media, and seeks to the offset. A missing or zero suffix loads
the media without seeking.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, seconds, err := subtitle.SplitLink(args[0])
			if err != nil {
				return err
			}
			return ctx.withPlayer(func(ctrl player.Controller) error {
				if err := ctrl.Load(cmd.Context(), path); err != nil {
					return err
				}
				if seconds > 0 {
					return ctrl.Seek(cmd.Context(), float64(seconds))
				}
				return nil
			})
		},
	}
}

func newSeekCommand(ctx *commandContext) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "seek [±seconds]",
		Short: "Seek relative to the current position, or to an absolute offset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if to != "" {
				seconds, err := parseOffset(to)
				if err != nil {
					return err
				}
				return ctx.withPlayer(func(ctrl player.Controller) error {
					return ctrl.Seek(cmd.Context(), float64(seconds))
				})
			}
			if len(args) != 1 {
				return fmt.Errorf("either a relative offset argument or --to is required")
			}
			delta, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("relative offset must be a number, got %q", args[0])
			}
			return ctx.withPlayer(func(ctrl player.Controller) error {
				return ctrl.SeekBy(cmd.Context(), delta)
			})
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Absolute offset as HH:MM:SS or seconds")
	return cmd
}

func newPauseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Toggle playback pause",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPlayer(func(ctrl player.Controller) error {
				return ctrl.TogglePause(cmd.Context())
			})
		},
	}
}

// parseOffset accepts HH:MM:SS or a bare second count.
func parseOffset(value string) (int, error) {
	if seconds, err := subtitle.ParseClock(value); err == nil {
		return seconds, nil
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0, fmt.Errorf("offset must be HH:MM:SS or seconds, got %q", value)
	}
	return seconds, nil
}
