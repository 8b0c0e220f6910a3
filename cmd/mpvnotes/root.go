package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var socketFlag string

	ctx := newCommandContext(&configFlag, &socketFlag)

	rootCmd := &cobra.Command{
		Use:           "mpvnotes",
		Short:         "Timestamped Org notes for media playing in mpv",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&socketFlag, "socket", "", "Override the mpv IPC socket path")

	rootCmd.AddCommand(newImportCommand(ctx))
	rootCmd.AddCommand(newOpenCommand(ctx))
	rootCmd.AddCommand(newNoteCommand(ctx))
	rootCmd.AddCommand(newJumpCommand(ctx))
	rootCmd.AddCommand(newSeekCommand(ctx))
	rootCmd.AddCommand(newPauseCommand(ctx))
	rootCmd.AddCommand(newShotCommand(ctx))
	rootCmd.AddCommand(newOCRCommand(ctx))
	rootCmd.AddCommand(newCapturesCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
