package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mpvnotes/internal/deps"
	"mpvnotes/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration, dependency, and environment status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			var lines []string

			lines = append(lines, renderSectionHeader("Configuration", colorize)...)
			lines = append(lines,
				renderStatusLine("Player backend", statusInfo, cfg.Player.Backend, colorize),
				renderStatusLine("Player socket", statusInfo, cfg.Player.Socket, colorize),
				renderStatusLine("Notes file", statusInfo, notesTarget(cfg.Paths.NotesFile), colorize),
				renderStatusLine("Link scheme", statusInfo, cfg.Notes.LinkScheme, colorize),
				"",
			)

			lines = append(lines, renderSectionHeader("Dependencies", colorize)...)
			for _, status := range deps.CheckBinaries(deps.Requirements(cfg)) {
				kind := statusOK
				message := status.Command
				if !status.Available {
					kind = statusError
					if status.Optional {
						kind = statusWarn
					}
					message = status.Detail
				}
				lines = append(lines, renderStatusLine(status.Name, kind, message, colorize))
			}
			lines = append(lines, "")

			lines = append(lines, renderSectionHeader("Environment", colorize)...)
			for _, result := range preflight.Run(cfg) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
				}
				lines = append(lines, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			fmt.Fprintln(out, strings.Join(lines, "\n"))
			return nil
		},
	}
}

func notesTarget(path string) string {
	if strings.TrimSpace(path) == "" {
		return "stdout"
	}
	return path
}
