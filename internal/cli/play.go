package cli

import (
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe/internal"
)

func newPlayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game against a friend on this terminal",
		Args:  cobra.NoArgs,
		RunE:  runPlay(opts),
	}
}

func runPlay(opts *options) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if opts.noColor {
			opts.conf.NoColor = true
		}

		return application.RunPlay(cmd.Context(), opts.logger, opts.conf, cmd.InOrStdin(), cmd.OutOrStdout())
	}
}
