package cli

import (
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe/internal"
)

func newStatsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the scoreboard of recorded games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return application.RunStats(cmd.Context(), opts.logger, opts.conf, cmd.OutOrStdout(), opts.recent)
		},
	}

	cmd.Flags().IntVarP(&opts.recent, "recent", "n", -1, "Number of recent games to list (default from config)")

	return cmd
}
