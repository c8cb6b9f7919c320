package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe/internal/config"
)

const defaultConfigPath = "./config.yml"

type options struct {
	configPath string
	noColor    bool
	recent     int

	conf   *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the tictactoe command tree. Running it without a subcommand plays a game.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Two players, one terminal, a 3x3 board",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			opts.conf = conf
			opts.logger = newLogger(cmd.ErrOrStderr(), conf.LogLevel)
			return nil
		},
		Args:         cobra.NoArgs,
		RunE:         runPlay(opts),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored marks")

	rootCmd.AddCommand(newPlayCmd(opts))
	rootCmd.AddCommand(newStatsCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, logLevel string) *slog.Logger {
	var level slog.Level

	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fmt.Fprintf(w, "unknown log level %q, using info\n", logLevel)
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
