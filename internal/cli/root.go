package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-board/internal"
	"github.com/rocketscienceinc/tictactoe-board/internal/board"
	"github.com/rocketscienceinc/tictactoe-board/internal/config"
)

// NewRootCommand builds the command tree. With no subcommand it behaves like "move".
func NewRootCommand(logger *slog.Logger, conf *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tictactoe",
		Short:         "A 3x3 tic-tac-toe board",
		Long:          `Reads a move for a human player and prints the board and the numbering legend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	moveCmd := newMoveCommand(logger, conf)
	rootCmd.AddCommand(moveCmd, newLegendCommand(), newDemoCommand(logger))

	rootCmd.Flags().AddFlagSet(moveCmd.Flags())
	rootCmd.RunE = moveCmd.RunE

	return rootCmd
}

func newMoveCommand(logger *slog.Logger, conf *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Prompt a player for one move",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")

			moveConf := *conf
			if name != "" {
				moveConf.PlayerName = name
			}

			return application.RunApp(logger, &moveConf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("name", "n", "", "Player name (overrides config)")

	return cmd
}

func newLegendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "legend",
		Short: "Print the numbers used to pick a cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return board.FprintLegend(cmd.OutOrStdout())
		},
	}
}

func newDemoCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted sequence of claims against a fresh board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return application.RunDemo(logger, cmd.OutOrStdout())
		},
	}
}
