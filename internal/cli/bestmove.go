package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rahulraj/boardcore/internal/board"
	"github.com/rahulraj/boardcore/internal/evaluator"
)

func BestMove(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bestmove",
		Short: "Print the best move for a position",
		Long: heredoc.Doc(`
			Score every legal move of a player and print the best one.

			The board is given row by row with X, O and - for empty cells.
			Whitespace is ignored.
		`),
		Example: heredoc.Doc(`
			$ boardcore bestmove --board "OO- -X- ---" --player X
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			game, _ := cmd.Flags().GetString("game")
			text, _ := cmd.Flags().GetString("board")
			label, _ := cmd.Flags().GetString("player")
			depth, _ := cmd.Flags().GetInt("depth")

			if game == "" {
				game = a.conf.Game
			}

			rules, err := board.ParseRules(game)
			if err != nil {
				return err
			}

			b, err := board.Parse(rules.Rows(), rules.Cols(), text)
			if err != nil {
				return err
			}

			player, err := board.ParsePlayer(label)
			if err != nil {
				return err
			}

			cache, release, err := a.cache(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			eval := evaluator.New(rules, a.evaluatorOptions(rules, cache, depth)...)

			moves, err := eval.AnalyzeContext(cmd.Context(), b, player)
			if err != nil {
				return fmt.Errorf("unable to analyse the board: %w", err)
			}
			best := evaluator.Best(moves).Position

			out := cmd.OutOrStdout()
			fmt.Fprint(out, b.Render())

			row, col := b.Coordinates(best)
			fmt.Fprintf(out, "best move for %s: %d (row %d, col %d)\n", player, best, row, col)
			for _, move := range moves {
				row, col = b.Coordinates(move.Position)
				fmt.Fprintf(out, "  %3d (%d, %d) %+.4f\n", move.Position, row, col, move.Score)
			}

			return nil
		},
	}

	cmd.Flags().String("game", "", "Game rules: tictactoe or othello (default from config)")
	cmd.Flags().String("board", "", "Board as X, O and - cells in row order")
	cmd.Flags().String("player", "X", "Player to move: X or O")
	cmd.Flags().Int("depth", -1, "Search depth, 0 for the game default (default from config)")

	_ = cmd.MarkFlagRequired("board")

	return cmd
}
