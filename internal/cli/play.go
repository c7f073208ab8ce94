package cli

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rahulraj/boardcore/internal/board"
	"github.com/rahulraj/boardcore/internal/config"
	"github.com/rahulraj/boardcore/internal/evaluator"
	"github.com/rahulraj/boardcore/internal/match"
)

func Play(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match between two players",
		Long: heredoc.Doc(`
			Play a match and print the board after every turn.

			A player is one of search, greedy, random or human. Human moves are
			read from standard input as a cell index or as "row col".
		`),
		Example: heredoc.Doc(`
			$ boardcore play --game othello --dark search --light greedy --depth 3
			$ boardcore play --dark human
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			game, _ := cmd.Flags().GetString("game")
			dark, _ := cmd.Flags().GetString("dark")
			light, _ := cmd.Flags().GetString("light")
			depth, _ := cmd.Flags().GetInt("depth")
			seed, _ := cmd.Flags().GetInt64("seed")

			if game == "" {
				game = a.conf.Game
			}
			if dark == "" {
				dark = a.conf.Players.Dark
			}
			if light == "" {
				light = a.conf.Players.Light
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.conf.Players.Seed
			}

			rules, err := board.ParseRules(game)
			if err != nil {
				return err
			}

			cache, release, err := a.cache(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			opts := a.evaluatorOptions(rules, cache, depth)
			out := cmd.OutOrStdout()

			var players [2]evaluator.Strategy
			for i, name := range []string{dark, light} {
				if name == config.HumanPlayer {
					players[i] = newHuman(rules, cmd.InOrStdin(), out)
					continue
				}

				players[i], err = evaluator.NewStrategy(name, rules, seed+int64(i), opts...)
				if err != nil {
					return err
				}
			}

			m := match.New(rules, players, a.logger)
			m.Observe(func(turn match.Turn) {
				printTurn(out, turn)
			})

			fmt.Fprint(out, m.Board().Render())

			result, err := m.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("match failed: %w", err)
			}

			fmt.Fprintf(out, "result: %s (%s) after %d plies\n", result.String(), describeWinner(result.Winner), result.Plies)

			return nil
		},
	}

	cmd.Flags().String("game", "", "Game to play: tictactoe or othello (default from config)")
	cmd.Flags().String("dark", "", "Player moving first (default from config)")
	cmd.Flags().String("light", "", "Player moving second (default from config)")
	cmd.Flags().Int("depth", -1, "Search depth, 0 for the game default (default from config)")
	cmd.Flags().Int64("seed", 0, "Seed for random players (default from config)")

	return cmd
}

func printTurn(out io.Writer, turn match.Turn) {
	if turn.Passed {
		fmt.Fprintf(out, "\n%s passes\n", turn.Player)
		return
	}

	row, col := turn.Board.Coordinates(turn.Position)
	fmt.Fprintf(out, "\n%d. %s plays %d (row %d, col %d)\n", turn.Ply, turn.Player, turn.Position, row, col)
	fmt.Fprint(out, turn.Board.Render())
}

func describeWinner(winner string) string {
	if winner == match.PlayerTie {
		return "draw"
	}
	return winner + " wins"
}
