package match

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rahulraj/boardcore/internal/apperror"
	"github.com/rahulraj/boardcore/internal/board"
	"github.com/rahulraj/boardcore/internal/evaluator"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

// Turn describes one completed turn for observers.
type Turn struct {
	Ply      int
	Player   board.Player
	Position board.Position
	Passed   bool
	Board    board.Board
}

type Observer func(turn Turn)

// Match drives one game between two players. A nil strategy marks a human
// player whose moves arrive through MakeTurn.
type Match struct {
	logger   *slog.Logger
	rules    board.Rules
	players  [2]evaluator.Strategy
	observer Observer

	board   board.Board
	turn    board.Player
	status  string
	winner  string
	plies   int
	history *history
}

func New(rules board.Rules, players [2]evaluator.Strategy, logger *slog.Logger) *Match {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	that := &Match{
		logger:  logger.With("component", "match", "rules", rules.Name()),
		rules:   rules,
		players: players,
		board:   rules.NewBoard(),
		turn:    board.PlayerA,
	}
	that.history = newHistory(that.snapshot())
	that.updateState()

	return that
}

// Observe registers a callback invoked after every move and pass.
func (that *Match) Observe(observer Observer) {
	that.observer = observer
}

func (that *Match) Board() board.Board { return that.board }

// Turn returns the player to move, or board.NoPlayer once the match is over.
func (that *Match) Turn() board.Player {
	if that.IsFinished() {
		return board.NoPlayer
	}
	return that.turn
}

func (that *Match) Status() string { return that.status }

// Winner is X, O or PlayerTie for a finished match and empty otherwise.
func (that *Match) Winner() string { return that.winner }

func (that *Match) Plies() int { return that.plies }

func (that *Match) IsFinished() bool {
	return that.status == StatusFinished
}

func (that *Match) MakeTurn(player board.Player, pos board.Position) error {
	log := that.logger.With("method", "MakeTurn")

	if err := that.confirmTurn(player); err != nil {
		return err
	}

	next, err := that.rules.Play(that.board, player, pos)
	if err != nil {
		return fmt.Errorf("failed to play %s at %d: %w", player, pos, err)
	}

	that.board = next
	that.turn = player.Other()
	that.plies++
	that.history.push(that.snapshot())
	that.updateState()

	log.Debug("turn made", "player", player.String(), "position", int(pos), "status", that.status)
	that.notify(Turn{Ply: that.plies, Player: player, Position: pos, Board: next})

	return nil
}

// Pass hands the move to the opponent. Only a player without a legal play may
// pass.
func (that *Match) Pass(player board.Player) error {
	log := that.logger.With("method", "Pass")

	if err := that.confirmTurn(player); err != nil {
		return err
	}

	if board.CanMove(that.rules, that.board, player) {
		return apperror.ErrCannotPass
	}

	that.turn = player.Other()
	that.history.push(that.snapshot())
	that.updateState()

	log.Debug("player passed", "player", player.String())
	that.notify(Turn{Ply: that.plies, Player: player, Passed: true, Board: that.board})

	return nil
}

// Step lets the strategy of the player to move take its turn. A search in
// progress stops once ctx is done.
func (that *Match) Step(ctx context.Context) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	player := that.turn
	strategy := that.players[player.Index()]
	if strategy == nil {
		return fmt.Errorf("%w: %s", apperror.ErrAwaitingMove, player)
	}

	pos, err := strategy.Choose(ctx, that.board, player)
	if errors.Is(err, evaluator.ErrNoLegalMove) {
		return that.Pass(player)
	}
	if err != nil {
		return fmt.Errorf("strategy for %s failed: %w", player, err)
	}

	return that.MakeTurn(player, pos)
}

// Run steps until the match is over or ctx is done.
func (that *Match) Run(ctx context.Context) (Result, error) {
	log := that.logger.With("method", "Run")

	for !that.IsFinished() {
		if err := ctx.Err(); err != nil {
			return that.Result(), fmt.Errorf("match interrupted after %d plies: %w", that.plies, err)
		}

		if err := that.Step(ctx); err != nil {
			if ctx.Err() != nil {
				return that.Result(), fmt.Errorf("match interrupted after %d plies: %w", that.plies, err)
			}
			return that.Result(), err
		}
	}

	result := that.Result()
	log.Info("match finished", "winner", result.Winner, "plies", result.Plies, "score", result.String())

	return result, nil
}

func (that *Match) CanUndo() bool { return that.history.canUndo() }

func (that *Match) CanRedo() bool { return that.history.canRedo() }

// Undo restores the state before the last move or pass.
func (that *Match) Undo() error {
	state, ok := that.history.undo()
	if !ok {
		return apperror.ErrNothingToUndo
	}
	that.restore(state)
	return nil
}

func (that *Match) Redo() error {
	state, ok := that.history.redo()
	if !ok {
		return apperror.ErrNothingToRedo
	}
	that.restore(state)
	return nil
}

func (that *Match) Result() Result {
	return Result{
		Winner: that.winner,
		Board:  that.board,
		Plies:  that.plies,
	}
}

func (that *Match) confirmTurn(player board.Player) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}
	if player != that.turn {
		return apperror.ErrNotYourTurn
	}
	return nil
}

func (that *Match) snapshot() snapshot {
	return snapshot{board: that.board, turn: that.turn, plies: that.plies}
}

func (that *Match) restore(state snapshot) {
	that.board = state.board
	that.turn = state.turn
	that.plies = state.plies
	that.updateState()
}

func (that *Match) updateState() {
	if !board.IsTerminal(that.rules, that.board) {
		that.status = StatusOngoing
		that.winner = ""
		return
	}

	that.status = StatusFinished
	switch winner := board.Winner(that.rules, that.board); winner {
	// one player wins
	case board.PlayerA, board.PlayerB:
		that.winner = winner.String()
	// tie
	default:
		that.winner = PlayerTie
	}
}

func (that *Match) notify(turn Turn) {
	if that.observer != nil {
		that.observer(turn)
	}
}
