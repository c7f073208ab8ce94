package board

import (
	"errors"
	"fmt"
)

var ErrUnknownRules = errors.New("unknown game")

const (
	TicTacToeName = "tictactoe"
	OthelloName   = "othello"
)

// Rules gives a Board its meaning: the starting layout, which plays are legal
// and what a win is.
type Rules interface {
	Name() string
	Rows() int
	Cols() int
	// NewBoard returns the standard starting layout.
	NewBoard() Board
	// LegalPlays returns the positions player may play, in ascending order.
	LegalPlays(b Board, player Player) []Position
	// Play returns the board after player plays pos. The input is never modified.
	Play(b Board, player Player, pos Position) (Board, error)
	HasWon(b Board, player Player) bool
}

// Estimator is implemented by rules that can guess the value of a position
// for player without searching. Estimates lie in [-1, 1].
type Estimator interface {
	Estimate(b Board, player Player) float64
}

// ParseRules looks rules up by name.
func ParseRules(name string) (Rules, error) {
	switch name {
	case TicTacToeName:
		return NewTicTacToe(), nil
	case OthelloName:
		return NewOthello(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRules, name)
	}
}

// CanMove reports whether player has at least one legal play.
func CanMove(r Rules, b Board, player Player) bool {
	return len(r.LegalPlays(b, player)) > 0
}

// CanWinInOneMove reports whether player has a play that wins immediately.
func CanWinInOneMove(r Rules, b Board, player Player) bool {
	for _, pos := range r.LegalPlays(b, player) {
		next, err := r.Play(b, player, pos)
		if err != nil {
			continue
		}
		if r.HasWon(next, player) {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the game is over: someone has won, or neither
// player can move.
func IsTerminal(r Rules, b Board) bool {
	if r.HasWon(b, PlayerA) || r.HasWon(b, PlayerB) {
		return true
	}
	return !CanMove(r, b, PlayerA) && !CanMove(r, b, PlayerB)
}

// Winner returns the winning player, or NoPlayer when there is none (yet).
func Winner(r Rules, b Board) Player {
	switch {
	case r.HasWon(b, PlayerA):
		return PlayerA
	case r.HasWon(b, PlayerB):
		return PlayerB
	default:
		return NoPlayer
	}
}

func checkDimensions(r Rules, b Board) error {
	if b.rows != r.Rows() || b.cols != r.Cols() {
		return fmt.Errorf("%w: %s needs a %dx%d board, got %dx%d",
			ErrInvalidBoard, r.Name(), r.Rows(), r.Cols(), b.rows, b.cols)
	}
	return nil
}
