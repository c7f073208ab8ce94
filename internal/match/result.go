package match

import "github.com/rahulraj/boardcore/internal/board"

// Result is the outcome of a match.
type Result struct {
	Winner string      `json:"winner"`
	Board  board.Board `json:"-"`
	Plies  int         `json:"plies"`
}

// String gives the score in 1-0, 0-1 or 1/2-1/2 form, from X's side first.
// An unfinished match is reported as *.
func (that Result) String() string {
	switch that.Winner {
	case board.PlayerA.String():
		return "1-0"
	case board.PlayerB.String():
		return "0-1"
	case PlayerTie:
		return "1/2-1/2"
	default:
		return "*"
	}
}
