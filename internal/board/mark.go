package board

import (
	"errors"
	"fmt"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Mark is the occupant of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	MarkA
	MarkB
)

func (that Mark) String() string {
	switch that {
	case MarkA:
		return "X"
	case MarkB:
		return "O"
	default:
		return "-"
	}
}

// Flip returns the opposing mark. Empty stays empty.
func (that Mark) Flip() Mark {
	switch that {
	case MarkA:
		return MarkB
	case MarkB:
		return MarkA
	default:
		return Empty
	}
}

func parseMark(r rune) (Mark, bool) {
	switch r {
	case '-', '.', '_':
		return Empty, true
	case 'X', 'x':
		return MarkA, true
	case 'O', 'o':
		return MarkB, true
	default:
		return Empty, false
	}
}

// Player is one of the two opposing sides. NoPlayer is only used to report
// the absence of a winner or of a player to move.
type Player uint8

const (
	NoPlayer Player = iota
	PlayerA
	PlayerB
)

// Other returns the opponent.
func (that Player) Other() Player {
	switch that {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return NoPlayer
	}
}

// Mark returns the cell mark this player places.
func (that Player) Mark() Mark {
	switch that {
	case PlayerA:
		return MarkA
	case PlayerB:
		return MarkB
	default:
		return Empty
	}
}

// Index maps PlayerA to 0 and PlayerB to 1, for per-player arrays.
func (that Player) Index() int {
	if that == PlayerB {
		return 1
	}
	return 0
}

func (that Player) String() string {
	switch that {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	default:
		return "-"
	}
}

// ParsePlayer accepts the player labels X and O in either case.
func ParsePlayer(label string) (Player, error) {
	switch label {
	case "X", "x":
		return PlayerA, nil
	case "O", "o":
		return PlayerB, nil
	default:
		return NoPlayer, fmt.Errorf("%w: %q", ErrUnknownPlayer, label)
	}
}
