package board

import "fmt"

// Othello colours. Dark moves first.
const (
	Dark  = PlayerA
	Light = PlayerB
)

// Direction is a unit step on the grid.
type Direction struct {
	DRow, DCol int
}

// Directions lists the eight compass directions.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Othello is the flip-capture game: a play must bracket at least one line of
// opponent marks, and every bracketed mark flips to the mover.
type Othello struct {
	size int
}

// NewOthello returns the standard 8x8 game.
func NewOthello() Othello {
	return NewOthelloSize(8)
}

// NewOthelloSize returns the game on an even size x size board, size >= 4.
func NewOthelloSize(size int) Othello {
	return Othello{size: size}
}

func (Othello) Name() string { return OthelloName }

func (that Othello) Rows() int { return that.size }

func (that Othello) Cols() int { return that.size }

// NewBoard places the four centre marks: light on the main diagonal, dark on
// the other.
func (that Othello) NewBoard() Board {
	mid := that.size / 2
	return NewBuilder(that.size, that.size).
		At(mid-1, mid-1).Place(Light.Mark()).
		At(mid-1, mid).Place(Dark.Mark()).
		At(mid, mid-1).Place(Dark.Mark()).
		At(mid, mid).Place(Light.Mark()).
		Build()
}

func (that Othello) LegalPlays(b Board, player Player) []Position {
	if checkDimensions(that, b) != nil || player == NoPlayer {
		return nil
	}

	plays := make([]Position, 0, len(b.cells))
	for i, mark := range b.cells {
		if mark != Empty {
			continue
		}
		if that.capturable(b, player, Position(i)) {
			plays = append(plays, Position(i))
		}
	}

	return plays
}

func (that Othello) Play(b Board, player Player, pos Position) (Board, error) {
	if err := checkDimensions(that, b); err != nil {
		return b, err
	}

	if player != PlayerA && player != PlayerB {
		return b, fmt.Errorf("%w: %d", ErrUnknownPlayer, player)
	}

	mark, err := b.MarkAt(pos)
	if err != nil {
		return b, err
	}

	if mark != Empty {
		return b, fmt.Errorf("%w: cell %d is already occupied", ErrIllegalMove, pos)
	}

	flipped := Captures(b, player, pos)
	if len(flipped) == 0 {
		return b, fmt.Errorf("%w: cell %d captures nothing for %s", ErrIllegalMove, pos, player)
	}

	return b.with(pos, player.Mark(), flipped...), nil
}

// HasWon holds once neither side can move and player has strictly more marks.
func (that Othello) HasWon(b Board, player Player) bool {
	if checkDimensions(that, b) != nil || player == NoPlayer {
		return false
	}

	if b.Count(player.Mark()) <= b.Count(player.Other().Mark()) {
		return false
	}

	return that.exhausted(b)
}

// Estimate is the mark difference normalised to [-1, 1].
func (that Othello) Estimate(b Board, player Player) float64 {
	own := b.Count(player.Mark())
	opp := b.Count(player.Other().Mark())
	if own+opp == 0 {
		return 0
	}
	return float64(own-opp) / float64(own+opp)
}

func (that Othello) exhausted(b Board) bool {
	for i, mark := range b.cells {
		if mark != Empty {
			continue
		}
		if that.capturable(b, Dark, Position(i)) || that.capturable(b, Light, Position(i)) {
			return false
		}
	}
	return true
}

func (that Othello) capturable(b Board, player Player, pos Position) bool {
	for _, dir := range Directions {
		if len(CapturesInDirection(b, player, pos, dir)) > 0 {
			return true
		}
	}
	return false
}

// Captures returns every opponent position player would flip by playing the
// empty cell pos, direction by direction in Directions order.
func Captures(b Board, player Player, pos Position) []Position {
	var flipped []Position
	for _, dir := range Directions {
		flipped = append(flipped, CapturesInDirection(b, player, pos, dir)...)
	}
	return flipped
}

// CapturesInDirection walks from pos along dir over opponent marks. The walk
// captures only if it stops on one of player's own marks; running off the
// board or into an empty cell captures nothing.
func CapturesInDirection(b Board, player Player, pos Position, dir Direction) []Position {
	if !b.Contains(pos) || b.cells[pos] != Empty || player == NoPlayer {
		return nil
	}

	own := player.Mark()
	opp := player.Other().Mark()

	row, col := b.Coordinates(pos)
	var line []Position
	for {
		row += dir.DRow
		col += dir.DCol
		if !b.inBounds(row, col) {
			return nil
		}

		next := Position(row*b.cols + col)
		switch b.cells[next] {
		case opp:
			line = append(line, next)
		case own:
			return line
		default:
			return nil
		}
	}
}
