package board

import "fmt"

var WinCombos = [][3]Position{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// TicTacToe is the 3x3 placement game: any empty cell is legal and three in a
// line wins.
type TicTacToe struct{}

func NewTicTacToe() TicTacToe {
	return TicTacToe{}
}

func (TicTacToe) Name() string { return TicTacToeName }

func (TicTacToe) Rows() int { return 3 }

func (TicTacToe) Cols() int { return 3 }

func (TicTacToe) NewBoard() Board {
	return NewSquare(3)
}

func (that TicTacToe) LegalPlays(b Board, _ Player) []Position {
	if checkDimensions(that, b) != nil {
		return nil
	}
	return b.ValidPlays()
}

func (that TicTacToe) Play(b Board, player Player, pos Position) (Board, error) {
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

	return b.with(pos, player.Mark()), nil
}

func (that TicTacToe) HasWon(b Board, player Player) bool {
	if checkDimensions(that, b) != nil || player == NoPlayer {
		return false
	}

	mark := player.Mark()
	for _, combo := range WinCombos {
		if b.cells[combo[0]] == mark && b.cells[combo[1]] == mark && b.cells[combo[2]] == mark {
			return true
		}
	}

	return false
}
