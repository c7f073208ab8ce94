package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrOutOfRange   = errors.New("position is out of range")
	ErrIllegalMove  = errors.New("illegal move")
	ErrInvalidBoard = errors.New("invalid board")
)

// Position is a row-major cell index.
type Position int

// Board is an immutable snapshot of a rows x cols grid. The zero value is an
// empty 0x0 board. Every method that changes a cell returns a new Board.
type Board struct {
	rows  int
	cols  int
	cells []Mark
}

// New returns a board with every cell empty. Negative sizes count as zero.
func New(rows, cols int) Board {
	rows, cols = max(rows, 0), max(cols, 0)

	return Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Mark, rows*cols),
	}
}

// NewSquare returns an empty size x size board.
func NewSquare(size int) Board {
	return New(size, size)
}

// FromCells rebuilds a board from its row-major mark sequence.
func FromCells(rows, cols int, marks []Mark) (Board, error) {
	if rows < 0 || cols < 0 || len(marks) != rows*cols {
		return Board{}, fmt.Errorf("%w: %d marks for a %dx%d board", ErrInvalidBoard, len(marks), rows, cols)
	}

	cells := make([]Mark, len(marks))
	for i, mark := range marks {
		if mark > MarkB {
			return Board{}, fmt.Errorf("%w: unknown mark %d at %d", ErrInvalidBoard, mark, i)
		}
		cells[i] = mark
	}

	return Board{rows: rows, cols: cols, cells: cells}, nil
}

// Parse reads the text form produced by String. Whitespace is ignored, so
// rendered grids can be pasted back in.
func Parse(rows, cols int, text string) (Board, error) {
	marks := make([]Mark, 0, rows*cols)
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}

		mark, ok := parseMark(r)
		if !ok {
			return Board{}, fmt.Errorf("%w: unexpected %q", ErrInvalidBoard, r)
		}
		marks = append(marks, mark)
	}

	return FromCells(rows, cols, marks)
}

func (that Board) Rows() int { return that.rows }

func (that Board) Cols() int { return that.cols }

// Size is the number of cells.
func (that Board) Size() int { return len(that.cells) }

// Contains reports whether pos is on the grid.
func (that Board) Contains(pos Position) bool {
	return pos >= 0 && int(pos) < len(that.cells)
}

// Position converts coordinates to an index.
func (that Board) Position(row, col int) (Position, error) {
	if !that.inBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	return Position(row*that.cols + col), nil
}

// Coordinates converts an index back to (row, col).
func (that Board) Coordinates(pos Position) (int, int) {
	if that.cols == 0 {
		return 0, 0
	}
	return int(pos) / that.cols, int(pos) % that.cols
}

func (that Board) MarkAt(pos Position) (Mark, error) {
	if !that.Contains(pos) {
		return Empty, fmt.Errorf("%w: %d", ErrOutOfRange, pos)
	}
	return that.cells[pos], nil
}

func (that Board) At(row, col int) (Mark, error) {
	pos, err := that.Position(row, col)
	if err != nil {
		return Empty, err
	}
	return that.cells[pos], nil
}

// ValidPlays returns the empty positions in ascending order.
func (that Board) ValidPlays() []Position {
	plays := make([]Position, 0, len(that.cells))
	for i, mark := range that.cells {
		if mark == Empty {
			plays = append(plays, Position(i))
		}
	}
	return plays
}

// Count returns how many cells hold mark.
func (that Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that.cells {
		if cell == mark {
			count++
		}
	}
	return count
}

// Cells returns a copy of the row-major mark sequence.
func (that Board) Cells() []Mark {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)
	return cells
}

func (that Board) Equal(other Board) bool {
	if that.rows != other.rows || that.cols != other.cols || len(that.cells) != len(other.cells) {
		return false
	}
	for i := range that.cells {
		if that.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String is the compact row-major form, one character per cell.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(len(that.cells))
	for _, mark := range that.cells {
		sb.WriteString(mark.String())
	}
	return sb.String()
}

// Key identifies the board in caches: dimensions plus cell contents.
func (that Board) Key() string {
	return fmt.Sprintf("%dx%d:%s", that.rows, that.cols, that.String())
}

// Render lays the board out as a grid with one row per line.
func (that Board) Render() string {
	var sb strings.Builder
	for row := range that.rows {
		for col := range that.cols {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(that.cells[row*that.cols+col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (that Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.rows && col >= 0 && col < that.cols
}

// with returns a copy of that with pos set to mark and every flipped position
// turned into mark as well.
func (that Board) with(pos Position, mark Mark, flipped ...Position) Board {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)

	cells[pos] = mark
	for _, f := range flipped {
		cells[f] = mark
	}

	return Board{rows: that.rows, cols: that.cols, cells: cells}
}
