package board

// Builder assembles a board cell by cell. It owns its own cell slice, so the
// boards it builds stay independent of later builder calls.
//
//	b := board.NewBuilder(8, 8).At(3, 3).Place(board.MarkB).At(3, 4).Place(board.MarkA).Build()
type Builder struct {
	rows  int
	cols  int
	cells []Mark

	row int
	col int
}

func NewBuilder(rows, cols int) *Builder {
	return &Builder{
		rows:  rows,
		cols:  cols,
		cells: make([]Mark, rows*cols),
	}
}

// TemplatedBy starts a builder from an existing board.
func TemplatedBy(b Board) *Builder {
	return &Builder{
		rows:  b.rows,
		cols:  b.cols,
		cells: b.Cells(),
	}
}

// At moves the cursor. Out of range coordinates make the following Place and
// Flip calls no-ops.
func (that *Builder) At(row, col int) *Builder {
	that.row = row
	that.col = col
	return that
}

func (that *Builder) Place(mark Mark) *Builder {
	if idx, ok := that.cursor(); ok {
		that.cells[idx] = mark
	}
	return that
}

// Flip swaps the mark under the cursor for the opposing one.
func (that *Builder) Flip() *Builder {
	if idx, ok := that.cursor(); ok {
		that.cells[idx] = that.cells[idx].Flip()
	}
	return that
}

func (that *Builder) Build() Board {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)
	return Board{rows: that.rows, cols: that.cols, cells: cells}
}

func (that *Builder) cursor() (int, bool) {
	if that.row < 0 || that.row >= that.rows || that.col < 0 || that.col >= that.cols {
		return 0, false
	}
	return that.row*that.cols + that.col, true
}
