package match

import "github.com/rahulraj/boardcore/internal/board"

type snapshot struct {
	board board.Board
	turn  board.Player
	plies int
}

// history keeps every state of a match. The cursor points at the current one;
// states after it can be redone until a new state is pushed.
type history struct {
	states []snapshot
	cursor int
}

func newHistory(initial snapshot) *history {
	return &history{states: []snapshot{initial}}
}

func (that *history) push(state snapshot) {
	that.states = append(that.states[:that.cursor+1], state)
	that.cursor++
}

func (that *history) canUndo() bool {
	return that.cursor > 0
}

func (that *history) canRedo() bool {
	return that.cursor < len(that.states)-1
}

func (that *history) undo() (snapshot, bool) {
	if !that.canUndo() {
		return snapshot{}, false
	}
	that.cursor--
	return that.states[that.cursor], true
}

func (that *history) redo() (snapshot, bool) {
	if !that.canRedo() {
		return snapshot{}, false
	}
	that.cursor++
	return that.states[that.cursor], true
}
