package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrCannotPass    = errors.New("player has a legal move and cannot pass")
	ErrAwaitingMove  = errors.New("waiting for a move from a human player")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)
