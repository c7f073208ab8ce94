package match

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulraj/boardcore/internal/apperror"
	"github.com/rahulraj/boardcore/internal/board"
	"github.com/rahulraj/boardcore/internal/evaluator"
)

func startFrom(t *testing.T, rules board.Rules, text string, turn board.Player, players [2]evaluator.Strategy) *Match {
	t.Helper()

	b, err := board.Parse(rules.Rows(), rules.Cols(), text)
	require.NoError(t, err)

	m := New(rules, players, nil)
	m.board = b
	m.turn = turn
	m.history = newHistory(m.snapshot())
	m.updateState()

	return m
}

func playAll(t *testing.T, m *Match, moves ...board.Position) {
	t.Helper()

	for _, pos := range moves {
		require.NoError(t, m.MakeTurn(m.Turn(), pos))
	}
}

func TestMatch_New(t *testing.T) {
	// When: a new match is created
	m := New(board.NewTicTacToe(), [2]evaluator.Strategy{}, nil)

	// Then: it is ongoing with X to move on an empty board
	assert.Equal(t, StatusOngoing, m.Status())
	assert.Equal(t, board.PlayerA, m.Turn())
	assert.Equal(t, 0, m.Plies())
	assert.Empty(t, m.Winner())
	assert.Equal(t, 9, m.Board().Count(board.Empty))
	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())
}

func TestMatch_MakeTurn(t *testing.T) {
	rules := board.NewTicTacToe()

	t.Run("Switches the turn", func(t *testing.T) {
		m := New(rules, [2]evaluator.Strategy{}, nil)

		require.NoError(t, m.MakeTurn(board.PlayerA, 4))

		assert.Equal(t, board.PlayerB, m.Turn())
		assert.Equal(t, 1, m.Plies())
		mark, err := m.Board().MarkAt(4)
		require.NoError(t, err)
		assert.Equal(t, board.MarkA, mark)
	})

	t.Run("Returns ErrNotYourTurn when out of turn", func(t *testing.T) {
		m := New(rules, [2]evaluator.Strategy{}, nil)

		err := m.MakeTurn(board.PlayerB, 0)

		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, 0, m.Plies())
	})

	t.Run("Returns the rules error on an occupied cell", func(t *testing.T) {
		m := New(rules, [2]evaluator.Strategy{}, nil)
		playAll(t, m, 0)

		err := m.MakeTurn(board.PlayerB, 0)

		assert.ErrorIs(t, err, board.ErrIllegalMove)
		assert.Equal(t, board.PlayerB, m.Turn())
	})

	t.Run("Finishes on a win", func(t *testing.T) {
		// Given: X completes the top row
		m := New(rules, [2]evaluator.Strategy{}, nil)
		playAll(t, m, 0, 3, 1, 4, 2)

		// Then: the match is over and X wins
		assert.True(t, m.IsFinished())
		assert.Equal(t, "X", m.Winner())
		assert.Equal(t, board.NoPlayer, m.Turn())
		assert.Equal(t, "1-0", m.Result().String())

		// Then: no more moves are accepted
		assert.ErrorIs(t, m.MakeTurn(board.PlayerB, 8), apperror.ErrGameFinished)
		assert.ErrorIs(t, m.Step(context.Background()), apperror.ErrGameFinished)
	})

	t.Run("Finishes on a tie", func(t *testing.T) {
		m := New(rules, [2]evaluator.Strategy{}, nil)
		playAll(t, m, 0, 4, 8, 1, 7, 6, 2, 5, 3)

		assert.True(t, m.IsFinished())
		assert.Equal(t, PlayerTie, m.Winner())
		assert.Equal(t, "1/2-1/2", m.Result().String())
	})
}

func TestMatch_Pass(t *testing.T) {
	rules := board.NewOthelloSize(4)
	players := [2]evaluator.Strategy{evaluator.NewGreedy(rules), evaluator.NewRandom(rules, 7)}

	t.Run("Returns ErrCannotPass with a legal move", func(t *testing.T) {
		m := New(rules, players, nil)
		assert.ErrorIs(t, m.Pass(board.Dark), apperror.ErrCannotPass)
	})

	t.Run("Step passes for a player without moves", func(t *testing.T) {
		// Given: light to move without a legal play
		m := startFrom(t, rules, "XXX- XXO- ---- ----", board.Light, players)

		var turns []Turn
		m.Observe(func(turn Turn) { turns = append(turns, turn) })

		// When: light steps
		require.NoError(t, m.Step(context.Background()))

		// Then: light passed and dark is to move on the same board
		assert.Equal(t, board.Dark, m.Turn())
		assert.Equal(t, 0, m.Plies())
		require.Len(t, turns, 1)
		assert.True(t, turns[0].Passed)
		assert.Equal(t, board.Light, turns[0].Player)

		// When: dark steps
		require.NoError(t, m.Step(context.Background()))

		// Then: dark captures the last light mark and wins
		assert.True(t, m.IsFinished())
		assert.Equal(t, board.Dark.String(), m.Winner())
		assert.Equal(t, 0, m.Board().Count(board.Light.Mark()))
	})

	t.Run("Undo restores the turn before a pass", func(t *testing.T) {
		m := startFrom(t, rules, "XXX- XXO- ---- ----", board.Light, players)
		require.NoError(t, m.Pass(board.Light))

		require.NoError(t, m.Undo())

		assert.Equal(t, board.Light, m.Turn())
	})
}

func TestMatch_UndoRedo(t *testing.T) {
	rules := board.NewTicTacToe()

	t.Run("Returns ErrNothingToUndo on a new match", func(t *testing.T) {
		m := New(rules, [2]evaluator.Strategy{}, nil)
		assert.ErrorIs(t, m.Undo(), apperror.ErrNothingToUndo)
		assert.ErrorIs(t, m.Redo(), apperror.ErrNothingToRedo)
	})

	t.Run("Restores exact boards", func(t *testing.T) {
		// Given: two moves have been played
		m := New(rules, [2]evaluator.Strategy{}, nil)
		playAll(t, m, 0)
		afterFirst := m.Board()
		playAll(t, m, 4)
		afterSecond := m.Board()

		// When: the last move is undone
		require.NoError(t, m.Undo())

		// Then: the board and turn are as after the first move
		assert.True(t, m.Board().Equal(afterFirst))
		assert.Equal(t, board.PlayerB, m.Turn())
		assert.Equal(t, 1, m.Plies())
		assert.True(t, m.CanRedo())

		// When: it is redone
		require.NoError(t, m.Redo())

		// Then: the second board is back
		assert.True(t, m.Board().Equal(afterSecond))
		assert.Equal(t, board.PlayerA, m.Turn())
		assert.False(t, m.CanRedo())
	})

	t.Run("A new move discards the redo tail", func(t *testing.T) {
		m := New(rules, [2]evaluator.Strategy{}, nil)
		playAll(t, m, 0, 4)
		require.NoError(t, m.Undo())

		require.NoError(t, m.MakeTurn(board.PlayerB, 8))

		assert.False(t, m.CanRedo())
		assert.ErrorIs(t, m.Redo(), apperror.ErrNothingToRedo)
		mark, err := m.Board().MarkAt(4)
		require.NoError(t, err)
		assert.Equal(t, board.Empty, mark)
	})

	t.Run("Undo reopens a finished match", func(t *testing.T) {
		m := New(rules, [2]evaluator.Strategy{}, nil)
		playAll(t, m, 0, 3, 1, 4, 2)
		require.True(t, m.IsFinished())

		require.NoError(t, m.Undo())

		assert.Equal(t, StatusOngoing, m.Status())
		assert.Empty(t, m.Winner())
		assert.Equal(t, board.PlayerA, m.Turn())
	})
}

func TestMatch_Run(t *testing.T) {
	t.Run("Two searchers draw tic-tac-toe", func(t *testing.T) {
		rules := board.NewTicTacToe()
		players := [2]evaluator.Strategy{evaluator.New(rules), evaluator.New(rules)}
		m := New(rules, players, nil)

		observed := 0
		m.Observe(func(Turn) { observed++ })

		// When: the match runs to the end
		result, err := m.Run(context.Background())

		// Then: it is a draw on a full board
		require.NoError(t, err)
		assert.Equal(t, PlayerTie, result.Winner)
		assert.Equal(t, 9, result.Plies)
		assert.Equal(t, 9, observed)
		assert.Equal(t, "1/2-1/2", result.String())
	})

	t.Run("Random Othello ends on a terminal board", func(t *testing.T) {
		rules := board.NewOthello()
		players := [2]evaluator.Strategy{evaluator.NewRandom(rules, 1), evaluator.NewRandom(rules, 2)}

		result, err := New(rules, players, nil).Run(context.Background())

		require.NoError(t, err)
		assert.True(t, board.IsTerminal(rules, result.Board))
		assert.NotEmpty(t, result.Winner)
	})

	t.Run("Stops when the context is done", func(t *testing.T) {
		rules := board.NewTicTacToe()
		players := [2]evaluator.Strategy{evaluator.NewRandom(rules, 1), evaluator.NewRandom(rules, 2)}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := New(rules, players, nil).Run(ctx)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, result.Plies)
	})

	t.Run("Times out during an unbounded search", func(t *testing.T) {
		// Given: full-depth searchers on the 8x8 board
		rules := board.NewOthello()
		players := [2]evaluator.Strategy{evaluator.New(rules), evaluator.New(rules)}

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		// When: the match runs past the deadline
		started := time.Now()
		result, err := New(rules, players, nil).Run(ctx)

		// Then: the first search is abandoned promptly
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(started), 10*time.Second)
		assert.Equal(t, 0, result.Plies)
	})

	t.Run("Waits for a human player", func(t *testing.T) {
		rules := board.NewTicTacToe()
		m := New(rules, [2]evaluator.Strategy{nil, evaluator.NewGreedy(rules)}, nil)

		_, err := m.Run(context.Background())

		assert.ErrorIs(t, err, apperror.ErrAwaitingMove)
	})
}

func TestResult_String(t *testing.T) {
	for _, tc := range []struct {
		winner string
		want   string
	}{
		{"X", "1-0"},
		{"O", "0-1"},
		{PlayerTie, "1/2-1/2"},
		{"", "*"},
	} {
		assert.Equal(t, tc.want, Result{Winner: tc.winner}.String(), tc.winner)
	}
}
