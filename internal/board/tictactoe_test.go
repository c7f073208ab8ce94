package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows, cols int, text string) Board {
	t.Helper()

	b, err := Parse(rows, cols, text)
	require.NoError(t, err)

	return b
}

func TestTicTacToe_Play(t *testing.T) {
	rules := NewTicTacToe()

	t.Run("Play", func(t *testing.T) {
		// Given: an empty board
		b := rules.NewBoard()

		// When: player X plays the first cell
		next, err := rules.Play(b, PlayerA, 0)
		require.NoError(t, err)

		// Then: the new board holds the mark and the old one is unchanged
		mark, err := next.MarkAt(0)
		require.NoError(t, err)
		assert.Equal(t, MarkA, mark)
		assert.Equal(t, "X--------", next.String())
		assert.Equal(t, "---------", b.String())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where cell 0 is occupied by player X
		b := mustParse(t, 3, 3, "X--------")

		// When: player O tries to play the same cell
		next, err := rules.Play(b, PlayerB, 0)

		// Then: ErrIllegalMove is returned and nothing changes
		require.ErrorIs(t, err, ErrIllegalMove)
		assert.Equal(t, "X--------", b.String())
		assert.Equal(t, "X--------", next.String())
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		_, err := rules.Play(rules.NewBoard(), PlayerA, 20)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		_, err := rules.Play(rules.NewBoard(), PlayerA, -1)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("Error on wrong board size", func(t *testing.T) {
		_, err := rules.Play(NewSquare(4), PlayerA, 0)
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Error without a player", func(t *testing.T) {
		// Given: an empty board
		b := rules.NewBoard()

		// When: NoPlayer tries to play
		next, err := rules.Play(b, NoPlayer, 0)

		// Then: ErrUnknownPlayer is returned and the board is unchanged
		require.ErrorIs(t, err, ErrUnknownPlayer)
		assert.True(t, next.Equal(b))
	})

	t.Run("Every empty cell can be played", func(t *testing.T) {
		b := mustParse(t, 3, 3, "XO--X--O-")
		for _, pos := range b.ValidPlays() {
			next, err := rules.Play(b, PlayerA, pos)
			require.NoError(t, err)

			mark, err := next.MarkAt(pos)
			require.NoError(t, err)
			assert.Equal(t, MarkA, mark)
		}
		assert.Equal(t, "XO--X--O-", b.String())
	})
}

func TestTicTacToe_HasWon(t *testing.T) {
	rules := NewTicTacToe()

	t.Run("Winner X", func(t *testing.T) {
		// Given: player X holds the first column
		b := mustParse(t, 3, 3, "XO-XO-X--")

		// Then: player X has won and player O has not
		assert.True(t, rules.HasWon(b, PlayerA))
		assert.False(t, rules.HasWon(b, PlayerB))
		assert.Equal(t, PlayerA, Winner(rules, b))
		assert.True(t, IsTerminal(rules, b))
	})

	t.Run("Winner O on a diagonal", func(t *testing.T) {
		b := mustParse(t, 3, 3, "XXO-O-OX-")
		assert.True(t, rules.HasWon(b, PlayerB))
		assert.Equal(t, PlayerB, Winner(rules, b))
	})

	t.Run("Ongoing Game", func(t *testing.T) {
		// Given: a board where nobody has a line yet
		b := mustParse(t, 3, 3, "XOXOXO--O")

		// Then: no one has won and the two empty cells are playable
		assert.False(t, rules.HasWon(b, PlayerA))
		assert.False(t, rules.HasWon(b, PlayerB))
		assert.Equal(t, []Position{6, 7}, rules.LegalPlays(b, PlayerA))
		assert.False(t, IsTerminal(rules, b))
		assert.Equal(t, NoPlayer, Winner(rules, b))
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: a full board without a line
		b := mustParse(t, 3, 3, "OXOOXXXOX")

		// Then: the game is over without a winner
		assert.False(t, rules.HasWon(b, PlayerA))
		assert.False(t, rules.HasWon(b, PlayerB))
		assert.True(t, IsTerminal(rules, b))
		assert.Equal(t, NoPlayer, Winner(rules, b))
	})
}

func TestCanWinInOneMove(t *testing.T) {
	rules := NewTicTacToe()

	b := mustParse(t, 3, 3, "XX-OO----")

	assert.True(t, CanWinInOneMove(rules, b, PlayerA))
	assert.True(t, CanWinInOneMove(rules, b, PlayerB))
	assert.False(t, CanWinInOneMove(rules, mustParse(t, 3, 3, "X---O----"), PlayerA))
}
