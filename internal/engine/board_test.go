package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("Winner X on a row", func(t *testing.T) {
		// Given: a board where player X holds the top row
		board := Board{PlayerX, PlayerX, PlayerX, PlayerO, PlayerO, EmptyCell, EmptyCell, EmptyCell, EmptyCell}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: player X should be the winner
		require.True(t, outcome.IsWin())
		require.Equal(t, PlayerX, outcome.Winner())
	})

	t.Run("Winner O on a column", func(t *testing.T) {
		// Given: a board where player O holds the middle column
		board := Board{PlayerX, PlayerO, EmptyCell, PlayerX, PlayerO, EmptyCell, EmptyCell, PlayerO, PlayerX}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: player O should be the winner
		require.Equal(t, PlayerO, outcome.Winner())
	})

	t.Run("Winner X on a diagonal", func(t *testing.T) {
		// Given: a board where player X holds the main diagonal
		board := Board{PlayerX, PlayerO, EmptyCell, PlayerO, PlayerX, EmptyCell, EmptyCell, EmptyCell, PlayerX}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: player X should be the winner
		require.Equal(t, PlayerX, outcome.Winner())
	})

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a board with empty cells and no complete line
		board := Board{PlayerX, PlayerO, PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerX, EmptyCell, EmptyCell}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: the game should still be in progress
		assert.Equal(t, OutcomeInProgress, outcome)
		assert.False(t, outcome.IsWin())
	})

	t.Run("Empty board is in progress", func(t *testing.T) {
		// Given: a fresh board
		board := Board{}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: the game should still be in progress
		assert.Equal(t, OutcomeInProgress, outcome)
	})

	t.Run("Tie on a full board", func(t *testing.T) {
		// Given: a full board with no complete line
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		// When: the board is evaluated
		outcome := Evaluate(board)

		// Then: the game should be a tie
		assert.Equal(t, OutcomeTie, outcome)
		assert.Empty(t, outcome.Winner())
	})
}

func TestEvaluate_LastEmptyCell(t *testing.T) {
	t.Run("Filling the last cell decides the game", func(t *testing.T) {
		// Given: a board with one empty cell, no winner yet, and O holding
		// two cells of the main diagonal
		board := Board{
			PlayerO, PlayerX, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerX, PlayerO, EmptyCell,
		}
		require.Equal(t, OutcomeInProgress, Evaluate(board))

		// When: the last cell is filled with X
		board[8] = PlayerX

		// Then: the board is full with no line, a tie
		assert.Equal(t, OutcomeTie, Evaluate(board))

		// When: the last cell is filled with O instead
		board[8] = PlayerO

		// Then: O completes the diagonal and wins
		assert.Equal(t, PlayerO, Evaluate(board).Winner())
	})
}

// swapMarks relabels every X as O and vice versa.
func swapMarks(board Board) Board {
	swapped := board
	for i, cell := range swapped {
		if cell != EmptyCell {
			swapped[i] = Opponent(cell)
		}
	}
	return swapped
}

func TestEvaluate_RelabelSymmetry(t *testing.T) {
	boards := []Board{
		{},
		{PlayerX, PlayerX, PlayerX, PlayerO, PlayerO, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		{PlayerX, PlayerO, PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerX, EmptyCell, EmptyCell},
		{PlayerX, PlayerO, PlayerX, PlayerX, PlayerO, PlayerO, PlayerO, PlayerX, PlayerX},
		{PlayerO, PlayerX, EmptyCell, PlayerO, PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerX},
	}

	for _, board := range boards {
		// Given: a board and its mark-swapped twin
		outcome := Evaluate(board)
		swappedOutcome := Evaluate(swapMarks(board))

		// Then: ties and ongoing games are unchanged, wins swap sides
		if outcome.IsWin() {
			require.True(t, swappedOutcome.IsWin())
			assert.Equal(t, Opponent(outcome.Winner()), swappedOutcome.Winner())
			continue
		}
		assert.Equal(t, outcome, swappedOutcome)
	}
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, PlayerO, Opponent(PlayerX))
	assert.Equal(t, PlayerX, Opponent(PlayerO))
}
