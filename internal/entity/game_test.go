package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// Given: a new private game
	game := NewGame("123", PrivateType)

	// Then: the game state should correspond to the expected initial state
	expectedGame := &Game{
		ID:     "123",
		Board:  engine.Board{},
		Turn:   engine.PlayerX,
		Winner: "",
		Status: StatusWaiting,
		Type:   PrivateType,
	}

	require.Equal(t, expectedGame, game)
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}
		assert.True(t, game.IsFinished())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}
		assert.True(t, game.IsOngoing())
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}
		assert.True(t, game.IsWaiting())
	})

	t.Run("IsTie returns true when the game ended in a tie", func(t *testing.T) {
		game := &Game{Status: StatusFinished, Winner: PlayerTie}
		assert.True(t, game.IsTie())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}
		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}
		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}
		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}
		err := game.ConfirmOngoingState()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Updates game state when Player X wins", func(t *testing.T) {
		// Given: a game where player X just completed the top row
		game := &Game{
			Board: engine.Board{
				engine.PlayerX, engine.PlayerX, engine.PlayerX,
				engine.PlayerO, engine.PlayerO, engine.EmptyCell,
				engine.EmptyCell, engine.EmptyCell, engine.EmptyCell,
			},
			Status: StatusOngoing,
			Turn:   engine.PlayerX,
		}

		// When: the game state is re-derived
		game.UpdateGameState()

		// Then: the game should be finished with player X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, engine.PlayerX, game.Winner)
		assert.Equal(t, "", game.Turn)
	})

	t.Run("Updates game state when the game is a tie", func(t *testing.T) {
		// Given: a full board with no winner
		game := &Game{
			Board: engine.Board{
				engine.PlayerX, engine.PlayerO, engine.PlayerX,
				engine.PlayerO, engine.PlayerX, engine.PlayerO,
				engine.PlayerO, engine.PlayerX, engine.PlayerO,
			},
			Status: StatusOngoing,
			Turn:   engine.PlayerX,
		}

		// When: the game state is re-derived
		game.UpdateGameState()

		// Then: the game should be finished with a tie
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
		assert.True(t, game.IsTie())
	})

	t.Run("Game remains ongoing when there is no winner or tie", func(t *testing.T) {
		// Given: a board where X just played its second mark
		game := &Game{
			Board: engine.Board{
				engine.PlayerX, engine.PlayerO, engine.EmptyCell,
				engine.EmptyCell, engine.PlayerX, engine.EmptyCell,
				engine.EmptyCell, engine.EmptyCell, engine.EmptyCell,
			},
			Status: StatusOngoing,
			Turn:   engine.PlayerX,
		}

		// When: the game state is re-derived
		game.UpdateGameState()

		// Then: the game should remain ongoing with O to move
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, "", game.Winner)
		assert.Equal(t, engine.PlayerO, game.Turn)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: a new ongoing game
		game := NewGame("123", PrivateType)
		game.Status = StatusOngoing

		// When: player X makes a valid turn
		err := game.MakeTurn(engine.PlayerX, 0)
		require.NoError(t, err)

		// Then: the board holds the mark and the turn passes to O
		expectedGame := &Game{
			ID:     "123",
			Board:  engine.Board{engine.PlayerX, "", "", "", "", "", "", "", ""},
			Turn:   engine.PlayerO,
			Winner: "",
			Status: StatusOngoing,
			Type:   PrivateType,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: a game where cell 0 is occupied by player X
		game := NewGame("123", PrivateType)
		game.Status = StatusOngoing
		require.NoError(t, game.MakeTurn(engine.PlayerX, 0))

		// When: player O tries to move to the same cell
		err := game.MakeTurn(engine.PlayerO, 0)

		// Then: an ErrCellOccupied error should be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the game state remains unchanged
		assert.Equal(t, engine.PlayerX, game.Board[0])
		assert.Equal(t, engine.PlayerO, game.Turn)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: a new ongoing game where it is player X's turn
		game := NewGame("123", PrivateType)
		game.Status = StatusOngoing

		// When: player O tries to make a move
		err := game.MakeTurn(engine.PlayerO, 1)

		// Then: an ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, engine.Board{}, game.Board)
	})

	t.Run("Error on Invalid Cell Index (Greater than Range)", func(t *testing.T) {
		game := NewGame("123", PrivateType)
		game.Status = StatusOngoing

		err := game.MakeTurn(engine.PlayerX, 20)
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Error on Invalid Cell Index (Negative)", func(t *testing.T) {
		game := NewGame("123", PrivateType)
		game.Status = StatusOngoing

		err := game.MakeTurn(engine.PlayerX, -1)
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where player X has already won
		game := &Game{
			Board: engine.Board{
				engine.PlayerX, engine.PlayerX, engine.PlayerX,
				engine.EmptyCell, engine.PlayerO, engine.EmptyCell,
				engine.EmptyCell, engine.PlayerO, engine.EmptyCell,
			},
			Status: StatusFinished,
		}

		// When: player O tries to make a move after the game is over
		err := game.MakeTurn(engine.PlayerO, 3)

		// Then: an ErrGameFinished error should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: a game where X threatens the top row
		game := &Game{
			ID: "123",
			Board: engine.Board{
				engine.PlayerX, engine.PlayerX, engine.EmptyCell,
				engine.PlayerO, engine.PlayerO, engine.EmptyCell,
				engine.EmptyCell, engine.EmptyCell, engine.EmptyCell,
			},
			Status: StatusOngoing,
			Turn:   engine.PlayerX,
		}

		// When: X completes the row
		require.NoError(t, game.MakeTurn(engine.PlayerX, 2))

		// Then: the game is finished with X as winner and no next turn
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, engine.PlayerX, game.Winner)
		assert.Equal(t, "", game.Turn)
	})
}

func TestGame_Restart(t *testing.T) {
	// Given: a finished game between two players
	game := &Game{
		ID: "123",
		Board: engine.Board{
			engine.PlayerX, engine.PlayerX, engine.PlayerX,
			engine.PlayerO, engine.PlayerO, engine.EmptyCell,
			engine.EmptyCell, engine.EmptyCell, engine.EmptyCell,
		},
		Winner:  engine.PlayerX,
		Status:  StatusFinished,
		Players: []*Player{{ID: "a", Mark: engine.PlayerX}, {ID: "b", Mark: engine.PlayerO}},
	}

	// When: the game is restarted
	game.Restart()

	// Then: the board is empty again, X opens, players are kept
	assert.Equal(t, engine.Board{}, game.Board)
	assert.Equal(t, engine.PlayerX, game.Turn)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Empty(t, game.Winner)
	assert.Len(t, game.Players, 2)
}
