package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerTie = string(engine.OutcomeTie)
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID      string       `json:"id"`
	Board   engine.Board `json:"board"`
	Winner  string       `json:"winner"`
	Status  string       `json:"status"`
	Turn    string       `json:"player_turn"`
	Players []*Player    `json:"players,omitempty"`
	Type    string       `json:"type,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  engine.Board{},
		Turn:   engine.PlayerX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// MakeTurn - places playerMark into cell and re-derives the game state.
// The cell must be inside the board, empty, and it must be playerMark's turn.
func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != engine.EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark
	that.UpdateGameState()

	return nil
}

// UpdateGameState - re-derives winner, status and turn from the board.
// The outcome is never carried over from a previous state, it is recomputed
// after every placement.
func (that *Game) UpdateGameState() {
	switch outcome := engine.Evaluate(that.Board); {
	// one player wins
	case outcome.IsWin():
		that.Winner = outcome.Winner()
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case outcome == engine.OutcomeTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continues
	default:
		that.Status = StatusOngoing
		that.Turn = engine.Opponent(that.lastMark())
	}
}

// lastMark - returns the mark that just moved, derived from the cell
// counts: X always opens, so with more X cells than O cells X moved last.
func (that *Game) lastMark() string {
	var xCells, oCells int
	for _, cell := range that.Board {
		switch cell {
		case engine.PlayerX:
			xCells++
		case engine.PlayerO:
			oCells++
		}
	}

	if xCells > oCells {
		return engine.PlayerX
	}
	return engine.PlayerO
}

// Restart - resets the board for a rematch between the same players.
// Tallies on the players are kept.
func (that *Game) Restart() {
	that.Board = engine.Board{}
	that.Winner = ""
	that.Turn = engine.PlayerX
	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsTie() bool {
	return that.Winner == PlayerTie
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return engine.PlayerX, engine.PlayerO
	}
	return engine.PlayerO, engine.PlayerX
}
