package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn - plays the bot's turn with the minimax engine. The game must be
// ongoing; that guard keeps engine.SelectMove away from decided boards.
func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	if err := game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("bot cannot move: %w", err)
	}

	chosenCell := engine.SelectMove(&game.Board, botPlayer.Mark)

	if err := game.MakeTurn(botPlayer.Mark, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
