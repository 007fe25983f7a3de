package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	GetOrCreateGame(ctx context.Context, playerID, gameType string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	JoinPublicGame(ctx context.Context, playerID string) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID string) (*entity.Game, error)
	LeaveGame(ctx context.Context, playerID string) error

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)

	GetPlayerStats(ctx context.Context, playerID string) (*entity.PlayerStats, error)
}

type playerService interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
	UpdatePlayer(ctx context.Context, player *entity.Player) error
}

type gamePlayService interface {
	JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	JoinWaitingPublicGame(ctx context.Context, playerID string) (*entity.Game, error)
	GetOrCreateGame(ctx context.Context, player *entity.Player, gameType string) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
}

type statsService interface {
	GetPlayerStats(ctx context.Context, playerID string) (*entity.PlayerStats, error)
}

type gameService interface {
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type gameUseCase struct {
	playerService   playerService
	gameService     gameService
	gamePlayService gamePlayService
	statsService    statsService
}

func NewGameUseCase(playerService playerService, gameService gameService, gamePlayService gamePlayService, statsService statsService) GameUseCase {
	return &gameUseCase{
		playerService:   playerService,
		gameService:     gameService,
		gamePlayService: gamePlayService,
		statsService:    statsService,
	}
}

func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player, err := that.playerService.CreatePlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) GetOrCreateGame(ctx context.Context, playerID, gameType string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	game, err := that.gamePlayService.GetOrCreateGame(ctx, player, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.JoinGameByID(ctx, gameID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) JoinPublicGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.JoinWaitingPublicGame(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to join public game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) RestartGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.RestartGame(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) LeaveGame(ctx context.Context, playerID string) error {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return fmt.Errorf("failed to get game by id: %w", err)
	}

	that.gamePlayService.CleanupGame(ctx, game)

	return nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	game, err := that.gamePlayService.MakeTurn(ctx, playerID, cell)
	if err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) GetPlayerStats(ctx context.Context, playerID string) (*entity.PlayerStats, error) {
	stats, err := that.statsService.GetPlayerStats(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	return stats, nil
}
