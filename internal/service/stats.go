package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

var ErrGameNotFinished = errors.New("game is not finished")

type StatsService interface {
	RecordGameResult(ctx context.Context, game *entity.Game) error
	GetPlayerStats(ctx context.Context, playerID string) (*entity.PlayerStats, error)
}

type statsRepo interface {
	Record(ctx context.Context, playerID, result string) error
	GetByPlayerID(ctx context.Context, playerID string) (wins, losses, draws int, err error)
}

type statsService struct {
	statsRepo statsRepo
}

func NewStatsService(statsRepo statsRepo) StatsService {
	return &statsService{
		statsRepo: statsRepo,
	}
}

// RecordGameResult - bumps the tally of every player in a finished game:
// both get a draw on a tie, otherwise the winning mark gets a win and the
// other a loss.
func (that *statsService) RecordGameResult(ctx context.Context, game *entity.Game) error {
	if !game.IsFinished() {
		return ErrGameNotFinished
	}

	for _, player := range game.Players {
		result := repository.ResultLoss
		switch {
		case game.IsTie():
			result = repository.ResultDraw
		case player.Mark == game.Winner:
			result = repository.ResultWin
		}

		if err := that.statsRepo.Record(ctx, player.ID, result); err != nil {
			return fmt.Errorf("failed to record result: %w", err)
		}
	}

	return nil
}

func (that *statsService) GetPlayerStats(ctx context.Context, playerID string) (*entity.PlayerStats, error) {
	wins, losses, draws, err := that.statsRepo.GetByPlayerID(ctx, playerID)

	if errors.Is(err, repository.ErrStatsNotFound) {
		return &entity.PlayerStats{PlayerID: playerID}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	return &entity.PlayerStats{
		PlayerID: playerID,
		Wins:     wins,
		Losses:   losses,
		Draws:    draws,
	}, nil
}
