package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrStatsNotFound = errors.New("stats not found")

// Result columns of the player_stats table a finished game can bump.
const (
	ResultWin  = "wins"
	ResultLoss = "losses"
	ResultDraw = "draws"
)

type StatsRepository interface {
	Record(ctx context.Context, playerID, result string) error
	GetByPlayerID(ctx context.Context, playerID string) (wins, losses, draws int, err error)
}

type dbStats struct {
	conn *sql.DB
}

func NewStatsRepository(conn *sql.DB) StatsRepository {
	return &dbStats{
		conn: conn,
	}
}

func (that *dbStats) Record(ctx context.Context, playerID, result string) error {
	var column string
	switch result {
	case ResultWin, ResultLoss, ResultDraw:
		column = result
	default:
		return fmt.Errorf("unknown result %q", result)
	}

	query := fmt.Sprintf(`INSERT INTO player_stats (player_id, %[1]s) VALUES (?, 1)
		ON CONFLICT(player_id) DO UPDATE SET %[1]s = %[1]s + 1`, column)

	if _, err := that.conn.ExecContext(ctx, query, playerID); err != nil {
		return fmt.Errorf("failed to record %s for player %s: %w", result, playerID, err)
	}

	return nil
}

func (that *dbStats) GetByPlayerID(ctx context.Context, playerID string) (int, int, int, error) {
	query := `SELECT wins, losses, draws FROM player_stats WHERE player_id = ?`

	var wins, losses, draws int
	err := that.conn.QueryRowContext(ctx, query, playerID).Scan(&wins, &losses, &draws)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, 0, ErrStatsNotFound
	}

	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to get stats for player %s: %w", playerID, err)
	}

	return wins, losses, draws, nil
}
