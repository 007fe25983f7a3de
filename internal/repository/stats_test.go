package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsRepo(t *testing.T) (context.Context, StatsRepository) {
	t.Helper()

	ctx := context.Background()

	sqliteStorage, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, sqliteStorage.Close())
	})

	require.NoError(t, sqliteStorage.Init(ctx))

	return ctx, NewStatsRepository(sqliteStorage.Connection)
}

func TestStatsRepository_Record(t *testing.T) {
	t.Run("Accumulates results across games", func(t *testing.T) {
		ctx, statsRepo := newStatsRepo(t)

		// Given: two wins, a loss and a draw for one player
		require.NoError(t, statsRepo.Record(ctx, "abc", ResultWin))
		require.NoError(t, statsRepo.Record(ctx, "abc", ResultWin))
		require.NoError(t, statsRepo.Record(ctx, "abc", ResultLoss))
		require.NoError(t, statsRepo.Record(ctx, "abc", ResultDraw))

		// When: the tallies are read back
		wins, losses, draws, err := statsRepo.GetByPlayerID(ctx, "abc")

		// Then: the tallies match what was recorded
		require.NoError(t, err)
		assert.Equal(t, 2, wins)
		assert.Equal(t, 1, losses)
		assert.Equal(t, 1, draws)
	})

	t.Run("Rejects an unknown result", func(t *testing.T) {
		ctx, statsRepo := newStatsRepo(t)

		// When: an unknown result column is recorded
		err := statsRepo.Record(ctx, "abc", "ties")

		// Then: an error should be returned
		require.Error(t, err)
	})
}

func TestStatsRepository_GetByPlayerID_NotFound(t *testing.T) {
	ctx, statsRepo := newStatsRepo(t)

	// When: tallies are read for a player who never finished a game
	_, _, _, err := statsRepo.GetByPlayerID(ctx, "missing")

	// Then: an ErrStatsNotFound error should be returned
	require.ErrorIs(t, err, ErrStatsNotFound)
}
