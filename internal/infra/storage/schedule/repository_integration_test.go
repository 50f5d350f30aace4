//go:build integration

package schedule_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/internal/infra/storage/schedule"
	"github.com/m04kA/essenza-booking/internal/testhelpers"
	"github.com/m04kA/essenza-booking/pkg/types"
)

func TestRepository_Postgres(t *testing.T) {
	db := testhelpers.SetupPostgres(t)
	repo := schedule.NewRepository(db)
	ctx := context.Background()

	day := types.DayKey("2025-06-10")

	_, err := repo.Get(ctx, day)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)

	require.NoError(t, repo.Upsert(ctx, &domain.DaySchedule{
		DayKey: day,
		Times:  []types.TimeLabel{"09:00", "09:30", "10:00"},
	}))

	// Повторная запись полностью заменяет список
	require.NoError(t, repo.Upsert(ctx, &domain.DaySchedule{
		DayKey: day,
		Times:  []types.TimeLabel{"14:00", "09:00"},
	}))

	got, err := repo.Get(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeLabel{"14:00", "09:00"}, got.Times)

	require.NoError(t, repo.Upsert(ctx, &domain.DaySchedule{
		DayKey: "2025-06-09",
		Times:  []types.TimeLabel{"12:00"},
	}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, types.DayKey("2025-06-09"), list[0].DayKey)

	deleted, err := repo.Delete(ctx, day)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, day)
	require.NoError(t, err)
	assert.False(t, deleted)
}
