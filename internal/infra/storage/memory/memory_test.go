package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/internal/infra/storage/booking"
	"github.com/m04kA/essenza-booking/internal/infra/storage/schedule"
	"github.com/m04kA/essenza-booking/pkg/types"
)

func TestScheduleRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewScheduleRepository(NewStore())

	_, err := repo.Get(ctx, "2025-06-10")
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)

	times := []types.TimeLabel{"09:00", "09:30"}
	require.NoError(t, repo.Upsert(ctx, &domain.DaySchedule{DayKey: "2025-06-10", Times: times}))
	require.NoError(t, repo.Upsert(ctx, &domain.DaySchedule{DayKey: "2025-06-08", Times: []types.TimeLabel{"12:00"}}))

	// Изменение исходного слайса не влияет на хранилище
	times[0] = "23:00"

	got, err := repo.Get(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, []types.TimeLabel{"09:00", "09:30"}, got.Times)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, types.DayKey("2025-06-08"), list[0].DayKey)
	assert.Equal(t, types.DayKey("2025-06-10"), list[1].DayKey)

	deleted, err := repo.Delete(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestBookingRepository(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	repo := NewBookingRepository(store)

	slot := domain.SlotKey{DayKey: "2025-06-10", Time: "09:00"}

	mk := func(id string, status domain.BookingStatus) *domain.Booking {
		return &domain.Booking{ID: id, DayKey: slot.DayKey, Time: slot.Time, ServiceID: "lips", Status: status}
	}

	_, err := repo.Create(ctx, mk("a", domain.StatusPending))
	require.NoError(t, err)
	_, err = repo.Create(ctx, mk("b", domain.StatusConfirmed))
	require.NoError(t, err)

	t.Run("second confirmed rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, mk("c", domain.StatusConfirmed))
		assert.ErrorIs(t, err, booking.ErrSlotNotAvailable)

		err = repo.UpdateStatus(ctx, "a", domain.StatusConfirmed)
		assert.ErrorIs(t, err, booking.ErrSlotNotAvailable)
	})

	t.Run("get returns copy", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, fixed, got.CreatedAt)
		got.Status = domain.StatusCanceled

		again, err := repo.GetByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, again.Status)

		_, err = repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	})

	t.Run("exists confirmed honors exclude", func(t *testing.T) {
		exists, err := repo.ExistsConfirmed(ctx, slot, "")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsConfirmed(ctx, slot, "b")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("cancel frees slot", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, "b", domain.StatusCanceled))
		require.NoError(t, repo.UpdateStatus(ctx, "a", domain.StatusConfirmed))

		slots, err := repo.ListConfirmedSlots(ctx, &slot.DayKey)
		require.NoError(t, err)
		assert.Equal(t, []domain.SlotKey{slot}, slots)

		assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", domain.StatusCanceled), booking.ErrBookingNotFound)
	})

	t.Run("list filters", func(t *testing.T) {
		canceled := domain.StatusCanceled
		list, err := repo.List(ctx, domain.BookingsFilter{Status: &canceled})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "b", list[0].ID)

		all, err := repo.List(ctx, domain.BookingsFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestTxManager_SerializesWriters(t *testing.T) {
	store := NewStore()
	tm := NewTxManager(store)
	ctx := context.Background()

	var (
		active    int32
		maxActive int32
		wg        sync.WaitGroup
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tm.Do(ctx, func(ctx context.Context) error {
				n := atomic.AddInt32(&active, 1)
				for {
					m := atomic.LoadInt32(&maxActive)
					if n <= m || atomic.CompareAndSwapInt32(&maxActive, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&active, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive)
}

func TestTxManager_Nested(t *testing.T) {
	tm := NewTxManager(NewStore())
	ctx := context.Background()

	called := false
	err := tm.Do(ctx, func(ctx context.Context) error {
		return tm.DoReadOnly(ctx, func(ctx context.Context) error {
			return tm.DoSerializable(ctx, func(ctx context.Context) error {
				called = true
				return nil
			})
		})
	})

	require.NoError(t, err)
	assert.True(t, called)
}
