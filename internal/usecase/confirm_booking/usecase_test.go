package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/internal/infra/storage/memory"
	"github.com/m04kA/essenza-booking/pkg/logger"
	"github.com/m04kA/essenza-booking/pkg/metrics"
)

func newTestUseCase() (*UseCase, *memory.BookingRepository) {
	store := memory.NewStore()
	repo := memory.NewBookingRepository(store)
	return NewUseCase(repo, memory.NewTxManager(store), metrics.NopRecorder{}, logger.NewNop()), repo
}

func seed(t *testing.T, repo *memory.BookingRepository, id string, slot domain.SlotKey, status domain.BookingStatus) {
	t.Helper()

	_, err := repo.Create(context.Background(), &domain.Booking{
		ID:          id,
		DayKey:      slot.DayKey,
		Time:        slot.Time,
		ServiceID:   "botox",
		ClientName:  "Client " + id,
		ClientPhone: "+48500100200",
		Status:      status,
	})
	require.NoError(t, err)
}

var slot0930 = domain.SlotKey{DayKey: "2025-06-10", Time: "09:30"}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("pending becomes confirmed", func(t *testing.T) {
		uc, repo := newTestUseCase()
		seed(t, repo, "p1", slot0930, domain.StatusPending)

		resp, err := uc.Execute(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)

		stored, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, stored.Status)
	})

	t.Run("confirming twice is a no-op", func(t *testing.T) {
		uc, repo := newTestUseCase()
		seed(t, repo, "p1", slot0930, domain.StatusPending)

		_, err := uc.Execute(ctx, "p1")
		require.NoError(t, err)

		resp, err := uc.Execute(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("second pending on slot conflicts", func(t *testing.T) {
		uc, repo := newTestUseCase()
		seed(t, repo, "p1", slot0930, domain.StatusPending)
		seed(t, repo, "p2", slot0930, domain.StatusPending)

		_, err := uc.Execute(ctx, "p1")
		require.NoError(t, err)

		_, err = uc.Execute(ctx, "p2")
		assert.ErrorIs(t, err, ErrSlotConflict)

		stored, err := repo.GetByID(ctx, "p2")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, stored.Status)
	})

	t.Run("canceled cannot be confirmed", func(t *testing.T) {
		uc, repo := newTestUseCase()
		seed(t, repo, "c1", slot0930, domain.StatusCanceled)

		_, err := uc.Execute(ctx, "c1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("not found", func(t *testing.T) {
		uc, _ := newTestUseCase()

		_, err := uc.Execute(ctx, "missing")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("slot freed by cancel can be confirmed again", func(t *testing.T) {
		uc, repo := newTestUseCase()
		seed(t, repo, "f1", slot0930, domain.StatusConfirmed)
		seed(t, repo, "p1", slot0930, domain.StatusPending)

		_, err := uc.Execute(ctx, "p1")
		require.ErrorIs(t, err, ErrSlotConflict)

		require.NoError(t, repo.UpdateStatus(ctx, "f1", domain.StatusCanceled))

		resp, err := uc.Execute(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
	})
}

func TestUseCase_Execute_ConcurrentConfirm(t *testing.T) {
	uc, repo := newTestUseCase()
	ctx := context.Background()

	const n = 8
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i)
		seed(t, repo, ids[i], slot0930, domain.StatusPending)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := uc.Execute(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrSlotConflict):
				conflicts++
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, conflicts)

	slots, err := repo.ListConfirmedSlots(ctx, &slot0930.DayKey)
	require.NoError(t, err)
	assert.Equal(t, []domain.SlotKey{slot0930}, slots)
}
