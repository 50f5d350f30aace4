//go:build integration

package booking_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/internal/infra/storage/booking"
	"github.com/m04kA/essenza-booking/internal/testhelpers"
	"github.com/m04kA/essenza-booking/pkg/txmanager"
	"github.com/m04kA/essenza-booking/pkg/types"
)

func newBooking(day types.DayKey, t types.TimeLabel, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.NewString(),
		DayKey:      day,
		Time:        t,
		ServiceID:   "lips",
		ClientName:  "Anna",
		ClientPhone: "+48500100200",
		Status:      status,
	}
}

func TestRepository_Postgres(t *testing.T) {
	db := testhelpers.SetupPostgres(t)
	repo := booking.NewRepository(db)
	tm := txmanager.NewTransactionManager(db)
	ctx := context.Background()

	day := types.DayKey("2025-06-10")

	t.Run("create and get", func(t *testing.T) {
		note := "first visit"
		b := newBooking(day, "09:00", domain.StatusPending)
		b.Note = &note

		created, err := repo.Create(ctx, b)
		require.NoError(t, err)
		assert.False(t, created.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, day, got.DayKey)
		assert.Equal(t, types.TimeLabel("09:00"), got.Time)
		assert.Equal(t, domain.StatusPending, got.Status)
		require.NotNil(t, got.Note)
		assert.Equal(t, note, *got.Note)
		assert.Nil(t, got.ClientEmail)
	})

	t.Run("unknown and malformed ids", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)

		_, err = repo.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)

		err = repo.UpdateStatus(ctx, uuid.NewString(), domain.StatusCanceled)
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	})

	t.Run("second confirmed booking on slot violates unique index", func(t *testing.T) {
		_, err := repo.Create(ctx, newBooking(day, "10:00", domain.StatusConfirmed))
		require.NoError(t, err)

		_, err = repo.Create(ctx, newBooking(day, "10:00", domain.StatusConfirmed))
		assert.ErrorIs(t, err, booking.ErrSlotNotAvailable)

		pending := newBooking(day, "10:00", domain.StatusPending)
		_, err = repo.Create(ctx, pending)
		require.NoError(t, err)

		err = repo.UpdateStatus(ctx, pending.ID, domain.StatusConfirmed)
		assert.ErrorIs(t, err, booking.ErrSlotNotAvailable)
	})

	t.Run("exists confirmed and confirmed slots", func(t *testing.T) {
		slot := domain.SlotKey{DayKey: day, Time: "10:00"}

		exists, err := repo.ExistsConfirmed(ctx, slot, "")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsConfirmed(ctx, domain.SlotKey{DayKey: day, Time: "09:00"}, "")
		require.NoError(t, err)
		assert.False(t, exists)

		slots, err := repo.ListConfirmedSlots(ctx, &day)
		require.NoError(t, err)
		assert.Equal(t, []domain.SlotKey{slot}, slots)
	})

	t.Run("list with filter", func(t *testing.T) {
		status := domain.StatusPending
		list, err := repo.List(ctx, domain.BookingsFilter{Status: &status, DayKey: &day})
		require.NoError(t, err)
		require.Len(t, list, 2)
		// 10:00 раньше 09:00 при сортировке по убыванию времени
		assert.Equal(t, types.TimeLabel("10:00"), list[0].Time)
		assert.Equal(t, types.TimeLabel("09:00"), list[1].Time)
	})

	t.Run("lock slot requires transaction", func(t *testing.T) {
		slot := domain.SlotKey{DayKey: day, Time: "11:00"}

		err := repo.LockSlot(ctx, slot)
		assert.ErrorIs(t, err, booking.ErrTransaction)

		err = tm.Do(ctx, func(ctx context.Context) error {
			if err := repo.LockSlot(ctx, slot); err != nil {
				return err
			}
			_, err := repo.GetByIDForUpdate(ctx, uuid.NewString())
			assert.ErrorIs(t, err, booking.ErrBookingNotFound)
			return nil
		})
		require.NoError(t, err)
	})
}
