package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/internal/infra/storage/memory"
	"github.com/m04kA/essenza-booking/pkg/logger"
	"github.com/m04kA/essenza-booking/pkg/metrics"
	"github.com/m04kA/essenza-booking/pkg/ptr"
)

type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (s *sequenceIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return "b" + string(rune('0'+s.next))
}

func newTestUseCase() (*UseCase, *memory.BookingRepository) {
	store := memory.NewStore()
	repo := memory.NewBookingRepository(store)
	uc := NewUseCase(
		repo,
		domain.NewCatalog(domain.DefaultServices()),
		memory.NewTxManager(store),
		metrics.NopRecorder{},
		logger.NewNop(),
	)
	return uc, repo
}

func validRequest() *Request {
	return &Request{
		DayKey:      "2025-06-10",
		Time:        "09:30",
		ServiceID:   "lips",
		ClientName:  "Anna Kowalska",
		ClientPhone: "+48500100200",
	}
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	tests := []struct {
		name   string
		modify func(r *Request)
		err    error
	}{
		{name: "missing day", modify: func(r *Request) { r.DayKey = "" }, err: ErrInvalidInput},
		{name: "bad day", modify: func(r *Request) { r.DayKey = "2025-13-01" }, err: ErrInvalidInput},
		{name: "missing time", modify: func(r *Request) { r.Time = "" }, err: ErrInvalidInput},
		{name: "bad time", modify: func(r *Request) { r.Time = "9:30" }, err: ErrInvalidInput},
		{name: "blank name", modify: func(r *Request) { r.ClientName = "   " }, err: ErrInvalidInput},
		{name: "missing phone", modify: func(r *Request) { r.ClientPhone = "" }, err: ErrInvalidInput},
		{name: "bad email", modify: func(r *Request) { r.ClientEmail = ptr.Ptr("not-an-email") }, err: ErrInvalidInput},
		{name: "unknown service", modify: func(r *Request) { r.ServiceID = "massage" }, err: ErrUnknownService},
		{name: "missing service", modify: func(r *Request) { r.ServiceID = "" }, err: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)

			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("unknown service is invalid input", func(t *testing.T) {
		assert.True(t, errors.Is(ErrUnknownService, ErrInvalidInput))
	})
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("client request is pending", func(t *testing.T) {
		uc, repo := newTestUseCase()

		req := validRequest()
		req.ClientEmail = ptr.Ptr("  ")
		req.Note = ptr.Ptr(" first visit ")

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "pending", resp.Status)
		assert.Nil(t, resp.ClientEmail)
		require.NotNil(t, resp.Note)
		assert.Equal(t, "first visit", *resp.Note)

		stored, err := repo.GetByID(ctx, resp.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, stored.Status)
	})

	t.Run("pending bookings do not block each other", func(t *testing.T) {
		uc, _ := newTestUseCase()

		first, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)
		second, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("confirmed booking blocks slot regardless of auto confirm", func(t *testing.T) {
		uc, _ := newTestUseCase()

		manual := validRequest()
		manual.AutoConfirm = true
		resp, err := uc.Execute(ctx, manual)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)

		_, err = uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)

		again := validRequest()
		again.AutoConfirm = true
		_, err = uc.Execute(ctx, again)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)

		other := validRequest()
		other.Time = "10:00"
		_, err = uc.Execute(ctx, other)
		assert.NoError(t, err)
	})

	t.Run("id provider", func(t *testing.T) {
		uc, _ := newTestUseCase()
		uc.idProvider = &sequenceIDs{}

		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, "b1", resp.ID)
	})
}

func TestUseCase_Execute_ConcurrentManualBookings(t *testing.T) {
	uc, repo := newTestUseCase()
	ctx := context.Background()

	const n = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := validRequest()
			req.AutoConfirm = true
			_, err := uc.Execute(ctx, req)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrSlotNotAvailable):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, rejected)

	slots, err := repo.ListConfirmedSlots(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}
