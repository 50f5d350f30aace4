package create_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/essenza-booking/internal/usecase/create_booking"
	"github.com/m04kA/essenza-booking/pkg/logger"
)

type stubUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

const body = `{"dayKey":"2025-06-10","time":"09:30","serviceId":"lips","clientName":"Anna","clientPhone":"+48500100200"}`

func TestHandler_AutoConfirmFlag(t *testing.T) {
	for _, autoConfirm := range []bool{false, true} {
		t.Run(fmt.Sprintf("autoConfirm=%v", autoConfirm), func(t *testing.T) {
			uc := &stubUseCase{resp: &createBooking.Response{
				ID:        "b-1",
				DayKey:    "2025-06-10",
				Time:      "09:30",
				Status:    "pending",
				CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
				UpdatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			}}
			h := NewHandler(uc, logger.NewNop(), autoConfirm)

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))

			require.Equal(t, http.StatusCreated, rec.Code)
			require.NotNil(t, uc.got)
			assert.Equal(t, autoConfirm, uc.got.AutoConfirm)
			assert.Equal(t, "lips", uc.got.ServiceID)
			assert.Contains(t, rec.Body.String(), `"createdAt":"2025-06-01T10:00:00Z"`)
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: time is required", createBooking.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "unknown service", err: createBooking.ErrUnknownService, want: http.StatusBadRequest},
		{name: "slot taken", err: createBooking.ErrSlotNotAvailable, want: http.StatusConflict},
		{name: "internal", err: createBooking.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.NewNop(), false)

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))

			assert.Equal(t, tt.want, rec.Code)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		uc := &stubUseCase{}
		h := NewHandler(uc, logger.NewNop(), false)

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"dayKey":`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, uc.got)
	})
}
