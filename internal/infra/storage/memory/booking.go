package memory

import (
	"context"
	"sort"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/internal/infra/storage/booking"
	"github.com/m04kA/essenza-booking/pkg/types"
)

// BookingRepository репозиторий бронирований в памяти
// Повторяет ограничения postgres-схемы: не более одного confirmed на слот
type BookingRepository struct {
	store *Store
}

// NewBookingRepository создает репозиторий бронирований поверх Store
func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

// Create сохраняет новое бронирование
func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if b.IsConfirmed() && r.confirmedExistsLocked(b.Slot(), b.ID) {
		return nil, booking.ErrSlotNotAvailable
	}

	now := r.store.now()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.store.bookings[b.ID] = cloneBooking(b)

	return b, nil
}

// GetByID получает бронирование по ID
func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

// GetByIDForUpdate то же, что GetByID: изоляцию обеспечивает TxManager
func (r *BookingRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Booking, error) {
	return r.GetByID(ctx, id)
}

// List получает бронирования с фильтрацией, новые слоты первыми
func (r *BookingRepository) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.store.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.DayKey != nil && b.DayKey != *filter.DayKey {
			continue
		}
		if filter.Time != nil && b.Time != *filter.Time {
			continue
		}
		result = append(result, cloneBooking(b))
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].DayKey != result[j].DayKey {
			return result[i].DayKey > result[j].DayKey
		}
		if result[i].Time != result[j].Time {
			return result[i].Time > result[j].Time
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// ListConfirmedSlots возвращает занятые слоты, опционально за один день
func (r *BookingRepository) ListConfirmedSlots(_ context.Context, dayKey *types.DayKey) ([]domain.SlotKey, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	slots := make([]domain.SlotKey, 0)
	for _, b := range r.store.bookings {
		if !b.IsConfirmed() {
			continue
		}
		if dayKey != nil && b.DayKey != *dayKey {
			continue
		}
		slots = append(slots, b.Slot())
	}
	return slots, nil
}

// ExistsConfirmed проверяет наличие подтвержденного бронирования на слот, кроме excludeID
func (r *BookingRepository) ExistsConfirmed(_ context.Context, slot domain.SlotKey, excludeID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.confirmedExistsLocked(slot, excludeID), nil
}

// LockSlot ничего не делает: пишущие транзакции уже сериализованы TxManager
func (r *BookingRepository) LockSlot(_ context.Context, _ domain.SlotKey) error {
	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *BookingRepository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}

	if status == domain.StatusConfirmed && r.confirmedExistsLocked(b.Slot(), id) {
		return booking.ErrSlotNotAvailable
	}

	b.Status = status
	b.UpdatedAt = r.store.now()
	return nil
}

func (r *BookingRepository) confirmedExistsLocked(slot domain.SlotKey, excludeID string) bool {
	for id, b := range r.store.bookings {
		if id == excludeID || !b.IsConfirmed() {
			continue
		}
		if b.Slot() == slot {
			return true
		}
	}
	return false
}
