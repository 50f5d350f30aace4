package domain

import (
	"sort"
	"time"

	"github.com/m04kA/essenza-booking/pkg/types"
)

// Booking заявка на запись клиента в конкретный слот (день + время)
type Booking struct {
	ID          string
	DayKey      types.DayKey
	Time        types.TimeLabel
	ServiceID   string
	ClientName  string
	ClientPhone string
	ClientEmail *string
	Note        *string
	Status      BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Slot возвращает пару (день, время), которую занимает бронирование
func (b *Booking) Slot() SlotKey {
	return SlotKey{DayKey: b.DayKey, Time: b.Time}
}

// IsConfirmed returns true if the booking occupies its slot
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCanceled
}

// SlotKey единица бронируемой емкости: день + время
type SlotKey struct {
	DayKey types.DayKey
	Time   types.TimeLabel
}

// String возвращает ключ слота в виде "2025-06-10 09:30"
func (k SlotKey) String() string {
	return k.DayKey.String() + " " + k.Time.String()
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	Status *BookingStatus // Фильтр по статусу (опционально)
	DayKey *types.DayKey  // Фильтр по дню (опционально)
	Time   *types.TimeLabel
}

// SortForAdmin сортирует бронирования для панели администратора:
// сначала по рангу статуса (pending, confirmed, canceled),
// внутри группы по (день, время) от самых поздних к самым ранним
func SortForAdmin(bookings []*Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if a.Status.Rank() != b.Status.Rank() {
			return a.Status.Rank() < b.Status.Rank()
		}
		if a.DayKey != b.DayKey {
			return a.DayKey > b.DayKey
		}
		return a.Time > b.Time
	})
}
