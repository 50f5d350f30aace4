package memory

import (
	"context"
	"sort"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/internal/infra/storage/schedule"
	"github.com/m04kA/essenza-booking/pkg/types"
)

// ScheduleRepository репозиторий расписаний в памяти
type ScheduleRepository struct {
	store *Store
}

// NewScheduleRepository создает репозиторий расписаний поверх Store
func NewScheduleRepository(store *Store) *ScheduleRepository {
	return &ScheduleRepository{store: store}
}

// Upsert создает или полностью заменяет расписание дня
func (r *ScheduleRepository) Upsert(_ context.Context, s *domain.DaySchedule) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.schedules[s.DayKey] = append([]types.TimeLabel(nil), s.Times...)
	return nil
}

// Get получает расписание дня
func (r *ScheduleRepository) Get(_ context.Context, dayKey types.DayKey) (*domain.DaySchedule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	times, ok := r.store.schedules[dayKey]
	if !ok {
		return nil, schedule.ErrScheduleNotFound
	}

	return &domain.DaySchedule{
		DayKey: dayKey,
		Times:  append([]types.TimeLabel(nil), times...),
	}, nil
}

// List получает расписания всех дней, упорядоченные по дню
func (r *ScheduleRepository) List(_ context.Context) ([]*domain.DaySchedule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	schedules := make([]*domain.DaySchedule, 0, len(r.store.schedules))
	for dayKey, times := range r.store.schedules {
		schedules = append(schedules, &domain.DaySchedule{
			DayKey: dayKey,
			Times:  append([]types.TimeLabel(nil), times...),
		})
	}

	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].DayKey.IsBefore(schedules[j].DayKey)
	})

	return schedules, nil
}

// Delete удаляет расписание дня
func (r *ScheduleRepository) Delete(_ context.Context, dayKey types.DayKey) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.schedules[dayKey]; !ok {
		return false, nil
	}
	delete(r.store.schedules, dayKey)
	return true, nil
}
