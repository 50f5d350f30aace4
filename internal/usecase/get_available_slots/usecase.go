package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/essenza-booking/internal/domain"
	scheduleRepo "github.com/m04kA/essenza-booking/internal/infra/storage/schedule"
	"github.com/m04kA/essenza-booking/pkg/types"
)

// UseCase use case расчета свободного времени
// Результат считается заново при каждом вызове в одной read-only транзакции и не кэшируется
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// FreeTimes возвращает время дня, на которое нет подтвержденного бронирования
// pending и canceled бронирования слот не занимают
func (uc *UseCase) FreeTimes(ctx context.Context, dayKey string) (*FreeTimesResponse, error) {
	// 1. Валидация входных данных
	key, err := types.ParseDayKey(dayKey)
	if err != nil {
		uc.logger.Warn("FreeTimes: invalid day key=%q: %v", dayKey, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var free []types.TimeLabel

	// 2. Расписание и занятые слоты читаем из одного снимка
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		schedule, err := uc.scheduleRepo.Get(txCtx, key)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				free = make([]types.TimeLabel, 0)
				return nil
			}
			uc.logger.Error("FreeTimes: failed to get schedule for day=%s: %v", key, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		slots, err := uc.bookingRepo.ListConfirmedSlots(txCtx, &key)
		if err != nil {
			uc.logger.Error("FreeTimes: failed to get confirmed slots for day=%s: %v", key, err)
			return fmt.Errorf("%w: failed to get confirmed slots: %v", ErrInternal, err)
		}

		free = schedule.FreeTimes(takenByDay(slots)[key])
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("FreeTimes: day=%s, free=%d", key, len(free))
	return &FreeTimesResponse{DayKey: key, Times: free}, nil
}

// FreeCountByDay возвращает количество свободных слотов для каждого дня с расписанием
// Если from указан, дни раньше from не учитываются
func (uc *UseCase) FreeCountByDay(ctx context.Context, from *string) (*FreeCountResponse, error) {
	var fromKey *types.DayKey
	if from != nil && *from != "" {
		key, err := types.ParseDayKey(*from)
		if err != nil {
			uc.logger.Warn("FreeCountByDay: invalid from=%q: %v", *from, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		fromKey = &key
	}

	days := make(map[types.DayKey]int)

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		schedules, err := uc.scheduleRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("FreeCountByDay: failed to list schedules: %v", err)
			return fmt.Errorf("%w: failed to list schedules: %v", ErrInternal, err)
		}

		slots, err := uc.bookingRepo.ListConfirmedSlots(txCtx, nil)
		if err != nil {
			uc.logger.Error("FreeCountByDay: failed to get confirmed slots: %v", err)
			return fmt.Errorf("%w: failed to get confirmed slots: %v", ErrInternal, err)
		}

		taken := takenByDay(slots)
		for _, schedule := range schedules {
			if schedule.IsEmpty() {
				continue
			}
			if fromKey != nil && schedule.DayKey.IsBefore(*fromKey) {
				continue
			}
			if n := len(schedule.FreeTimes(taken[schedule.DayKey])); n > 0 {
				days[schedule.DayKey] = n
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("FreeCountByDay: %d days with free slots", len(days))
	return &FreeCountResponse{Days: days}, nil
}

// takenByDay группирует занятые слоты по дням
func takenByDay(slots []domain.SlotKey) map[types.DayKey]map[types.TimeLabel]bool {
	taken := make(map[types.DayKey]map[types.TimeLabel]bool)
	for _, slot := range slots {
		if taken[slot.DayKey] == nil {
			taken[slot.DayKey] = make(map[types.TimeLabel]bool)
		}
		taken[slot.DayKey][slot.Time] = true
	}
	return taken
}
