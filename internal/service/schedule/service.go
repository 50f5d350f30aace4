package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/essenza-booking/internal/domain"
	scheduleRepo "github.com/m04kA/essenza-booking/internal/infra/storage/schedule"
	"github.com/m04kA/essenza-booking/internal/service/schedule/models"
	"github.com/m04kA/essenza-booking/pkg/ptr"
	"github.com/m04kA/essenza-booking/pkg/types"
)

// Service сервис рабочих часов (какие слоты предлагаются в какой день)
// Изменения расписания не трогают бронирования
type Service struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// SetDaySchedule полностью заменяет рабочие часы дня
// Пустой список отклоняется (для этого есть ClearDay), повторы удаляются
func (s *Service) SetDaySchedule(ctx context.Context, dayKey string, times []string) (*models.DayScheduleResponse, error) {
	s.logger.Info("SetDaySchedule: day=%s, times=%d", dayKey, len(times))

	key, err := types.ParseDayKey(dayKey)
	if err != nil {
		s.logger.Warn("SetDaySchedule: invalid day key=%q: %v", dayKey, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(times) == 0 {
		s.logger.Warn("SetDaySchedule: empty times for day=%s", key)
		return nil, fmt.Errorf("%w: times must not be empty", ErrInvalidInput)
	}

	labels, err := normalizeTimes(times)
	if err != nil {
		s.logger.Warn("SetDaySchedule: invalid times for day=%s: %v", key, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.save(ctx, &domain.DaySchedule{DayKey: key, Times: labels})
}

// SetWorkingHours генерирует рабочие часы по диапазону и сохраняет их
func (s *Service) SetWorkingHours(ctx context.Context, dayKey string, req models.WorkingHoursRequest) (*models.DayScheduleResponse, error) {
	req = req.WithDefaults()
	interval := ptr.Value(req.IntervalMinutes)
	s.logger.Info("SetWorkingHours: day=%s, from=%s, to=%s, interval=%d",
		dayKey, req.From, req.To, interval)

	schedule, err := GenerateWorkingHours(dayKey, req.From, req.To, interval)
	if err != nil {
		s.logger.Warn("SetWorkingHours: generation failed for day=%s: %v", dayKey, err)
		return nil, err
	}

	return s.save(ctx, schedule)
}

func (s *Service) save(ctx context.Context, schedule *domain.DaySchedule) (*models.DayScheduleResponse, error) {
	if err := s.scheduleRepo.Upsert(ctx, schedule); err != nil {
		s.logger.Error("SetDaySchedule: repository error for day=%s: %v", schedule.DayKey, err)
		return nil, fmt.Errorf("%w: SetDaySchedule - repository error: %v", ErrInternal, err)
	}

	s.warnOrphaned(ctx, "SetDaySchedule", schedule)

	s.logger.Info("SetDaySchedule: saved %d times for day=%s", len(schedule.Times), schedule.DayKey)
	return models.FromDomainSchedule(schedule), nil
}

// ClearDay удаляет рабочие часы дня; повторный вызов не является ошибкой
func (s *Service) ClearDay(ctx context.Context, dayKey string) error {
	s.logger.Info("ClearDay: day=%s", dayKey)

	key, err := types.ParseDayKey(dayKey)
	if err != nil {
		s.logger.Warn("ClearDay: invalid day key=%q: %v", dayKey, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	deleted, err := s.scheduleRepo.Delete(ctx, key)
	if err != nil {
		s.logger.Error("ClearDay: repository error for day=%s: %v", key, err)
		return fmt.Errorf("%w: ClearDay - repository error: %v", ErrInternal, err)
	}

	if !deleted {
		s.logger.Info("ClearDay: day=%s had no schedule", key)
		return nil
	}

	s.warnOrphaned(ctx, "ClearDay", &domain.DaySchedule{DayKey: key})

	s.logger.Info("ClearDay: cleared day=%s", key)
	return nil
}

// GetDaySchedule возвращает рабочие часы дня; для дня без расписания пустой список
func (s *Service) GetDaySchedule(ctx context.Context, dayKey string) (*models.DayScheduleResponse, error) {
	key, err := types.ParseDayKey(dayKey)
	if err != nil {
		s.logger.Warn("GetDaySchedule: invalid day key=%q: %v", dayKey, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	schedule, err := s.scheduleRepo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return models.FromDomainSchedule(&domain.DaySchedule{DayKey: key}), nil
		}
		s.logger.Error("GetDaySchedule: repository error for day=%s: %v", key, err)
		return nil, fmt.Errorf("%w: GetDaySchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// ListSchedules возвращает рабочие часы всех дней
func (s *Service) ListSchedules(ctx context.Context) (*models.ScheduleListResponse, error) {
	schedules, err := s.scheduleRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListSchedules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSchedules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSchedules: fetched %d days", len(schedules))
	return models.FromDomainScheduleList(schedules), nil
}

// warnOrphaned пишет предупреждение о подтвержденных бронированиях на время,
// которое больше не предлагается в этот день. Бронирования не изменяются.
func (s *Service) warnOrphaned(ctx context.Context, op string, schedule *domain.DaySchedule) {
	slots, err := s.bookingRepo.ListConfirmedSlots(ctx, &schedule.DayKey)
	if err != nil {
		s.logger.Warn("%s: failed to check confirmed bookings for day=%s: %v", op, schedule.DayKey, err)
		return
	}

	orphaned := make([]string, 0)
	for _, slot := range slots {
		if !schedule.Contains(slot.Time) {
			orphaned = append(orphaned, slot.Time.String())
		}
	}

	if len(orphaned) > 0 {
		s.logger.Warn("%s: day=%s has confirmed bookings outside working hours: %s",
			op, schedule.DayKey, strings.Join(orphaned, ", "))
	}
}
