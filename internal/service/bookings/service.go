package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/essenza-booking/internal/domain"
	bookingRepo "github.com/m04kA/essenza-booking/internal/infra/storage/booking"
	"github.com/m04kA/essenza-booking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями (просмотр и отмена)
// Создание и подтверждение вынесены в use case, т.к. требуют проверки слота
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     MetricsRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// List получает все бронирования для администратора
// Порядок: pending, confirmed, canceled; внутри статуса сначала более поздние слоты
func (s *Service) List(ctx context.Context, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, status=%v", status)

	var filter domain.BookingsFilter
	if status != nil {
		domainStatus, err := domain.ParseBookingStatus(*status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &domainStatus
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	domain.SortForAdmin(bookings)

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование из любого статуса
// Повторная отмена не является ошибкой и возвращает бронирование без изменений
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	var (
		result  *domain.Booking
		changed bool
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки
		booking, err := s.bookingRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%s not found", id)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// 2. Уже отменено
		if booking.IsCancelled() {
			result = booking
			return nil
		}

		if !booking.Status.CanTransitionTo(domain.StatusCanceled) {
			s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
			return ErrInvalidTransition
		}

		// 3. Обновляем статус
		if err := s.bookingRepo.UpdateStatus(txCtx, id, domain.StatusCanceled); err != nil {
			s.logger.Error("Cancel: failed to update status for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Cancel - update status: %v", ErrInternal, err)
		}

		// 4. Перечитываем для актуального updated_at
		updated, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			s.logger.Error("Cancel: failed to reload booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Cancel - reload booking: %v", ErrInternal, err)
		}

		result = updated
		changed = true
		return nil
	})

	if err != nil {
		return nil, err
	}

	if changed {
		s.metrics.IncBookingTransition(domain.StatusCanceled.String())
		s.logger.Info("Cancel: booking id=%s cancelled", id)
	} else {
		s.logger.Info("Cancel: booking id=%s already cancelled", id)
	}

	return models.FromDomainBooking(result), nil
}
