package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/essenza-booking/internal/domain"
	bookingRepo "github.com/m04kA/essenza-booking/internal/infra/storage/booking"
)

// UseCase use case подтверждения бронирования администратором
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     MetricsRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute подтверждает бронирование
// Перед сменой статуса слот повторно проверяется под той же блокировкой, что и при создании:
// из нескольких pending-заявок на один слот подтвердить можно только одну
func (uc *UseCase) Execute(ctx context.Context, id string) (*Response, error) {
	uc.logger.Info("ConfirmBooking: booking id=%s", id)

	var (
		result  *domain.Booking
		changed bool
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ConfirmBooking: booking id=%s not found", id)
				return ErrBookingNotFound
			}
			uc.logger.Error("ConfirmBooking: failed to get booking id=%s: %v", id, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Повторное подтверждение ничего не меняет
		if booking.IsConfirmed() {
			result = booking
			return nil
		}

		if !booking.Status.CanTransitionTo(domain.StatusConfirmed) {
			uc.logger.Warn("ConfirmBooking: booking id=%s has status=%s", id, booking.Status)
			return ErrInvalidTransition
		}

		slot := booking.Slot()

		// 3. Блокируем слот и проверяем, что его не занял другой
		if err := uc.bookingRepo.LockSlot(txCtx, slot); err != nil {
			uc.logger.Error("ConfirmBooking: failed to lock slot %s: %v", slot, err)
			return fmt.Errorf("%w: failed to lock slot: %v", ErrInternal, err)
		}

		taken, err := uc.bookingRepo.ExistsConfirmed(txCtx, slot, id)
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to check slot %s: %v", slot, err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}

		if taken {
			uc.logger.Warn("ConfirmBooking: slot %s already confirmed for another booking", slot)
			return ErrSlotConflict
		}

		// 4. Меняем статус
		if err := uc.bookingRepo.UpdateStatus(txCtx, id, domain.StatusConfirmed); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("ConfirmBooking: slot %s taken concurrently", slot)
				return ErrSlotConflict
			}
			uc.logger.Error("ConfirmBooking: failed to update booking id=%s: %v", id, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		// 5. Перечитываем для актуального updated_at
		updated, err := uc.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to reload booking id=%s: %v", id, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = updated
		changed = true
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			uc.metrics.IncSlotRejection("confirm")
		}
		return nil, err
	}

	if changed {
		uc.metrics.IncBookingTransition(domain.StatusConfirmed.String())
		uc.logger.Info("ConfirmBooking: booking id=%s confirmed", id)
	} else {
		uc.logger.Info("ConfirmBooking: booking id=%s already confirmed", id)
	}

	return &Response{
		ID:          result.ID,
		DayKey:      result.DayKey,
		Time:        result.Time,
		ServiceID:   result.ServiceID,
		ClientName:  result.ClientName,
		ClientPhone: result.ClientPhone,
		ClientEmail: result.ClientEmail,
		Note:        result.Note,
		Status:      result.Status.String(),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
