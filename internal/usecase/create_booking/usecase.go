package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/essenza-booking/internal/domain"
	bookingRepo "github.com/m04kA/essenza-booking/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования (заявка клиента или ручная запись администратора)
type UseCase struct {
	bookingRepo BookingRepository
	catalog     ServiceCatalog
	txManager   TransactionManager
	metrics     MetricsRecorder
	idProvider  IDProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog ServiceCatalog,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		txManager:   txManager,
		metrics:     metrics,
		idProvider:  &UUIDProvider{},
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости слота и вставка выполняются в одной транзакции под блокировкой слота,
// поэтому два параллельных запроса на один слот не могут оба пройти проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	normalizeRequest(req)

	uc.logger.Info("CreateBooking: day=%s, time=%s, service=%s, autoConfirm=%t",
		req.DayKey, req.Time, req.ServiceID, req.AutoConfirm)

	slot, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем услугу по каталогу
	if !uc.catalog.Has(req.ServiceID) {
		uc.logger.Warn("CreateBooking: service id=%s not found in catalog", req.ServiceID)
		return nil, ErrUnknownService
	}

	status := domain.StatusPending
	if req.AutoConfirm {
		status = domain.StatusConfirmed
	}

	var result *domain.Booking

	// 3. Проверка и вставка под блокировкой слота
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем слот до конца транзакции
		if err := uc.bookingRepo.LockSlot(txCtx, slot); err != nil {
			uc.logger.Error("CreateBooking: failed to lock slot %s: %v", slot, err)
			return fmt.Errorf("%w: failed to lock slot: %v", ErrInternal, err)
		}

		// 3.2. Подтвержденное бронирование на слот блокирует любую новую заявку
		taken, err := uc.bookingRepo.ExistsConfirmed(txCtx, slot, "")
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot %s: %v", slot, err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}

		if taken {
			uc.logger.Warn("CreateBooking: slot %s already has a confirmed booking", slot)
			return ErrSlotNotAvailable
		}

		// 3.3. Создаем бронирование
		booking := &domain.Booking{
			ID:          uc.idProvider.NewID(),
			DayKey:      slot.DayKey,
			Time:        slot.Time,
			ServiceID:   req.ServiceID,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
			Note:        req.Note,
			Status:      status,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: slot %s taken concurrently", slot)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncSlotRejection("create")
		}
		return nil, err
	}

	uc.metrics.IncBookingTransition(result.Status.String())
	uc.logger.Info("CreateBooking: successfully created booking id=%s, status=%s", result.ID, result.Status)

	// Конвертируем в response
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
