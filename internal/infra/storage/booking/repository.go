package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/pkg/dbmetrics"
	"github.com/m04kA/essenza-booking/pkg/psqlbuilder"
	"github.com/m04kA/essenza-booking/pkg/types"
)

const (
	// pgUniqueViolation нарушение уникального индекса (занятый подтвержденный слот)
	pgUniqueViolation = "23505"
)

var bookingColumns = []string{
	"id",
	"day_key",
	"start_time",
	"service_id",
	"client_name",
	"client_phone",
	"client_email",
	"note",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если бронирование создается сразу подтвержденным, а слот уже занят,
// уникальный индекс по (day_key, start_time) для confirmed вернет ErrSlotNotAvailable
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"day_key",
			"start_time",
			"service_id",
			"client_name",
			"client_phone",
			"client_email",
			"note",
			"status",
		).
		Values(
			booking.ID,
			booking.DayKey,
			booking.Time,
			booking.ServiceID,
			booking.ClientName,
			booking.ClientPhone,
			booking.ClientEmail,
			booking.Note,
			booking.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if isUniqueViolation(err) {
		return nil, ErrSlotNotAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает бронирование по ID с блокировкой строки до конца транзакции
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Booking, error) {
	if !dbmetrics.IsInTransaction(ctx) {
		return nil, fmt.Errorf("%w: GetByIDForUpdate", ErrTransaction)
	}
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id string, forUpdate bool) (*domain.Booking, error) {
	// Невалидный UUID не может существовать в таблице
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBookingNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования с фильтрацией по статусу, дню и времени
// Порядок: сначала новые слоты (day_key DESC, start_time DESC)
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("day_key DESC", "start_time DESC", "created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.DayKey != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day_key": *filter.DayKey})
	}
	if filter.Time != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"start_time": *filter.Time})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListConfirmedSlots возвращает занятые слоты
// Если dayKey указан, только для этого дня
func (r *Repository) ListConfirmedSlots(ctx context.Context, dayKey *types.DayKey) ([]domain.SlotKey, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("day_key", "start_time").
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusConfirmed})

	if dayKey != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day_key": *dayKey})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.SlotKey, 0)
	for rows.Next() {
		var dk, t string
		if err := rows.Scan(&dk, &t); err != nil {
			return nil, fmt.Errorf("%w: ListConfirmedSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, domain.SlotKey{DayKey: types.DayKey(dk), Time: types.TimeLabel(t)})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ExistsConfirmed проверяет, есть ли подтвержденное бронирование на слот,
// не считая бронирования excludeID (пустая строка - без исключения)
func (r *Repository) ExistsConfirmed(ctx context.Context, slot domain.SlotKey, excludeID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := squirrel.And{
		squirrel.Eq{"day_key": slot.DayKey},
		squirrel.Eq{"start_time": slot.Time},
		squirrel.Eq{"status": domain.StatusConfirmed},
	}
	if excludeID != "" {
		where = append(where, squirrel.NotEq{"id": excludeID})
	}

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("bookings").
		Where(where).
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsConfirmed - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsConfirmed - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

// LockSlot берет транзакционную advisory-блокировку на слот
// Блокировка снимается при commit/rollback, поэтому вызов допустим только внутри транзакции
func (r *Repository) LockSlot(ctx context.Context, slot domain.SlotKey) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockSlot", ErrTransaction)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", "slot:"+slot.String()); err != nil {
		return fmt.Errorf("%w: LockSlot - execute: %v", ErrExecQuery, err)
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrBookingNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return ErrSlotNotAvailable
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		dayKey, startTime    string
		status               string
		email, note          sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&dayKey,
		&startTime,
		&booking.ServiceID,
		&booking.ClientName,
		&booking.ClientPhone,
		&email,
		&note,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.DayKey = types.DayKey(dayKey)
	booking.Time = types.TimeLabel(startTime)
	booking.Status = domain.BookingStatus(status)
	if email.Valid {
		booking.ClientEmail = &email.String
	}
	if note.Valid {
		booking.Note = &note.String
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
