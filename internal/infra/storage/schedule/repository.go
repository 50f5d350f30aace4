package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/pkg/dbmetrics"
	"github.com/m04kA/essenza-booking/pkg/psqlbuilder"
	"github.com/m04kA/essenza-booking/pkg/types"
)

// Repository репозиторий рабочих часов по дням (таблица day_schedules)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или полностью заменяет расписание дня
func (r *Repository) Upsert(ctx context.Context, schedule *domain.DaySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("day_schedules").
		Columns("day_key", "times", "updated_at").
		Values(schedule.DayKey, pq.Array(types.ToStrings(schedule.Times)), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (day_key) DO UPDATE SET times = EXCLUDED.times, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Get получает расписание дня
func (r *Repository) Get(ctx context.Context, dayKey types.DayKey) (*domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_key", "times").
		From("day_schedules").
		Where(squirrel.Eq{"day_key": dayKey}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	schedule, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan schedule: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// List получает расписания всех дней, упорядоченные по дню
func (r *Repository) List(ctx context.Context) ([]*domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_key", "times").
		From("day_schedules").
		OrderBy("day_key ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.DaySchedule, 0)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// Delete удаляет расписание дня целиком
// Возвращает false, если расписания не было
func (r *Repository) Delete(ctx context.Context, dayKey types.DayKey) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("day_schedules").
		Where(squirrel.Eq{"day_key": dayKey}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*domain.DaySchedule, error) {
	var (
		dayKey string
		times  pq.StringArray
	)

	if err := row.Scan(&dayKey, &times); err != nil {
		return nil, err
	}

	labels := make([]types.TimeLabel, len(times))
	for i, t := range times {
		labels[i] = types.TimeLabel(t)
	}

	return &domain.DaySchedule{
		DayKey: types.DayKey(dayKey),
		Times:  labels,
	}, nil
}
