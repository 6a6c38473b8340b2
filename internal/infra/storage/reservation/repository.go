package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	"github.com/babypavshiy/GameClubBooking/pkg/dbmetrics"
	"github.com/babypavshiy/GameClubBooking/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL
const (
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
)

var reservationColumns = []string{
	"id",
	"station_id",
	"user_id",
	"staff_id",
	"status",
	"date",
	"start_time",
	"end_time",
	"amount",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
// Приложение проверяет пересечения слотов перед записью, но последней
// инстанцией служит exclusion constraint на (station_id, tstzrange):
// без него два конкурентных create могут оба пройти проверку
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// mapConstraintErr конвертирует ошибки PostgreSQL в доменные sentinel-ошибки
func mapConstraintErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgExclusionViolation:
			return ErrSlotTaken
		case pgSerializationFailure:
			return ErrSerializationFailure
		}
	}
	return nil
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
// Нарушение exclusion constraint возвращается как ErrSlotTaken
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservation").
		Columns(
			"station_id",
			"user_id",
			"staff_id",
			"status",
			"date",
			"start_time",
			"end_time",
			"amount",
		).
		Values(
			res.StationID,
			res.UserID,
			res.StaffID,
			res.Status,
			res.Date,
			res.StartTime,
			res.EndTime,
			res.Amount,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt)
	if err != nil {
		if mapped := mapConstraintErr(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservation").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку: GetByID предваряет update/delete
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetOverlapping получает бронирования станции, пересекающиеся с окном [start, end)
// Классический тест пересечения полуоткрытых интервалов: start_time < end AND end_time > start
// (строгие неравенства: бронирования "впритык" не конфликтуют)
// excludeID исключает бронирование из проверки (используется при update,
// чтобы бронь не конфликтовала сама с собой)
func (r *Repository) GetOverlapping(ctx context.Context, stationID int64, start, end time.Time, excludeID *int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservation").
		Where(squirrel.Eq{"station_id": stationID}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	// Внутри транзакции блокируем найденные строки до записи
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// List получает бронирования по фильтру
// Для конкретной даты сортировка по времени начала (ASC),
// иначе сначала новые (date DESC, start_time DESC)
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservation")

	if filter.StationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"station_id": *filter.StationID})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"date": *filter.Date}).
			OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("date DESC, start_time DESC")
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

	return scanReservations(rows)
}

// Update перезаписывает изменяемые поля бронирования
// Нарушение exclusion constraint возвращается как ErrSlotTaken
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservation").
		Set("station_id", res.StationID).
		Set("user_id", res.UserID).
		Set("staff_id", res.StaffID).
		Set("status", res.Status).
		Set("date", res.Date).
		Set("start_time", res.StartTime).
		Set("end_time", res.EndTime).
		Set("amount", res.Amount).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapConstraintErr(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронирование по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservation").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в модель бронирования
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.StationID,
		&res.UserID,
		&res.StaffID,
		&res.Status,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&res.Amount,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
