package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	"github.com/babypavshiy/GameClubBooking/pkg/dbmetrics"
	"github.com/babypavshiy/GameClubBooking/pkg/psqlbuilder"
)

// Repository репозиторий записей о платежах
// ID платежа назначается внешним шлюзом, не БД
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись о платеже
func (r *Repository) Create(ctx context.Context, p *domain.Payment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payment").
		Columns(
			"id",
			"status",
			"currency",
			"amount",
			"by_user",
			"reservation",
			"created_at",
		).
		Values(
			p.ID,
			p.Status,
			p.Currency,
			p.Amount,
			p.ByUser,
			p.ReservationID,
			p.CreatedAt,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByReservationID получает платежи по ID бронирования
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"status",
		"currency",
		"amount",
		"by_user",
		"reservation",
		"created_at",
	).
		From("payment").
		Where(squirrel.Eq{"reservation": reservationID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		var createdAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.Status,
			&p.Currency,
			&p.Amount,
			&p.ByUser,
			&p.ReservationID,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByReservationID - scan row: %v", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}
