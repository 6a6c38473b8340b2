package station

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/babypavshiy/GameClubBooking/pkg/dbmetrics"
	"github.com/babypavshiy/GameClubBooking/pkg/psqlbuilder"
)

// Repository репозиторий станций
// Ядро бронирований только проверяет существование станции,
// CRUD станций живёт в отдельном сервисе
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория станций
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Exists проверяет существование станции по ID
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("station").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var exists int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}
