package create_reservation

import (
	"context"
	"time"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetOverlapping(ctx context.Context, stationID int64, start, end time.Time, excludeID *int64) ([]*domain.Reservation, error)
}

// StationRepository интерфейс проверки существования станции
type StationRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
