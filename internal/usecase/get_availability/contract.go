package get_availability

import (
	"context"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// List получает бронирования по фильтру (дата обязательна для этого usecase),
	// отсортированные по времени начала
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
