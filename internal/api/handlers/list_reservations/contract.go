package list_reservations

import (
	"context"

	"github.com/babypavshiy/GameClubBooking/internal/service/reservations/models"
)

type ReservationService interface {
	List(ctx context.Context, userID int64) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
