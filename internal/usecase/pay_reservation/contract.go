package pay_reservation

import (
	"context"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	"github.com/babypavshiy/GameClubBooking/internal/integrations/paymentservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// PaymentRepository интерфейс репозитория записей о платежах
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByReservationID(ctx context.Context, reservationID int64) ([]*domain.Payment, error)
}

// PaymentServiceClient интерфейс клиента платёжного шлюза
type PaymentServiceClient interface {
	CreatePayment(ctx context.Context, payload *paymentservice.CreatePaymentRequest) (*paymentservice.Payment, error)
	GetPayment(ctx context.Context, paymentID string) (*paymentservice.Payment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
