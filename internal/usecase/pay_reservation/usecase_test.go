package pay_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	reservationRepo "github.com/babypavshiy/GameClubBooking/internal/infra/storage/reservation"
	"github.com/babypavshiy/GameClubBooking/internal/integrations/paymentservice"
	"github.com/babypavshiy/GameClubBooking/pkg/ptr"
)

type fakeReservationRepo struct {
	reservation *domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.reservation == nil || f.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.reservation, nil
}

type fakePaymentRepo struct {
	stored []*domain.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) error {
	f.stored = append(f.stored, p)
	return nil
}

func (f *fakePaymentRepo) GetByReservationID(_ context.Context, reservationID int64) ([]*domain.Payment, error) {
	result := make([]*domain.Payment, 0)
	for _, p := range f.stored {
		if p.ReservationID == reservationID {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakePaymentClient struct {
	payment     *paymentservice.Payment
	err         error
	lastPayload *paymentservice.CreatePaymentRequest
	createCalls int

	gateway map[string]*paymentservice.Payment
}

func (f *fakePaymentClient) CreatePayment(_ context.Context, payload *paymentservice.CreatePaymentRequest) (*paymentservice.Payment, error) {
	f.createCalls++
	f.lastPayload = payload
	if f.err != nil {
		return nil, f.err
	}
	return f.payment, nil
}

func (f *fakePaymentClient) GetPayment(_ context.Context, paymentID string) (*paymentservice.Payment, error) {
	p, ok := f.gateway[paymentID]
	if !ok {
		return nil, paymentservice.ErrPaymentNotFound
	}
	return p, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func payableReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        1,
		StationID: 1,
		UserID:    10,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Amount:    ptr.Ptr(750.0),
	}
}

func gatewayPayment() *paymentservice.Payment {
	return &paymentservice.Payment{
		ID:     "2d6c8a3e-000f-5000-8000-145f6df21d6f",
		Status: "pending",
		Amount: paymentservice.Amount{Value: "750.00", Currency: "RUB"},
		Confirmation: &paymentservice.Confirmation{
			Type:            "redirect",
			ConfirmationURL: "https://yoomoney.ru/checkout/payments/v2/contract?orderId=2d6c8a3e",
		},
		CreatedAt: "2026-09-01T12:00:00Z",
	}
}

func TestExecute_Success(t *testing.T) {
	paymentRepo := &fakePaymentRepo{}
	client := &fakePaymentClient{payment: gatewayPayment()}
	uc := NewUseCase(&fakeReservationRepo{reservation: payableReservation()}, paymentRepo, client,
		"https://club.example/payment/result", noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 10})
	require.NoError(t, err)

	assert.Equal(t, "2d6c8a3e-000f-5000-8000-145f6df21d6f", resp.PaymentID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 750.0, resp.Amount)
	assert.Equal(t, "RUB", resp.Currency)
	assert.NotEmpty(t, resp.ConfirmationURL)

	// Сумма уходит в шлюз строкой с двумя знаками
	require.NotNil(t, client.lastPayload)
	assert.Equal(t, "750.00", client.lastPayload.Amount.Value)
	assert.True(t, client.lastPayload.Capture)
	assert.Equal(t, "https://club.example/payment/result", client.lastPayload.Confirmation.ReturnURL)

	// Запись о платеже сохранена
	require.Len(t, paymentRepo.stored, 1)
	assert.Equal(t, int64(1), paymentRepo.stored[0].ReservationID)
	assert.Equal(t, int64(10), paymentRepo.stored[0].ByUser)
}

func TestExecute_ReusesExistingPayment(t *testing.T) {
	// Повторный запрос оплаты не создаёт дубль: сохранённый платёж
	// перечитывается из шлюза и отдаётся как есть
	existing := gatewayPayment()
	paymentRepo := &fakePaymentRepo{stored: []*domain.Payment{{
		ID:            existing.ID,
		Status:        "pending",
		Currency:      "RUB",
		Amount:        750.0,
		ByUser:        10,
		ReservationID: 1,
	}}}
	client := &fakePaymentClient{
		gateway: map[string]*paymentservice.Payment{existing.ID: existing},
	}
	uc := NewUseCase(&fakeReservationRepo{reservation: payableReservation()}, paymentRepo, client, "", noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 10})
	require.NoError(t, err)

	assert.Equal(t, existing.ID, resp.PaymentID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 0, client.createCalls)
	assert.Len(t, paymentRepo.stored, 1)
}

func TestExecute_CanceledPaymentNotReused(t *testing.T) {
	canceled := gatewayPayment()
	canceled.Status = "canceled"
	paymentRepo := &fakePaymentRepo{stored: []*domain.Payment{{
		ID:            canceled.ID,
		Status:        "pending",
		Currency:      "RUB",
		Amount:        750.0,
		ByUser:        10,
		ReservationID: 1,
	}}}
	fresh := gatewayPayment()
	fresh.ID = "3f7d9b4e-111a-5000-8000-0d2c81ab9e01"
	client := &fakePaymentClient{
		payment: fresh,
		gateway: map[string]*paymentservice.Payment{canceled.ID: canceled},
	}
	uc := NewUseCase(&fakeReservationRepo{reservation: payableReservation()}, paymentRepo, client, "", noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 10})
	require.NoError(t, err)

	assert.Equal(t, fresh.ID, resp.PaymentID)
	assert.Equal(t, 1, client.createCalls)
}

func TestExecute_StaleRecordUnknownToGateway(t *testing.T) {
	// Запись без платежа в шлюзе не блокирует создание нового
	paymentRepo := &fakePaymentRepo{stored: []*domain.Payment{{
		ID:            "lost-payment-id",
		Status:        "pending",
		Currency:      "RUB",
		Amount:        750.0,
		ByUser:        10,
		ReservationID: 1,
	}}}
	client := &fakePaymentClient{payment: gatewayPayment(), gateway: map[string]*paymentservice.Payment{}}
	uc := NewUseCase(&fakeReservationRepo{reservation: payableReservation()}, paymentRepo, client, "", noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, client.createCalls)
	assert.Equal(t, gatewayPayment().ID, resp.PaymentID)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakePaymentRepo{}, &fakePaymentClient{}, "", noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 42, UserID: 10})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_NoAmount(t *testing.T) {
	res := payableReservation()
	res.Amount = nil
	uc := NewUseCase(&fakeReservationRepo{reservation: res}, &fakePaymentRepo{}, &fakePaymentClient{}, "", noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 10})
	assert.ErrorIs(t, err, ErrNoAmount)

	res.Amount = ptr.Ptr(0.0)
	_, err = uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 10})
	assert.ErrorIs(t, err, ErrNoAmount)
}

func TestExecute_GatewayRejected(t *testing.T) {
	client := &fakePaymentClient{err: paymentservice.ErrPaymentRejected}
	uc := NewUseCase(&fakeReservationRepo{reservation: payableReservation()}, &fakePaymentRepo{}, client, "", noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 10})
	assert.ErrorIs(t, err, ErrPaymentRejected)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakePaymentRepo{}, &fakePaymentClient{}, "", noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 0, UserID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
