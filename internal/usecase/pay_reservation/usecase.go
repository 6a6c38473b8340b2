package pay_reservation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	reservationRepo "github.com/babypavshiy/GameClubBooking/internal/infra/storage/reservation"
	"github.com/babypavshiy/GameClubBooking/internal/integrations/paymentservice"
)

// defaultCurrency валюта платежей клуба
const defaultCurrency = "RUB"

// statusCanceled статус отменённого платежа в шлюзе
// Такой платёж не переиспользуется, создаётся новый
const statusCanceled = "canceled"

// UseCase use case создания платежа за бронирование
type UseCase struct {
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	paymentClient   PaymentServiceClient
	returnURL       string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	paymentClient PaymentServiceClient,
	returnURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		paymentClient:   paymentClient,
		returnURL:       returnURL,
		logger:          logger,
	}
}

// Execute выполняет use case оплаты бронирования
// Создает платёж во внешнем шлюзе и сохраняет запись о нём
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PayReservation: reservation=%d, user=%d", req.ReservationID, req.UserID)

	if req.ReservationID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: reservationID and userID must be positive", ErrInvalidInput)
	}

	// 1. Загружаем бронирование
	res, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("PayReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("PayReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 2. У бронирования должна быть положительная сумма
	if res.Amount == nil || *res.Amount <= 0 {
		uc.logger.Warn("PayReservation: reservation id=%d has no payable amount", req.ReservationID)
		return nil, ErrNoAmount
	}

	// 3. Если по бронированию уже есть платёж, не создаём дубль:
	// перечитываем его актуальное состояние из шлюза и отдаём его
	records, err := uc.paymentRepo.GetByReservationID(ctx, req.ReservationID)
	if err != nil {
		uc.logger.Error("PayReservation: failed to get payment records for reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get payment records: %v", ErrInternal, err)
	}

	for _, record := range records {
		fresh, err := uc.paymentClient.GetPayment(ctx, record.ID)
		if err != nil {
			if errors.Is(err, paymentservice.ErrPaymentNotFound) {
				// Шлюз не знает этот платёж, запись неактуальна
				uc.logger.Warn("PayReservation: stored payment id=%s unknown to gateway", record.ID)
				continue
			}
			uc.logger.Error("PayReservation: failed to get gateway payment id=%s: %v", record.ID, err)
			return nil, fmt.Errorf("%w: failed to get gateway payment: %v", ErrInternal, err)
		}

		if fresh.Status == statusCanceled {
			continue
		}

		confirmationURL := ""
		if fresh.Confirmation != nil {
			confirmationURL = fresh.Confirmation.ConfirmationURL
		}

		uc.logger.Info("PayReservation: reusing payment id=%s (status=%s) for reservation id=%d",
			fresh.ID, fresh.Status, req.ReservationID)

		return &Response{
			PaymentID:       fresh.ID,
			Status:          fresh.Status,
			Amount:          *res.Amount,
			Currency:        fresh.Amount.Currency,
			ConfirmationURL: confirmationURL,
		}, nil
	}

	// 4. Создаем платёж в шлюзе
	created, err := uc.paymentClient.CreatePayment(ctx, &paymentservice.CreatePaymentRequest{
		Amount: paymentservice.Amount{
			Value:    strconv.FormatFloat(*res.Amount, 'f', 2, 64),
			Currency: defaultCurrency,
		},
		Confirmation: paymentservice.Confirmation{
			Type:      "redirect",
			ReturnURL: uc.returnURL,
		},
		Capture:     true,
		Description: fmt.Sprintf("Reservation #%d", res.ID),
	})
	if err != nil {
		if errors.Is(err, paymentservice.ErrPaymentRejected) {
			uc.logger.Warn("PayReservation: gateway rejected payment for reservation id=%d: %v", req.ReservationID, err)
			return nil, ErrPaymentRejected
		}
		uc.logger.Error("PayReservation: failed to create gateway payment: %v", err)
		return nil, fmt.Errorf("%w: failed to create gateway payment: %v", ErrInternal, err)
	}

	// 5. Сохраняем запись о платеже
	createdAt, err := time.Parse(time.RFC3339, created.CreatedAt)
	if err != nil {
		// Шлюз вернул нестандартную метку времени, используем своё время
		createdAt = time.Now().UTC()
	}

	record := &domain.Payment{
		ID:            created.ID,
		Status:        created.Status,
		Currency:      created.Amount.Currency,
		Amount:        *res.Amount,
		ByUser:        req.UserID,
		ReservationID: res.ID,
		CreatedAt:     createdAt,
	}

	if err := uc.paymentRepo.Create(ctx, record); err != nil {
		uc.logger.Error("PayReservation: failed to store payment record id=%s: %v", created.ID, err)
		return nil, fmt.Errorf("%w: failed to store payment record: %v", ErrInternal, err)
	}

	confirmationURL := ""
	if created.Confirmation != nil {
		confirmationURL = created.Confirmation.ConfirmationURL
	}

	uc.logger.Info("PayReservation: payment id=%s created for reservation id=%d", created.ID, res.ID)

	return &Response{
		PaymentID:       created.ID,
		Status:          created.Status,
		Amount:          *res.Amount,
		Currency:        created.Amount.Currency,
		ConfirmationURL: confirmationURL,
	}, nil
}
