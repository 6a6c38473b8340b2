package pay_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/babypavshiy/GameClubBooking/internal/api/handlers"
	"github.com/babypavshiy/GameClubBooking/internal/api/middleware"
	payReservation "github.com/babypavshiy/GameClubBooking/internal/usecase/pay_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgNoAmount             = "у бронирования не задана сумма к оплате"
	msgPaymentRejected      = "платёж отклонён платёжным шлюзом"
)

type Handler struct {
	useCase PayReservationUseCase
	logger  Logger
}

func NewHandler(useCase PayReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /reservations/{reservationId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/payment - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/{id}/payment - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &payReservation.Request{
		ReservationID: reservationID,
		UserID:        userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, payReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/payment - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, payReservation.ErrNoAmount):
			h.logger.Warn("POST /reservations/{id}/payment - Reservation has no amount: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgNoAmount)

		case errors.Is(err, payReservation.ErrPaymentRejected):
			h.logger.Warn("POST /reservations/{id}/payment - Payment rejected: reservation_id=%d, user_id=%d",
				reservationID, userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentRejected)

		default:
			h.logger.Error("POST /reservations/{id}/payment - Failed to create payment: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/payment - Payment created successfully: reservation_id=%d, payment_id=%s",
		reservationID, result.PaymentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
