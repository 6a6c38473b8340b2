package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/babypavshiy/GameClubBooking/internal/api/handlers"
	updateReservation "github.com/babypavshiy/GameClubBooking/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateTime      = "некорректный формат даты или времени"
	msgNotFound             = "бронирование не найдено"
	msgStationNotFound      = "станция не найдена"
	msgSlotNotAvailable     = "выбранный временной слот занят"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrStationNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Station not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, updateReservation.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /reservations/{id} - Slot not available: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id} - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id} - Reservation updated successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
