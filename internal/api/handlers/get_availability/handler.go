package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/babypavshiy/GameClubBooking/internal/api/handlers"
	"github.com/babypavshiy/GameClubBooking/internal/domain"
	getAvailability "github.com/babypavshiy/GameClubBooking/internal/usecase/get_availability"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStationID = "некорректный ID станции"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /reservations/availability/
// Query params: date (required, YYYY-MM-DD), stationId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /reservations/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /reservations/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var stationID *int64
	if stationIDStr := query.Get("stationId"); stationIDStr != "" {
		id, err := strconv.ParseInt(stationIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /reservations/availability - Invalid station ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStationID)
			return
		}
		stationID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Date:      date,
		StationID: stationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /reservations/availability - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /reservations/availability - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/availability - Slots retrieved: date=%s, available=%d",
		dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
