package list_reservations

import (
	"errors"
	"net/http"

	"github.com/babypavshiy/GameClubBooking/internal/api/handlers"
	"github.com/babypavshiy/GameClubBooking/internal/api/middleware"
	"github.com/babypavshiy/GameClubBooking/internal/service/reservations"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgUserNotFound  = "пользователь не найден"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /reservations
// Список всех бронирований, доступен только администраторам и сотрудникам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrUserNotFound):
			h.logger.Warn("GET /reservations - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservations - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
