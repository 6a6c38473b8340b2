package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
)

// UseCase use case расчёта свободных слотов на дату
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет use case расчёта свободных слотов
// Read-only: сетка слотов минус занятые метки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, station=%v",
		req.Date.Format(domain.DateFormat), req.StationID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Полная сетка слотов рабочих часов: 09:00 .. 21:59:59 с шагом в час
	gridStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(),
		domain.BusinessOpenHour, 0, 0, 0, req.Date.Location())
	gridEnd := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(),
		domain.SlotGridEndHour, domain.SlotGridEndMinute, domain.SlotGridEndSecond, 0, req.Date.Location())

	allSlots := generateAllSlots(gridStart, gridEnd)

	// 3. Бронирования на дату, отсортированные по времени начала
	filter := domain.ReservationsFilter{
		StationID: req.StationID,
		Date:      &req.Date,
	}

	reservations, err := uc.reservationRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Вычитаем занятые метки из сетки
	occupied := occupiedSlots(reservations)
	available := availableSlots(allSlots, occupied)

	uc.logger.Info("GetAvailability: %d of %d slots available on %s",
		len(available), len(allSlots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: available,
	}, nil
}
