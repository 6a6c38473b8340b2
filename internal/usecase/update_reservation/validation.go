package update_reservation

import (
	"fmt"
	"time"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: reservation ID must be positive", ErrInvalidInput)
	}

	if req.StationID != nil && *req.StationID <= 0 {
		return fmt.Errorf("%w: stationID must be positive", ErrInvalidInput)
	}

	if req.UserID != nil && *req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	return nil
}

// mergeReservation накладывает непустые поля запроса на сохранённое бронирование
// Отсутствующее поле сохраняет прежнее значение, а не значение по умолчанию
func mergeReservation(existing *domain.Reservation, req *Request) *domain.Reservation {
	merged := *existing

	if req.StationID != nil {
		merged.StationID = *req.StationID
	}
	if req.UserID != nil {
		merged.UserID = *req.UserID
	}
	if req.StaffID != nil {
		merged.StaffID = req.StaffID
	}
	if req.Status != nil {
		merged.Status = *req.Status
	}
	if req.Date != nil {
		merged.Date = *req.Date
	}
	if req.StartTime != nil {
		merged.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		merged.EndTime = *req.EndTime
	}
	if req.Amount != nil {
		merged.Amount = req.Amount
	}

	return &merged
}

// validateWindow проверяет инварианты итогового временного окна
func validateWindow(date, start, end time.Time) error {
	if !start.Before(end) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if !isSameDay(start, date) || !isSameDay(end, date) {
		return fmt.Errorf("%w: startTime and endTime must fall on the reservation date", ErrInvalidInput)
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
