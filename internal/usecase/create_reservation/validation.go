package create_reservation

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StationID <= 0 {
		return fmt.Errorf("%w: stationID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	return validateWindow(req.Date, req.StartTime, req.EndTime)
}

// validateWindow проверяет инварианты временного окна:
// начало строго раньше конца, оба в пределах даты бронирования
// (окно через полночь непредставимо)
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
