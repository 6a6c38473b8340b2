package update_reservation

import (
	"time"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
)

// Request модель запроса на частичное обновление бронирования
// nil-поле означает "оставить сохранённое значение"
type Request struct {
	ID        int64
	StationID *int64
	UserID    *int64
	StaffID   *int64
	Status    *int
	Date      *time.Time
	StartTime *time.Time
	EndTime   *time.Time
	Amount    *float64
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID        int64
	StationID int64
	UserID    int64
	StaffID   *int64
	Status    int
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
	Amount    *float64
	CreatedAt time.Time
}

// fromDomain конвертирует domain модель в ответ usecase
func fromDomain(res *domain.Reservation) *Response {
	return &Response{
		ID:        res.ID,
		StationID: res.StationID,
		UserID:    res.UserID,
		StaffID:   res.StaffID,
		Status:    res.Status,
		Date:      res.Date,
		StartTime: res.StartTime,
		EndTime:   res.EndTime,
		Amount:    res.Amount,
		CreatedAt: res.CreatedAt,
	}
}
