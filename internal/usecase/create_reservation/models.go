package create_reservation

import (
	"time"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	StationID int64      // ID станции
	UserID    int64      // ID пользователя
	StaffID   *int64     // ID сотрудника (опционально)
	Status    int        // Код статуса (прозрачное поле)
	Date      time.Time  // Дата бронирования (без времени)
	StartTime time.Time  // Начало окна
	EndTime   time.Time  // Конец окна (исключительно)
	Amount    *float64   // Сумма к оплате (опционально)
}

// Response модель ответа с созданным бронированием
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
