package domain

import "time"

// Reservation бронирование игровой станции
type Reservation struct {
	ID        int64
	StationID int64
	UserID    int64
	StaffID   *int64 // ID сотрудника, оформившего бронь (может отсутствовать)
	Status    int    // Прозрачный код статуса, интерпретируется потребителями
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
	Amount    *float64 // Сумма к оплате (опционально, для платёжного флоу)
	CreatedAt time.Time
}

// Overlaps возвращает true, если интервал [start, end) пересекается
// с интервалом бронирования [StartTime, EndTime)
// Строгие неравенства: бронирования "впритык" не пересекаются
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	StationID *int64     // Фильтр по станции (опционально)
	Date      *time.Time // Фильтр по дате бронирования (опционально)
}
