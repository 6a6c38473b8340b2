package domain

import "time"

// Payment запись о платеже, созданном во внешнем платёжном шлюзе
// ID назначается шлюзом, статус хранится как прозрачная строка шлюза
type Payment struct {
	ID            string
	Status        string
	Currency      string
	Amount        float64
	ByUser        int64
	ReservationID int64
	CreatedAt     time.Time
}
