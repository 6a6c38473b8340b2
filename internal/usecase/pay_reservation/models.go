package pay_reservation

// Request модель запроса на оплату бронирования
type Request struct {
	ReservationID int64 // ID оплачиваемого бронирования
	UserID        int64 // ID пользователя, инициировавшего платёж
}

// Response модель ответа с созданным платежом
type Response struct {
	PaymentID       string  // ID платежа, назначенный шлюзом
	Status          string  // Статус платежа в шлюзе
	Amount          float64 // Сумма платежа
	Currency        string  // Валюта платежа
	ConfirmationURL string  // URL подтверждения для редиректа пользователя
}
