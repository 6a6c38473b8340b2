package pay_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("pay_reservation: reservation not found")

	// ErrNoAmount возвращается, когда у бронирования не задана сумма к оплате
	ErrNoAmount = errors.New("pay_reservation: reservation has no payable amount")

	// ErrPaymentRejected возвращается, когда шлюз отклонил платёж
	ErrPaymentRejected = errors.New("pay_reservation: payment rejected by gateway")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pay_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("pay_reservation: internal error")
)
