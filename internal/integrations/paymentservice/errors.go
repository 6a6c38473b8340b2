package paymentservice

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платёж не найден в шлюзе
	ErrPaymentNotFound = errors.New("paymentservice client: payment not found")

	// ErrPaymentRejected возвращается, когда шлюз отклонил создание платежа
	ErrPaymentRejected = errors.New("paymentservice client: payment rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")
)
