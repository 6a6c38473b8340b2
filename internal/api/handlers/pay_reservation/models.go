package pay_reservation

import (
	payReservation "github.com/babypavshiy/GameClubBooking/internal/usecase/pay_reservation"
)

// PaymentResponse HTTP response model
type PaymentResponse struct {
	PaymentID       string  `json:"paymentId"`
	Status          string  `json:"status"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	ConfirmationURL string  `json:"confirmationUrl"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *payReservation.Response) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:       resp.PaymentID,
		Status:          resp.Status,
		Amount:          resp.Amount,
		Currency:        resp.Currency,
		ConfirmationURL: resp.ConfirmationURL,
	}
}
