package paymentservice

// Amount денежная сумма в формате шлюза (значение строкой)
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// Confirmation параметры подтверждения платежа
type Confirmation struct {
	Type            string `json:"type"`
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

// CreatePaymentRequest запрос на создание платежа в шлюзе
type CreatePaymentRequest struct {
	Amount       Amount       `json:"amount"`
	Confirmation Confirmation `json:"confirmation"`
	Capture      bool         `json:"capture"`
	Description  string       `json:"description,omitempty"`
}

// Payment платёж, созданный шлюзом
type Payment struct {
	ID           string        `json:"id"`
	Status       string        `json:"status"`
	Amount       Amount        `json:"amount"`
	Confirmation *Confirmation `json:"confirmation,omitempty"`
	CreatedAt    string        `json:"created_at"`
}
