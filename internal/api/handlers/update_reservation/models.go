package update_reservation

import (
	"time"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	updateReservation "github.com/babypavshiy/GameClubBooking/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model.
// Все поля опциональны: отсутствующее поле сохраняет текущее значение
type UpdateReservationRequest struct {
	StationID *int64   `json:"stationId,omitempty"`
	UserID    *int64   `json:"userId,omitempty"`
	StaffID   *int64   `json:"staffId,omitempty"`
	Status    *int     `json:"status,omitempty"`
	Date      *string  `json:"date,omitempty"`      // "2026-09-01"
	StartTime *string  `json:"startTime,omitempty"` // RFC 3339
	EndTime   *string  `json:"endTime,omitempty"`   // RFC 3339
	Amount    *float64 `json:"amount,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64    `json:"id"`
	StationID int64    `json:"stationId"`
	UserID    int64    `json:"userId"`
	StaffID   *int64   `json:"staffId,omitempty"`
	Status    int      `json:"status"`
	Date      string   `json:"date"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Amount    *float64 `json:"amount,omitempty"`
	CreatedAt string   `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID int64) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ID:        reservationID,
		StationID: r.StationID,
		UserID:    r.UserID,
		StaffID:   r.StaffID,
		Status:    r.Status,
		Amount:    r.Amount,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.EndTime != nil {
		endTime, err := time.Parse(time.RFC3339, *r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		StationID: resp.StationID,
		UserID:    resp.UserID,
		StaffID:   resp.StaffID,
		Status:    resp.Status,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
		Amount:    resp.Amount,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
