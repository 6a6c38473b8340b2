package create_reservation

import (
	"time"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	createReservation "github.com/babypavshiy/GameClubBooking/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	StationID int64    `json:"stationId"`
	UserID    int64    `json:"userId"`
	StaffID   *int64   `json:"staffId,omitempty"`
	Status    int      `json:"status"`
	Date      string   `json:"date"`      // "2026-09-01"
	StartTime string   `json:"startTime"` // RFC 3339
	EndTime   string   `json:"endTime"`   // RFC 3339
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
// (с парсингом даты и границ окна)
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		StationID: r.StationID,
		UserID:    r.UserID,
		StaffID:   r.StaffID,
		Status:    r.Status,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Amount:    r.Amount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
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
