package models

import (
	"time"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
)

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        int64    `json:"id"`
	StationID int64    `json:"stationId"`
	UserID    int64    `json:"userId"`
	StaffID   *int64   `json:"staffId,omitempty"`
	Status    int      `json:"status"`
	Date      string   `json:"date"`      // "2026-09-01"
	StartTime string   `json:"startTime"` // RFC 3339
	EndTime   string   `json:"endTime"`   // RFC 3339
	Amount    *float64 `json:"amount,omitempty"`
	CreatedAt string   `json:"createdAt"` // RFC 3339
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:        r.ID,
		StationID: r.StationID,
		UserID:    r.UserID,
		StaffID:   r.StaffID,
		Status:    r.Status,
		Date:      r.Date.Format(domain.DateFormat),
		StartTime: r.StartTime.Format(time.RFC3339),
		EndTime:   r.EndTime.Format(time.RFC3339),
		Amount:    r.Amount,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if dto := FromDomainReservation(r); dto != nil {
			resp.Reservations = append(resp.Reservations, *dto)
		}
	}

	return resp
}
