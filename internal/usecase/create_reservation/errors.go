package create_reservation

import "errors"

var (
	// ErrStationNotFound возвращается, когда станция не найдена
	ErrStationNotFound = errors.New("create_reservation: station not found")

	// ErrSlotNotAvailable возвращается, когда окно пересекается с существующим
	// бронированием станции
	ErrSlotNotAvailable = errors.New("create_reservation: time slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
