package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrStationNotFound возвращается, когда новая станция не найдена
	ErrStationNotFound = errors.New("update_reservation: station not found")

	// ErrSlotNotAvailable возвращается, когда новое окно пересекается с чужим
	// бронированием станции (собственное окно из проверки исключено)
	ErrSlotNotAvailable = errors.New("update_reservation: time slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
