package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Ошибка хранилища никогда не превращается в "пустой" или "полный"
	// список слотов, только в явный отказ
	ErrInternal = errors.New("get_availability: internal error")
)
