package station

import "errors"

var (
	// ErrStationNotFound возвращается, когда станция не найдена
	ErrStationNotFound = errors.New("station.repository: station not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("station.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("station.repository: failed to execute query")
)
