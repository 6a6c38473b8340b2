package get_availability

import (
	"time"

	"github.com/babypavshiy/GameClubBooking/pkg/types"
)

// Request модель запроса на расчёт доступных слотов
type Request struct {
	Date      time.Time // Дата, на которую считаются слоты (без времени)
	StationID *int64    // Фильтр по станции (опционально, nil значит все станции)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date  time.Time          // Дата, на которую запрашивались слоты
	Slots []types.TimeString // Метки свободных слотов в порядке сетки, не nil
}
