package get_availability

import (
	getAvailability "github.com/babypavshiy/GameClubBooking/internal/usecase/get_availability"
)

// FromUseCaseResponse конвертирует ответ use case в список меток слотов.
// Ответ всегда массив строк, пустой день отдаёт все слоты сетки
func FromUseCaseResponse(resp *getAvailability.Response) []string {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}
	return slots
}
