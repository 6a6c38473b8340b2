package get_availability

import (
	"time"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	"github.com/babypavshiy/GameClubBooking/pkg/types"
)

// generateAllSlots генерирует метки слотов от start с шагом в час,
// пока курсор не перевалит за end
// Для рабочей сетки (09:00 .. 21:59:59) это ровно 13 меток: 09:00 .. 21:00
// Последовательность детерминирована и не зависит от бронирований
func generateAllSlots(start, end time.Time) []types.TimeString {
	allSlots := make([]types.TimeString, 0, domain.BusinessSlotsPerDay)

	for cursor := start; !cursor.After(end); cursor = cursor.Add(time.Hour) {
		allSlots = append(allSlots, types.NewTimeString(cursor))
	}

	return allSlots
}

// occupiedSlots вычисляет множество занятых часовых меток
//
// Для каждого бронирования обходятся ВСЕ часы суток (00:00 .. 23:59:59),
// и метка L помечается занятой, когда startLabel <= L < endLabel
// (метки сравниваются как строки HH:MM). За счёт этого бронирование,
// занимающее часть часа, блокирует весь содержащий его слот, а
// бронирование, начавшееся до 09:00 и закончившееся после, блокирует 09:00.
// Метки вне рабочих часов тоже могут попасть в множество, но их нет
// в итоговой сетке кандидатов, так что на результат они не влияют.
// Обход ограничен сутками даты бронирования: переход через полночь
// непредставим.
func occupiedSlots(reservations []*domain.Reservation) map[types.TimeString]struct{} {
	occupied := make(map[types.TimeString]struct{})

	for _, res := range reservations {
		startLabel := types.NewTimeString(res.StartTime)
		endLabel := types.NewTimeString(res.EndTime)

		dayStart := time.Date(res.Date.Year(), res.Date.Month(), res.Date.Day(), 0, 0, 0, 0, res.Date.Location())
		dayEnd := time.Date(res.Date.Year(), res.Date.Month(), res.Date.Day(), 23, 59, 59, 0, res.Date.Location())

		for cursor := dayStart; !cursor.After(dayEnd); cursor = cursor.Add(time.Hour) {
			label := types.NewTimeString(cursor)
			if !label.IsBefore(startLabel) && label.IsBefore(endLabel) {
				occupied[label] = struct{}{}
			}
		}
	}

	return occupied
}

// availableSlots вычитает занятые метки из полной сетки, сохраняя порядок
// Результат никогда не nil
func availableSlots(allSlots []types.TimeString, occupied map[types.TimeString]struct{}) []types.TimeString {
	available := make([]types.TimeString, 0, len(allSlots))

	for _, slot := range allSlots {
		if _, taken := occupied[slot]; !taken {
			available = append(available, slot)
		}
	}

	return available
}
