package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Рабочие часы клуба и сетка слотов
// Слоты предлагаются с 09:00 с шагом в час; генератор идёт, пока курсор
// не перевалит за 21:59:59, поэтому последний слот начинается в 21:00
const (
	SlotStepMinutes = 60

	BusinessOpenHour = 9

	SlotGridEndHour   = 21
	SlotGridEndMinute = 59
	SlotGridEndSecond = 59
)

// BusinessSlotsPerDay количество слотов в сетке (09:00 .. 21:00)
const BusinessSlotsPerDay = 13
