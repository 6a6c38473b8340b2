package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	"github.com/babypavshiy/GameClubBooking/pkg/types"
)

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func dayTime(hour, minute int) time.Time {
	return time.Date(testDate.Year(), testDate.Month(), testDate.Day(), hour, minute, 0, 0, time.UTC)
}

func testReservation(start, end time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:        1,
		StationID: 1,
		UserID:    1,
		Date:      testDate,
		StartTime: start,
		EndTime:   end,
	}
}

func TestGenerateAllSlots_BusinessGrid(t *testing.T) {
	slots := generateAllSlots(dayTime(9, 0), time.Date(testDate.Year(), testDate.Month(), testDate.Day(), 21, 59, 59, 0, time.UTC))

	require.Len(t, slots, domain.BusinessSlotsPerDay)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("21:00"), slots[len(slots)-1])
}

func TestOccupiedSlots_FullHourWindow(t *testing.T) {
	// [09:00, 11:00) занимает метки 09:00 и 10:00, но не 11:00
	occupied := occupiedSlots([]*domain.Reservation{
		testReservation(dayTime(9, 0), dayTime(11, 0)),
	})

	assert.Contains(t, occupied, types.TimeString("09:00"))
	assert.Contains(t, occupied, types.TimeString("10:00"))
	assert.NotContains(t, occupied, types.TimeString("11:00"))
}

func TestOccupiedSlots_PartialHour(t *testing.T) {
	// Бронирование на часть часа блокирует содержащий его слот
	occupied := occupiedSlots([]*domain.Reservation{
		testReservation(dayTime(9, 15), dayTime(9, 45)),
	})

	assert.Contains(t, occupied, types.TimeString("09:00"))
	assert.NotContains(t, occupied, types.TimeString("10:00"))
}

func TestOccupiedSlots_SpillsIntoBusinessHours(t *testing.T) {
	// Окно, начавшееся до открытия, блокирует и 08:00, и 09:00
	occupied := occupiedSlots([]*domain.Reservation{
		testReservation(dayTime(8, 30), dayTime(9, 30)),
	})

	assert.Contains(t, occupied, types.TimeString("08:00"))
	assert.Contains(t, occupied, types.TimeString("09:00"))
	assert.NotContains(t, occupied, types.TimeString("10:00"))
}

func TestAvailableSlots_NeverNil(t *testing.T) {
	all := generateAllSlots(dayTime(9, 0), dayTime(10, 0))
	occupied := map[types.TimeString]struct{}{
		"09:00": {},
		"10:00": {},
	}

	available := availableSlots(all, occupied)
	require.NotNil(t, available)
	assert.Empty(t, available)
}

func TestAvailableSlots_PreservesGridOrder(t *testing.T) {
	all := generateAllSlots(dayTime(9, 0), time.Date(testDate.Year(), testDate.Month(), testDate.Day(), 21, 59, 59, 0, time.UTC))
	occupied := map[types.TimeString]struct{}{
		"10:00": {},
		"15:00": {},
	}

	available := availableSlots(all, occupied)
	require.Len(t, available, domain.BusinessSlotsPerDay-2)
	assert.Equal(t, types.TimeString("09:00"), available[0])
	assert.Equal(t, types.TimeString("11:00"), available[1])
}
