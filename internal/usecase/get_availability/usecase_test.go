package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	"github.com/babypavshiy/GameClubBooking/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
	lastFilter   domain.ReservationsFilter
}

func (f *fakeReservationRepo) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_EmptyDay(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, domain.BusinessSlotsPerDay)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("21:00"), resp.Slots[12])
}

func TestExecute_OccupiedWindowHidden(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			testReservation(dayTime(9, 0), dayTime(11, 0)),
		},
	}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, domain.BusinessSlotsPerDay-2)
	assert.NotContains(t, resp.Slots, types.TimeString("09:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.Contains(t, resp.Slots, types.TimeString("11:00"))
}

func TestExecute_OutOfHoursReservationInvisible(t *testing.T) {
	// Бронирование вне рабочих часов не меняет сетку
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			testReservation(dayTime(22, 0), dayTime(23, 0)),
		},
	}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, domain.BusinessSlotsPerDay)
}

func TestExecute_StationFilterPassedThrough(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := NewUseCase(repo, noopLogger{})

	stationID := int64(7)
	_, err := uc.Execute(context.Background(), &Request{Date: testDate, StationID: &stationID})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.StationID)
	assert.Equal(t, stationID, *repo.lastFilter.StationID)
	require.NotNil(t, repo.lastFilter.Date)
	assert.True(t, repo.lastFilter.Date.Equal(testDate))
}

func TestExecute_RepositoryError(t *testing.T) {
	// Ошибка хранилища это явный отказ, а не пустой или полный список
	repo := &fakeReservationRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: time.Time{}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	badStation := int64(0)
	_, err = uc.Execute(context.Background(), &Request{Date: testDate, StationID: &badStation})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
