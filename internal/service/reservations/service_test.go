package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	reservationRepo "github.com/babypavshiy/GameClubBooking/internal/infra/storage/reservation"
	"github.com/babypavshiy/GameClubBooking/internal/integrations/userservice"
)

type fakeReservationRepo struct {
	stored  map[int64]*domain.Reservation
	deleted []int64
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeReservationRepo {
	repo := &fakeReservationRepo{stored: make(map[int64]*domain.Reservation)}
	for _, res := range reservations {
		repo.stored[res.ID] = res
	}
	return repo
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.stored[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeReservationRepo) List(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0, len(f.stored))
	for _, res := range f.stored {
		result = append(result, res)
	}
	return result, nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.stored[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.stored, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUserClient struct {
	users map[int64]*userservice.User
}

func (f *fakeUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return user, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testReservation(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		StationID: 1,
		UserID:    10,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().UTC(),
	}
}

func testUsers() *fakeUserClient {
	return &fakeUserClient{users: map[int64]*userservice.User{
		1: {ID: 1, Role: userservice.RoleAdmin, IsActive: true},
		2: {ID: 2, Role: userservice.RoleStaff, IsActive: true},
		3: {ID: 3, Role: userservice.RoleRegular, IsActive: true},
	}}
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeRepo(testReservation(1)), testUsers(), noopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-09-01", resp.Date)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList_RoleGate(t *testing.T) {
	repo := newFakeRepo(testReservation(1), testReservation(2))
	svc := NewService(repo, testUsers(), noopLogger{})

	// Администратор и сотрудник видят список
	resp, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	_, err = svc.List(context.Background(), 2)
	require.NoError(t, err)

	// Обычному пользователю доступ закрыт
	_, err = svc.List(context.Background(), 3)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Неизвестный пользователь
	_, err = svc.List(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo(testReservation(1))
	svc := NewService(repo, testUsers(), noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deleted)

	// Повторное удаление дает NotFound, а не успех
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrReservationNotFound)
}
