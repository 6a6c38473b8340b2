package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babypavshiy/GameClubBooking/internal/domain"
	reservationRepo "github.com/babypavshiy/GameClubBooking/internal/infra/storage/reservation"
)

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func dayTime(hour, minute int) time.Time {
	return time.Date(testDate.Year(), testDate.Month(), testDate.Day(), hour, minute, 0, 0, time.UTC)
}

type fakeReservationRepo struct {
	stored    []*domain.Reservation
	nextID    int64
	createErr error

	tx                 *fakeTxManager
	createdInTx        bool
	overlapCheckedInTx bool
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.tx != nil {
		f.createdInTx = f.tx.active
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *res
	created.ID = f.nextID
	created.CreatedAt = time.Now().UTC()
	f.stored = append(f.stored, &created)
	return &created, nil
}

func (f *fakeReservationRepo) GetOverlapping(_ context.Context, stationID int64, start, end time.Time, excludeID *int64) ([]*domain.Reservation, error) {
	if f.tx != nil {
		f.overlapCheckedInTx = f.tx.active
	}
	var overlapping []*domain.Reservation
	for _, res := range f.stored {
		if res.StationID != stationID {
			continue
		}
		if excludeID != nil && res.ID == *excludeID {
			continue
		}
		if res.Overlaps(start, end) {
			overlapping = append(overlapping, res)
		}
	}
	return overlapping, nil
}

type fakeStationRepo struct {
	exists map[int64]bool
}

func (f *fakeStationRepo) Exists(_ context.Context, id int64) (bool, error) {
	return f.exists[id], nil
}

// fakeTxManager запоминает, шёл ли вызов внутри DoSerializable
type fakeTxManager struct {
	calls  int
	active bool
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	f.active = true
	defer func() { f.active = false }()
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeReservationRepo) *UseCase {
	tx := &fakeTxManager{}
	repo.tx = tx
	return NewUseCase(repo, &fakeStationRepo{exists: map[int64]bool{1: true}}, tx, noopLogger{})
}

func validRequest() *Request {
	return &Request{
		StationID: 1,
		UserID:    10,
		Date:      testDate,
		StartTime: dayTime(9, 0),
		EndTime:   dayTime(10, 0),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(1), resp.StationID)
	assert.Len(t, repo.stored, 1)
}

func TestExecute_BackToBackWindowsAccepted(t *testing.T) {
	// Полуоткрытые окна: [09:00, 10:00) и [10:00, 11:00) не конфликтуют
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.StartTime = dayTime(10, 0)
	second.EndTime = dayTime(11, 0)

	_, err = uc.Execute(context.Background(), second)
	require.NoError(t, err)
	assert.Len(t, repo.stored, 2)
}

func TestExecute_OverlappingWindowRejected(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	overlapping := validRequest()
	overlapping.StartTime = dayTime(9, 30)
	overlapping.EndTime = dayTime(10, 30)

	_, err = uc.Execute(context.Background(), overlapping)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, repo.stored, 1)
}

func TestExecute_OtherStationDoesNotConflict(t *testing.T) {
	repo := &fakeReservationRepo{}
	stationRepo := &fakeStationRepo{exists: map[int64]bool{1: true, 2: true}}
	uc := NewUseCase(repo, stationRepo, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	otherStation := validRequest()
	otherStation.StationID = 2

	_, err = uc.Execute(context.Background(), otherStation)
	require.NoError(t, err)
	assert.Len(t, repo.stored, 2)
}

func TestExecute_StationNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{})

	req := validRequest()
	req.StationID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStationNotFound)
}

func TestExecute_InvalidWindow(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{})

	// Начало не раньше конца
	req := validRequest()
	req.StartTime = dayTime(10, 0)
	req.EndTime = dayTime(10, 0)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Окно не на дате бронирования
	req = validRequest()
	req.StartTime = dayTime(9, 0).AddDate(0, 0, 1)
	req.EndTime = dayTime(10, 0).AddDate(0, 0, 1)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CheckAndWriteInsideSerializableTx(t *testing.T) {
	// Проверка пересечения и запись обязаны идти в одной сериализуемой
	// транзакции, иначе два конкурентных запроса оба проходят проверку
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.tx.calls)
	assert.True(t, repo.overlapCheckedInTx)
	assert.True(t, repo.createdInTx)
}

func TestExecute_ConstraintViolationAtCommit(t *testing.T) {
	// Exclusion constraint БД срабатывает, когда гонку не поймала
	// проверка в приложении
	repo := &fakeReservationRepo{createErr: reservationRepo.ErrSlotTaken}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}
