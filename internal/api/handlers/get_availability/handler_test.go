package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/babypavshiy/GameClubBooking/internal/usecase/get_availability"
	"github.com/babypavshiy/GameClubBooking/pkg/types"
)

type fakeUseCase struct {
	resp    *getAvailability.Response
	err     error
	lastReq *getAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, h *Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailability.Response{
			Date:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Slots: []types.TimeString{"09:00", "10:00", "21:00"},
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec, env := doRequest(t, h, "/api/v1/reservations/availability/?date=2026-09-01")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", env.Status)

	var slots []string
	require.NoError(t, json.Unmarshal(env.Data, &slots))
	assert.Equal(t, []string{"09:00", "10:00", "21:00"}, slots)
}

func TestHandle_StationFilter(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{Slots: []types.TimeString{}}}
	h := NewHandler(uc, noopLogger{})

	rec, _ := doRequest(t, h, "/api/v1/reservations/availability/?date=2026-09-01&stationId=3")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq.StationID)
	assert.Equal(t, int64(3), *uc.lastReq.StationID)
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	rec, env := doRequest(t, h, "/api/v1/reservations/availability/")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", env.Status)
}

func TestHandle_MalformedDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	rec, env := doRequest(t, h, "/api/v1/reservations/availability/?date=01-09-2026")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", env.Status)
}

func TestHandle_InvalidStationID(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	rec, _ := doRequest(t, h, "/api/v1/reservations/availability/?date=2026-09-01&stationId=abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NonPositiveStationID(t *testing.T) {
	// "0" парсится в handler, но отбрасывается валидацией use case:
	// такой отказ это 400, а не 500
	uc := &fakeUseCase{err: fmt.Errorf("%w: stationID must be positive", getAvailability.ErrInvalidInput)}
	h := NewHandler(uc, noopLogger{})

	rec, env := doRequest(t, h, "/api/v1/reservations/availability/?date=2026-09-01&stationId=0")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", env.Status)
	require.NotNil(t, uc.lastReq.StationID)
	assert.Equal(t, int64(0), *uc.lastReq.StationID)
}

func TestHandle_UseCaseError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("storage down")}
	h := NewHandler(uc, noopLogger{})

	rec, env := doRequest(t, h, "/api/v1/reservations/availability/?date=2026-09-01")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error", env.Status)
}

func TestHandle_EmptySlotsIsArray(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{Slots: []types.TimeString{}}}
	h := NewHandler(uc, noopLogger{})

	rec, env := doRequest(t, h, "/api/v1/reservations/availability/?date=2026-09-01")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(env.Data))
}
