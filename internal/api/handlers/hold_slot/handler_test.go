package hold_slot

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubenautodetail/autodetailapp/internal/domain"
	holdSlot "github.com/rubenautodetail/autodetailapp/internal/usecase/hold_slot"
)

type fakeUseCase struct {
	resp *holdSlot.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *holdSlot.Request) (*holdSlot.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/hold-slot", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	expiresAt := time.Date(2026, 3, 10, 12, 10, 0, 0, time.UTC)

	t.Run("successful hold", func(t *testing.T) {
		uc := &fakeUseCase{resp: &holdSlot.Response{
			Success: true,
			Hold: &domain.Hold{
				Token:           "hold_1_abc",
				ContractorID:    "c-1",
				ContractorName:  "Alpha Detailing",
				Date:            time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
				TimeWindow:      domain.WindowMorning,
				DurationMinutes: 120,
				ExpiresAt:       expiresAt,
			},
		}}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(t, h, `{"zipCode":"94103","date":"2026-03-16","timeWindow":"morning"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HoldSlotResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.True(t, resp.Success)
		assert.Equal(t, "hold_1_abc", resp.HoldToken)
		assert.Equal(t, "2026-03-10T12:10:00Z", resp.ExpiresAt)
		require.NotNil(t, resp.Contractor)
		assert.Equal(t, "Alpha Detailing", resp.Contractor.Name)
		require.NotNil(t, resp.Slot)
		assert.Equal(t, "2026-03-16", resp.Slot.Date)
		assert.Equal(t, "morning", resp.Slot.TimeWindow)
		assert.Equal(t, 120, resp.Slot.Duration)
		assert.Empty(t, resp.Message)
	})

	t.Run("slot taken is 200 with success=false", func(t *testing.T) {
		uc := &fakeUseCase{resp: &holdSlot.Response{
			Success: false,
			Message: "This time slot is no longer available. Please select another.",
		}}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(t, h, `{"zipCode":"94103","date":"2026-03-16","timeWindow":"morning"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HoldSlotResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
		assert.Empty(t, resp.HoldToken)
		assert.Nil(t, resp.Contractor)
	})

	t.Run("invalid time window is 400", func(t *testing.T) {
		uc := &fakeUseCase{err: holdSlot.ErrInvalidTimeWindow}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(t, h, `{"zipCode":"94103","date":"2026-03-16","timeWindow":"night"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		h := NewHandler(&fakeUseCase{}, nopLogger{})

		rec := doRequest(t, h, `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal error is 500", func(t *testing.T) {
		uc := &fakeUseCase{err: holdSlot.ErrInternal}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(t, h, `{"zipCode":"94103","date":"2026-03-16","timeWindow":"morning"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
