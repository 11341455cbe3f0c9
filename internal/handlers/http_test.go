package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoclair/slack-notify-bot/internal/scheduler"
)

type stubStatusProvider struct {
	snapshot scheduler.Snapshot
}

func (s stubStatusProvider) Status() scheduler.Snapshot {
	return s.snapshot
}

func TestHandler_HandleSchedulerStatus(t *testing.T) {
	now := time.Date(2024, 6, 1, 19, 58, 0, 0, time.UTC)
	provider := stubStatusProvider{snapshot: scheduler.Snapshot{
		CurrentUTC: now,
		Running:    true,
		ArmedCount: 1,
		Entries: []scheduler.StatusEntry{
			{
				CohortKey:        "20:00",
				Target:           time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC),
				SecondsRemaining: 120,
				MemberCount:      3,
			},
		},
	}}

	h := New(provider, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/scheduler/status", nil)
	rec := httptest.NewRecorder()

	h.HandleSchedulerStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got scheduler.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Running)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "20:00", got.Entries[0].CohortKey)
	assert.Equal(t, int64(120), got.Entries[0].SecondsRemaining)
}

func TestHandler_HandleSchedulerStatus_MethodNotAllowed(t *testing.T) {
	h := New(stubStatusProvider{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/scheduler/status", nil)
	rec := httptest.NewRecorder()

	h.HandleSchedulerStatus(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_HandleHealth(t *testing.T) {
	h := New(stubStatusProvider{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.HandleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
