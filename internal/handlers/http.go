// Package handlers exposes the bot's HTTP observability surface.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/diegoclair/slack-notify-bot/internal/scheduler"
)

// StatusProvider is the read-only view the handlers need from the scheduler.
type StatusProvider interface {
	Status() scheduler.Snapshot
}

type Handler struct {
	sched StatusProvider
	log   zerolog.Logger
}

func New(sched StatusProvider, log zerolog.Logger) *Handler {
	return &Handler{
		sched: sched,
		log:   log.With().Str("component", "http").Logger(),
	}
}

// Routes registers the handler's endpoints on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc("/scheduler/status", h.HandleSchedulerStatus)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

// HandleSchedulerStatus serves a JSON snapshot of the armed timer set.
func (h *Handler) HandleSchedulerStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.sched.Status()); err != nil {
		h.log.Error().Err(err).Msg("failed to encode scheduler status")
	}
}
