package handlers

import (
	"net/http"

	"github.com/isdelr/phishstats/internal/services"
	"github.com/rs/zerolog/log"
)

// EventHandler handles HTTP requests for password-change dates and observed IPs.
type EventHandler struct {
	service services.EventServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// GetDates returns every user's password-change dates keyed by user id.
func (h *EventHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.service.GetDatesByUser(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve dates")
		http.Error(w, "Failed to retrieve dates: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, dates)
}

// GetIPs returns every observed IP address.
func (h *EventHandler) GetIPs(w http.ResponseWriter, r *http.Request) {
	ips, err := h.service.GetAllIPs(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve ips")
		http.Error(w, "Failed to retrieve ips: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, ips)
}
