package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/isdelr/phishstats/internal/models"
	"github.com/isdelr/phishstats/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for the loaded users.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// GetAll lists users, optionally filtered by the permission query parameter
// (0 for normal users, 1 for admins).
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	param := r.URL.Query().Get("permission")
	if param == "" {
		users, err := h.service.GetAllUsers(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("Failed to retrieve users")
			http.Error(w, "Failed to retrieve users", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, users)
		return
	}

	n, err := strconv.Atoi(param)
	if err != nil {
		http.Error(w, "Invalid permission parameter", http.StatusBadRequest)
		return
	}
	users, err := h.service.GetUsersByPermission(r.Context(), models.Permission(n))
	if err != nil {
		if errors.Is(err, models.ErrInvalidPermission) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Str("permission", param).Msg("Failed to retrieve users by permission")
		http.Error(w, "Failed to retrieve users", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, users)
}
