package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/utils"
	"github.com/MKhiriev/fin360/models"
)

const eventUserCreated = "user.created"

// identityEvent is the part of an identity provider webhook delivery the
// server reads.
type identityEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		Username       string `json:"username"`
		ImageURL       string `json:"image_url"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

func (e identityEvent) newUserInput() models.NewUserInput {
	input := models.NewUserInput{
		ClerkID:         e.Data.ID,
		FullName:        strings.TrimSpace(e.Data.FirstName + " " + e.Data.LastName),
		UserName:        e.Data.Username,
		ProfileImageURL: e.Data.ImageURL,
	}
	if len(e.Data.EmailAddresses) > 0 {
		input.Email = e.Data.EmailAddresses[0].EmailAddress
	}
	return input
}

// syncUser handles a verified identity provider delivery. Only user
// creation is acted on; other event types are acknowledged and dropped.
func (h *Handler) syncUser(w http.ResponseWriter, r *http.Request) {
	var event identityEvent
	if !decodeJSON(w, r, "*Handler.syncUser", &event) {
		return
	}

	if event.Type != eventUserCreated {
		logger.FromRequest(r).Debug().Str("func", "*Handler.syncUser").Str("type", event.Type).Msg("webhook event ignored")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), event.newUserInput())
	if err != nil {
		writeServiceError(w, r, "*Handler.syncUser", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUserDetails(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.currentUser", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var update models.ProfileUpdate
	if !decodeJSON(w, r, "*Handler.updateCurrentUser", &update) {
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), userID, update)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateCurrentUser", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
