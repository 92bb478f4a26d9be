package http

import (
	"net/http"

	"github.com/MKhiriev/fin360/internal/utils"
	"github.com/MKhiriev/fin360/models"
)

// uploadChat stores an exchange for the authenticated user. A userId in
// the body is ignored.
func (h *Handler) uploadChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var input models.ChatInput
	if !decodeJSON(w, r, "*Handler.uploadChat", &input) {
		return
	}
	input.UserID = userID

	message, err := h.services.ChatService.UploadChatMessage(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, "*Handler.uploadChat", err)
		return
	}

	utils.WriteJSON(w, message, http.StatusCreated)
}

func (h *Handler) userChats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	messages, err := h.services.ChatService.GetUserChatMessages(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.userChats", err)
		return
	}

	utils.WriteJSON(w, nonNil(messages), http.StatusOK)
}

func (h *Handler) allChats(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.ChatService.GetAllChatMessages(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.allChats", err)
		return
	}

	utils.WriteJSON(w, nonNil(messages), http.StatusOK)
}

func (h *Handler) askAssistant(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req models.AskRequest
	if !decodeJSON(w, r, "*Handler.askAssistant", &req) {
		return
	}

	message, err := h.services.ChatService.Ask(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.askAssistant", err)
		return
	}

	utils.WriteJSON(w, message, http.StatusCreated)
}
