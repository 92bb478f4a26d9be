package http

import (
	"net/http"

	"github.com/MKhiriev/fin360/internal/utils"
	"github.com/MKhiriev/fin360/models"
)

func (h *Handler) voiceCommand(w http.ResponseWriter, r *http.Request) {
	var req models.VoiceCommandRequest
	if !decodeJSON(w, r, "*Handler.voiceCommand", &req) {
		return
	}

	cmd, err := h.services.VoiceService.Interpret(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.voiceCommand", err)
		return
	}

	utils.WriteJSON(w, cmd, http.StatusOK)
}
