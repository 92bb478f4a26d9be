package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/utils"
)

// maxBodySize caps JSON request bodies.
const maxBodySize = 1 << 20

// decodeJSON reads the request body into v. On failure it answers 400 and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, funcName string, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		message := errInvalidJSON.Error()
		if errors.Is(err, io.EOF) {
			message = "empty request body"
		}
		logger.FromRequest(r).Warn().Err(err).Str("func", funcName).Msg(message)
		utils.WriteError(w, message, http.StatusBadRequest)
		return false
	}
	return true
}

// requireUserID returns the authenticated user id or answers 401.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
