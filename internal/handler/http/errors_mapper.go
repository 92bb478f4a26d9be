package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/fin360/internal/adapter"
	"github.com/MKhiriev/fin360/internal/crypto"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/service"
	"github.com/MKhiriev/fin360/internal/store"
	"github.com/MKhiriev/fin360/internal/utils"
)

// errorStatus pairs a sentinel with the status it maps to.
type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order; the first match wins. Errors may wrap
// several sentinels (an unreachable upstream that timed out is both
// adapter.ErrUnavailable and context.DeadlineExceeded), so the more specific
// entries come first.
var errorStatuses = []errorStatus{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrUnknownCurrency, http.StatusBadRequest},
	{service.ErrUnrecognizedCommand, http.StatusUnprocessableEntity},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrAuthNotConfigured, http.StatusUnauthorized},
	{service.ErrAssistantUnavailable, http.StatusServiceUnavailable},
	{service.ErrVoiceUnavailable, http.StatusServiceUnavailable},
	{service.ErrCorruptRecord, http.StatusInternalServerError},

	{store.ErrStockNotFound, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrUserAlreadyExists, http.StatusConflict},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
	{store.ErrDocumentStore, http.StatusInternalServerError},

	// A record that no longer decrypts is a server-side key problem, not
	// something the caller can fix.
	{crypto.ErrDecryption, http.StatusInternalServerError},

	{adapter.ErrBadRequest, http.StatusBadGateway},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrForbidden, http.StatusBadGateway},
	{adapter.ErrNotFound, http.StatusBadGateway},
	{adapter.ErrConflict, http.StatusBadGateway},
	{adapter.ErrBadGateway, http.StatusBadGateway},
	{adapter.ErrInternalServerError, http.StatusBadGateway},
	{adapter.ErrEmptyResponse, http.StatusBadGateway},
	{adapter.ErrUnavailable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the mapped status. Messages
// of server-side failures are not echoed to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Send()

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}
