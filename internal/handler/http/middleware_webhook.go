package http

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/utils"
)

// maxWebhookBody caps the payload read for signature verification.
const maxWebhookBody = 1 << 20

// verifyWebhook authenticates identity provider deliveries by their svix
// signature headers. The body is buffered for hashing and restored for the
// next handler.
func (h *Handler) verifyWebhook(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if h.webhookSecret == "" {
			log.Error().Err(ErrWebhookDisabled).Str("func", "*Handler.verifyWebhook").Send()
			utils.WriteError(w, ErrWebhookDisabled.Error(), http.StatusServiceUnavailable)
			return
		}

		sig := utils.WebhookSignature{
			ID:         r.Header.Get("svix-id"),
			Timestamp:  r.Header.Get("svix-timestamp"),
			Signatures: r.Header.Get("svix-signature"),
		}
		if sig.ID == "" || sig.Timestamp == "" || sig.Signatures == "" {
			log.Warn().Err(ErrMissingWebhookHeaders).Str("func", "*Handler.verifyWebhook").Send()
			utils.WriteError(w, ErrMissingWebhookHeaders.Error(), http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifyWebhook").Msg("failed to read request body")
			utils.WriteError(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if err = utils.VerifyWebhookSignature(h.webhookSecret, sig, body, time.Now()); err != nil {
			log.Warn().Err(err).Str("func", "*Handler.verifyWebhook").Str("svix_id", sig.ID).Msg("webhook verification failed")
			utils.WriteError(w, "webhook verification failed", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
