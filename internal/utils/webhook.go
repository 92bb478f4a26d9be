package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Webhook signature errors returned by VerifyWebhookSignature.
var (
	ErrWebhookSecret    = errors.New("invalid webhook secret")
	ErrWebhookTimestamp = errors.New("webhook timestamp outside tolerance")
	ErrWebhookSignature = errors.New("no matching webhook signature")
)

// WebhookTolerance bounds the clock skew accepted between the sender's
// timestamp and now.
const WebhookTolerance = 5 * time.Minute

const webhookSecretPrefix = "whsec_"

// WebhookSignature holds the headers that authenticate one delivery.
type WebhookSignature struct {
	// ID is the unique message id (svix-id).
	ID string
	// Timestamp is the send time in unix seconds (svix-timestamp).
	Timestamp string
	// Signatures is a space separated list of "v1,<base64>" entries
	// (svix-signature).
	Signatures string
}

// VerifyWebhookSignature checks a delivery signed with the scheme used by
// the identity provider's webhooks: HMAC-SHA256 over "id.timestamp.body"
// keyed with the base64 part of a "whsec_" secret.
func VerifyWebhookSignature(secret string, sig WebhookSignature, body []byte, now time.Time) error {
	key, err := WebhookKey(secret)
	if err != nil {
		return err
	}

	ts, err := strconv.ParseInt(sig.Timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrWebhookTimestamp, sig.Timestamp)
	}
	sent := time.Unix(ts, 0)
	if sent.Before(now.Add(-WebhookTolerance)) || sent.After(now.Add(WebhookTolerance)) {
		return ErrWebhookTimestamp
	}

	expected := SignWebhook(key, sig.ID, sig.Timestamp, body)
	for _, candidate := range strings.Fields(sig.Signatures) {
		version, value, ok := strings.Cut(candidate, ",")
		if !ok || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(value), []byte(expected)) {
			return nil
		}
	}

	return ErrWebhookSignature
}

// WebhookKey decodes the signing key of a "whsec_" secret. The prefix is
// optional.
func WebhookKey(secret string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, webhookSecretPrefix))
	if err != nil || len(key) == 0 {
		return nil, ErrWebhookSecret
	}
	return key, nil
}

// SignWebhook returns the base64 "v1" signature of a delivery.
func SignWebhook(key []byte, id, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(id))
	mac.Write([]byte{'.'})
	mac.Write([]byte(timestamp))
	mac.Write([]byte{'.'})
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
