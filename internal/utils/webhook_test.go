package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyWebhookSignature(t *testing.T) {
	key := []byte("webhook-test-key")
	secret := "whsec_d2ViaG9vay10ZXN0LWtleQ=="
	now := time.Unix(1_760_000_000, 0)
	ts := strconv.FormatInt(now.Unix(), 10)
	body := []byte(`{"type":"user.created"}`)
	valid := "v1," + SignWebhook(key, "msg_1", ts, body)

	tests := []struct {
		name    string
		secret  string
		sig     WebhookSignature
		body    []byte
		wantErr error
	}{
		{name: "valid", secret: secret, sig: WebhookSignature{ID: "msg_1", Timestamp: ts, Signatures: valid}, body: body},
		{
			name:   "second of several signatures",
			secret: secret,
			sig:    WebhookSignature{ID: "msg_1", Timestamp: ts, Signatures: "v1,AAAA v2,zzz " + valid},
			body:   body,
		},
		{
			name:    "tampered body",
			secret:  secret,
			sig:     WebhookSignature{ID: "msg_1", Timestamp: ts, Signatures: valid},
			body:    []byte(`{"type":"user.deleted"}`),
			wantErr: ErrWebhookSignature,
		},
		{
			name:    "other message id",
			secret:  secret,
			sig:     WebhookSignature{ID: "msg_2", Timestamp: ts, Signatures: valid},
			body:    body,
			wantErr: ErrWebhookSignature,
		},
		{
			name:    "stale timestamp",
			secret:  secret,
			sig:     WebhookSignature{ID: "msg_1", Timestamp: strconv.FormatInt(now.Add(-time.Hour).Unix(), 10), Signatures: valid},
			body:    body,
			wantErr: ErrWebhookTimestamp,
		},
		{
			name:    "garbage timestamp",
			secret:  secret,
			sig:     WebhookSignature{ID: "msg_1", Timestamp: "soon", Signatures: valid},
			body:    body,
			wantErr: ErrWebhookTimestamp,
		},
		{
			name:    "secret not base64",
			secret:  "whsec_%%%",
			sig:     WebhookSignature{ID: "msg_1", Timestamp: ts, Signatures: valid},
			body:    body,
			wantErr: ErrWebhookSecret,
		},
		{name: "empty secret", sig: WebhookSignature{ID: "msg_1", Timestamp: ts, Signatures: valid}, body: body, wantErr: ErrWebhookSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyWebhookSignature(tt.secret, tt.sig, tt.body, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWebhookKey(t *testing.T) {
	key, err := WebhookKey("whsec_d2ViaG9vay10ZXN0LWtleQ==")
	require.NoError(t, err)
	assert.Equal(t, "webhook-test-key", string(key))

	key, err = WebhookKey("d2ViaG9vay10ZXN0LWtleQ==")
	require.NoError(t, err)
	assert.Equal(t, "webhook-test-key", string(key))

	for _, bad := range []string{"", "whsec_", "whsec_!!!"} {
		_, err = WebhookKey(bad)
		assert.ErrorIs(t, err, ErrWebhookSecret, bad)
	}
}
