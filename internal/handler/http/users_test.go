package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/service"
	"github.com/MKhiriev/fin360/internal/store"
	"github.com/MKhiriev/fin360/internal/utils"
	"github.com/MKhiriev/fin360/models"
)

const userCreatedEvent = `{
	"type": "user.created",
	"data": {
		"id": "user_2abc",
		"first_name": "Asha",
		"last_name": "Rao",
		"username": "asha",
		"image_url": "https://img.example.com/asha.png",
		"email_addresses": [{"email_address": "asha@example.com"}, {"email_address": "old@example.com"}]
	}
}`

// signedWebhook builds a delivery signed with the test secret.
func signedWebhook(t *testing.T, body string, sentAt time.Time) *http.Request {
	t.Helper()
	ts := strconv.FormatInt(sentAt.Unix(), 10)
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(body))
	req.Header.Set("svix-id", "msg_1")
	req.Header.Set("svix-timestamp", ts)
	req.Header.Set("svix-signature", "v1,"+utils.SignWebhook([]byte("webhook-test-key"), "msg_1", ts, []byte(body)))
	return req
}

func TestSyncUser_CreatesUser(t *testing.T) {
	var got models.NewUserInput
	router := newRouter(t, &service.Services{
		UserService: &fakeUserService{
			createFn: func(_ context.Context, input models.NewUserInput) (models.UserDetails, error) {
				got = input
				return models.UserDetails{User: models.User{ID: "u-1", ClerkID: input.ClerkID}}, nil
			},
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, signedWebhook(t, userCreatedEvent, time.Now()))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, models.NewUserInput{
		ClerkID:         "user_2abc",
		FullName:        "Asha Rao",
		Email:           "asha@example.com",
		UserName:        "asha",
		ProfileImageURL: "https://img.example.com/asha.png",
	}, got)
	assert.Equal(t, "u-1", decodeBody[models.UserDetails](t, rec).ID)
}

func TestSyncUser_IgnoresOtherEvents(t *testing.T) {
	router := newRouter(t, &service.Services{UserService: &fakeUserService{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, signedWebhook(t, `{"type":"session.created","data":{}}`, time.Now()))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSyncUser_RejectsUnverifiedDeliveries(t *testing.T) {
	called := false
	services := &service.Services{
		UserService: &fakeUserService{
			createFn: func(context.Context, models.NewUserInput) (models.UserDetails, error) {
				called = true
				return models.UserDetails{}, nil
			},
		},
	}
	router := newRouter(t, services)

	t.Run("missing headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(userCreatedEvent)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMissingWebhookHeaders.Error())
	})

	t.Run("tampered body", func(t *testing.T) {
		req := signedWebhook(t, userCreatedEvent, time.Now())
		req.Body = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"type":"user.created","data":{"id":"evil"}}`)).Body

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("replayed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, signedWebhook(t, userCreatedEvent, time.Now().Add(-time.Hour)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no secret configured", func(t *testing.T) {
		services.AuthService = acceptAll()
		unconfigured := NewHandler(services, &config.StructuredConfig{}, logger.Nop()).Init()

		rec := httptest.NewRecorder()
		unconfigured.ServeHTTP(rec, signedWebhook(t, userCreatedEvent, time.Now()))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	assert.False(t, called)
}

func TestCurrentUser(t *testing.T) {
	router := newRouter(t, &service.Services{
		UserService: &fakeUserService{
			getFn: func(_ context.Context, userID string) (models.UserDetails, error) {
				if userID != "u-1" {
					return models.UserDetails{}, store.ErrUserNotFound
				}
				return models.UserDetails{
					User:        models.User{ID: "u-1", Email: "asha@example.com"},
					UserProfile: models.UserProfile{PhoneNumber: "9876543210"},
				}, nil
			},
		},
	})

	rec := do(t, router, http.MethodGet, "/api/users/me", "u-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "u-1", body["_id"])
	assert.Equal(t, "9876543210", body["phoneNumber"])
	assert.NotContains(t, body, "Profile", "the ciphered document is never exposed")

	rec = do(t, router, http.MethodGet, "/api/users/me", "u-404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCurrentUser(t *testing.T) {
	var got models.ProfileUpdate
	router := newRouter(t, &service.Services{
		UserService: &fakeUserService{
			updateFn: func(_ context.Context, userID string, update models.ProfileUpdate) (models.UserDetails, error) {
				got = update
				if update.FinancialProfile != nil && update.FinancialProfile.RiskTolerance == "yolo" {
					return models.UserDetails{}, service.ErrValidationBadEnum
				}
				return models.UserDetails{User: models.User{ID: userID}}, nil
			},
		},
	})

	rec := do(t, router, http.MethodPatch, "/api/users/me", "u-1",
		`{"address":{"city":"Pune"},"preferences":{"notifications":{"sms":false}}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.Address)
	assert.Equal(t, "Pune", got.Address.City)
	require.NotNil(t, got.Preferences.Notifications.SMS)
	assert.False(t, *got.Preferences.Notifications.SMS)
	assert.Nil(t, got.Preferences.Notifications.Email)

	rec = do(t, router, http.MethodPatch, "/api/users/me", "u-1", `{"financialProfile":{"riskTolerance":"yolo"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
