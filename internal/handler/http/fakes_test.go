package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/service"
	"github.com/MKhiriev/fin360/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type fakeAuthService struct {
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

// acceptAll treats any bearer token as the id of the user it names.
func acceptAll() *fakeAuthService {
	return &fakeAuthService{parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
		return models.Token{UserID: s}, nil
	}}
}

type fakeStockService struct {
	addFn    func(ctx context.Context, userID string, input models.StockInput) (models.StockHolding, error)
	fetchFn  func(ctx context.Context, userID string) ([]models.StockHolding, error)
	deleteFn func(ctx context.Context, userID, stockID string) error
}

func (f *fakeStockService) AddStock(ctx context.Context, userID string, input models.StockInput) (models.StockHolding, error) {
	return f.addFn(ctx, userID, input)
}

func (f *fakeStockService) FetchAllStocks(ctx context.Context, userID string) ([]models.StockHolding, error) {
	return f.fetchFn(ctx, userID)
}

func (f *fakeStockService) DeleteStock(ctx context.Context, userID, stockID string) error {
	return f.deleteFn(ctx, userID, stockID)
}

type fakePortfolioService struct {
	summaryFn func(ctx context.Context, userID, currency string) (models.PortfolioSummary, error)
}

func (f *fakePortfolioService) Summary(ctx context.Context, userID, currency string) (models.PortfolioSummary, error) {
	return f.summaryFn(ctx, userID, currency)
}

type fakeChatService struct {
	uploadFn func(ctx context.Context, chat models.ChatInput) (models.ChatMessage, error)
	allFn    func(ctx context.Context) ([]models.ChatMessage, error)
	byUserFn func(ctx context.Context, userID string) ([]models.ChatMessage, error)
	askFn    func(ctx context.Context, userID string, req models.AskRequest) (models.ChatMessage, error)
}

func (f *fakeChatService) UploadChatMessage(ctx context.Context, chat models.ChatInput) (models.ChatMessage, error) {
	return f.uploadFn(ctx, chat)
}

func (f *fakeChatService) GetAllChatMessages(ctx context.Context) ([]models.ChatMessage, error) {
	return f.allFn(ctx)
}

func (f *fakeChatService) GetUserChatMessages(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	return f.byUserFn(ctx, userID)
}

func (f *fakeChatService) Ask(ctx context.Context, userID string, req models.AskRequest) (models.ChatMessage, error) {
	return f.askFn(ctx, userID, req)
}

type fakeUserService struct {
	createFn func(ctx context.Context, input models.NewUserInput) (models.UserDetails, error)
	updateFn func(ctx context.Context, userID string, update models.ProfileUpdate) (models.UserDetails, error)
	getFn    func(ctx context.Context, userID string) (models.UserDetails, error)
}

func (f *fakeUserService) CreateUser(ctx context.Context, input models.NewUserInput) (models.UserDetails, error) {
	return f.createFn(ctx, input)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, userID string, update models.ProfileUpdate) (models.UserDetails, error) {
	return f.updateFn(ctx, userID, update)
}

func (f *fakeUserService) GetUserDetails(ctx context.Context, userID string) (models.UserDetails, error) {
	return f.getFn(ctx, userID)
}

type fakeVoiceService struct {
	interpretFn func(ctx context.Context, req models.VoiceCommandRequest) (models.VoiceCommand, error)
}

func (f *fakeVoiceService) Interpret(ctx context.Context, req models.VoiceCommandRequest) (models.VoiceCommand, error) {
	return f.interpretFn(ctx, req)
}

type fakeAppInfoService struct {
	info models.AppInfo
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.info.Version
}

func (f *fakeAppInfoService) GetAppInfo(context.Context) models.AppInfo {
	return f.info
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testWebhookSecret = "whsec_d2ViaG9vay10ZXN0LWtleQ=="

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{App: config.App{WebhookSecret: testWebhookSecret}}
}

// newRouter returns the full router over services. A nil AuthService is
// replaced with acceptAll.
func newRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	if services.AuthService == nil {
		services.AuthService = acceptAll()
	}
	return NewHandler(services, testConfig(), logger.Nop()).Init()
}

// do sends a request through router as user (no Authorization header when
// user is empty) and returns the recorded response.
func do(t *testing.T, router http.Handler, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+user)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
