package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/mock"
	"github.com/MKhiriev/fin360/internal/store"
	"github.com/MKhiriev/fin360/models"
)

func ashaInput() models.NewUserInput {
	return models.NewUserInput{
		ClerkID:     "user_2abc",
		FullName:    "Asha Rao",
		Email:       "asha@example.com",
		UserName:    "asha",
		DateOfBirth: "1990-05-01",
		PhoneNumber: "9876543210",
	}
}

func TestUserService_CreateUser_New(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, newTestCipher(t), logger.Nop())

	var stored models.User
	repo.EXPECT().FindByClerkID(gomock.Any(), "user_2abc").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			u.ID = "u-1"
			stored = u
			return u, nil
		})

	got, err := svc.CreateUser(context.Background(), ashaInput())
	require.NoError(t, err)

	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.True(t, got.IsActive)
	assert.Equal(t, "9876543210", got.PhoneNumber)
	assert.Equal(t, "INR", got.FinancialProfile.PreferredCurrency)

	// The stored document keeps the profile layout but no plaintext.
	assert.NotContains(t, string(stored.Profile), "9876543210")
	assert.NotContains(t, string(stored.Profile), "INR")
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stored.Profile), &doc))
	assert.Contains(t, doc, "financialProfile")
	assert.Regexp(t, cipheredFormat, doc["phoneNumber"])
}

func TestUserService_CreateUser_Existing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, newTestCipher(t), logger.Nop())

	repo.EXPECT().FindByClerkID(gomock.Any(), "user_2abc").
		Return(models.User{ID: "u-9", ClerkID: "user_2abc"}, nil)

	got, err := svc.CreateUser(context.Background(), ashaInput())
	require.NoError(t, err)
	assert.Equal(t, "u-9", got.ID)
	assert.Equal(t, models.DefaultProfile(), got.UserProfile, "rows without a profile read as defaults")
}

func TestUserService_CreateUser_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, newTestCipher(t), logger.Nop())

	gomock.InOrder(
		repo.EXPECT().FindByClerkID(gomock.Any(), "user_2abc").Return(models.User{}, store.ErrUserNotFound),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists),
		repo.EXPECT().FindByClerkID(gomock.Any(), "user_2abc").Return(models.User{ID: "u-7"}, nil),
	)

	got, err := svc.CreateUser(context.Background(), ashaInput())
	require.NoError(t, err)
	assert.Equal(t, "u-7", got.ID)
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewUserService(mock.NewMockUserRepository(ctrl), newTestCipher(t), logger.Nop())

	in := ashaInput()
	in.ClerkID = " "
	_, err := svc.CreateUser(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidationNoClerkID)

	in = ashaInput()
	in.Email = ""
	_, err = svc.CreateUser(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidationNoEmail)
}

func TestUserService_UpdateAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, newTestCipher(t), logger.Nop())

	user := models.User{ID: "u-1", ClerkID: "user_2abc"}
	repo.EXPECT().FindByClerkID(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			u.ID = "u-1"
			user = u
			return u, nil
		})
	repo.EXPECT().FindByID(gomock.Any(), "u-1").
		DoAndReturn(func(context.Context, string) (models.User, error) { return user, nil }).
		Times(2)
	repo.EXPECT().UpdateProfile(gomock.Any(), "u-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, doc models.CipheredDocument) error {
			user.Profile = doc
			return nil
		})

	_, err := svc.CreateUser(context.Background(), ashaInput())
	require.NoError(t, err)

	sms := true
	updated, err := svc.UpdateUser(context.Background(), "u-1", models.ProfileUpdate{
		Address: &models.Address{City: "Pune", PostalCode: "411001"},
		FinancialProfile: &models.FinancialProfileUpdate{
			RiskTolerance:   "aggressive",
			InvestmentGoals: []string{"retirement", "2030"},
		},
		Preferences: &models.PreferencesUpdate{
			Notifications:     &models.NotificationsUpdate{SMS: &sms},
			AIAssistanceLevel: "expert",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Pune", updated.Address.City)
	assert.Equal(t, "9876543210", updated.PhoneNumber, "untouched fields survive")

	got, err := svc.GetUserDetails(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, "1990-05-01", got.DateOfBirth)
	assert.Equal(t, "9876543210", got.PhoneNumber)
	assert.Equal(t, "411001", got.Address.PostalCode)
	assert.Equal(t, "aggressive", got.FinancialProfile.RiskTolerance)
	assert.Equal(t, "individual", got.FinancialProfile.AccountType)
	assert.Equal(t, []string{"retirement", "2030"}, got.FinancialProfile.InvestmentGoals)
	assert.True(t, got.Preferences.Notifications.SMS)
	assert.True(t, got.Preferences.Notifications.Email)
	assert.Equal(t, "expert", got.Preferences.AIAssistanceLevel)
	assert.False(t, strings.Contains(string(user.Profile), "Pune"))
}

func TestUserService_UpdateUser_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, newTestCipher(t), logger.Nop())

	tests := []struct {
		name   string
		update models.ProfileUpdate
	}{
		{name: "account type", update: models.ProfileUpdate{FinancialProfile: &models.FinancialProfileUpdate{AccountType: "joint"}}},
		{name: "risk", update: models.ProfileUpdate{FinancialProfile: &models.FinancialProfileUpdate{RiskTolerance: "yolo"}}},
		{name: "currency", update: models.ProfileUpdate{FinancialProfile: &models.FinancialProfileUpdate{PreferredCurrency: "XYZ"}}},
		{name: "visualization", update: models.ProfileUpdate{Preferences: &models.PreferencesUpdate{DataVisualization: "3d"}}},
		{name: "ai level", update: models.ProfileUpdate{Preferences: &models.PreferencesUpdate{AIAssistanceLevel: "godlike"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateUser(context.Background(), "u-1", tt.update)
			assert.ErrorIs(t, err, ErrValidationBadEnum)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}

	_, err := svc.UpdateUser(context.Background(), "", models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrValidationNoUserID)

	repo.EXPECT().FindByID(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)
	_, err = svc.UpdateUser(context.Background(), "ghost", models.ProfileUpdate{PhoneNumber: "1"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	repo.EXPECT().FindByID(gomock.Any(), "broken").Return(models.User{ID: "broken", Profile: "{not json"}, nil)
	_, err = svc.GetUserDetails(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestUserService_ProfileNullText(t *testing.T) {
	u := &userService{cipher: newTestCipher(t), logger: logger.Nop()}

	profile := models.DefaultProfile()
	profile.PhoneNumber = "null"
	profile.Address.City = "null"
	profile.FinancialProfile.AccountType = "null"

	document, err := u.encryptProfile(profile)
	require.NoError(t, err)

	got, err := u.decryptProfile(document)
	require.NoError(t, err)
	assert.Equal(t, "null", got.PhoneNumber)
	assert.Equal(t, "null", got.Address.City)
	assert.Equal(t, "null", got.FinancialProfile.AccountType)
}

func TestUserService_ProfileBareNullUsesDefault(t *testing.T) {
	u := &userService{cipher: newTestCipher(t), logger: logger.Nop()}
	defaults := models.DefaultProfile()

	got, err := u.decryptProfile(`{"phoneNumber":null,"financialProfile":{"accountType":null}}`)
	require.NoError(t, err)
	assert.Empty(t, got.PhoneNumber)
	assert.Equal(t, defaults.FinancialProfile.AccountType, got.FinancialProfile.AccountType)
	assert.Equal(t, defaults.FinancialProfile.RiskTolerance, got.FinancialProfile.RiskTolerance)
}
