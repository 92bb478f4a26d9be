package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/MKhiriev/fin360/internal/crypto"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/store"
	"github.com/MKhiriev/fin360/models"
)

type userService struct {
	userRepository store.UserRepository
	cipher         crypto.Cipher

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cipher crypto.Cipher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		cipher:         cipher,
		logger:         logger,
	}
}

// CreateUser registers an account coming from the identity provider. The
// profile starts from [models.DefaultProfile] seeded with the date of birth
// and phone number of the payload.
func (u *userService) CreateUser(ctx context.Context, input models.NewUserInput) (models.UserDetails, error) {
	log := logger.FromContext(ctx)

	input.ClerkID = strings.TrimSpace(input.ClerkID)
	input.Email = strings.TrimSpace(input.Email)
	if input.ClerkID == "" {
		return models.UserDetails{}, ErrValidationNoClerkID
	}
	if input.Email == "" {
		return models.UserDetails{}, ErrValidationNoEmail
	}

	existing, err := u.userRepository.FindByClerkID(ctx, input.ClerkID)
	switch {
	case err == nil:
		log.Debug().Str("func", "userService.CreateUser").Str("user_id", existing.ID).Msg("user already exists")
		return u.details(existing)
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "userService.CreateUser").Msg("user lookup failed")
		return models.UserDetails{}, fmt.Errorf("error looking up user: %w", err)
	}

	profile := models.DefaultProfile()
	profile.DateOfBirth = input.DateOfBirth
	profile.PhoneNumber = input.PhoneNumber

	document, err := u.encryptProfile(profile)
	if err != nil {
		log.Err(err).Str("func", "userService.CreateUser").Msg("failed to encrypt profile")
		return models.UserDetails{}, err
	}

	created, err := u.userRepository.Create(ctx, models.User{
		ClerkID:         input.ClerkID,
		FullName:        input.FullName,
		Email:           input.Email,
		UserName:        input.UserName,
		ProfileImageURL: input.ProfileImageURL,
		Role:            models.RoleUser,
		IsActive:        true,
		Profile:         document,
	})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		// Lost a race with a concurrent webhook delivery.
		existing, err = u.userRepository.FindByClerkID(ctx, input.ClerkID)
		if err != nil {
			return models.UserDetails{}, fmt.Errorf("error looking up user: %w", err)
		}
		return u.details(existing)
	}
	if err != nil {
		log.Err(err).Str("func", "userService.CreateUser").Msg("user creation failed")
		return models.UserDetails{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return models.UserDetails{User: created, UserProfile: profile}, nil
}

// UpdateUser merges the provided fields into the stored profile and saves
// it re-encrypted.
func (u *userService) UpdateUser(ctx context.Context, userID string, update models.ProfileUpdate) (models.UserDetails, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.UserDetails{}, ErrValidationNoUserID
	}
	if err := validateProfileUpdate(update); err != nil {
		return models.UserDetails{}, err
	}

	user, err := u.userRepository.FindByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "userService.UpdateUser").Msg("user lookup failed")
		return models.UserDetails{}, fmt.Errorf("error looking up user: %w", err)
	}

	current, err := u.decryptProfile(user.Profile)
	if err != nil {
		log.Err(err).Str("func", "userService.UpdateUser").Str("user_id", userID).Msg("failed to decrypt profile")
		return models.UserDetails{}, err
	}

	merged := update.Apply(current)
	document, err := u.encryptProfile(merged)
	if err != nil {
		log.Err(err).Str("func", "userService.UpdateUser").Msg("failed to encrypt profile")
		return models.UserDetails{}, err
	}

	if err = u.userRepository.UpdateProfile(ctx, userID, document); err != nil {
		log.Err(err).Str("func", "userService.UpdateUser").Msg("profile update failed")
		return models.UserDetails{}, fmt.Errorf("error updating profile: %w", err)
	}

	user.Profile = document
	return models.UserDetails{User: user, UserProfile: merged}, nil
}

func (u *userService) GetUserDetails(ctx context.Context, userID string) (models.UserDetails, error) {
	if userID == "" {
		return models.UserDetails{}, ErrValidationNoUserID
	}

	user, err := u.userRepository.FindByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.GetUserDetails").Msg("user lookup failed")
		return models.UserDetails{}, fmt.Errorf("error looking up user: %w", err)
	}

	return u.details(user)
}

func (u *userService) details(user models.User) (models.UserDetails, error) {
	profile, err := u.decryptProfile(user.Profile)
	if err != nil {
		return models.UserDetails{}, err
	}
	return models.UserDetails{User: user, UserProfile: profile}, nil
}

// encryptProfile turns the profile into a JSON document whose every leaf is
// encrypted.
func (u *userService) encryptProfile(profile models.UserProfile) (models.CipheredDocument, error) {
	raw, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("error encoding profile: %w", err)
	}

	var plain crypto.Value
	if err = json.Unmarshal(raw, &plain); err != nil {
		return "", fmt.Errorf("error encoding profile: %w", err)
	}

	encrypted, err := u.cipher.EncryptObject(plain)
	if err != nil {
		return "", fmt.Errorf("error encrypting profile: %w", err)
	}

	document, err := json.Marshal(encrypted)
	if err != nil {
		return "", fmt.Errorf("error encoding profile: %w", err)
	}
	return models.CipheredDocument(document), nil
}

// decryptProfile reverses encryptProfile. Accounts stored without a
// profile get the default one.
func (u *userService) decryptProfile(document models.CipheredDocument) (models.UserProfile, error) {
	if document == "" {
		return models.DefaultProfile(), nil
	}

	var encrypted crypto.Value
	if err := json.Unmarshal([]byte(document), &encrypted); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: profile is not JSON", ErrCorruptRecord)
	}

	plain, err := u.cipher.DecryptObject(encrypted)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("error decrypting profile: %w", err)
	}

	return decodeProfile(encrypted, plain), nil
}

// decodeProfile reads a decrypted profile document next to the stored one
// it came from. Leaves are read through their text form because phone
// numbers and postal codes come back from decryption as JSON numbers. A leaf
// stored as a bare null gets the default; an encrypted "null" stays "null".
func decodeProfile(stored, v crypto.Value) models.UserProfile {
	defaults := models.DefaultProfile()
	text := func(stored, record crypto.Value, key, def string) string {
		if leaf, ok := stored.Field(key); !ok || leaf.IsNull() {
			return def
		}
		if s, ok := fieldText(record, key); ok {
			return s
		}
		return def
	}
	child := func(stored, record crypto.Value, key string) (crypto.Value, crypto.Value) {
		s, _ := stored.Field(key)
		r, _ := record.Field(key)
		return s, r
	}

	profile := models.UserProfile{
		DateOfBirth: text(stored, v, "dateOfBirth", ""),
		PhoneNumber: text(stored, v, "phoneNumber", ""),
	}

	storedAddress, address := child(stored, v, "address")
	profile.Address = models.Address{
		Street:     text(storedAddress, address, "street", ""),
		City:       text(storedAddress, address, "city", ""),
		State:      text(storedAddress, address, "state", ""),
		Country:    text(storedAddress, address, "country", ""),
		PostalCode: text(storedAddress, address, "postalCode", ""),
	}

	storedFinancial, financial := child(stored, v, "financialProfile")
	profile.FinancialProfile = models.FinancialProfile{
		AccountType:       text(storedFinancial, financial, "accountType", defaults.FinancialProfile.AccountType),
		RiskTolerance:     text(storedFinancial, financial, "riskTolerance", defaults.FinancialProfile.RiskTolerance),
		InvestmentGoals:   fieldTexts(financial, "investmentGoals"),
		PreferredCurrency: text(storedFinancial, financial, "preferredCurrency", defaults.FinancialProfile.PreferredCurrency),
	}

	storedPreferences, preferences := child(stored, v, "preferences")
	notifications, _ := preferences.Field("notifications")
	profile.Preferences = models.Preferences{
		Notifications: models.NotificationPreferences{
			Email: fieldBool(notifications, "email", defaults.Preferences.Notifications.Email),
			SMS:   fieldBool(notifications, "sms", defaults.Preferences.Notifications.SMS),
			InApp: fieldBool(notifications, "inApp", defaults.Preferences.Notifications.InApp),
		},
		DataVisualization: text(storedPreferences, preferences, "dataVisualization", defaults.Preferences.DataVisualization),
		AIAssistanceLevel: text(storedPreferences, preferences, "aiAssistanceLevel", defaults.Preferences.AIAssistanceLevel),
	}

	return profile
}

func validateProfileUpdate(update models.ProfileUpdate) error {
	check := func(field, value string, allowed []string) error {
		if value == "" || slices.Contains(allowed, value) {
			return nil
		}
		return fmt.Errorf("%w: %s %q", ErrValidationBadEnum, field, value)
	}

	if f := update.FinancialProfile; f != nil {
		if err := check("accountType", f.AccountType, models.AccountTypes); err != nil {
			return err
		}
		if err := check("riskTolerance", f.RiskTolerance, models.RiskTolerances); err != nil {
			return err
		}
		if f.PreferredCurrency != "" && money.GetCurrency(f.PreferredCurrency) == nil {
			return fmt.Errorf("%w: preferredCurrency %q", ErrValidationBadEnum, f.PreferredCurrency)
		}
	}

	if p := update.Preferences; p != nil {
		if err := check("dataVisualization", p.DataVisualization, models.DataVisualizations); err != nil {
			return err
		}
		if err := check("aiAssistanceLevel", p.AIAssistanceLevel, models.AIAssistanceLevels); err != nil {
			return err
		}
	}

	return nil
}
