// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Allowed values of the enumerated profile settings.
var (
	AccountTypes       = []string{"individual", "business", "institutional"}
	RiskTolerances     = []string{"conservative", "moderate", "aggressive"}
	DataVisualizations = []string{"simple", "detailed", "technical"}
	AIAssistanceLevels = []string{"basic", "advanced", "expert"}
)

// UserProfile is the personal part of a user account. It is stored
// encrypted leaf by leaf, so the store sees its layout but none of the
// values.
type UserProfile struct {
	DateOfBirth      string           `json:"dateOfBirth"`
	PhoneNumber      string           `json:"phoneNumber"`
	Address          Address          `json:"address"`
	FinancialProfile FinancialProfile `json:"financialProfile"`
	Preferences      Preferences      `json:"preferences"`
}

// Address is a postal address. All parts are optional.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// FinancialProfile describes how the user invests.
type FinancialProfile struct {
	AccountType       string   `json:"accountType"`
	RiskTolerance     string   `json:"riskTolerance"`
	InvestmentGoals   []string `json:"investmentGoals"`
	PreferredCurrency string   `json:"preferredCurrency"`
}

// Preferences are dashboard settings.
type Preferences struct {
	Notifications     NotificationPreferences `json:"notifications"`
	DataVisualization string                  `json:"dataVisualization"`
	AIAssistanceLevel string                  `json:"aiAssistanceLevel"`
}

// NotificationPreferences selects the notification channels.
type NotificationPreferences struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	InApp bool `json:"inApp"`
}

// DefaultProfile returns the profile a new account starts with.
func DefaultProfile() UserProfile {
	return UserProfile{
		FinancialProfile: FinancialProfile{
			AccountType:       "individual",
			RiskTolerance:     "moderate",
			InvestmentGoals:   []string{},
			PreferredCurrency: "INR",
		},
		Preferences: Preferences{
			Notifications: NotificationPreferences{
				Email: true,
				SMS:   false,
				InApp: true,
			},
			DataVisualization: "simple",
			AIAssistanceLevel: "basic",
		},
	}
}

// ProfileUpdate is a partial profile change. Empty strings, nil slices and
// nil pointers mean "leave unchanged".
type ProfileUpdate struct {
	PhoneNumber      string                  `json:"phoneNumber,omitempty"`
	DateOfBirth      string                  `json:"dateOfBirth,omitempty"`
	Address          *Address                `json:"address,omitempty"`
	FinancialProfile *FinancialProfileUpdate `json:"financialProfile,omitempty"`
	Preferences      *PreferencesUpdate      `json:"preferences,omitempty"`
}

// FinancialProfileUpdate is a partial [FinancialProfile].
type FinancialProfileUpdate struct {
	AccountType       string   `json:"accountType,omitempty"`
	RiskTolerance     string   `json:"riskTolerance,omitempty"`
	InvestmentGoals   []string `json:"investmentGoals,omitempty"`
	PreferredCurrency string   `json:"preferredCurrency,omitempty"`
}

// PreferencesUpdate is a partial [Preferences].
type PreferencesUpdate struct {
	Notifications     *NotificationsUpdate `json:"notifications,omitempty"`
	DataVisualization string               `json:"dataVisualization,omitempty"`
	AIAssistanceLevel string               `json:"aiAssistanceLevel,omitempty"`
}

// NotificationsUpdate is a partial [NotificationPreferences]; false is a
// real value here, so the fields are pointers.
type NotificationsUpdate struct {
	Email *bool `json:"email,omitempty"`
	SMS   *bool `json:"sms,omitempty"`
	InApp *bool `json:"inApp,omitempty"`
}

// Apply merges u into p and returns the result. p is not modified.
func (u ProfileUpdate) Apply(p UserProfile) UserProfile {
	out := p
	out.FinancialProfile.InvestmentGoals = append([]string(nil), p.FinancialProfile.InvestmentGoals...)

	if u.PhoneNumber != "" {
		out.PhoneNumber = u.PhoneNumber
	}
	if u.DateOfBirth != "" {
		out.DateOfBirth = u.DateOfBirth
	}

	if a := u.Address; a != nil {
		if a.Street != "" {
			out.Address.Street = a.Street
		}
		if a.City != "" {
			out.Address.City = a.City
		}
		if a.State != "" {
			out.Address.State = a.State
		}
		if a.Country != "" {
			out.Address.Country = a.Country
		}
		if a.PostalCode != "" {
			out.Address.PostalCode = a.PostalCode
		}
	}

	if f := u.FinancialProfile; f != nil {
		if f.AccountType != "" {
			out.FinancialProfile.AccountType = f.AccountType
		}
		if f.RiskTolerance != "" {
			out.FinancialProfile.RiskTolerance = f.RiskTolerance
		}
		if f.InvestmentGoals != nil {
			out.FinancialProfile.InvestmentGoals = append([]string(nil), f.InvestmentGoals...)
		}
		if f.PreferredCurrency != "" {
			out.FinancialProfile.PreferredCurrency = f.PreferredCurrency
		}
	}

	if pr := u.Preferences; pr != nil {
		if n := pr.Notifications; n != nil {
			if n.Email != nil {
				out.Preferences.Notifications.Email = *n.Email
			}
			if n.SMS != nil {
				out.Preferences.Notifications.SMS = *n.SMS
			}
			if n.InApp != nil {
				out.Preferences.Notifications.InApp = *n.InApp
			}
		}
		if pr.DataVisualization != "" {
			out.Preferences.DataVisualization = pr.DataVisualization
		}
		if pr.AIAssistanceLevel != "" {
			out.Preferences.AIAssistanceLevel = pr.AIAssistanceLevel
		}
	}

	return out
}
