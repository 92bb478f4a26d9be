package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileUpdate_Apply(t *testing.T) {
	base := DefaultProfile()
	base.PhoneNumber = "9876543210"
	base.Address.City = "Pune"
	base.FinancialProfile.InvestmentGoals = []string{"retirement"}

	no := false
	update := ProfileUpdate{
		DateOfBirth: "1990-05-01",
		Address:     &Address{Country: "India"},
		FinancialProfile: &FinancialProfileUpdate{
			RiskTolerance:   "aggressive",
			InvestmentGoals: []string{"retirement", "travel"},
		},
		Preferences: &PreferencesUpdate{
			Notifications:     &NotificationsUpdate{Email: &no},
			AIAssistanceLevel: "expert",
		},
	}

	got := update.Apply(base)

	assert.Equal(t, "9876543210", got.PhoneNumber, "unset fields keep their value")
	assert.Equal(t, "1990-05-01", got.DateOfBirth)
	assert.Equal(t, "Pune", got.Address.City)
	assert.Equal(t, "India", got.Address.Country)
	assert.Equal(t, "individual", got.FinancialProfile.AccountType)
	assert.Equal(t, "aggressive", got.FinancialProfile.RiskTolerance)
	assert.Equal(t, []string{"retirement", "travel"}, got.FinancialProfile.InvestmentGoals)
	assert.Equal(t, "INR", got.FinancialProfile.PreferredCurrency)
	assert.False(t, got.Preferences.Notifications.Email, "explicit false is applied")
	assert.True(t, got.Preferences.Notifications.InApp)
	assert.Equal(t, "expert", got.Preferences.AIAssistanceLevel)
	assert.Equal(t, "simple", got.Preferences.DataVisualization)

	assert.Equal(t, []string{"retirement"}, base.FinancialProfile.InvestmentGoals, "input is not modified")
	assert.Empty(t, base.Address.Country)
}

func TestProfileUpdate_ApplyEmpty(t *testing.T) {
	base := DefaultProfile()
	assert.Equal(t, base, ProfileUpdate{}.Apply(base))
}
