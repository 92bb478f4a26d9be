package models

import "time"

// User roles.
const (
	RoleUser    = "user"
	RoleAnalyst = "analyst"
	RoleAdmin   = "admin"
)

// User is an account synced from the identity provider. Identity fields
// are kept in clear because they are looked up and must be unique; the
// personal profile travels separately as an encrypted document.
type User struct {
	// ID is the internal identifier assigned by storage.
	ID string `json:"_id"`

	// ClerkID is the identity provider's user id. Unique.
	ClerkID string `json:"clerkId"`

	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	UserName        string `json:"userName"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`

	KYCVerified bool   `json:"kycVerified"`
	Role        string `json:"role"`
	IsActive    bool   `json:"isActive"`

	// Profile holds the encrypted [UserProfile]. Never exposed via JSON.
	Profile CipheredDocument `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (User) TableName() string {
	return "users"
}

// NewUserInput is the identity provider payload used to create a user.
// DateOfBirth and PhoneNumber seed the encrypted profile.
type NewUserInput struct {
	ClerkID         string `json:"clerkId"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	UserName        string `json:"userName"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	DateOfBirth     string `json:"dateOfBirth,omitempty"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
}

// UserDetails is a user together with the decrypted profile.
type UserDetails struct {
	User
	UserProfile
}
