// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies how a credential authenticates a user.
type ProviderType string

const (
	// ProviderTypeEmail is the password credential stored locally.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeFacebook is a linked Facebook account.
	ProviderTypeFacebook ProviderType = "facebook"
	// ProviderTypeGoogle is a linked Google account.
	ProviderTypeGoogle ProviderType = "google"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsSocial reports whether the provider is an external identity provider.
func (p ProviderType) IsSocial() bool {
	return p == ProviderTypeFacebook || p == ProviderTypeGoogle
}

// Authentication represents a single method of logging in (a credential).
// An email/password pair is one record, a linked Facebook account another.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider       ProviderType // The authentication provider, e.g. "email", "facebook", "google".
	ProviderUserID string       // The user's unique ID from the external provider. For "email" this is the email address.
	PasswordHash   string       // Stores the bcrypt-hashed password, only used when the Provider is "email".
	AccessToken    string       // The provider access token captured at link time, only used for social providers.
	CreatedAt      time.Time    // Timestamp of when this authentication method was linked to the account.
}

// Session represents a logged-in session established by a login.
// The raw session token is never stored; only its SHA-256 hash is persisted.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw session token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this session becomes invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e. when the user logged in).
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
