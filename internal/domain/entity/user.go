// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account.
// Credentials live in separate Authentication records so that a password
// login and linked social providers can coexist on one account.
type User struct {
	ID                   uuid.UUID  // The unique identifier for the user.
	Email                string     // The user's primary contact email, used as a login identifier.
	Profile              Profile    // Public-facing profile information.
	Role                 Role       // The user's role, controlling what actions are permitted.
	Active               bool       // Whether the account has completed email activation.
	ActiveKey            string     // One-time activation key, cleared once the account is activated.
	PasswordResetToken   string     // One-time password reset token, cleared after use.
	PasswordResetExpires *time.Time // Expiry of the reset token. A nil value means no reset is pending.
	Authentications      []Authentication
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Profile holds the user's public-facing profile fields.
type Profile struct {
	Name      string
	FirstName string
	LastName  string
	Gender    string
	DOB       string
	Address   string
	City      string
	Location  string
	Website   string
	Picture   string
}

// HasResetPending reports whether a password reset token is outstanding and unexpired.
func (u *User) HasResetPending(now time.Time) bool {
	return u.PasswordResetToken != "" && u.PasswordResetExpires != nil && u.PasswordResetExpires.After(now)
}

// ClearResetToken consumes the password reset token. Reset tokens are single use.
func (u *User) ClearResetToken() {
	u.PasswordResetToken = ""
	u.PasswordResetExpires = nil
}

// LinkedProvider returns the authentication record for the given provider, if any.
func (u *User) LinkedProvider(provider ProviderType) *Authentication {
	for i := range u.Authentications {
		if u.Authentications[i].Provider == provider {
			return &u.Authentications[i]
		}
	}

	return nil
}
