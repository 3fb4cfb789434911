package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating session tokens.
// A session token is a signed bearer credential; its SHA-256 hash is persisted so
// sessions can be revoked server-side before the signature expires.
type TokenService interface {
	// GenerateSessionToken creates a new signed session token for the given user.
	GenerateSessionToken(userID uuid.UUID) (string, error)

	// ValidateSessionToken checks the token signature and expiry and returns the user ID.
	ValidateSessionToken(token string) (uuid.UUID, error)

	// HashToken returns the stable SHA-256 hex digest stored alongside the session.
	HashToken(token string) string

	// SessionDuration returns the configured session lifetime.
	SessionDuration() time.Duration
}
