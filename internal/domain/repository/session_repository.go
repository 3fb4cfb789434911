// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mylot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session has expired.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository defines the interface for persisted login sessions.
// A session row exists for every valid token; deleting the row revokes the token
// even before its signature expires.
type SessionRepository interface {
	// CreateSession persists a new session, representing one login.
	CreateSession(ctx context.Context, session *entity.Session) error

	// FindSessionByHash retrieves a session record by its securely stored hash.
	FindSessionByHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteSessionByHash deletes a session by its hash, effectively logging out.
	DeleteSessionByHash(ctx context.Context, tokenHash string) error

	// DeleteSessionsByUserID removes all sessions for a specific user.
	// Used when an account is deleted.
	DeleteSessionsByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpiredSessions removes all expired sessions from the database.
	// Swept opportunistically whenever a new session is opened.
	DeleteExpiredSessions(ctx context.Context) error
}
