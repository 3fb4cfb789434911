// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"mylot/config"
	"mylot/internal/domain/service"
)

// jwtTokenService implements TokenService using HMAC-signed JWTs.
// The signature gates obviously bad tokens; the persisted session row,
// looked up by HashToken, is what makes a token actually valid.
type jwtTokenService struct {
	secret     string
	sessionTTL time.Duration
}

// NewTokenService is the constructor for jwtTokenService.
func NewTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	// Config defaulting fills SessionTTL in; zero only means a hand-built config.
	var sessionTTL time.Duration
	if cfg.Auth != nil {
		sessionTTL = cfg.Auth.SessionTTL
	}
	if sessionTTL == 0 {
		sessionTTL = 7 * 24 * time.Hour
	}

	return &jwtTokenService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: sessionTTL,
	}, nil
}

// GenerateSessionToken creates a new signed session token for the given user.
// A per-token nonce keeps two logins in the same second from colliding on hash.
func (s *jwtTokenService) GenerateSessionToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.sessionTTL).Unix(),
		"jti": uuid.New().String(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return token, nil
}

// ValidateSessionToken checks the token signature and expiry and returns the user ID.
func (s *jwtTokenService) ValidateSessionToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errors.New("invalid or expired session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("failed to parse session token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("session token missing subject")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid subject in session token")
	}

	return userID, nil
}

// HashToken returns the stable SHA-256 hex digest stored alongside the session.
func (s *jwtTokenService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// SessionDuration returns the configured session lifetime.
func (s *jwtTokenService) SessionDuration() time.Duration {
	return s.sessionTTL
}
