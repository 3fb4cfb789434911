package auth

import (
	"testing"
	"time"

	"mylot/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *jwtTokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-session-secret"
	cfg.Auth = &config.AuthConfig{SessionTTL: ttl}

	svc, err := NewTokenService(cfg)
	require.NoError(t, err)

	return svc.(*jwtTokenService)
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewTokenService(cfg)
	assert.Error(t, err)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateSessionToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestTokenService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	_, err = svc.ValidateSessionToken(tampered)
	assert.Error(t, err)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	other := newTestTokenService(t, time.Hour)
	other.secret = "a-different-secret"

	token, err := svc.GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestTokenService_HashTokenIsStable(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, err := svc.GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	first := svc.HashToken(token)
	second := svc.HashToken(token)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, svc.HashToken(token+"x"))
}

func TestTokenService_TwoLoginsDifferentHashes(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	userID := uuid.New()

	first, err := svc.GenerateSessionToken(userID)
	require.NoError(t, err)
	second, err := svc.GenerateSessionToken(userID)
	require.NoError(t, err)

	// The per-token nonce keeps same-second logins apart.
	assert.NotEqual(t, svc.HashToken(first), svc.HashToken(second))
}

func TestTokenService_SessionDuration(t *testing.T) {
	svc := newTestTokenService(t, 42*time.Minute)

	assert.Equal(t, 42*time.Minute, svc.SessionDuration())
}

func TestTokenService_DefaultDurationWhenUnset(t *testing.T) {
	svc := newTestTokenService(t, 0)

	assert.Equal(t, 7*24*time.Hour, svc.SessionDuration())
}
