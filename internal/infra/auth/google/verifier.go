// Package google implements social sign-in via Google ID token verification.
package google

import (
	"context"
	"log/slog"

	"mylot/config"
	"mylot/internal/domain/entity"
	domainerrors "mylot/internal/domain/errors"
	"mylot/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// idTokenVerifier implements service.OAuthVerifier for Google Sign-In.
// Clients send the ID token directly; there is no server-side code flow.
type idTokenVerifier struct {
	clientID string
	logger   *slog.Logger
}

// NewVerifier is the constructor for the Google verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.OAuthVerifier, error) {
	if cfg.OAuth.Google == nil || cfg.OAuth.Google.ClientID == "" {
		return nil, errors.New("google oauth client must be configured")
	}

	return &idTokenVerifier{
		clientID: cfg.OAuth.Google.ClientID,
		logger:   logger,
	}, nil
}

// Provider returns the provider this verifier serves.
func (v *idTokenVerifier) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// AuthorizationURL is not offered for Google; clients use the ID token flow.
func (v *idTokenVerifier) AuthorizationURL(_ string) (string, error) {
	return "", domainerrors.ErrOAuthUnsupported.WrapMessage("google web flow is not supported")
}

// ExchangeCode is not offered for Google; clients use the ID token flow.
func (v *idTokenVerifier) ExchangeCode(_ context.Context, _ string) (string, error) {
	return "", domainerrors.ErrOAuthUnsupported.WrapMessage("google web flow is not supported")
}

// VerifyCredential validates a Google ID token against the configured client ID.
func (v *idTokenVerifier) VerifyCredential(ctx context.Context, credential string) (*service.OAuthUser, error) {
	payload, err := idtoken.Validate(ctx, credential, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token validation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid google ID token")
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		FirstName:     claimString(payload.Claims, "given_name"),
		LastName:      claimString(payload.Claims, "family_name"),
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
		Locale:        claimString(payload.Claims, "locale"),
		AccessToken:   credential,
	}

	if !user.EmailVerified {
		return nil, errors.New("google account email is not verified")
	}

	return user, nil
}

func claimString(claims map[string]any, key string) string {
	if s, ok := claims[key].(string); ok {
		return s
	}

	return ""
}

func claimBool(claims map[string]any, key string) bool {
	if b, ok := claims[key].(bool); ok {
		return b
	}

	return false
}
