// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mylot/internal/domain/entity"
)

// SocialLoginInput carries a provider credential presented by a client.
// For Facebook the credential is a Graph API access token, for Google an ID token.
type SocialLoginInput struct {
	Provider   entity.ProviderType
	Credential string
}

// SocialLoginOutput returns the resolved account and a fresh session token.
// Existing distinguishes a returning account from one created by this login.
type SocialLoginOutput struct {
	User     *entity.User
	Token    string
	Existing bool
}

// SocialUsecase defines social sign-in operations for both the token-based
// API flow and the redirect-based web flow.
type SocialUsecase interface {
	// SocialLogin verifies the credential and finds or creates the account.
	SocialLogin(ctx context.Context, input SocialLoginInput) (*SocialLoginOutput, error)

	// AuthorizationURL builds the provider redirect that starts the web flow.
	AuthorizationURL(provider entity.ProviderType, state string) (string, error)

	// HandleCallback finishes the web flow by exchanging the authorization code.
	HandleCallback(ctx context.Context, provider entity.ProviderType, code string) (*SocialLoginOutput, error)
}
