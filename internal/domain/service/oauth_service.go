package service

import (
	"context"

	"mylot/internal/domain/entity"
)

// OAuthUser represents user information fetched from an OAuth provider.
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g. Facebook's id, Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	FirstName     string              // First name, when the provider exposes it
	LastName      string              // Last name, when the provider exposes it
	Gender        string              // Gender, when the provider exposes it
	Provider      entity.ProviderType // The OAuth provider
	ProfileURL    string              // URL to the user's profile page
	AvatarURL     string              // URL to the user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
	Locale        string              // User's locale preference
	AccessToken   string              // The credential that produced this profile, stored on link
}

// OAuthVerifier defines per-provider social sign-in operations.
// The credential is provider-specific: Facebook sends a Graph API access token,
// Google sends an ID token.
type OAuthVerifier interface {
	// Provider returns the provider this verifier serves.
	Provider() entity.ProviderType

	// AuthorizationURL builds the provider's authorization redirect for the web flow.
	AuthorizationURL(state string) (string, error)

	// ExchangeCode swaps a web-flow authorization code for an access credential.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// VerifyCredential validates the credential with the provider and returns the profile.
	VerifyCredential(ctx context.Context, credential string) (*OAuthUser, error)
}
