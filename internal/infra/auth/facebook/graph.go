// Package facebook implements social sign-in against the Facebook Graph API.
package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"mylot/config"
	"mylot/internal/domain/entity"
	"mylot/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	graphBaseURL  = "https://graph.facebook.com/v3.2"
	dialogURL     = "https://www.facebook.com/v3.2/dialog/oauth"
	profileFields = "id,email,first_name,last_name,gender,link,locale"
)

// graphProfile mirrors the Graph API /me response for the requested fields.
type graphProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Link      string `json:"link"`
	Locale    string `json:"locale"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// graphVerifier implements service.OAuthVerifier against the Graph API.
type graphVerifier struct {
	appID       string
	appSecret   string
	redirectURL string
	client      *http.Client
	logger      *slog.Logger
}

// NewGraphVerifier is the constructor for the Facebook verifier.
func NewGraphVerifier(cfg *config.Config, logger *slog.Logger) (service.OAuthVerifier, error) {
	if cfg.OAuth.Facebook == nil || cfg.OAuth.Facebook.AppID == "" {
		return nil, errors.New("facebook oauth app must be configured")
	}

	return &graphVerifier{
		appID:       cfg.OAuth.Facebook.AppID,
		appSecret:   cfg.OAuth.Facebook.AppSecret,
		redirectURL: cfg.OAuth.Facebook.RedirectURL,
		client:      &http.Client{Timeout: 10 * time.Second},
		logger:      logger,
	}, nil
}

// Provider returns the provider this verifier serves.
func (v *graphVerifier) Provider() entity.ProviderType {
	return entity.ProviderTypeFacebook
}

// AuthorizationURL builds the Facebook login dialog redirect for the web flow.
func (v *graphVerifier) AuthorizationURL(state string) (string, error) {
	query := url.Values{}
	query.Set("client_id", v.appID)
	query.Set("redirect_uri", v.redirectURL)
	query.Set("scope", "email,public_profile")
	query.Set("state", state)

	return dialogURL + "?" + query.Encode(), nil
}

// ExchangeCode swaps a web-flow authorization code for a Graph API access token.
func (v *graphVerifier) ExchangeCode(ctx context.Context, code string) (string, error) {
	query := url.Values{}
	query.Set("client_id", v.appID)
	query.Set("client_secret", v.appSecret)
	query.Set("redirect_uri", v.redirectURL)
	query.Set("code", code)

	var token tokenResponse
	if err := v.getJSON(ctx, graphBaseURL+"/oauth/access_token?"+query.Encode(), &token); err != nil {
		return "", errors.Wrap(err, "failed to exchange facebook code")
	}
	if token.AccessToken == "" {
		return "", errors.New("facebook token response missing access_token")
	}

	return token.AccessToken, nil
}

// VerifyCredential exchanges an access token for the user's Graph profile.
func (v *graphVerifier) VerifyCredential(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	query := url.Values{}
	query.Set("fields", profileFields)
	query.Set("access_token", accessToken)

	var profile graphProfile
	if err := v.getJSON(ctx, graphBaseURL+"/me?"+query.Encode(), &profile); err != nil {
		v.logger.Warn("Facebook profile fetch failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch facebook profile")
	}
	if profile.ID == "" {
		return nil, errors.New("facebook profile response missing id")
	}

	return &service.OAuthUser{
		ID:            profile.ID,
		Email:         profile.Email,
		Name:          profile.FirstName + " " + profile.LastName,
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		Gender:        profile.Gender,
		Provider:      entity.ProviderTypeFacebook,
		ProfileURL:    profile.Link,
		AvatarURL:     fmt.Sprintf("%s/%s/picture?type=large", graphBaseURL, profile.ID),
		EmailVerified: profile.Email != "",
		Locale:        profile.Locale,
		AccessToken:   accessToken,
	}, nil
}

func (v *graphVerifier) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build graph request")
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "graph request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errors.Wrap(err, "failed to read graph response")
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("graph request returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "failed to decode graph response")
	}

	return nil
}
