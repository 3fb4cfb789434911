package handler

import (
	"log/slog"
	"net/http"

	"mylot/config"
	"mylot/internal/delivery/http/middleware"
	"mylot/internal/delivery/http/response"
	"mylot/internal/domain/entity"
	domainerrors "mylot/internal/domain/errors"
	"mylot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SocialHandler holds dependencies for social sign-in handlers.
type SocialHandler struct {
	uc     usecase.SocialUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewSocialHandler is the constructor for SocialHandler, injected by Fx.
func NewSocialHandler(uc usecase.SocialUsecase, cfg *config.Config, logger *slog.Logger) *SocialHandler {
	return &SocialHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

type socialLoginPayload struct {
	Provider    string `json:"provider"`
	AccessToken string `json:"accessToken" validate:"required"`
}

// FacebookLogin handles POST /api/auth/facebook: a Graph API access token in,
// an account and session token out.
func (h *SocialHandler) FacebookLogin(c echo.Context) error {
	var payload socialLoginPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(payload); err != nil {
		return credentialValidation(err)
	}

	return h.socialLogin(c, entity.ProviderTypeFacebook, payload.AccessToken)
}

// ProviderLogin handles POST /api/auth/provider with an explicit provider name.
func (h *SocialHandler) ProviderLogin(c echo.Context) error {
	var payload socialLoginPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(payload); err != nil {
		return credentialValidation(err)
	}

	provider := entity.ProviderType(payload.Provider)
	if !provider.IsSocial() {
		return errors.WithStack(domainerrors.ErrOAuthUnsupported)
	}

	return h.socialLogin(c, provider, payload.AccessToken)
}

func (h *SocialHandler) socialLogin(c echo.Context, provider entity.ProviderType, credential string) error {
	output, err := h.uc.SocialLogin(c.Request().Context(), usecase.SocialLoginInput{
		Provider:   provider,
		Credential: credential,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"token":    output.Token,
		"user":     newUserView(output.User),
		"existing": output.Existing,
	})
}

// Authorize handles GET /auth/:provider, starting the browser OAuth flow.
func (h *SocialHandler) Authorize(c echo.Context) error {
	provider := entity.ProviderType(c.Param("provider"))
	if !provider.IsSocial() {
		return errors.WithStack(domainerrors.ErrOAuthUnsupported)
	}

	state := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.HTTP.Cookie.Secure,
	})

	url, err := h.uc.AuthorizationURL(provider, state)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, url)
}

// Callback handles GET /auth/:provider/callback, finishing the browser flow:
// sets the session cookie and returns to the captured path.
func (h *SocialHandler) Callback(c echo.Context) error {
	provider := entity.ProviderType(c.Param("provider"))
	if !provider.IsSocial() {
		return errors.WithStack(domainerrors.ErrOAuthUnsupported)
	}

	if stateCookie, err := c.Cookie("oauth_state"); err != nil || stateCookie.Value == "" || stateCookie.Value != c.QueryParam("state") {
		h.logger.Warn("OAuth state mismatch", slog.String("provider", provider.String()))

		return c.Redirect(http.StatusFound, "/login")
	}

	output, err := h.uc.HandleCallback(c.Request().Context(), provider, c.QueryParam("code"))
	if err != nil {
		h.logger.Warn("OAuth callback failed", slog.String("provider", provider.String()), slog.Any("error", err))

		return c.Redirect(http.StatusFound, "/login")
	}

	setSessionCookie(c, h.cfg, output.Token, h.cfg.Auth.SessionTTL)

	return c.Redirect(http.StatusFound, consumeReturnTo(c))
}

// FacebookProfile handles GET /api/facebook: echoes the linked provider
// identity. The route is gated on a stored Facebook token.
func (h *SocialHandler) FacebookProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.LoginRequired(c)
	}

	auth := user.LinkedProvider(entity.ProviderTypeFacebook)
	if auth == nil {
		return errors.WithStack(domainerrors.ErrNotFound.WrapMessage("facebook account not linked"))
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"provider":       auth.Provider.String(),
		"providerUserId": auth.ProviderUserID,
		"linkedAt":       auth.CreatedAt,
	})
}
