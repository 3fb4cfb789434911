package middleware

import (
	"net/http"
	"strings"
	"time"

	"mylot/config"
	"mylot/internal/delivery/http/response"
	"mylot/internal/domain/entity"
	"mylot/internal/domain/repository"
	"mylot/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys for the resolved identity.
const (
	// KeyUser holds the loaded *entity.User for the request.
	KeyUser = "user"
	// KeySessionToken holds the raw session token the request presented.
	KeySessionToken = "session_token"
	// ReturnToCookie remembers where a web login should send the user back.
	ReturnToCookie = "return_to"
)

// AuthMiddleware resolves session tokens into users.
// A token is accepted only when its signature checks out AND its hash is
// still present in the session store, so logout revokes it immediately.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	cookieName  string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(
	tokenSvc service.TokenService,
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:    tokenSvc,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		cookieName:  cfg.HTTP.Cookie.Name,
	}
}

// CurrentUser returns the identity resolved for this request, if any.
func CurrentUser(c echo.Context) *entity.User {
	if user, ok := c.Get(KeyUser).(*entity.User); ok {
		return user
	}

	return nil
}

// SessionToken returns the raw token the request presented, if any.
func SessionToken(c echo.Context) string {
	if token, ok := c.Get(KeySessionToken).(string); ok {
		return token
	}

	return ""
}

// bearerToken pulls the token from the Authorization header.
func (m *AuthMiddleware) bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}

	return token
}

// cookieToken pulls the token from the session cookie.
func (m *AuthMiddleware) cookieToken(c echo.Context) string {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// resolve turns a raw token into a loaded user, or nil when the token is
// missing, forged, expired, or revoked.
func (m *AuthMiddleware) resolve(c echo.Context, token string) *entity.User {
	if token == "" {
		return nil
	}

	userID, err := m.tokenSvc.ValidateSessionToken(token)
	if err != nil {
		return nil
	}

	ctx := c.Request().Context()

	if _, err := m.sessionRepo.FindSessionByHash(ctx, m.tokenSvc.HashToken(token)); err != nil {
		return nil
	}

	user, err := m.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil
	}

	c.Set(KeyUser, user)
	c.Set(KeySessionToken, token)

	return user
}

// Authenticate is the strict API guard: Bearer token or 401, never a redirect.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.bearerToken(c)
		if token == "" {
			token = m.cookieToken(c)
		}

		if user := m.resolve(c, token); user == nil {
			return response.Msg(c, http.StatusUnauthorized, "Invalid or expired session.")
		}

		return next(c)
	}
}

// AuthenticateWeb is the browser guard: resolves the session cookie, and on
// failure remembers the return path and redirects to the login page.
func (m *AuthMiddleware) AuthenticateWeb(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if user := m.resolve(c, m.cookieToken(c)); user != nil {
			return next(c)
		}

		c.SetCookie(&http.Cookie{
			Name:     ReturnToCookie,
			Value:    c.Request().URL.RequestURI(),
			Path:     "/",
			Expires:  time.Now().Add(10 * time.Minute),
			HttpOnly: true,
		})

		return c.Redirect(http.StatusFound, "/login")
	}
}

// OptionalAuthenticate resolves the identity when a token is present but never
// rejects. Content handlers enforce their own login-required semantics.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.bearerToken(c)
		if token == "" {
			token = m.cookieToken(c)
		}

		m.resolve(c, token)

		return next(c)
	}
}

// RequireRole gates a route on the loaded user's role.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return response.Msg(c, http.StatusUnauthorized, "Invalid or expired session.")
			}

			if user.Role != role && !outranks(user.Role, role) {
				return response.Msg(c, http.StatusForbidden, "Permission denied.")
			}

			return next(c)
		}
	}
}

// outranks reports whether have carries every permission of want.
func outranks(have, want entity.Role) bool {
	for _, p := range []entity.Permission{entity.PermAccessPrivate, entity.PermManageContent, entity.PermManageAccounts} {
		if want.Can(p) && !have.Can(p) {
			return false
		}
	}

	return true
}

// RequireLinkedProvider gates a route on the user holding a stored access
// token for the named provider. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireLinkedProvider(provider entity.ProviderType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return response.Msg(c, http.StatusUnauthorized, "Invalid or expired session.")
			}

			auth := user.LinkedProvider(provider)
			if auth == nil || auth.AccessToken == "" {
				return response.Msg(c, http.StatusForbidden, "No linked "+provider.String()+" account.")
			}

			return next(c)
		}
	}
}
