package handler

import (
	"log/slog"
	"net/http"

	"mylot/config"
	"mylot/internal/delivery/http/middleware"
	"mylot/internal/delivery/http/view"
	"mylot/internal/domain/entity"
	domainerrors "mylot/internal/domain/errors"
	"mylot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PageHandler serves the server-rendered browser pages. Form posts redirect
// back with a flash message instead of returning JSON.
type PageHandler struct {
	accountUC usecase.AccountUsecase
	resultUC  usecase.ResultUsecase
	lotteryUC usecase.LotteryUsecase
	recUC     usecase.RecommendationUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewPageHandler is the constructor for PageHandler, injected by Fx.
func NewPageHandler(
	accountUC usecase.AccountUsecase,
	resultUC usecase.ResultUsecase,
	lotteryUC usecase.LotteryUsecase,
	recUC usecase.RecommendationUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) *PageHandler {
	return &PageHandler{
		accountUC: accountUC,
		resultUC:  resultUC,
		lotteryUC: lotteryUC,
		recUC:     recUC,
		cfg:       cfg,
		logger:    logger,
	}
}

// render fills the shared page data and executes the named template.
func (h *PageHandler) render(c echo.Context, name, title string, extra map[string]any) error {
	if extra == nil {
		extra = map[string]any{}
	}
	if token, ok := c.Get("csrf").(string); ok {
		extra["csrf"] = token
	}

	data := view.Data{
		Title: title,
		Flash: view.TakeFlash(c),
		Extra: extra,
	}
	if user := middleware.CurrentUser(c); user != nil {
		data.User = user
	}

	return c.Render(http.StatusOK, name, data)
}

// backWithFlash stores the message and sends the browser back to path.
func backWithFlash(c echo.Context, path, message string) error {
	view.SetFlash(c, message)

	return c.Redirect(http.StatusFound, path)
}

// flashFor turns a domain error into a user-facing flash message.
func flashFor(err error) string {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Fields()) > 0 {
		return validationErr.Fields()[0].Message
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return "Something went wrong. Please try again."
}

// Index handles GET /.
func (h *PageHandler) Index(c echo.Context) error {
	extra := map[string]any{}
	latest, err := h.resultUC.Latest(c.Request().Context())
	if err == nil && latest.Result != nil {
		extra["latest"] = map[string]any{
			"Code":        latest.Result.Code,
			"CurrentLots": latest.CurrentLots,
		}
	}

	return h.render(c, "index.html", "Home", extra)
}

// LoginPage handles GET /login.
func (h *PageHandler) LoginPage(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	return h.render(c, "login.html", "Login", nil)
}

// Login handles POST /login.
func (h *PageHandler) Login(c echo.Context) error {
	output, err := h.accountUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	})
	if err != nil {
		return backWithFlash(c, "/login", flashFor(err))
	}

	setSessionCookie(c, h.cfg, output.Token, h.cfg.Auth.SessionTTL)

	return c.Redirect(http.StatusFound, consumeReturnTo(c))
}

// Logout handles GET /logout.
func (h *PageHandler) Logout(c echo.Context) error {
	if token := middleware.SessionToken(c); token != "" {
		if err := h.accountUC.Logout(c.Request().Context(), token); err != nil {
			h.logger.WarnContext(c.Request().Context(), "failed to end session", slog.Any("error", err))
		}
	}

	clearSessionCookie(c, h.cfg)

	return c.Redirect(http.StatusFound, "/")
}

// SignupPage handles GET /signup.
func (h *PageHandler) SignupPage(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	return h.render(c, "signup.html", "Signup", nil)
}

// Signup handles POST /signup. Browser signups skip the activation mail and
// log the user in immediately.
func (h *PageHandler) Signup(c echo.Context) error {
	password := c.FormValue("password")
	if confirm := c.FormValue("confirmPassword"); confirm != "" && confirm != password {
		return backWithFlash(c, "/signup", "Passwords do not match.")
	}

	output, err := h.accountUC.Signup(c.Request().Context(), usecase.SignupInput{
		Email:    c.FormValue("email"),
		Password: password,
		Profile:  entity.Profile{Name: c.FormValue("name")},
	})
	if err != nil {
		return backWithFlash(c, "/signup", flashFor(err))
	}

	setSessionCookie(c, h.cfg, output.Token, h.cfg.Auth.SessionTTL)

	return c.Redirect(http.StatusFound, "/")
}

// ForgotPage handles GET /forgot.
func (h *PageHandler) ForgotPage(c echo.Context) error {
	return h.render(c, "forgot.html", "Forgot password", nil)
}

// Forgot handles POST /forgot.
func (h *PageHandler) Forgot(c echo.Context) error {
	email := c.FormValue("email")
	if err := h.accountUC.Forgot(c.Request().Context(), usecase.ForgotInput{Email: email}); err != nil {
		return backWithFlash(c, "/forgot", flashFor(err))
	}

	return backWithFlash(c, "/login", "An e-mail has been sent to "+email+" with further instructions.")
}

// ResetPage handles GET /reset/:token.
func (h *PageHandler) ResetPage(c echo.Context) error {
	token := c.Param("token")
	if err := h.accountUC.CheckResetToken(c.Request().Context(), token); err != nil {
		return backWithFlash(c, "/forgot", flashFor(err))
	}

	return h.render(c, "reset.html", "Reset password", map[string]any{"token": token})
}

// Reset handles POST /reset/:token.
func (h *PageHandler) Reset(c echo.Context) error {
	token := c.Param("token")
	password := c.FormValue("password")
	if confirm := c.FormValue("confirmPassword"); confirm != "" && confirm != password {
		return backWithFlash(c, "/reset/"+token, "Passwords do not match.")
	}

	output, err := h.accountUC.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:    token,
		Password: password,
	})
	if err != nil {
		return backWithFlash(c, "/forgot", flashFor(err))
	}

	setSessionCookie(c, h.cfg, output.Token, h.cfg.Auth.SessionTTL)

	return backWithFlash(c, "/account", "Your password has been changed.")
}

// AccountPage handles GET /account. The route sits behind the web
// authentication middleware, so a user is always present here.
func (h *PageHandler) AccountPage(c echo.Context) error {
	user := middleware.CurrentUser(c)
	output, err := h.accountUC.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	providers := make([]string, 0, len(output.User.Authentications))
	for _, auth := range output.User.Authentications {
		providers = append(providers, auth.Provider.String())
	}

	return h.render(c, "account.html", "Account", map[string]any{
		"email":     output.User.Email,
		"name":      output.User.Profile.Name,
		"gender":    output.User.Profile.Gender,
		"city":      output.User.Profile.City,
		"website":   output.User.Profile.Website,
		"providers": providers,
	})
}

// UpdateProfile handles POST /account/profile.
func (h *PageHandler) UpdateProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	_, err := h.accountUC.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		UserID: user.ID,
		Email:  c.FormValue("email"),
		Profile: entity.Profile{
			Name:    c.FormValue("name"),
			Gender:  c.FormValue("gender"),
			City:    c.FormValue("city"),
			Website: c.FormValue("website"),
		},
	})
	if err != nil {
		return backWithFlash(c, "/account", flashFor(err))
	}

	return backWithFlash(c, "/account", "Profile information has been updated.")
}

// UpdatePassword handles POST /account/password.
func (h *PageHandler) UpdatePassword(c echo.Context) error {
	user := middleware.CurrentUser(c)
	password := c.FormValue("password")
	if confirm := c.FormValue("confirmPassword"); confirm != "" && confirm != password {
		return backWithFlash(c, "/account", "Passwords do not match.")
	}

	if err := h.accountUC.UpdatePassword(c.Request().Context(), usecase.UpdatePasswordInput{
		UserID:   user.ID,
		Password: password,
	}); err != nil {
		return backWithFlash(c, "/account", flashFor(err))
	}

	return backWithFlash(c, "/account", "Password has been changed.")
}

// DeleteAccount handles POST /account/delete.
func (h *PageHandler) DeleteAccount(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if err := h.accountUC.DeleteAccount(c.Request().Context(), user.ID); err != nil {
		return backWithFlash(c, "/account", flashFor(err))
	}

	if token := middleware.SessionToken(c); token != "" {
		if err := h.accountUC.Logout(c.Request().Context(), token); err != nil {
			h.logger.WarnContext(c.Request().Context(), "failed to end session", slog.Any("error", err))
		}
	}
	clearSessionCookie(c, h.cfg)

	return backWithFlash(c, "/", "Your account has been deleted.")
}

// UnlinkProvider handles GET /account/unlink/:provider.
func (h *PageHandler) UnlinkProvider(c echo.Context) error {
	user := middleware.CurrentUser(c)
	provider := entity.ProviderType(c.Param("provider"))
	if err := h.accountUC.UnlinkProvider(c.Request().Context(), user.ID, provider); err != nil {
		return backWithFlash(c, "/account", flashFor(err))
	}

	return backWithFlash(c, "/account", provider.String()+" account has been unlinked.")
}

// ResultListPage handles GET /result.
func (h *PageHandler) ResultListPage(c echo.Context) error {
	output, err := h.resultUC.List(c.Request().Context(), parseListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.render(c, "list.html", "Results", listExtra("/result/add", output.Docs, output.Total, output.Page, output.Limit))
}

// ResultAddPage handles GET /result/add.
func (h *PageHandler) ResultAddPage(c echo.Context) error {
	return h.render(c, "form.html", "Add result", map[string]any{
		"action": "/api/result",
		"fields": []string{"code", "budget", "resultDate", "nums"},
	})
}

// LotteryListPage handles GET /lottery.
func (h *PageHandler) LotteryListPage(c echo.Context) error {
	output, err := h.lotteryUC.List(c.Request().Context(), parseListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.render(c, "list.html", "Lotteries", listExtra("/lottery/add", output.Docs, output.Total, output.Page, output.Limit))
}

// LotteryAddPage handles GET /lottery/add.
func (h *PageHandler) LotteryAddPage(c echo.Context) error {
	return h.render(c, "form.html", "Add lottery", map[string]any{
		"action": "/api/lottery",
		"fields": []string{"condition", "nums"},
	})
}

// RecommendationListPage handles GET /recommendation.
func (h *PageHandler) RecommendationListPage(c echo.Context) error {
	output, err := h.recUC.List(c.Request().Context(), parseListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.render(c, "list.html", "Recommendations", listExtra("/recommendation/add", output.Docs, output.Total, output.Page, output.Limit))
}

// RecommendationAddPage handles GET /recommendation/add.
func (h *PageHandler) RecommendationAddPage(c echo.Context) error {
	return h.render(c, "form.html", "Add recommendation", map[string]any{
		"action": "/api/recommendation",
		"fields": []string{"condition", "nums"},
	})
}

func listExtra(addPath string, docs any, total int64, page, limit int) map[string]any {
	pages := int64(1)
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}

	return map[string]any{
		"addPath": addPath,
		"docs":    docs,
		"total":   total,
		"page":    page,
		"pages":   pages,
	}
}

// consumeReturnTo pops the remembered pre-login path, defaulting to /.
func consumeReturnTo(c echo.Context) string {
	cookie, err := c.Cookie(middleware.ReturnToCookie)
	if err != nil || cookie.Value == "" {
		return "/"
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.ReturnToCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return cookie.Value
}
