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

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related API handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, cfg *config.Config, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// --- Payloads ---

type signupPayload struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
	Name            string `json:"name"`
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPayload struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPayload struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
}

type profilePayload struct {
	Email     string `json:"email" validate:"omitempty,email"`
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	DOB       string `json:"dob"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Location  string `json:"location"`
	Website   string `json:"website"`
	Picture   string `json:"picture"`
}

func (p profilePayload) toProfile() entity.Profile {
	return entity.Profile{
		Name:      p.Name,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Gender:    p.Gender,
		DOB:       p.DOB,
		Address:   p.Address,
		City:      p.City,
		Location:  p.Location,
		Website:   p.Website,
		Picture:   p.Picture,
	}
}

type passwordPayload struct {
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
}

// --- Views ---

// userView is the safe account projection served to clients.
// Password hashes and tokens never leave the server.
type userView struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Profile   entity.Profile    `json:"profile"`
	Role      string            `json:"role"`
	Active    bool              `json:"active"`
	Providers map[string]string `json:"providers"`
}

func newUserView(user *entity.User) userView {
	providers := make(map[string]string, len(user.Authentications))
	for _, auth := range user.Authentications {
		providers[auth.Provider.String()] = auth.ProviderUserID
	}

	return userView{
		ID:        user.ID.String(),
		Email:     user.Email,
		Profile:   user.Profile,
		Role:      user.Role.String(),
		Active:    user.Active,
		Providers: providers,
	}
}

// credentialValidation maps validation failures on credential endpoints to 401.
func credentialValidation(err error) error {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.WithHTTPCode(http.StatusUnauthorized)
	}

	return err
}

// --- Handlers ---

// Signup handles POST /api/signup. The account starts inactive and receives
// an activation mail.
func (h *AccountHandler) Signup(c echo.Context) error {
	var payload signupPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(payload); err != nil {
		return err
	}

	output, err := h.uc.Signup(c.Request().Context(), usecase.SignupInput{
		Email:             payload.Email,
		Password:          payload.Password,
		Profile:           entity.Profile{Name: payload.Name},
		RequireActivation: true,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, newUserView(output.User))
}

// Login handles POST /api/login. Validation failures report 401 here.
func (h *AccountHandler) Login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(payload); err != nil {
		return credentialValidation(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput(payload))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"token": output.Token,
		"user":  newUserView(output.User),
	})
}

// Logout handles GET /api/logout. An absent or invalid token still logs out.
func (h *AccountHandler) Logout(c echo.Context) error {
	token := middleware.SessionToken(c)
	if token != "" {
		if err := h.uc.Logout(c.Request().Context(), token); err != nil {
			return errors.WithStack(err)
		}
	}

	clearSessionCookie(c, h.cfg)

	return response.Msg(c, http.StatusOK, "You have been logged out.")
}

// Activate handles GET /api/account/activate?key=.
func (h *AccountHandler) Activate(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return errors.WithStack(domainerrors.ErrActivationKeyInvalid)
	}

	if err := h.uc.Activate(c.Request().Context(), key); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, "Your account has been activated.")
}

// Forgot handles POST /api/forgot.
func (h *AccountHandler) Forgot(c echo.Context) error {
	var payload forgotPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(payload); err != nil {
		return err
	}

	if err := h.uc.Forgot(c.Request().Context(), usecase.ForgotInput(payload)); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, "An e-mail has been sent to "+payload.Email+" with further instructions.")
}

// ResetInit handles GET /api/reset/init?token=, checking a reset token
// before the client shows the form.
func (h *AccountHandler) ResetInit(c echo.Context) error {
	if err := h.uc.CheckResetToken(c.Request().Context(), c.QueryParam("token")); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, "Token is valid.")
}

// ResetFinish handles POST /api/reset/finish, consuming the token and
// logging the user in.
func (h *AccountHandler) ResetFinish(c echo.Context) error {
	var payload resetPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(payload); err != nil {
		return err
	}

	output, err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:    payload.Token,
		Password: payload.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"token": output.Token,
		"user":  newUserView(output.User),
	})
}

// GetProfile handles GET /api/account/profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.LoginRequired(c)
	}

	output, err := h.uc.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	realAwards := make([]string, 0, len(output.RealAwards))
	for _, lot := range output.RealAwards {
		realAwards = append(realAwards, lot.ID.String())
	}
	tryAwards := make([]string, 0, len(output.TryAwards))
	for _, rec := range output.TryAwards {
		tryAwards = append(tryAwards, rec.ID.String())
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"user":       newUserView(output.User),
		"realAwards": realAwards,
		"tryAwards":  tryAwards,
	})
}

// UpdateProfile handles POST /api/account/profile.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.LoginRequired(c)
	}

	var payload profilePayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(payload); err != nil {
		return err
	}

	updated, err := h.uc.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		UserID:  user.ID,
		Email:   payload.Email,
		Profile: payload.toProfile(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, newUserView(updated))
}

// UpdatePassword handles POST /api/account/password.
func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.LoginRequired(c)
	}

	var payload passwordPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(payload); err != nil {
		return err
	}

	if err := h.uc.UpdatePassword(c.Request().Context(), usecase.UpdatePasswordInput{
		UserID:   user.ID,
		Password: payload.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, "Password has been changed.")
}

// Unlink handles GET /api/account/unlink/:provider.
func (h *AccountHandler) Unlink(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.LoginRequired(c)
	}

	provider := entity.ProviderType(c.Param("provider"))
	if !provider.IsSocial() && provider != entity.ProviderTypeEmail {
		return errors.WithStack(domainerrors.ErrOAuthUnsupported)
	}

	if err := h.uc.UnlinkProvider(c.Request().Context(), user.ID, provider); err != nil {
		return errors.WithStack(err)
	}

	return response.Msg(c, http.StatusOK, provider.String()+" account has been unlinked.")
}
