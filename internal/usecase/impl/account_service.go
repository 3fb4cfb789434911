// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"mylot/config"
	deliverycontext "mylot/internal/delivery/context"
	"mylot/internal/domain/entity"
	domainerrors "mylot/internal/domain/errors"
	"mylot/internal/domain/repository"
	"mylot/internal/domain/service"
	"mylot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	lotteryRepo repository.LotteryRepository
	recRepo     repository.RecommendationRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	mailer      service.Mailer
	baseURL     string
	resetTTL    time.Duration
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	LotteryRepo repository.LotteryRepository
	RecRepo     repository.RecommendationRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Mailer      service.Mailer
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	resetTTL := time.Hour
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.ResetTTL > 0 {
		resetTTL = params.Config.Auth.ResetTTL
	}

	return &accountService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		lotteryRepo: params.LotteryRepo,
		recRepo:     params.RecRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		mailer:      params.Mailer,
		baseURL:     params.Config.HTTP.BaseURL,
		resetTTL:    resetTTL,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// newSecureToken returns a 16-byte random token as a 32-char hex string.
// Used for activation keys and password reset tokens.
func newSecureToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

// Signup creates a new account with an email credential.
func (srv *accountService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Email:   input.Email,
		Profile: input.Profile,
		Role:    entity.RoleUser,
		Active:  !input.RequireActivation,
	}

	if input.RequireActivation {
		key, keyErr := newSecureToken()
		if keyErr != nil {
			return nil, errors.Wrap(keyErr, "failed to generate activation key")
		}
		newUser.ActiveKey = key
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		if _, findErr := userRepo.FindByEmail(ctx, input.Email); findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailTaken, "signup rejected")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during signup")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}

		if createErr := authRepo.CreateAuthentication(ctx, newAuth); createErr != nil {
			return errors.Wrap(createErr, "failed to create authentication during signup")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	if input.RequireActivation {
		srv.sendActivationMail(ctx, newUser)
	}

	output := &usecase.SignupOutput{User: newUser}

	if !input.RequireActivation {
		token, sessionErr := srv.establishSession(ctx, newUser.ID)
		if sessionErr != nil {
			srv.log(ctx).Warn("Signup succeeded but login failed", slog.Any("userID", newUser.ID), slog.Any("error", sessionErr))

			return nil, errors.Wrap(sessionErr, "failed to establish session after signup")
		}
		output.Token = token
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return output, nil
}

// sendActivationMail mails the activation link. Delivery is best-effort.
func (srv *accountService) sendActivationMail(ctx context.Context, user *entity.User) {
	link := fmt.Sprintf("%s/api/account/activate?key=%s", srv.baseURL, user.ActiveKey)
	body := fmt.Sprintf("Hello,\n\nActivate your account by opening the link below:\n\n%s\n", link)

	if err := srv.mailer.Send(ctx, user.Email, "Activate your account", body); err != nil {
		srv.log(ctx).Warn("Failed to send activation mail", slog.String("email", user.Email), slog.Any("error", err))
	}
}

// establishSession issues a signed session token and persists its hash.
// Each new login also sweeps expired session rows, best-effort.
func (srv *accountService) establishSession(ctx context.Context, userID uuid.UUID) (string, error) {
	if err := srv.sessionRepo.DeleteExpiredSessions(ctx); err != nil {
		srv.log(ctx).Warn("Failed to sweep expired sessions", slog.Any("error", err))
	}

	token, err := srv.tokens.GenerateSessionToken(userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	session := &entity.Session{
		UserID:    userID,
		TokenHash: srv.tokens.HashToken(token),
		ExpiresAt: time.Now().Add(srv.tokens.SessionDuration()),
	}

	if err := srv.sessionRepo.CreateSession(ctx, session); err != nil {
		return "", errors.Wrap(err, "failed to persist session")
	}

	return token, nil
}

// Login verifies an email/password pair and opens a session.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	emailAuth := user.LinkedProvider(entity.ProviderTypeEmail)
	if emailAuth == nil {
		srv.log(ctx).Warn("Login with no email credential", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// bcrypt compare is CPU-bound, kept outside any transaction.
	if !srv.hasher.Check(input.Password, emailAuth.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.establishSession(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to establish session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to establish session during login")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// Logout deletes the session row for the presented token.
// An invalid or unknown token still counts as logged out.
func (srv *accountService) Logout(ctx context.Context, token string) error {
	if _, err := srv.tokens.ValidateSessionToken(token); err != nil {
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	if err := srv.sessionRepo.DeleteSessionByHash(ctx, srv.tokens.HashToken(token)); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// Activate consumes an activation key. Keys are single use.
func (srv *accountService) Activate(ctx context.Context, key string) error {
	srv.log(ctx).Info("Activating account")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByActiveKey(ctx, key)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrActivationKeyInvalid, "activation failed")
			}

			return errors.Wrap(findErr, "failed to find user by activation key")
		}

		if user.Active {
			return errors.Wrap(domainerrors.ErrAccountAlreadyActive, "activation failed")
		}

		user.Active = true
		user.ActiveKey = ""

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to activate user")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute activation transaction")
	}

	return nil
}

// Forgot stores a reset token on the account and mails the reset link.
func (srv *accountService) Forgot(ctx context.Context, input usecase.ForgotInput) error {
	srv.log(ctx).Info("Starting password reset", slog.String("email", input.Email))

	token, err := newSecureToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var findErr error
		user, findErr = userRepo.FindByEmail(ctx, input.Email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "password reset rejected")
			}

			return errors.Wrap(findErr, "failed to find user for password reset")
		}

		expires := time.Now().Add(srv.resetTTL)
		user.PasswordResetToken = token
		user.PasswordResetExpires = &expires

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to store reset token")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.sendResetMail(ctx, user, token)

	return nil
}

// sendResetMail mails the reset link. Delivery is best-effort.
func (srv *accountService) sendResetMail(ctx context.Context, user *entity.User, token string) {
	link := fmt.Sprintf("%s/reset/%s", srv.baseURL, token)
	body := fmt.Sprintf("Hello,\n\nReset your password by opening the link below within one hour:\n\n%s\n", link)

	if err := srv.mailer.Send(ctx, user.Email, "Reset your password", body); err != nil {
		srv.log(ctx).Warn("Failed to send reset mail", slog.String("email", user.Email), slog.Any("error", err))
	}
}

// CheckResetToken reports whether a reset token is valid and unexpired.
func (srv *accountService) CheckResetToken(ctx context.Context, token string) error {
	user, err := srv.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset token check failed")
		}

		return errors.Wrap(err, "failed to find user by reset token")
	}

	if !user.HasResetPending(time.Now()) {
		return errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset token check failed")
	}

	return nil
}

// ResetPassword consumes the reset token, re-hashes the password and logs the user in.
func (srv *accountService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Finishing password reset")

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		var findErr error
		user, findErr = userRepo.FindByResetToken(ctx, input.Token)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrResetTokenInvalid, "password reset failed")
			}

			return errors.Wrap(findErr, "failed to find user by reset token")
		}

		if !user.HasResetPending(time.Now()) {
			return errors.Wrap(domainerrors.ErrResetTokenInvalid, "password reset failed")
		}

		emailAuth := user.LinkedProvider(entity.ProviderTypeEmail)
		if emailAuth == nil {
			emailAuth = &entity.Authentication{
				UserID:         user.ID,
				Provider:       entity.ProviderTypeEmail,
				ProviderUserID: user.Email,
				PasswordHash:   hashedPassword,
			}
			if createErr := authRepo.CreateAuthentication(ctx, emailAuth); createErr != nil {
				return errors.Wrap(createErr, "failed to create email credential during reset")
			}
		} else {
			emailAuth.PasswordHash = hashedPassword
			if updateErr := authRepo.UpdateAuthentication(ctx, emailAuth); updateErr != nil {
				return errors.Wrap(updateErr, "failed to update password during reset")
			}
		}

		user.ClearResetToken()
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to clear reset token")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.sendResetConfirmationMail(ctx, user)

	token, err := srv.establishSession(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to establish session after reset")
	}

	srv.log(ctx).Debug("Password reset completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// sendResetConfirmationMail mails a confirmation. Delivery is best-effort.
func (srv *accountService) sendResetConfirmationMail(ctx context.Context, user *entity.User) {
	body := fmt.Sprintf("Hello,\n\nThis is a confirmation that the password for your account %s has just been changed.\n", user.Email)

	if err := srv.mailer.Send(ctx, user.Email, "Your password has been changed", body); err != nil {
		srv.log(ctx).Warn("Failed to send reset confirmation mail", slog.String("email", user.Email), slog.Any("error", err))
	}
}

// GetProfile loads the account page projection: the user plus their award history.
func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	realAwards, err := srv.lotteryRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user lotteries")
	}

	tryAwards, err := srv.recRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user recommendations")
	}

	return &usecase.ProfileOutput{
		User:       user,
		RealAwards: realAwards,
		TryAwards:  tryAwards,
	}, nil
}

// UpdateProfile replaces the profile subset and, when changed, the email.
func (srv *accountService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", input.UserID))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		var findErr error
		user, findErr = userRepo.FindByID(ctx, input.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "profile update failed")
			}

			return errors.Wrap(findErr, "failed to find user")
		}

		emailChanged := input.Email != "" && input.Email != user.Email
		if emailChanged {
			user.Email = input.Email
		}
		user.Profile = input.Profile

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update profile")
		}

		// The email credential is keyed by address, keep it in step.
		if emailChanged {
			if emailAuth := user.LinkedProvider(entity.ProviderTypeEmail); emailAuth != nil {
				emailAuth.ProviderUserID = input.Email
				if updateErr := authRepo.UpdateAuthentication(ctx, emailAuth); updateErr != nil {
					return errors.Wrap(updateErr, "failed to update email credential")
				}
			}
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return user, nil
}

// UpdatePassword re-hashes and stores a new password for the account.
func (srv *accountService) UpdatePassword(ctx context.Context, input usecase.UpdatePasswordInput) error {
	srv.log(ctx).Info("Updating password", slog.Any("userID", input.UserID))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		user, findErr := userRepo.FindByID(ctx, input.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "password update failed")
			}

			return errors.Wrap(findErr, "failed to find user")
		}

		emailAuth := user.LinkedProvider(entity.ProviderTypeEmail)
		if emailAuth == nil {
			emailAuth = &entity.Authentication{
				UserID:         user.ID,
				Provider:       entity.ProviderTypeEmail,
				ProviderUserID: user.Email,
				PasswordHash:   hashedPassword,
			}

			return errors.Wrap(authRepo.CreateAuthentication(ctx, emailAuth), "failed to create email credential")
		}

		emailAuth.PasswordHash = hashedPassword

		return errors.Wrap(authRepo.UpdateAuthentication(ctx, emailAuth), "failed to update password")
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute password update transaction")
	}

	return nil
}

// DeleteAccount revokes every open session and removes the user.
// Credential rows cascade with the user row.
func (srv *accountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("userID", userID))

	if err := srv.sessionRepo.DeleteSessionsByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to revoke sessions")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "account deletion failed")
		}

		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}

// UnlinkProvider removes one credential. The last remaining credential cannot be removed.
func (srv *accountService) UnlinkProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error {
	srv.log(ctx).Info("Unlinking provider", slog.Any("userID", userID), slog.String("provider", provider.String()))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		count, countErr := authRepo.CountByUserID(ctx, userID)
		if countErr != nil {
			return errors.Wrap(countErr, "failed to count credentials")
		}

		if count <= 1 {
			return errors.Wrap(domainerrors.ErrLastCredential, "unlink rejected")
		}

		if deleteErr := authRepo.DeleteAuthentication(ctx, userID, provider); deleteErr != nil {
			if errors.Is(deleteErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "provider not linked")
			}

			return errors.Wrap(deleteErr, "failed to delete credential")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Unlink failed", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute unlink transaction")
	}

	return nil
}
