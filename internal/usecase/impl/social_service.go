package impl

import (
	"context"
	"log/slog"
	"time"

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

// socialService implements the SocialUsecase interface.
// One OAuthVerifier per provider is injected; lookups go through the map.
type socialService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	tokens      service.TokenService
	verifiers   map[entity.ProviderType]service.OAuthVerifier
	logger      *slog.Logger
}

// SocialServiceParams holds dependencies for socialService, injected by Fx.
type SocialServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Tokens      service.TokenService
	Verifiers   []service.OAuthVerifier `group:"oauth_verifiers"`
	Logger      *slog.Logger
}

// NewSocialService is the constructor for socialService.
func NewSocialService(params SocialServiceParams) usecase.SocialUsecase {
	verifiers := make(map[entity.ProviderType]service.OAuthVerifier, len(params.Verifiers))
	for _, verifier := range params.Verifiers {
		verifiers[verifier.Provider()] = verifier
	}

	return &socialService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		tokens:      params.Tokens,
		verifiers:   verifiers,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *socialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *socialService) verifier(provider entity.ProviderType) (service.OAuthVerifier, error) {
	verifier, ok := srv.verifiers[provider]
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrOAuthUnsupported, "no verifier for provider")
	}

	return verifier, nil
}

// SocialLogin verifies a provider credential and finds or creates the account.
func (srv *socialService) SocialLogin(ctx context.Context, input usecase.SocialLoginInput) (*usecase.SocialLoginOutput, error) {
	srv.log(ctx).Info("Handling social login", slog.String("provider", input.Provider.String()))

	verifier, err := srv.verifier(input.Provider)
	if err != nil {
		return nil, err
	}

	oauthUser, err := verifier.VerifyCredential(ctx, input.Credential)
	if err != nil {
		srv.log(ctx).Warn("Credential verification failed", slog.String("provider", input.Provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "failed to verify provider credential")
	}
	oauthUser.AccessToken = input.Credential

	return srv.resolveSocialUser(ctx, oauthUser)
}

// resolveSocialUser finds or creates the account for a verified provider profile
// and opens a session for it.
func (srv *socialService) resolveSocialUser(ctx context.Context, oauthUser *service.OAuthUser) (*usecase.SocialLoginOutput, error) {
	var loggedInUser *entity.User
	var existing bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		userRepo := repoFactory.UserRepo()

		authRecord, findErr := authRepo.FindAuthentication(ctx, oauthUser.Provider, oauthUser.ID)
		if findErr != nil && !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		if findErr == nil {
			existing = true

			// Keep the stored provider token fresh on every login.
			authRecord.AccessToken = oauthUser.AccessToken
			if updateErr := authRepo.UpdateAuthentication(ctx, authRecord); updateErr != nil {
				return errors.Wrap(updateErr, "failed to refresh provider token")
			}

			user, userErr := userRepo.FindByID(ctx, authRecord.UserID)
			if userErr != nil {
				return errors.Wrap(userErr, "failed to load user for social login")
			}
			loggedInUser = user

			return nil
		}

		// Accounts share an email: a social login with a known address attaches
		// to the existing account instead of creating a duplicate.
		user, userErr := userRepo.FindByEmail(ctx, oauthUser.Email)
		if userErr != nil && !errors.Is(userErr, repository.ErrUserNotFound) {
			return errors.Wrap(userErr, "failed to check email for social login")
		}

		if userErr == nil {
			existing = true
		} else {
			user = srv.buildSocialUser(oauthUser)
			if createErr := userRepo.Create(ctx, user); createErr != nil {
				return errors.Wrap(createErr, "failed to create user for social login")
			}
		}

		newAuth := &entity.Authentication{
			UserID:         user.ID,
			Provider:       oauthUser.Provider,
			ProviderUserID: oauthUser.ID,
			AccessToken:    oauthUser.AccessToken,
		}

		if createErr := authRepo.CreateAuthentication(ctx, newAuth); createErr != nil {
			return errors.Wrap(createErr, "failed to link provider credential")
		}

		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Social login failed", slog.String("provider", oauthUser.Provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute social login transaction")
	}

	token, err := srv.openSession(ctx, loggedInUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to establish session for social login")
	}

	srv.log(ctx).Debug("Social login completed", slog.Any("userID", loggedInUser.ID), slog.Bool("existing", existing))

	return &usecase.SocialLoginOutput{
		User:     loggedInUser,
		Token:    token,
		Existing: existing,
	}, nil
}

// buildSocialUser maps a verified provider profile onto a new active account.
func (srv *socialService) buildSocialUser(oauthUser *service.OAuthUser) *entity.User {
	return &entity.User{
		Email: oauthUser.Email,
		Profile: entity.Profile{
			Name:      oauthUser.Name,
			FirstName: oauthUser.FirstName,
			LastName:  oauthUser.LastName,
			Gender:    oauthUser.Gender,
			Website:   oauthUser.ProfileURL,
			Picture:   oauthUser.AvatarURL,
		},
		Role:   entity.RoleUser,
		Active: true,
	}
}

func (srv *socialService) openSession(ctx context.Context, userID uuid.UUID) (string, error) {
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

// AuthorizationURL builds the provider redirect that starts the web flow.
func (srv *socialService) AuthorizationURL(provider entity.ProviderType, state string) (string, error) {
	verifier, err := srv.verifier(provider)
	if err != nil {
		return "", err
	}

	url, err := verifier.AuthorizationURL(state)
	if err != nil {
		return "", errors.Wrap(err, "failed to build authorization URL")
	}

	return url, nil
}

// HandleCallback finishes the web flow: exchange the code, verify, resolve the account.
func (srv *socialService) HandleCallback(ctx context.Context, provider entity.ProviderType, code string) (*usecase.SocialLoginOutput, error) {
	srv.log(ctx).Info("Handling OAuth callback", slog.String("provider", provider.String()))

	verifier, err := srv.verifier(provider)
	if err != nil {
		return nil, err
	}

	credential, err := verifier.ExchangeCode(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("Code exchange failed", slog.String("provider", provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "failed to exchange authorization code")
	}

	oauthUser, err := verifier.VerifyCredential(ctx, credential)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "failed to verify provider credential")
	}
	oauthUser.AccessToken = credential

	return srv.resolveSocialUser(ctx, oauthUser)
}
