package usecases

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories"
	"github.com/sitepress/sitepress-backend/repositories/idp"
	"github.com/sitepress/sitepress-backend/usecases/auth"
	"github.com/sitepress/sitepress-backend/usecases/executor_factory"
	"github.com/sitepress/sitepress-backend/usecases/tracking"
	"github.com/sitepress/sitepress-backend/utils"
)

const passwordResetTokenLifetime = time.Hour

type AdminUserRepository interface {
	GetAdminUserByEmail(ctx context.Context, exec repositories.Executor, email string) (models.AdminUser, error)
	GetAdminUserById(ctx context.Context, exec repositories.Executor, id models.UserId) (models.AdminUser, error)
	CreateAdminUser(ctx context.Context, exec repositories.Executor, newUserId models.UserId, user models.CreateAdminUser) error
	UpdateAdminUserPassword(ctx context.Context, exec repositories.Executor, userId models.UserId, passwordHash string) error
	CreatePasswordResetToken(ctx context.Context, exec repositories.Executor, token models.PasswordResetToken) error
	GetPasswordResetTokenByHash(ctx context.Context, exec repositories.Executor, tokenHash []byte) (models.PasswordResetToken, error)
	MarkPasswordResetTokenUsed(ctx context.Context, exec repositories.Executor, id string, usedAt time.Time) error
}

type SessionTokenRepository interface {
	EncodeSessionToken(expirationTime time.Time, creds models.Credentials) (string, error)
	ValidateSessionToken(sessionToken string) (models.Session, error)
}

type SessionUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	userRepository     AdminUserRepository
	tokenRepository    SessionTokenRepository
	idpRepository      idp.TokenRepository
	resetLinkSender    auth.ResetLinkSender
	tokenLifetime      time.Duration
	allowSignup        bool
	appUrl             string
	now                func() time.Time
}

func (usecase *SessionUsecase) clock() time.Time {
	if usecase.now != nil {
		return usecase.now()
	}
	return time.Now()
}

func (usecase *SessionUsecase) issueSession(user models.AdminUser) (models.Session, error) {
	creds := user.IntoCredentials()
	expiresAt := usecase.clock().Add(usecase.tokenLifetime)
	token, err := usecase.tokenRepository.EncodeSessionToken(expiresAt, creds)
	if err != nil {
		return models.Session{}, errors.Wrap(err, "could not encode session token")
	}
	return models.Session{
		Credentials: creds,
		Token:       token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (usecase *SessionUsecase) Login(ctx context.Context, email, password string) (models.Session, error) {
	user, err := usecase.userRepository.GetAdminUserByEmail(ctx, usecase.executorFactory.NewExecutor(), email)
	if errors.Is(err, models.ErrUnknownUser) {
		utils.MetricLoginAttempts.WithLabelValues("unknown_user").Inc()
		return models.Session{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.Session{}, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		utils.MetricLoginAttempts.WithLabelValues("wrong_password").Inc()
		return models.Session{}, models.ErrInvalidCredentials
	}

	utils.MetricLoginAttempts.WithLabelValues("success").Inc()
	return usecase.issueSession(user)
}

func (usecase *SessionUsecase) Signup(ctx context.Context, email, password string) (models.Session, error) {
	if !usecase.allowSignup {
		return models.Session{}, models.ErrSignupDisabled
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.Session{}, err
	}

	user, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.AdminUser, error) {
			newUserId := models.UserId(uuid.NewString())
			err := usecase.userRepository.CreateAdminUser(ctx, tx, newUserId, models.CreateAdminUser{
				Email:        email,
				PasswordHash: &hash,
			})
			if err != nil {
				return models.AdminUser{}, err
			}
			return usecase.userRepository.GetAdminUserById(ctx, tx, newUserId)
		})
	if err != nil {
		return models.Session{}, err
	}

	session, err := usecase.issueSession(user)
	if err != nil {
		return models.Session{}, err
	}

	tracking.TrackEvent(utils.StoreCredentialsInContext(ctx, session.Credentials),
		models.AnalyticsAdminSignedUp, nil)
	return session, nil
}

// ValidateSession resolves the credentials of a session token. It backs the
// authentication middleware.
func (usecase *SessionUsecase) ValidateSession(ctx context.Context, token string) (models.Credentials, error) {
	session, err := usecase.GetSession(ctx, token)
	return session.Credentials, err
}

// GetSession checks the token signature, then that its admin still exists and has not
// changed password since the token was issued.
func (usecase *SessionUsecase) GetSession(ctx context.Context, token string) (models.Session, error) {
	session, err := usecase.tokenRepository.ValidateSessionToken(token)
	if err != nil {
		return models.Session{}, err
	}
	if _, err := uuid.Parse(string(session.Credentials.UserId)); err != nil {
		return models.Session{}, errors.Wrap(models.UnAuthorizedError, "malformed session subject")
	}

	user, err := usecase.userRepository.GetAdminUserById(ctx, usecase.executorFactory.NewExecutor(),
		session.Credentials.UserId)
	if err != nil {
		return models.Session{}, err
	}
	if user.RevokesSessionIssuedAt(session.IssuedAt) {
		return models.Session{}, errors.Wrap(models.UnAuthorizedError, "session predates the last password change")
	}
	return session, nil
}

// ResetPassword sends a single-use reset link when the email belongs to an admin.
// Unknown emails are not reported to the caller.
func (usecase *SessionUsecase) ResetPassword(ctx context.Context, email string) error {
	logger := utils.LoggerFromContext(ctx)

	user, err := usecase.userRepository.GetAdminUserByEmail(ctx, usecase.executorFactory.NewExecutor(), email)
	if errors.Is(err, models.ErrUnknownUser) {
		logger.DebugContext(ctx, "password reset requested for an unknown email")
		return nil
	}
	if err != nil {
		return err
	}

	rawToken, tokenHash, err := auth.NewResetToken()
	if err != nil {
		return err
	}

	err = usecase.userRepository.CreatePasswordResetToken(ctx, usecase.executorFactory.NewExecutor(),
		models.PasswordResetToken{
			Id:        uuid.NewString(),
			UserId:    user.Id,
			TokenHash: tokenHash,
			ExpiresAt: usecase.clock().Add(passwordResetTokenLifetime),
		})
	if err != nil {
		return err
	}

	link := strings.TrimRight(usecase.appUrl, "/") + "/update-password?token=" + url.QueryEscape(rawToken)
	if err := usecase.resetLinkSender.SendResetLink(ctx, user.Email, link); err != nil {
		return errors.Wrap(err, "could not send the password reset link")
	}

	logger.InfoContext(ctx, "password reset link issued", slog.String("user_id", string(user.Id)))
	return nil
}

func (usecase *SessionUsecase) UpdatePassword(ctx context.Context, rawToken, newPassword string) error {
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		token, err := usecase.userRepository.GetPasswordResetTokenByHash(ctx, tx, auth.HashResetToken(rawToken))
		if err != nil {
			return err
		}

		now := usecase.clock()
		if !token.IsUsable(now) {
			return models.ErrInvalidResetToken
		}

		if err := usecase.userRepository.UpdateAdminUserPassword(ctx, tx, token.UserId, hash); err != nil {
			return err
		}
		return usecase.userRepository.MarkPasswordResetTokenUsed(ctx, tx, token.Id, now)
	})
}

// ExchangeIdpToken turns an identity provider token into a session, for admins
// whose email the provider has verified.
func (usecase *SessionUsecase) ExchangeIdpToken(ctx context.Context, idToken string) (models.Session, error) {
	if usecase.idpRepository == nil {
		return models.Session{}, errors.Wrap(models.UnAuthorizedError, "no identity provider is configured")
	}

	claims, err := usecase.idpRepository.VerifyToken(ctx, idToken)
	if err != nil {
		return models.Session{}, err
	}
	if !claims.EmailVerified {
		return models.Session{}, errors.Wrapf(models.ErrEmailNotVerified, "email %s", claims.Email)
	}

	user, err := usecase.userRepository.GetAdminUserByEmail(ctx, usecase.executorFactory.NewExecutor(), claims.Email)
	if err != nil {
		return models.Session{}, err
	}

	utils.MetricLoginAttempts.WithLabelValues("idp_success").Inc()
	return usecase.issueSession(user)
}
