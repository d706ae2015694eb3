package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/talentsift/talentsift/internal/auth/domain"
	"github.com/talentsift/talentsift/internal/auth/mailer"
	"github.com/talentsift/talentsift/internal/auth/store"
	"github.com/talentsift/talentsift/pkg/cryptox"
	"github.com/talentsift/talentsift/pkg/idx"
	"github.com/talentsift/talentsift/pkg/slogx"
)

var (
	ErrDuplicateEmail  = errors.New("duplicate_email")
	ErrInvalidToken    = errors.New("invalid_token")
	ErrTokenExpired    = errors.New("token_expired")
	ErrAlreadyVerified = errors.New("already_verified")
)

const (
	// VerificationTokenTTL bounds how long a verification link stays usable.
	VerificationTokenTTL = 24 * time.Hour

	// ResetTokenTTL bounds how long a password reset link stays usable.
	ResetTokenTTL = time.Hour
)

// AccountService owns the account lifecycle: registration, email
// verification, and password reset.
type AccountService struct {
	Store  store.Store
	Mailer *mailer.Mailer
}

// Register creates a user with an unverified email and sends the verification
// link. The email address is unique across the service.
func (s *AccountService) Register(ctx context.Context, email, password, name, organization string) (domain.User, error) {
	now := time.Now()
	l := slogx.FromContext(ctx)

	email = domain.NormalizeEmail(email)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	token, err := cryptox.GenerateHexToken(cryptox.TokenSize256)
	if err != nil {
		return domain.User{}, err
	}
	expiresAt := now.Add(VerificationTokenTTL)

	user := domain.User{
		ID:                    idx.New().String(),
		Email:                 email,
		Name:                  name,
		Organization:          organization,
		PasswordHash:          hash,
		EmailVerified:         false,
		VerificationToken:     &token,
		VerificationExpiresAt: &expiresAt,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateEmail
		}
		return domain.User{}, err
	}

	if err := s.Mailer.SendVerification(ctx, user.Email, user.Name, token); err != nil {
		// The account exists either way; the token can be re-sent.
		l.Error("verification email delivery failed", slog.String("user_id", user.ID), slog.Any("error", err))
	}

	l.Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

// VerifyEmail consumes a verification token and marks the address verified.
// Expired tokens are rejected but left in place so the resend flow can still
// find the account.
func (s *AccountService) VerifyEmail(ctx context.Context, token string) (domain.User, error) {
	now := time.Now()

	var user domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByVerificationToken(ctx, token)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidToken
			}
			return err
		}
		if u.EmailVerified {
			return ErrAlreadyVerified
		}
		if u.VerificationExpiresAt == nil || now.After(*u.VerificationExpiresAt) {
			return ErrTokenExpired
		}
		if err := tx.Users().MarkEmailVerified(ctx, u.ID); err != nil {
			return err
		}
		u.EmailVerified = true
		u.VerificationToken = nil
		u.VerificationExpiresAt = nil
		user = u
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("email verified", slog.String("user_id", user.ID))
	return user, nil
}

// ResendVerification issues a fresh verification token, displacing any
// previous one. It reports success for unknown or already-verified addresses
// so the endpoint cannot be used to probe which emails have accounts.
func (s *AccountService) ResendVerification(ctx context.Context, email string) error {
	now := time.Now()
	l := slogx.FromContext(ctx)

	email = domain.NormalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if user.EmailVerified {
		return nil
	}

	token, err := cryptox.GenerateHexToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}
	if err := s.Store.Users().SetVerificationToken(ctx, user.ID, token, now.Add(VerificationTokenTTL)); err != nil {
		return err
	}

	if err := s.Mailer.SendVerification(ctx, user.Email, user.Name, token); err != nil {
		l.Error("verification email delivery failed", slog.String("user_id", user.ID), slog.Any("error", err))
	}
	return nil
}

// ForgotPassword issues a password reset token. Like ResendVerification it
// never reveals whether the address has an account.
func (s *AccountService) ForgotPassword(ctx context.Context, email string) error {
	now := time.Now()
	l := slogx.FromContext(ctx)

	email = domain.NormalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := cryptox.GenerateHexToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}
	if err := s.Store.Users().SetResetToken(ctx, user.ID, token, now.Add(ResetTokenTTL)); err != nil {
		return err
	}

	if err := s.Mailer.SendPasswordReset(ctx, user.Email, user.Name, token); err != nil {
		l.Error("reset email delivery failed", slog.String("user_id", user.ID), slog.Any("error", err))
	}
	return nil
}

// ResetPassword consumes a reset token and replaces the password. The stored
// refresh token is revoked in the same update, so sessions opened with the
// old password cannot outlive it.
func (s *AccountService) ResetPassword(ctx context.Context, token, newPassword string) (domain.User, error) {
	now := time.Now()

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return domain.User{}, err
	}

	var user domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByResetToken(ctx, token)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidToken
			}
			return err
		}
		if u.ResetTokenExpiresAt == nil || now.After(*u.ResetTokenExpiresAt) {
			return ErrTokenExpired
		}
		if err := tx.Users().ReplacePassword(ctx, u.ID, hash); err != nil {
			return err
		}
		u.PasswordHash = hash
		u.ResetToken = nil
		u.ResetTokenExpiresAt = nil
		u.RefreshTokenHash = nil
		user = u
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("password reset", slog.String("user_id", user.ID))
	return user, nil
}

// IsEmailVerified reports whether the user's address has been confirmed. It
// backs the verified-email guard on the usage endpoints.
func (s *AccountService) IsEmailVerified(ctx context.Context, userID string) (bool, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.EmailVerified, nil
}
