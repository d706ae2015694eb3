package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/talentsift/talentsift/internal/auth/domain"
	"github.com/talentsift/talentsift/internal/auth/store"
	"github.com/talentsift/talentsift/pkg/cryptox"
	"github.com/talentsift/talentsift/pkg/jwtx"
	"github.com/talentsift/talentsift/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailNotVerified   = errors.New("email_not_verified")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
)

// comparisonHash returns a throwaway argon2id hash. Login verifies against it
// when the email does not match a user, so a failed lookup costs the same wall
// clock time as a failed password and the difference cannot be probed. Computed
// on first use, after the pepper path has been configured.
var comparisonHash = sync.OnceValue(func() string {
	h, err := cryptox.HashPassword("timing-equalization-only")
	if err != nil {
		panic(err)
	}
	return h
})

type TokenService struct {
	Store      store.Store
	Access     jwtx.Signer
	Refresh    jwtx.Signer
	Verifier   jwtx.Verifier // verifies refresh tokens
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// RequireVerifiedEmail blocks login until the address is confirmed.
	RequireVerifiedEmail bool
}

// Login verifies the credentials and issues a fresh token pair. The refresh
// token fingerprint is persisted on the user row, displacing any previously
// issued refresh token.
func (s *TokenService) Login(ctx context.Context, email, password string) (*domain.TokenPair, domain.User, error) {
	now := time.Now()
	l := slogx.FromContext(ctx)

	email = domain.NormalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn the same time a real verification would take.
			_ = cryptox.VerifyPassword(password, comparisonHash())
			return nil, domain.User{}, ErrInvalidCredentials
		}
		return nil, domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("user_id", user.ID))
		return nil, domain.User{}, ErrInvalidCredentials
	}

	if s.RequireVerifiedEmail && !user.EmailVerified {
		return nil, domain.User{}, ErrEmailNotVerified
	}

	pair, err := s.issue(ctx, user, now)
	if err != nil {
		return nil, domain.User{}, err
	}

	l.Info("login succeeded", slog.String("user_id", user.ID))
	return pair, user, nil
}

// RefreshTokens rotates a refresh token: the presented token must carry a
// valid signature AND match the fingerprint stored for its user. Validation
// and rotation run inside one transaction so two concurrent presentations of
// the same token cannot both succeed.
func (s *TokenService) RefreshTokens(ctx context.Context, refreshToken string) (*domain.TokenPair, domain.User, error) {
	now := time.Now()
	l := slogx.FromContext(ctx)

	claims, err := s.Verifier.Verify(refreshToken)
	if err != nil {
		return nil, domain.User{}, ErrInvalidRefresh
	}

	fp := cryptox.FingerprintToken(refreshToken)

	var (
		pair *domain.TokenPair
		user domain.User
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}

		if u.RefreshTokenHash == nil ||
			subtle.ConstantTimeCompare([]byte(*u.RefreshTokenHash), []byte(fp)) != 1 {
			l.Info("refresh token fingerprint mismatch", slog.String("user_id", u.ID))
			return ErrInvalidRefresh
		}

		p, newFP, err := s.mint(u, now)
		if err != nil {
			return err
		}
		if err := tx.Users().UpdateRefreshTokenHash(ctx, u.ID, &newFP); err != nil {
			return err
		}

		pair = p
		user = u
		return nil
	})
	if err != nil {
		return nil, domain.User{}, err
	}

	return pair, user, nil
}

// Logout revokes the stored refresh token for the user the presented token
// belongs to. It is idempotent: unknown, expired, or already-revoked tokens
// all succeed without effect.
func (s *TokenService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	claims, err := s.Verifier.Verify(refreshToken)
	if err != nil {
		return nil
	}

	fp := cryptox.FingerprintToken(refreshToken)

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		// Only clear if the presented token is the live one, so a stale
		// logout cannot revoke a session established afterwards.
		if u.RefreshTokenHash == nil || *u.RefreshTokenHash != fp {
			return nil
		}
		return tx.Users().UpdateRefreshTokenHash(ctx, u.ID, nil)
	})
}

// IssueForUser mints a token pair outside the login flow, used after email
// verification and password reset complete so the client lands signed in.
func (s *TokenService) IssueForUser(ctx context.Context, user domain.User) (*domain.TokenPair, error) {
	return s.issue(ctx, user, time.Now())
}

func (s *TokenService) issue(ctx context.Context, user domain.User, now time.Time) (*domain.TokenPair, error) {
	pair, fp, err := s.mint(user, now)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Users().UpdateRefreshTokenHash(ctx, user.ID, &fp); err != nil {
		return nil, err
	}
	return pair, nil
}

// mint signs a new access/refresh pair and returns the refresh fingerprint
// the caller must persist.
func (s *TokenService) mint(user domain.User, now time.Time) (*domain.TokenPair, string, error) {
	access, err := s.Access.Sign(jwtx.NewAccessClaims(user.ID, user.Email, s.Issuer, s.AccessTTL, now))
	if err != nil {
		return nil, "", err
	}

	refresh, err := s.Refresh.Sign(jwtx.NewRefreshClaims(user.ID, s.Issuer, s.RefreshTTL, now))
	if err != nil {
		return nil, "", err
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    s.AccessTTL,
		RefreshTTL:   s.RefreshTTL,
	}, cryptox.FingerprintToken(refresh), nil
}
