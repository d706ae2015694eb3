package store

import (
	"context"
	"errors"
	"time"

	"github.com/talentsift/talentsift/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrLimitReached is returned by IncrementCounter when the conditional
	// update would push a capped counter past its ceiling.
	ErrLimitReached = errors.New("store: counter limit reached")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Components receive a Store rather than reaching for any
// process-wide handle so tests can inject doubles.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic. Use it for multi-step operations that
	// must be atomic (e.g., refresh token validate+rotate).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Users is the repository for the single persistent entity the core depends
// on. All email parameters are expected pre-normalized (lowercase).
type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by normalized email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByVerificationToken looks a user up by a pending verification
	// token. Verification and reset tokens live in separate columns so the
	// two namespaces can never cross-validate.
	GetUserByVerificationToken(ctx context.Context, token string) (domain.User, error)

	// GetUserByResetToken looks a user up by a pending password-reset token.
	GetUserByResetToken(ctx context.Context, token string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateRefreshTokenHash stores the fingerprint of the currently valid
	// refresh token, or clears it when hash is nil (logout/revocation).
	UpdateRefreshTokenHash(ctx context.Context, userID string, hash *string) error

	// SetVerificationToken overwrites any pending verification token. A
	// previously issued token becomes permanently unusable.
	SetVerificationToken(ctx context.Context, userID, token string, expiresAt time.Time) error

	// MarkEmailVerified flips email_verified and clears the verification
	// token fields in the same update.
	MarkEmailVerified(ctx context.Context, userID string) error

	// SetResetToken overwrites any pending password-reset token.
	SetResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error

	// ReplacePassword sets the new password hash, clears the reset token
	// fields and revokes the stored refresh token hash, all in one update,
	// forcing re-authentication on every other session.
	ReplacePassword(ctx context.Context, userID, newHash string) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// IncrementCounter atomically advances a usage counter by amount using
	// store-native arithmetic (never read-modify-write in application code)
	// and returns the updated user. For capped counters the ceiling is
	// enforced in the same conditional update; ErrLimitReached is returned
	// when the increment would exceed it.
	IncrementCounter(ctx context.Context, email string, counter domain.Counter, amount int64) (domain.User, error)

	// ClearExpiredTokens is housekeeping: clears verification/reset token
	// fields whose expiry has passed.
	ClearExpiredTokens(ctx context.Context, now time.Time) error
}
