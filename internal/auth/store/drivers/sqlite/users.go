package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/talentsift/talentsift/internal/auth/domain"
	"github.com/talentsift/talentsift/internal/auth/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, name, organization, password_hash, refresh_token_hash,
	email_verified, verification_token, verification_expires_at,
	reset_token, reset_token_expires_at,
	files_uploaded, batch_analysis_count, compare_resumes_count, selected_candidate_count,
	created_at, updated_at`

// counterColumns maps wire-level counter names onto their columns. Only values
// from this map are ever interpolated into SQL.
var counterColumns = map[domain.Counter]string{
	domain.CounterFilesUploaded:     "files_uploaded",
	domain.CounterBatchAnalysis:     "batch_analysis_count",
	domain.CounterCompareResumes:    "compare_resumes_count",
	domain.CounterSelectedCandidate: "selected_candidate_count",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u                   domain.User
		refreshHash         sql.NullString
		verificationToken   sql.NullString
		verificationExpires sql.NullTime
		resetToken          sql.NullString
		resetExpires        sql.NullTime
	)

	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Organization, &u.PasswordHash, &refreshHash,
		&u.EmailVerified, &verificationToken, &verificationExpires,
		&resetToken, &resetExpires,
		&u.Usage.FilesUploaded, &u.Usage.BatchAnalysis, &u.Usage.CompareResumes, &u.Usage.SelectedCandidate,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.RefreshTokenHash = mapNullStringPtr(refreshHash)
	u.VerificationToken = mapNullStringPtr(verificationToken)
	u.VerificationExpiresAt = mapNullTimePtr(verificationExpires)
	u.ResetToken = mapNullStringPtr(resetToken)
	u.ResetTokenExpiresAt = mapNullTimePtr(resetExpires)
	return u, nil
}

func (r *usersRepo) getBy(ctx context.Context, where string, arg any) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getBy(ctx, `id = ?`, id)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getBy(ctx, `email = ?`, email)
}

func (r *usersRepo) GetUserByVerificationToken(ctx context.Context, token string) (domain.User, error) {
	return r.getBy(ctx, `verification_token = ?`, token)
}

func (r *usersRepo) GetUserByResetToken(ctx context.Context, token string) (domain.User, error) {
	return r.getBy(ctx, `reset_token = ?`, token)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, organization, password_hash, email_verified,
			verification_token, verification_expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.Organization, u.PasswordHash, u.EmailVerified,
		mapOptionalString(u.VerificationToken), optionalTime(u.VerificationExpiresAt),
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateRefreshTokenHash(ctx context.Context, userID string, hash *string) error {
	return r.exec(ctx, `
		UPDATE users SET refresh_token_hash = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		mapOptionalString(hash), userID,
	)
}

func (r *usersRepo) SetVerificationToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	return r.exec(ctx, `
		UPDATE users SET verification_token = ?, verification_expires_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		token, expiresAt.UTC(), userID,
	)
}

func (r *usersRepo) MarkEmailVerified(ctx context.Context, userID string) error {
	// Flipping the flag and clearing the token fields is one statement so the
	// token can never be observed as consumed-but-still-present.
	return r.exec(ctx, `
		UPDATE users SET email_verified = 1,
			verification_token = NULL, verification_expires_at = NULL,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		userID,
	)
}

func (r *usersRepo) SetResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	return r.exec(ctx, `
		UPDATE users SET reset_token = ?, reset_token_expires_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		token, expiresAt.UTC(), userID,
	)
}

func (r *usersRepo) ReplacePassword(ctx context.Context, userID, newHash string) error {
	// Password replacement consumes the reset token and revokes the active
	// refresh token in the same statement.
	return r.exec(ctx, `
		UPDATE users SET password_hash = ?,
			reset_token = NULL, reset_token_expires_at = NULL,
			refresh_token_hash = NULL,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		newHash, userID,
	)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	return r.exec(ctx, `
		UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		newHash, userID,
	)
}

func (r *usersRepo) IncrementCounter(ctx context.Context, email string, counter domain.Counter, amount int64) (domain.User, error) {
	column, ok := counterColumns[counter]
	if !ok {
		return domain.User{}, domain.ErrUnknownCounter
	}

	// The arithmetic is evaluated by sqlite itself, never read-modify-write
	// in application memory, so concurrent increments cannot lose updates.
	// For capped counters the ceiling check rides in the same conditional
	// update, closing the check-then-act window.
	var (
		res sql.Result
		err error
	)
	if limit := counter.Limit(); limit > 0 {
		res, err = r.db.ExecContext(ctx, fmt.Sprintf(`
			UPDATE users SET %[1]s = %[1]s + ?, updated_at = CURRENT_TIMESTAMP
			WHERE email = ? AND %[1]s + ? <= ?`, column),
			amount, email, amount, limit,
		)
	} else {
		res, err = r.db.ExecContext(ctx, fmt.Sprintf(`
			UPDATE users SET %[1]s = %[1]s + ?, updated_at = CURRENT_TIMESTAMP
			WHERE email = ?`, column),
			amount, email,
		)
	}
	if err != nil {
		return domain.User{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.User{}, err
	}
	if affected == 0 {
		// Either the user does not exist or the conditional ceiling held the
		// update back. Disambiguate with a read.
		if _, lookupErr := r.GetUserByEmail(ctx, email); lookupErr != nil {
			return domain.User{}, lookupErr
		}
		return domain.User{}, store.ErrLimitReached
	}

	return r.GetUserByEmail(ctx, email)
}

func (r *usersRepo) ClearExpiredTokens(ctx context.Context, now time.Time) error {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE users SET verification_token = NULL, verification_expires_at = NULL,
			updated_at = CURRENT_TIMESTAMP
		WHERE verification_expires_at IS NOT NULL AND verification_expires_at < ?`,
		now.UTC(),
	); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET reset_token = NULL, reset_token_expires_at = NULL,
			updated_at = CURRENT_TIMESTAMP
		WHERE reset_token_expires_at IS NOT NULL AND reset_token_expires_at < ?`,
		now.UTC(),
	)
	return err
}

// exec runs an update that must match exactly one user row.
func (r *usersRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func optionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
