package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrNoVerificationCode = errors.New("no verification code generated")
)

type Repository interface {
	createUser(ctx context.Context, user *User) error
	getUserByEmail(ctx context.Context, email string) (*User, error)
	getUserByID(ctx context.Context, id string) (*User, error)
	setVerified(ctx context.Context, userID string) error
	updateHashToken(ctx context.Context, userID, hashToken string) error
	saveVerificationCode(ctx context.Context, userID, code string, expiresAt time.Time) error
	getVerificationCode(ctx context.Context, userID string) (string, time.Time, time.Time, error)
	deleteVerificationCode(ctx context.Context, userID string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{db: db}
}

const userColumns = `id, email, name, password_hash, verified, two_factor_enabled, hash_token, created_at, updated_at`

func (r *userRepository) createUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, verified, two_factor_enabled, hash_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.Name, user.PasswordHash, user.Verified, user.TwoFactorEnabled, user.HashToken)
	if err != nil {
		return fmt.Errorf("could not create user: %w", err)
	}
	return nil
}

func (r *userRepository) scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Verified, &u.TwoFactorEnabled, &u.HashToken, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) getUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) getUserByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) setVerified(ctx context.Context, userID string) error {
	query := `UPDATE users SET verified = TRUE, updated_at = NOW() WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	return checkUserAffected(result)
}

func (r *userRepository) updateHashToken(ctx context.Context, userID, hashToken string) error {
	query := `UPDATE users SET hash_token = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, userID, hashToken)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	return checkUserAffected(result)
}

func (r *userRepository) saveVerificationCode(ctx context.Context, userID, code string, expiresAt time.Time) error {
	query := `
		INSERT INTO email_verification_codes (user_id, code, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE SET code = $2, expires_at = $3, created_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, userID, code, expiresAt); err != nil {
		return fmt.Errorf("could not save verification code: %w", err)
	}
	return nil
}

func (r *userRepository) getVerificationCode(ctx context.Context, userID string) (string, time.Time, time.Time, error) {
	query := `SELECT code, expires_at, created_at FROM email_verification_codes WHERE user_id = $1`
	var code string
	var expiresAt, createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&code, &expiresAt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", time.Time{}, time.Time{}, ErrNoVerificationCode
		}
		return "", time.Time{}, time.Time{}, fmt.Errorf("could not read verification code: %w", err)
	}
	return code, expiresAt, createdAt, nil
}

func (r *userRepository) deleteVerificationCode(ctx context.Context, userID string) error {
	query := `DELETE FROM email_verification_codes WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("could not delete verification code: %w", err)
	}
	return nil
}

func checkUserAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
