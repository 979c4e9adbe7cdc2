package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrNoTwoFactorSecret = errors.New("no two-factor secret stored")

type Repository interface {
	SaveTwoFactorSecret(ctx context.Context, userID, secret string) error
	GetTwoFactorSecret(ctx context.Context, userID string) (string, error)
	SetTwoFactorEnabled(ctx context.Context, userID string, enabled bool) error
	DeleteTwoFactorSecret(ctx context.Context, userID string) error
}

type authRepository struct {
	db *sql.DB
}

func NewAuthRepository(db *sql.DB) Repository {
	return &authRepository{db: db}
}

func (r *authRepository) SaveTwoFactorSecret(ctx context.Context, userID, secret string) error {
	query := `
		INSERT INTO two_factor_secrets (user_id, secret, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET secret = $2, created_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, userID, secret); err != nil {
		return fmt.Errorf("could not save two-factor secret: %w", err)
	}
	return nil
}

func (r *authRepository) GetTwoFactorSecret(ctx context.Context, userID string) (string, error) {
	query := `SELECT secret FROM two_factor_secrets WHERE user_id = $1`
	var secret string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&secret)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoTwoFactorSecret
		}
		return "", fmt.Errorf("could not read two-factor secret: %w", err)
	}
	return secret, nil
}

func (r *authRepository) SetTwoFactorEnabled(ctx context.Context, userID string, enabled bool) error {
	query := `UPDATE users SET two_factor_enabled = $2, updated_at = NOW() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, userID, enabled); err != nil {
		return fmt.Errorf("could not update two-factor flag: %w", err)
	}
	return nil
}

func (r *authRepository) DeleteTwoFactorSecret(ctx context.Context, userID string) error {
	query := `DELETE FROM two_factor_secrets WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("could not delete two-factor secret: %w", err)
	}
	return nil
}
