package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/spendwise/backend/internal/finance/domain"
	financeErrors "github.com/spendwise/backend/internal/finance/errors"
	"github.com/spendwise/backend/internal/finance/query"
)

const savingsWalletColumns = `id, user_id, name, savings_wallet_type, icon, enabled, created_at, updated_at`

type SavingsWalletRepository struct {
	db *sql.DB
}

func NewSavingsWalletRepository(db *sql.DB) *SavingsWalletRepository {
	return &SavingsWalletRepository{db: db}
}

func (r *SavingsWalletRepository) Save(ctx context.Context, wallet *domain.SavingsWallet) error {
	now := time.Now()
	wallet.UpdatedAt = now
	if wallet.ID == 0 {
		wallet.CreatedAt = now
		return r.db.QueryRowContext(ctx,
			`INSERT INTO savings_wallets (user_id, name, savings_wallet_type, icon, enabled, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			wallet.UserID, wallet.Name, wallet.Type, wallet.Icon, wallet.Enabled,
			wallet.CreatedAt, wallet.UpdatedAt,
		).Scan(&wallet.ID)
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE savings_wallets SET name = $1, savings_wallet_type = $2, icon = $3, enabled = $4, updated_at = $5
		 WHERE id = $6 AND user_id = $7`,
		wallet.Name, wallet.Type, wallet.Icon, wallet.Enabled, wallet.UpdatedAt,
		wallet.ID, wallet.UserID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *SavingsWalletRepository) FindByIDAndUser(ctx context.Context, id int64, userID string) (*domain.SavingsWallet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+savingsWalletColumns+` FROM savings_wallets WHERE id = $1 AND user_id = $2`, id, userID)

	var w domain.SavingsWallet
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Type, &w.Icon, &w.Enabled, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *SavingsWalletRepository) Delete(ctx context.Context, id int64, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM savings_wallets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *SavingsWalletRepository) SetEnabled(ctx context.Context, id int64, userID string, enabled bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE savings_wallets SET enabled = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`,
		enabled, time.Now(), id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *SavingsWalletRepository) FindAll(ctx context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.SavingsWallet], error) {
	return queryPage(ctx, r.db, "savings_wallets", savingsWalletColumns, pred, page, scanSavingsWallet)
}

func scanSavingsWallet(rows *sql.Rows) (domain.SavingsWallet, error) {
	var w domain.SavingsWallet
	err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Type, &w.Icon, &w.Enabled, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}
