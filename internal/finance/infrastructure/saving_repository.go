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

const savingColumns = `id, user_id, description, currency_id, savings_wallet_id, amount_ars, amount_usd, date, created_at, updated_at`

type SavingRepository struct {
	db *sql.DB
}

func NewSavingRepository(db *sql.DB) *SavingRepository {
	return &SavingRepository{db: db}
}

func (r *SavingRepository) Save(ctx context.Context, saving *domain.Saving) error {
	now := time.Now()
	saving.UpdatedAt = now
	if saving.ID == 0 {
		saving.CreatedAt = now
		return r.db.QueryRowContext(ctx,
			`INSERT INTO savings (user_id, description, currency_id, savings_wallet_id, amount_ars, amount_usd, date, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
			saving.UserID, saving.Description, saving.CurrencyID, saving.SavingsWalletID,
			saving.AmountInPesos, saving.AmountInDollars, saving.Date, saving.CreatedAt, saving.UpdatedAt,
		).Scan(&saving.ID)
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE savings SET description = $1, currency_id = $2, savings_wallet_id = $3, amount_ars = $4, amount_usd = $5, date = $6, updated_at = $7
		 WHERE id = $8 AND user_id = $9`,
		saving.Description, saving.CurrencyID, saving.SavingsWalletID, saving.AmountInPesos,
		saving.AmountInDollars, saving.Date, saving.UpdatedAt, saving.ID, saving.UserID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *SavingRepository) FindByIDAndUser(ctx context.Context, id int64, userID string) (*domain.Saving, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+savingColumns+` FROM savings WHERE id = $1 AND user_id = $2`, id, userID)

	var s domain.Saving
	err := row.Scan(&s.ID, &s.UserID, &s.Description, &s.CurrencyID, &s.SavingsWalletID,
		&s.AmountInPesos, &s.AmountInDollars, &s.Date, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SavingRepository) Delete(ctx context.Context, id int64, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM savings WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *SavingRepository) FindAll(ctx context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.Saving], error) {
	return queryPage(ctx, r.db, "savings", savingColumns, pred, page, scanSaving)
}

func scanSaving(rows *sql.Rows) (domain.Saving, error) {
	var s domain.Saving
	err := rows.Scan(&s.ID, &s.UserID, &s.Description, &s.CurrencyID, &s.SavingsWalletID,
		&s.AmountInPesos, &s.AmountInDollars, &s.Date, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
