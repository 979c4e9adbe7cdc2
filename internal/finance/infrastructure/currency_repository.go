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

const currencyColumns = `id, user_id, name, symbol, enabled, created_at, updated_at`

type CurrencyRepository struct {
	db *sql.DB
}

func NewCurrencyRepository(db *sql.DB) *CurrencyRepository {
	return &CurrencyRepository{db: db}
}

func (r *CurrencyRepository) Save(ctx context.Context, currency *domain.Currency) error {
	now := time.Now()
	currency.UpdatedAt = now
	if currency.ID == 0 {
		currency.CreatedAt = now
		return r.db.QueryRowContext(ctx,
			`INSERT INTO currencies (user_id, name, symbol, enabled, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			currency.UserID, currency.Name, currency.Symbol, currency.Enabled,
			currency.CreatedAt, currency.UpdatedAt,
		).Scan(&currency.ID)
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE currencies SET name = $1, symbol = $2, enabled = $3, updated_at = $4
		 WHERE id = $5 AND user_id = $6`,
		currency.Name, currency.Symbol, currency.Enabled, currency.UpdatedAt,
		currency.ID, currency.UserID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *CurrencyRepository) FindByIDAndUser(ctx context.Context, id int64, userID string) (*domain.Currency, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+currencyColumns+` FROM currencies WHERE id = $1 AND user_id = $2`, id, userID)

	var c domain.Currency
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Symbol, &c.Enabled, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CurrencyRepository) Delete(ctx context.Context, id int64, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM currencies WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *CurrencyRepository) SetEnabled(ctx context.Context, id int64, userID string, enabled bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE currencies SET enabled = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`,
		enabled, time.Now(), id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *CurrencyRepository) FindAll(ctx context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.Currency], error) {
	return queryPage(ctx, r.db, "currencies", currencyColumns, pred, page, scanCurrency)
}

func scanCurrency(rows *sql.Rows) (domain.Currency, error) {
	var c domain.Currency
	err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Symbol, &c.Enabled, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
