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

const incomeColumns = `id, user_id, description, amount_ars, amount_usd, source_id, date, created_at, updated_at`

type IncomeRepository struct {
	db *sql.DB
}

func NewIncomeRepository(db *sql.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

func (r *IncomeRepository) Save(ctx context.Context, income *domain.Income) error {
	now := time.Now()
	income.UpdatedAt = now
	if income.ID == 0 {
		income.CreatedAt = now
		return r.db.QueryRowContext(ctx,
			`INSERT INTO incomes (user_id, description, amount_ars, amount_usd, source_id, date, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			income.UserID, income.Description, income.AmountInPesos, income.AmountInDollars,
			income.SourceID, income.Date, income.CreatedAt, income.UpdatedAt,
		).Scan(&income.ID)
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE incomes SET description = $1, amount_ars = $2, amount_usd = $3, source_id = $4, date = $5, updated_at = $6
		 WHERE id = $7 AND user_id = $8`,
		income.Description, income.AmountInPesos, income.AmountInDollars, income.SourceID,
		income.Date, income.UpdatedAt, income.ID, income.UserID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *IncomeRepository) FindByIDAndUser(ctx context.Context, id int64, userID string) (*domain.Income, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+incomeColumns+` FROM incomes WHERE id = $1 AND user_id = $2`, id, userID)

	var i domain.Income
	err := row.Scan(&i.ID, &i.UserID, &i.Description, &i.AmountInPesos, &i.AmountInDollars,
		&i.SourceID, &i.Date, &i.CreatedAt, &i.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *IncomeRepository) Delete(ctx context.Context, id int64, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM incomes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *IncomeRepository) FindAll(ctx context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.Income], error) {
	return queryPage(ctx, r.db, "incomes", incomeColumns, pred, page, scanIncome)
}

func scanIncome(rows *sql.Rows) (domain.Income, error) {
	var i domain.Income
	err := rows.Scan(&i.ID, &i.UserID, &i.Description, &i.AmountInPesos, &i.AmountInDollars,
		&i.SourceID, &i.Date, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}
