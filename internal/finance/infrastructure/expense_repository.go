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

const expenseColumns = `id, user_id, description, amount_ars, amount_usd, date, category_id, payment_method_id, currency_id, micro_expense, created_at, updated_at`

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Save(ctx context.Context, expense *domain.Expense) error {
	now := time.Now()
	expense.UpdatedAt = now
	if expense.ID == 0 {
		expense.CreatedAt = now
		return r.db.QueryRowContext(ctx,
			`INSERT INTO expenses (user_id, description, amount_ars, amount_usd, date, category_id, payment_method_id, currency_id, micro_expense, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
			expense.UserID, expense.Description, expense.AmountInPesos, expense.AmountInDollars,
			expense.Date, expense.CategoryID, expense.PaymentMethodID, expense.CurrencyID,
			expense.MicroExpense, expense.CreatedAt, expense.UpdatedAt,
		).Scan(&expense.ID)
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET description = $1, amount_ars = $2, amount_usd = $3, date = $4,
		 category_id = $5, payment_method_id = $6, currency_id = $7, micro_expense = $8, updated_at = $9
		 WHERE id = $10 AND user_id = $11`,
		expense.Description, expense.AmountInPesos, expense.AmountInDollars, expense.Date,
		expense.CategoryID, expense.PaymentMethodID, expense.CurrencyID, expense.MicroExpense,
		expense.UpdatedAt, expense.ID, expense.UserID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *ExpenseRepository) FindByIDAndUser(ctx context.Context, id int64, userID string) (*domain.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)

	var e domain.Expense
	err := row.Scan(&e.ID, &e.UserID, &e.Description, &e.AmountInPesos, &e.AmountInDollars,
		&e.Date, &e.CategoryID, &e.PaymentMethodID, &e.CurrencyID, &e.MicroExpense,
		&e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int64, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *ExpenseRepository) FindAll(ctx context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.Expense], error) {
	return queryPage(ctx, r.db, "expenses", expenseColumns, pred, page, scanExpense)
}

func scanExpense(rows *sql.Rows) (domain.Expense, error) {
	var e domain.Expense
	err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.AmountInPesos, &e.AmountInDollars,
		&e.Date, &e.CategoryID, &e.PaymentMethodID, &e.CurrencyID, &e.MicroExpense,
		&e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// checkAffected turns a zero-row write into ErrRecordNotFound so updates
// and deletes against foreign or missing records surface as 404s.
func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrRecordNotFound
	}
	return nil
}
