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

const debtColumns = `id, user_id, description, amount_ars, amount_usd, date, due_date, cancelled, personal, creditor, issuing_entity_id, payment_method_id, created_at, updated_at`

type DebtRepository struct {
	db *sql.DB
}

func NewDebtRepository(db *sql.DB) *DebtRepository {
	return &DebtRepository{db: db}
}

func (r *DebtRepository) Save(ctx context.Context, debt *domain.Debt) error {
	now := time.Now()
	debt.UpdatedAt = now
	if debt.ID == 0 {
		debt.CreatedAt = now
		return r.db.QueryRowContext(ctx,
			`INSERT INTO debts (user_id, description, amount_ars, amount_usd, date, due_date, cancelled, personal, creditor, issuing_entity_id, payment_method_id, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`,
			debt.UserID, debt.Description, debt.AmountInPesos, debt.AmountInDollars, debt.Date,
			debt.DueDate, debt.Cancelled, debt.Personal, debt.Creditor, debt.IssuingEntityID,
			debt.PaymentMethodID, debt.CreatedAt, debt.UpdatedAt,
		).Scan(&debt.ID)
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE debts SET description = $1, amount_ars = $2, amount_usd = $3, date = $4, due_date = $5,
		 cancelled = $6, personal = $7, creditor = $8, issuing_entity_id = $9, payment_method_id = $10, updated_at = $11
		 WHERE id = $12 AND user_id = $13`,
		debt.Description, debt.AmountInPesos, debt.AmountInDollars, debt.Date, debt.DueDate,
		debt.Cancelled, debt.Personal, debt.Creditor, debt.IssuingEntityID, debt.PaymentMethodID,
		debt.UpdatedAt, debt.ID, debt.UserID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *DebtRepository) FindByIDAndUser(ctx context.Context, id int64, userID string) (*domain.Debt, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+debtColumns+` FROM debts WHERE id = $1 AND user_id = $2`, id, userID)

	var d domain.Debt
	err := row.Scan(&d.ID, &d.UserID, &d.Description, &d.AmountInPesos, &d.AmountInDollars,
		&d.Date, &d.DueDate, &d.Cancelled, &d.Personal, &d.Creditor, &d.IssuingEntityID,
		&d.PaymentMethodID, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DebtRepository) Delete(ctx context.Context, id int64, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM debts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *DebtRepository) FindAll(ctx context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	return queryPage(ctx, r.db, "debts", debtColumns, pred, page, scanDebt)
}

func scanDebt(rows *sql.Rows) (domain.Debt, error) {
	var d domain.Debt
	err := rows.Scan(&d.ID, &d.UserID, &d.Description, &d.AmountInPesos, &d.AmountInDollars,
		&d.Date, &d.DueDate, &d.Cancelled, &d.Personal, &d.Creditor, &d.IssuingEntityID,
		&d.PaymentMethodID, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}
