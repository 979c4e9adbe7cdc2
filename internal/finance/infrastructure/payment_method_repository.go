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

const paymentMethodColumns = `id, user_id, name, payment_method_type, brand, icon, issuing_entity_id, enabled, created_at, updated_at`

type PaymentMethodRepository struct {
	db *sql.DB
}

func NewPaymentMethodRepository(db *sql.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

func (r *PaymentMethodRepository) Save(ctx context.Context, method *domain.PaymentMethod) error {
	now := time.Now()
	method.UpdatedAt = now
	if method.ID == 0 {
		method.CreatedAt = now
		return r.db.QueryRowContext(ctx,
			`INSERT INTO payment_methods (user_id, name, payment_method_type, brand, icon, issuing_entity_id, enabled, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
			method.UserID, method.Name, method.Type, method.Brand, method.Icon,
			method.IssuingEntityID, method.Enabled, method.CreatedAt, method.UpdatedAt,
		).Scan(&method.ID)
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE payment_methods SET name = $1, payment_method_type = $2, brand = $3, icon = $4,
		 issuing_entity_id = $5, enabled = $6, updated_at = $7
		 WHERE id = $8 AND user_id = $9`,
		method.Name, method.Type, method.Brand, method.Icon, method.IssuingEntityID,
		method.Enabled, method.UpdatedAt, method.ID, method.UserID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *PaymentMethodRepository) FindByIDAndUser(ctx context.Context, id int64, userID string) (*domain.PaymentMethod, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+paymentMethodColumns+` FROM payment_methods WHERE id = $1 AND user_id = $2`, id, userID)

	var m domain.PaymentMethod
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Type, &m.Brand, &m.Icon,
		&m.IssuingEntityID, &m.Enabled, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, id int64, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payment_methods WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *PaymentMethodRepository) SetEnabled(ctx context.Context, id int64, userID string, enabled bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE payment_methods SET enabled = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`,
		enabled, time.Now(), id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *PaymentMethodRepository) FindAll(ctx context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.PaymentMethod], error) {
	return queryPage(ctx, r.db, "payment_methods", paymentMethodColumns, pred, page, scanPaymentMethod)
}

func scanPaymentMethod(rows *sql.Rows) (domain.PaymentMethod, error) {
	var m domain.PaymentMethod
	err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Type, &m.Brand, &m.Icon,
		&m.IssuingEntityID, &m.Enabled, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}
