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

const categoryColumns = `id, user_id, name, type, enabled, created_at, updated_at`

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	now := time.Now()
	category.UpdatedAt = now
	if category.ID == 0 {
		category.CreatedAt = now
		return r.db.QueryRowContext(ctx,
			`INSERT INTO categories (user_id, name, type, enabled, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			category.UserID, category.Name, category.Type, category.Enabled,
			category.CreatedAt, category.UpdatedAt,
		).Scan(&category.ID)
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = $1, type = $2, enabled = $3, updated_at = $4
		 WHERE id = $5 AND user_id = $6`,
		category.Name, category.Type, category.Enabled, category.UpdatedAt,
		category.ID, category.UserID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *CategoryRepository) FindByIDAndUser(ctx context.Context, id int64, userID string) (*domain.Category, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND user_id = $2`, id, userID)

	var c domain.Category
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.Enabled, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *CategoryRepository) SetEnabled(ctx context.Context, id int64, userID string, enabled bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE categories SET enabled = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`,
		enabled, time.Now(), id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *CategoryRepository) FindAll(ctx context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.Category], error) {
	return queryPage(ctx, r.db, "categories", categoryColumns, pred, page, scanCategory)
}

func scanCategory(rows *sql.Rows) (domain.Category, error) {
	var c domain.Category
	err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.Enabled, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
