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

const issuingEntityColumns = `id, user_id, description, enabled, created_at, updated_at`

type IssuingEntityRepository struct {
	db *sql.DB
}

func NewIssuingEntityRepository(db *sql.DB) *IssuingEntityRepository {
	return &IssuingEntityRepository{db: db}
}

func (r *IssuingEntityRepository) Save(ctx context.Context, entity *domain.IssuingEntity) error {
	now := time.Now()
	entity.UpdatedAt = now
	if entity.ID == 0 {
		entity.CreatedAt = now
		return r.db.QueryRowContext(ctx,
			`INSERT INTO issuing_entities (user_id, description, enabled, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			entity.UserID, entity.Description, entity.Enabled, entity.CreatedAt, entity.UpdatedAt,
		).Scan(&entity.ID)
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE issuing_entities SET description = $1, enabled = $2, updated_at = $3
		 WHERE id = $4 AND user_id = $5`,
		entity.Description, entity.Enabled, entity.UpdatedAt, entity.ID, entity.UserID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *IssuingEntityRepository) FindByIDAndUser(ctx context.Context, id int64, userID string) (*domain.IssuingEntity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+issuingEntityColumns+` FROM issuing_entities WHERE id = $1 AND user_id = $2`, id, userID)

	var e domain.IssuingEntity
	err := row.Scan(&e.ID, &e.UserID, &e.Description, &e.Enabled, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *IssuingEntityRepository) Delete(ctx context.Context, id int64, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM issuing_entities WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *IssuingEntityRepository) SetEnabled(ctx context.Context, id int64, userID string, enabled bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE issuing_entities SET enabled = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`,
		enabled, time.Now(), id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *IssuingEntityRepository) FindAll(ctx context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.IssuingEntity], error) {
	return queryPage(ctx, r.db, "issuing_entities", issuingEntityColumns, pred, page, scanIssuingEntity)
}

func scanIssuingEntity(rows *sql.Rows) (domain.IssuingEntity, error) {
	var e domain.IssuingEntity
	err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Enabled, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}
