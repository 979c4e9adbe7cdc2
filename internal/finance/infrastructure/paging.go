package infrastructure

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spendwise/backend/internal/finance/domain"
	"github.com/spendwise/backend/internal/finance/query"
)

// queryPage runs a predicate-filtered, paginated select: one count query
// plus one page query, both against the same rendered WHERE clause.
// Results are ordered by id so pagination is stable.
func queryPage[T any](
	ctx context.Context,
	db *sql.DB,
	table, columns string,
	pred *query.Predicate,
	page domain.PageRequest,
	scan func(*sql.Rows) (T, error),
) (domain.Page[T], error) {
	where, args := pred.ToSQL(1)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", table, where)
	if err := db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return domain.Page[T]{}, fmt.Errorf("counting %s: %w", table, err)
	}

	pageQuery := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY id LIMIT $%d OFFSET $%d",
		columns, table, where, len(args)+1, len(args)+2,
	)
	rows, err := db.QueryContext(ctx, pageQuery, append(args, page.Size, page.Offset())...)
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	var content []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return domain.Page[T]{}, err
		}
		content = append(content, item)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[T]{}, err
	}
	return domain.NewPage(content, total, page), nil
}
