package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnedBy_SeedsUserCondition(t *testing.T) {
	p := OwnedBy("user-123")

	conditions := p.Conditions()
	assert.Len(t, conditions, 1)
	assert.Equal(t, "user_id", conditions[0].Column)
	assert.Equal(t, OpEqual, conditions[0].Operator)
	assert.Equal(t, "user-123", conditions[0].Value)
}

func TestToSQL_EmptyPredicateRendersTrue(t *testing.T) {
	sql, args := New().ToSQL(1)

	assert.Equal(t, "TRUE", sql)
	assert.Nil(t, args)
}

func TestToSQL_SingleCondition(t *testing.T) {
	sql, args := New().Eq("category_id", int64(7)).ToSQL(1)

	assert.Equal(t, "category_id = $1", sql)
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestToSQL_ConjunctionPreservesOrder(t *testing.T) {
	p := OwnedBy("user-123").
		Gte("date", "2024-01-01").
		Lte("amount_ars", "5000")

	sql, args := p.ToSQL(1)

	assert.Equal(t, "user_id = $1 AND date >= $2 AND amount_ars <= $3", sql)
	assert.Equal(t, []interface{}{"user-123", "2024-01-01", "5000"}, args)
}

func TestToSQL_StartArgOffset(t *testing.T) {
	sql, args := New().Eq("cancelled", false).Gte("due_date", "2024-06-01").ToSQL(4)

	assert.Equal(t, "cancelled = $4 AND due_date >= $5", sql)
	assert.Len(t, args, 2)
}

func TestContainsFold_WrapsValueInWildcards(t *testing.T) {
	sql, args := New().ContainsFold("description", "super").ToSQL(1)

	assert.Equal(t, "description ILIKE $1", sql)
	assert.Equal(t, []interface{}{"%super%"}, args)
}
