package application

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/spendwise/backend/internal/finance/domain"
	"github.com/spendwise/backend/internal/finance/query"
)

func TestExpensePredicate_EmptyFilterOnlyScopesOwnership(t *testing.T) {
	p := expensePredicate(domain.ExpenseFilter{}, testUserID)

	conditions := p.Conditions()
	assert.Len(t, conditions, 1)
	assert.Equal(t, "user_id", conditions[0].Column)
	assert.Equal(t, testUserID, conditions[0].Value)
}

func TestExpensePredicate_AllFieldsTranslate(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	minPesos := decimal.RequireFromString("100")
	maxPesos := decimal.RequireFromString("5000")

	p := expensePredicate(domain.ExpenseFilter{
		Description:      strPtr("super"),
		MinAmountInPesos: &minPesos,
		MaxAmountInPesos: &maxPesos,
		StartDate:        &start,
		EndDate:          &end,
		CategoryID:       int64Ptr(3),
		PaymentMethodID:  int64Ptr(5),
		MicroExpense:     boolPtr(true),
	}, testUserID)

	byColumn := conditionsByColumn(p)
	assert.Len(t, p.Conditions(), 9)
	assert.Equal(t, query.OpContainsFold, byColumn["description"].Operator)
	assert.Equal(t, "%super%", byColumn["description"].Value)
	assert.Equal(t, int64(3), byColumn["category_id"].Value)
	assert.Equal(t, int64(5), byColumn["payment_method_id"].Value)
	assert.Equal(t, true, byColumn["micro_expense"].Value)
}

func TestExpensePredicate_EmptyDescriptionOmitted(t *testing.T) {
	p := expensePredicate(domain.ExpenseFilter{Description: strPtr("")}, testUserID)

	assert.Len(t, p.Conditions(), 1)
}

func TestExpensePredicate_AmountBoundsUseBothColumns(t *testing.T) {
	minDollars := decimal.RequireFromString("1")
	maxDollars := decimal.RequireFromString("50")

	p := expensePredicate(domain.ExpenseFilter{
		MinAmountInDollars: &minDollars,
		MaxAmountInDollars: &maxDollars,
	}, testUserID)

	byColumn := conditionsByColumn(p)
	assert.Equal(t, query.OpGreaterOrEqual, byColumn["amount_usd"].Operator)
	sql, _ := p.ToSQL(1)
	assert.Equal(t, "user_id = $1 AND amount_usd >= $2 AND amount_usd <= $3", sql)
}

func TestDebtPredicate_BooleanFlags(t *testing.T) {
	p := debtPredicate(domain.DebtFilter{
		Cancelled: boolPtr(false),
		Personal:  boolPtr(true),
	}, testUserID)

	byColumn := conditionsByColumn(p)
	assert.Len(t, p.Conditions(), 3)
	assert.Equal(t, false, byColumn["cancelled"].Value)
	assert.Equal(t, true, byColumn["personal"].Value)
}

func TestCategoryPredicate_InvalidTypeSilentlyOmitted(t *testing.T) {
	p := categoryPredicate(domain.CategoryFilter{Type: strPtr("SIDEWAYS")}, testUserID)

	assert.Len(t, p.Conditions(), 1)
}

func TestCategoryPredicate_TypeIsCaseInsensitive(t *testing.T) {
	p := categoryPredicate(domain.CategoryFilter{Type: strPtr("expense")}, testUserID)

	byColumn := conditionsByColumn(p)
	assert.Equal(t, "EXPENSE", byColumn["type"].Value)
}

func TestPaymentMethodPredicate_TypeColumnName(t *testing.T) {
	p := paymentMethodPredicate(domain.PaymentMethodFilter{Type: strPtr("cash")}, testUserID)

	byColumn := conditionsByColumn(p)
	assert.Equal(t, "CASH", byColumn["payment_method_type"].Value)
}

func TestSavingsWalletPredicate_InvalidTypeSilentlyOmitted(t *testing.T) {
	p := savingsWalletPredicate(domain.SavingsWalletFilter{
		Name: strPtr("efectivo"),
		Type: strPtr("MATTRESS"),
	}, testUserID)

	byColumn := conditionsByColumn(p)
	assert.Len(t, p.Conditions(), 2)
	assert.Equal(t, "%efectivo%", byColumn["name"].Value)
}
