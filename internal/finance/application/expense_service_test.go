package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/spendwise/backend/internal/finance/domain"
	financeErrors "github.com/spendwise/backend/internal/finance/errors"
	"github.com/spendwise/backend/internal/finance/infrastructure"
	"github.com/spendwise/backend/internal/finance/query"
)

const testUserID = "11111111-1111-1111-1111-111111111111"

// stubConverter applies a fixed rate and counts calls per direction.
type stubConverter struct {
	rate                decimal.Decimal
	err                 error
	pesosToDollarsCalls int
	dollarsToPesosCalls int
}

func (c *stubConverter) PesosToDollars(_ context.Context, amount decimal.Decimal, _ time.Time) (decimal.Decimal, error) {
	c.pesosToDollarsCalls++
	if c.err != nil {
		return decimal.Decimal{}, c.err
	}
	return amount.Div(c.rate).RoundBank(4), nil
}

func (c *stubConverter) DollarsToPesos(_ context.Context, amount decimal.Decimal, _ time.Time) (decimal.Decimal, error) {
	c.dollarsToPesosCalls++
	if c.err != nil {
		return decimal.Decimal{}, c.err
	}
	return amount.Mul(c.rate).RoundBank(4), nil
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func pesosCurrency(id int64) domain.Currency {
	return domain.Currency{ID: id, UserID: testUserID, Name: "Peso Argentino", Symbol: "$", Enabled: true}
}

func dollarCurrency(id int64) domain.Currency {
	return domain.Currency{ID: id, UserID: testUserID, Name: "Dolar Estadounidense", Symbol: "US$", Enabled: true}
}

func conditionsByColumn(p *query.Predicate) map[string]query.Condition {
	byColumn := make(map[string]query.Condition)
	for _, c := range p.Conditions() {
		byColumn[c.Column] = c
	}
	return byColumn
}

func TestExpenseService_Create_PesosCurrencyDerivesDollars(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	currencies := &infrastructure.MockCurrencyRepository{Currencies: []domain.Currency{pesosCurrency(1)}}
	converter := &stubConverter{rate: decimal.RequireFromString("1500")}
	service := NewExpenseService(repo, currencies, converter)

	expense, err := service.Create(context.Background(), testUserID, CreateExpenseRequest{
		Description: "Supermercado",
		InputAmount: decimalPtr("3000"),
		CurrencyID:  int64Ptr(1),
		Date:        time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, "3000", expense.AmountInPesos.String())
	assert.Equal(t, "2", expense.AmountInDollars.String())
	assert.Equal(t, 1, converter.pesosToDollarsCalls)
	assert.Equal(t, 0, converter.dollarsToPesosCalls)
	assert.NotZero(t, expense.ID)
	assert.Len(t, repo.Expenses, 1)
}

func TestExpenseService_Create_DollarCurrencyDerivesPesos(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	currencies := &infrastructure.MockCurrencyRepository{Currencies: []domain.Currency{dollarCurrency(2)}}
	converter := &stubConverter{rate: decimal.RequireFromString("1500")}
	service := NewExpenseService(repo, currencies, converter)

	expense, err := service.Create(context.Background(), testUserID, CreateExpenseRequest{
		Description: "Streaming",
		InputAmount: decimalPtr("10"),
		CurrencyID:  int64Ptr(2),
		Date:        time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, "15000", expense.AmountInPesos.String())
	assert.Equal(t, "10", expense.AmountInDollars.String())
	assert.Equal(t, 0, converter.pesosToDollarsCalls)
	assert.Equal(t, 1, converter.dollarsToPesosCalls)
}

func TestExpenseService_Create_NoCurrencyDefaultsToPesos(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	currencies := &infrastructure.MockCurrencyRepository{}
	converter := &stubConverter{rate: decimal.RequireFromString("1000")}
	service := NewExpenseService(repo, currencies, converter)

	expense, err := service.Create(context.Background(), testUserID, CreateExpenseRequest{
		Description:   "Kiosco",
		AmountInPesos: decimalPtr("500"),
		Date:          time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Nil(t, expense.CurrencyID)
	assert.Equal(t, "500", expense.AmountInPesos.String())
	assert.Equal(t, "0.5", expense.AmountInDollars.String())
	assert.Equal(t, 1, converter.pesosToDollarsCalls)
}

func TestExpenseService_Create_UnknownCurrencyFails(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	currencies := &infrastructure.MockCurrencyRepository{}
	converter := &stubConverter{rate: decimal.RequireFromString("1000")}
	service := NewExpenseService(repo, currencies, converter)

	_, err := service.Create(context.Background(), testUserID, CreateExpenseRequest{
		InputAmount: decimalPtr("100"),
		CurrencyID:  int64Ptr(99),
		Date:        time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.True(t, errors.Is(err, financeErrors.ErrRecordNotFound))
	assert.Empty(t, repo.Expenses)
}

func TestExpenseService_Create_MissingAmountFails(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	currencies := &infrastructure.MockCurrencyRepository{Currencies: []domain.Currency{pesosCurrency(1)}}
	converter := &stubConverter{rate: decimal.RequireFromString("1000")}
	service := NewExpenseService(repo, currencies, converter)

	_, err := service.Create(context.Background(), testUserID, CreateExpenseRequest{
		CurrencyID: int64Ptr(1),
		Date:       time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.True(t, financeErrors.IsValidationError(err))
	assert.Empty(t, repo.Expenses)
}

func TestExpenseService_Create_ConversionFailureAbortsWrite(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	currencies := &infrastructure.MockCurrencyRepository{Currencies: []domain.Currency{pesosCurrency(1)}}
	conversionErr := errors.New("exchange rate service unavailable")
	converter := &stubConverter{err: conversionErr}
	service := NewExpenseService(repo, currencies, converter)

	_, err := service.Create(context.Background(), testUserID, CreateExpenseRequest{
		InputAmount: decimalPtr("100"),
		CurrencyID:  int64Ptr(1),
		Date:        time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.True(t, errors.Is(err, conversionErr))
	assert.Empty(t, repo.Expenses)
}

func TestExpenseService_Update_RenormalizesAmounts(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	currencies := &infrastructure.MockCurrencyRepository{Currencies: []domain.Currency{pesosCurrency(1)}}
	converter := &stubConverter{rate: decimal.RequireFromString("1000")}
	service := NewExpenseService(repo, currencies, converter)

	created, err := service.Create(context.Background(), testUserID, CreateExpenseRequest{
		Description: "Nafta",
		InputAmount: decimalPtr("2000"),
		CurrencyID:  int64Ptr(1),
		Date:        time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	updated, err := service.Update(context.Background(), testUserID, created.ID, CreateExpenseRequest{
		Description: "Nafta premium",
		InputAmount: decimalPtr("4000"),
		CurrencyID:  int64Ptr(1),
		Date:        time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "4000", updated.AmountInPesos.String())
	assert.Equal(t, "4", updated.AmountInDollars.String())
	assert.Equal(t, "Nafta premium", updated.Description)
}

func TestExpenseService_Update_OtherUsersRecordNotFound(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{
		Expenses: []domain.Expense{{ID: 5, UserID: "someone-else", Description: "ajeno"}},
	}
	currencies := &infrastructure.MockCurrencyRepository{}
	service := NewExpenseService(repo, currencies, &stubConverter{rate: decimal.New(1, 0)})

	_, err := service.Update(context.Background(), testUserID, 5, CreateExpenseRequest{
		AmountInPesos: decimalPtr("100"),
		Date:          time.Now(),
	})

	assert.True(t, errors.Is(err, financeErrors.ErrRecordNotFound))
}

func TestExpenseService_Delete_ScopedToOwner(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{
		Expenses: []domain.Expense{{ID: 1, UserID: "someone-else"}},
	}
	service := NewExpenseService(repo, &infrastructure.MockCurrencyRepository{}, &stubConverter{rate: decimal.New(1, 0)})

	err := service.Delete(context.Background(), testUserID, 1)

	assert.True(t, errors.Is(err, financeErrors.ErrRecordNotFound))
	assert.Len(t, repo.Expenses, 1)
}

func TestExpenseService_List_NormalizesPageRequest(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo, &infrastructure.MockCurrencyRepository{}, &stubConverter{rate: decimal.New(1, 0)})

	_, err := service.List(context.Background(), testUserID, domain.ExpenseFilter{}, domain.PageRequest{Number: -3, Size: 0})

	assert.NoError(t, err)
	assert.Equal(t, 0, repo.LastPage.Number)
	assert.Equal(t, 20, repo.LastPage.Size)
}
