package infrastructure

import (
	"context"

	"github.com/spendwise/backend/internal/finance/domain"
	financeErrors "github.com/spendwise/backend/internal/finance/errors"
	"github.com/spendwise/backend/internal/finance/query"
)

// In-memory repositories for service and handler tests. Save assigns
// sequential IDs; FindAll records the predicate it was called with so
// tests can assert on filter translation.

type MockExpenseRepository struct {
	Expenses      []domain.Expense
	SaveErr       error
	LastPredicate *query.Predicate
	LastPage      domain.PageRequest
	nextID        int64
}

func (m *MockExpenseRepository) Save(_ context.Context, expense *domain.Expense) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if expense.ID == 0 {
		m.nextID++
		expense.ID = m.nextID
		m.Expenses = append(m.Expenses, *expense)
		return nil
	}
	for i := range m.Expenses {
		if m.Expenses[i].ID == expense.ID {
			m.Expenses[i] = *expense
		}
	}
	return nil
}

func (m *MockExpenseRepository) FindByIDAndUser(_ context.Context, id int64, userID string) (*domain.Expense, error) {
	for i := range m.Expenses {
		if m.Expenses[i].ID == id && m.Expenses[i].UserID == userID {
			expense := m.Expenses[i]
			return &expense, nil
		}
	}
	return nil, financeErrors.ErrRecordNotFound
}

func (m *MockExpenseRepository) Delete(_ context.Context, id int64, userID string) error {
	for i := range m.Expenses {
		if m.Expenses[i].ID == id && m.Expenses[i].UserID == userID {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrRecordNotFound
}

func (m *MockExpenseRepository) FindAll(_ context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.Expense], error) {
	m.LastPredicate = pred
	m.LastPage = page
	return domain.NewPage(m.Expenses, int64(len(m.Expenses)), page), nil
}

type MockIncomeRepository struct {
	Incomes       []domain.Income
	SaveErr       error
	LastPredicate *query.Predicate
	LastPage      domain.PageRequest
	nextID        int64
}

func (m *MockIncomeRepository) Save(_ context.Context, income *domain.Income) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if income.ID == 0 {
		m.nextID++
		income.ID = m.nextID
		m.Incomes = append(m.Incomes, *income)
		return nil
	}
	for i := range m.Incomes {
		if m.Incomes[i].ID == income.ID {
			m.Incomes[i] = *income
		}
	}
	return nil
}

func (m *MockIncomeRepository) FindByIDAndUser(_ context.Context, id int64, userID string) (*domain.Income, error) {
	for i := range m.Incomes {
		if m.Incomes[i].ID == id && m.Incomes[i].UserID == userID {
			income := m.Incomes[i]
			return &income, nil
		}
	}
	return nil, financeErrors.ErrRecordNotFound
}

func (m *MockIncomeRepository) Delete(_ context.Context, id int64, userID string) error {
	for i := range m.Incomes {
		if m.Incomes[i].ID == id && m.Incomes[i].UserID == userID {
			m.Incomes = append(m.Incomes[:i], m.Incomes[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrRecordNotFound
}

func (m *MockIncomeRepository) FindAll(_ context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.Income], error) {
	m.LastPredicate = pred
	m.LastPage = page
	return domain.NewPage(m.Incomes, int64(len(m.Incomes)), page), nil
}

type MockSavingRepository struct {
	Savings       []domain.Saving
	SaveErr       error
	LastPredicate *query.Predicate
	LastPage      domain.PageRequest
	nextID        int64
}

func (m *MockSavingRepository) Save(_ context.Context, saving *domain.Saving) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if saving.ID == 0 {
		m.nextID++
		saving.ID = m.nextID
		m.Savings = append(m.Savings, *saving)
		return nil
	}
	for i := range m.Savings {
		if m.Savings[i].ID == saving.ID {
			m.Savings[i] = *saving
		}
	}
	return nil
}

func (m *MockSavingRepository) FindByIDAndUser(_ context.Context, id int64, userID string) (*domain.Saving, error) {
	for i := range m.Savings {
		if m.Savings[i].ID == id && m.Savings[i].UserID == userID {
			saving := m.Savings[i]
			return &saving, nil
		}
	}
	return nil, financeErrors.ErrRecordNotFound
}

func (m *MockSavingRepository) Delete(_ context.Context, id int64, userID string) error {
	for i := range m.Savings {
		if m.Savings[i].ID == id && m.Savings[i].UserID == userID {
			m.Savings = append(m.Savings[:i], m.Savings[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrRecordNotFound
}

func (m *MockSavingRepository) FindAll(_ context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.Saving], error) {
	m.LastPredicate = pred
	m.LastPage = page
	return domain.NewPage(m.Savings, int64(len(m.Savings)), page), nil
}

type MockDebtRepository struct {
	Debts         []domain.Debt
	SaveErr       error
	LastPredicate *query.Predicate
	LastPage      domain.PageRequest
	nextID        int64
}

func (m *MockDebtRepository) Save(_ context.Context, debt *domain.Debt) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if debt.ID == 0 {
		m.nextID++
		debt.ID = m.nextID
		m.Debts = append(m.Debts, *debt)
		return nil
	}
	for i := range m.Debts {
		if m.Debts[i].ID == debt.ID {
			m.Debts[i] = *debt
		}
	}
	return nil
}

func (m *MockDebtRepository) FindByIDAndUser(_ context.Context, id int64, userID string) (*domain.Debt, error) {
	for i := range m.Debts {
		if m.Debts[i].ID == id && m.Debts[i].UserID == userID {
			debt := m.Debts[i]
			return &debt, nil
		}
	}
	return nil, financeErrors.ErrRecordNotFound
}

func (m *MockDebtRepository) Delete(_ context.Context, id int64, userID string) error {
	for i := range m.Debts {
		if m.Debts[i].ID == id && m.Debts[i].UserID == userID {
			m.Debts = append(m.Debts[:i], m.Debts[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrRecordNotFound
}

func (m *MockDebtRepository) FindAll(_ context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	m.LastPredicate = pred
	m.LastPage = page
	return domain.NewPage(m.Debts, int64(len(m.Debts)), page), nil
}

type MockCurrencyRepository struct {
	Currencies    []domain.Currency
	SaveErr       error
	LastPredicate *query.Predicate
	LastPage      domain.PageRequest
	nextID        int64
}

func (m *MockCurrencyRepository) Save(_ context.Context, currency *domain.Currency) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if currency.ID == 0 {
		m.nextID++
		currency.ID = m.nextID
		m.Currencies = append(m.Currencies, *currency)
		return nil
	}
	for i := range m.Currencies {
		if m.Currencies[i].ID == currency.ID {
			m.Currencies[i] = *currency
		}
	}
	return nil
}

func (m *MockCurrencyRepository) FindByIDAndUser(_ context.Context, id int64, userID string) (*domain.Currency, error) {
	for i := range m.Currencies {
		if m.Currencies[i].ID == id && m.Currencies[i].UserID == userID {
			currency := m.Currencies[i]
			return &currency, nil
		}
	}
	return nil, financeErrors.ErrRecordNotFound
}

func (m *MockCurrencyRepository) Delete(_ context.Context, id int64, userID string) error {
	for i := range m.Currencies {
		if m.Currencies[i].ID == id && m.Currencies[i].UserID == userID {
			m.Currencies = append(m.Currencies[:i], m.Currencies[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrRecordNotFound
}

func (m *MockCurrencyRepository) SetEnabled(_ context.Context, id int64, userID string, enabled bool) error {
	for i := range m.Currencies {
		if m.Currencies[i].ID == id && m.Currencies[i].UserID == userID {
			m.Currencies[i].Enabled = enabled
			return nil
		}
	}
	return financeErrors.ErrRecordNotFound
}

func (m *MockCurrencyRepository) FindAll(_ context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.Currency], error) {
	m.LastPredicate = pred
	m.LastPage = page
	return domain.NewPage(m.Currencies, int64(len(m.Currencies)), page), nil
}

type MockCategoryRepository struct {
	Categories    []domain.Category
	SaveErr       error
	LastPredicate *query.Predicate
	LastPage      domain.PageRequest
	nextID        int64
}

func (m *MockCategoryRepository) Save(_ context.Context, category *domain.Category) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if category.ID == 0 {
		m.nextID++
		category.ID = m.nextID
		m.Categories = append(m.Categories, *category)
		return nil
	}
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID {
			m.Categories[i] = *category
		}
	}
	return nil
}

func (m *MockCategoryRepository) FindByIDAndUser(_ context.Context, id int64, userID string) (*domain.Category, error) {
	for i := range m.Categories {
		if m.Categories[i].ID == id && m.Categories[i].UserID == userID {
			category := m.Categories[i]
			return &category, nil
		}
	}
	return nil, financeErrors.ErrRecordNotFound
}

func (m *MockCategoryRepository) Delete(_ context.Context, id int64, userID string) error {
	for i := range m.Categories {
		if m.Categories[i].ID == id && m.Categories[i].UserID == userID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrRecordNotFound
}

func (m *MockCategoryRepository) SetEnabled(_ context.Context, id int64, userID string, enabled bool) error {
	for i := range m.Categories {
		if m.Categories[i].ID == id && m.Categories[i].UserID == userID {
			m.Categories[i].Enabled = enabled
			return nil
		}
	}
	return financeErrors.ErrRecordNotFound
}

func (m *MockCategoryRepository) FindAll(_ context.Context, pred *query.Predicate, page domain.PageRequest) (domain.Page[domain.Category], error) {
	m.LastPredicate = pred
	m.LastPage = page
	return domain.NewPage(m.Categories, int64(len(m.Categories)), page), nil
}
