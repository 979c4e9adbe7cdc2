package application

import (
	"context"

	"github.com/spendwise/backend/internal/finance/domain"
	financeErrors "github.com/spendwise/backend/internal/finance/errors"
)

type ExpenseService struct {
	repo       domain.ExpenseRepository
	currencies domain.CurrencyRepository
	converter  Converter
}

func NewExpenseService(repo domain.ExpenseRepository, currencies domain.CurrencyRepository, converter Converter) *ExpenseService {
	return &ExpenseService{repo: repo, currencies: currencies, converter: converter}
}

// populate maps the request onto the record and derives the missing
// currency amount. With a currency reference the direction follows the
// currency name; without one the input is treated as pesos (legacy path).
func (s *ExpenseService) populate(ctx context.Context, userID string, expense *domain.Expense, req CreateExpenseRequest) error {
	expense.Description = req.Description
	expense.Date = req.Date
	expense.CategoryID = req.CategoryID
	expense.PaymentMethodID = req.PaymentMethodID
	expense.MicroExpense = req.MicroExpense

	if req.CurrencyID != nil {
		currency, err := s.currencies.FindByIDAndUser(ctx, *req.CurrencyID, userID)
		if err != nil {
			return err
		}
		expense.CurrencyID = req.CurrencyID

		input := req.AmountInPesos
		if req.InputAmount != nil {
			input = req.InputAmount
		}
		if input == nil {
			return financeErrors.NewValidationError("Amount is required")
		}
		amounts, err := normalizeAmounts(ctx, s.converter, currency, *input, req.Date)
		if err != nil {
			return err
		}
		expense.AmountInPesos = amounts.InPesos
		expense.AmountInDollars = amounts.InDollars
		return nil
	}

	expense.CurrencyID = nil
	if req.AmountInPesos == nil {
		return financeErrors.NewValidationError("Amount in pesos is required")
	}
	amounts, err := normalizeFromPesos(ctx, s.converter, *req.AmountInPesos, req.Date)
	if err != nil {
		return err
	}
	expense.AmountInPesos = amounts.InPesos
	expense.AmountInDollars = amounts.InDollars
	return nil
}

func (s *ExpenseService) Create(ctx context.Context, userID string, req CreateExpenseRequest) (*domain.Expense, error) {
	expense := &domain.Expense{UserID: userID}
	if err := s.populate(ctx, userID, expense, req); err != nil {
		return nil, err
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) FindByID(ctx context.Context, userID string, id int64) (*domain.Expense, error) {
	return s.repo.FindByIDAndUser(ctx, id, userID)
}

func (s *ExpenseService) List(ctx context.Context, userID string, filter domain.ExpenseFilter, page domain.PageRequest) (domain.Page[domain.Expense], error) {
	pred := expensePredicate(filter, userID)
	return s.repo.FindAll(ctx, pred, page.Normalize())
}

func (s *ExpenseService) Update(ctx context.Context, userID string, id int64, req CreateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, userID, expense, req); err != nil {
		return nil, err
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) Delete(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}
