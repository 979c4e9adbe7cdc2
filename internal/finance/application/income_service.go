package application

import (
	"context"

	"github.com/spendwise/backend/internal/finance/domain"
)

type IncomeService struct {
	repo      domain.IncomeRepository
	converter Converter
}

func NewIncomeService(repo domain.IncomeRepository, converter Converter) *IncomeService {
	return &IncomeService{repo: repo, converter: converter}
}

// Incomes are always denominated in pesos; only the dollar side is derived.
func (s *IncomeService) populate(ctx context.Context, income *domain.Income, req CreateIncomeRequest) error {
	income.Description = req.Description
	income.SourceID = req.SourceID
	income.Date = req.Date

	amounts, err := normalizeFromPesos(ctx, s.converter, req.AmountInPesos, req.Date)
	if err != nil {
		return err
	}
	income.AmountInPesos = amounts.InPesos
	income.AmountInDollars = amounts.InDollars
	return nil
}

func (s *IncomeService) Create(ctx context.Context, userID string, req CreateIncomeRequest) (*domain.Income, error) {
	income := &domain.Income{UserID: userID}
	if err := s.populate(ctx, income, req); err != nil {
		return nil, err
	}
	if err := income.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, income); err != nil {
		return nil, err
	}
	return income, nil
}

func (s *IncomeService) FindByID(ctx context.Context, userID string, id int64) (*domain.Income, error) {
	return s.repo.FindByIDAndUser(ctx, id, userID)
}

func (s *IncomeService) List(ctx context.Context, userID string, filter domain.IncomeFilter, page domain.PageRequest) (domain.Page[domain.Income], error) {
	pred := incomePredicate(filter, userID)
	return s.repo.FindAll(ctx, pred, page.Normalize())
}

func (s *IncomeService) Update(ctx context.Context, userID string, id int64, req CreateIncomeRequest) (*domain.Income, error) {
	income, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, income, req); err != nil {
		return nil, err
	}
	if err := income.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, income); err != nil {
		return nil, err
	}
	return income, nil
}

func (s *IncomeService) Delete(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}
