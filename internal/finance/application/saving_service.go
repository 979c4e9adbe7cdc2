package application

import (
	"context"

	"github.com/spendwise/backend/internal/finance/domain"
	financeErrors "github.com/spendwise/backend/internal/finance/errors"
)

type SavingService struct {
	repo       domain.SavingRepository
	currencies domain.CurrencyRepository
	converter  Converter
}

func NewSavingService(repo domain.SavingRepository, currencies domain.CurrencyRepository, converter Converter) *SavingService {
	return &SavingService{repo: repo, currencies: currencies, converter: converter}
}

// Savings always carry a currency reference; there is no pesos-by-default
// fallback like the expense path has.
func (s *SavingService) populate(ctx context.Context, userID string, saving *domain.Saving, req CreateSavingRequest) error {
	if req.CurrencyID == 0 {
		return financeErrors.NewValidationError("Currency is required")
	}
	currency, err := s.currencies.FindByIDAndUser(ctx, req.CurrencyID, userID)
	if err != nil {
		return err
	}

	saving.Description = req.Description
	saving.Date = req.Date
	saving.CurrencyID = req.CurrencyID
	saving.SavingsWalletID = req.SavingsWalletID

	amounts, err := normalizeAmounts(ctx, s.converter, currency, req.InputAmount, req.Date)
	if err != nil {
		return err
	}
	saving.AmountInPesos = amounts.InPesos
	saving.AmountInDollars = amounts.InDollars
	return nil
}

func (s *SavingService) Create(ctx context.Context, userID string, req CreateSavingRequest) (*domain.Saving, error) {
	saving := &domain.Saving{UserID: userID}
	if err := s.populate(ctx, userID, saving, req); err != nil {
		return nil, err
	}
	if err := saving.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, saving); err != nil {
		return nil, err
	}
	return saving, nil
}

func (s *SavingService) FindByID(ctx context.Context, userID string, id int64) (*domain.Saving, error) {
	return s.repo.FindByIDAndUser(ctx, id, userID)
}

func (s *SavingService) List(ctx context.Context, userID string, filter domain.SavingFilter, page domain.PageRequest) (domain.Page[domain.Saving], error) {
	pred := savingPredicate(filter, userID)
	return s.repo.FindAll(ctx, pred, page.Normalize())
}

func (s *SavingService) Update(ctx context.Context, userID string, id int64, req CreateSavingRequest) (*domain.Saving, error) {
	saving, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, userID, saving, req); err != nil {
		return nil, err
	}
	if err := saving.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, saving); err != nil {
		return nil, err
	}
	return saving, nil
}

func (s *SavingService) Delete(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}
