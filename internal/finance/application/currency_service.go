package application

import (
	"context"

	"github.com/spendwise/backend/internal/finance/domain"
)

// Currencies are referenced by monetary records and drive conversion
// direction, so they are only ever soft-disabled, never removed while in
// use (the schema restricts the delete).
type CurrencyService struct {
	repo domain.CurrencyRepository
}

func NewCurrencyService(repo domain.CurrencyRepository) *CurrencyService {
	return &CurrencyService{repo: repo}
}

func (s *CurrencyService) Create(ctx context.Context, userID string, req CurrencyRequest) (*domain.Currency, error) {
	currency := &domain.Currency{
		UserID:  userID,
		Name:    req.Name,
		Symbol:  req.Symbol,
		Enabled: true,
	}
	if err := s.repo.Save(ctx, currency); err != nil {
		return nil, err
	}
	return currency, nil
}

func (s *CurrencyService) FindByID(ctx context.Context, userID string, id int64) (*domain.Currency, error) {
	return s.repo.FindByIDAndUser(ctx, id, userID)
}

func (s *CurrencyService) List(ctx context.Context, userID string, filter domain.CurrencyFilter, page domain.PageRequest) (domain.Page[domain.Currency], error) {
	pred := currencyPredicate(filter, userID)
	return s.repo.FindAll(ctx, pred, page.Normalize())
}

func (s *CurrencyService) Update(ctx context.Context, userID string, id int64, req CurrencyRequest) (*domain.Currency, error) {
	currency, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	currency.Name = req.Name
	currency.Symbol = req.Symbol
	if err := s.repo.Save(ctx, currency); err != nil {
		return nil, err
	}
	return currency, nil
}

func (s *CurrencyService) Delete(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *CurrencyService) Enable(ctx context.Context, userID string, id int64) error {
	return s.repo.SetEnabled(ctx, id, userID, true)
}

func (s *CurrencyService) Disable(ctx context.Context, userID string, id int64) error {
	return s.repo.SetEnabled(ctx, id, userID, false)
}
