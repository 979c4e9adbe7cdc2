package application

import (
	"context"

	"github.com/spendwise/backend/internal/finance/domain"
)

// Debts store both amounts as entered; the quotation service is never
// involved here.
type DebtService struct {
	repo domain.DebtRepository
}

func NewDebtService(repo domain.DebtRepository) *DebtService {
	return &DebtService{repo: repo}
}

func (s *DebtService) populate(debt *domain.Debt, req CreateDebtRequest) {
	debt.Description = req.Description
	debt.AmountInPesos = req.AmountInPesos
	debt.AmountInDollars = req.AmountInDollars
	debt.Date = req.Date
	debt.DueDate = req.DueDate
	debt.Personal = req.Personal
	debt.Creditor = req.Creditor
	debt.IssuingEntityID = req.IssuingEntityID
	debt.PaymentMethodID = req.PaymentMethodID
}

func (s *DebtService) Create(ctx context.Context, userID string, req CreateDebtRequest) (*domain.Debt, error) {
	debt := &domain.Debt{UserID: userID, Cancelled: false}
	s.populate(debt, req)
	if err := s.repo.Save(ctx, debt); err != nil {
		return nil, err
	}
	return debt, nil
}

func (s *DebtService) FindByID(ctx context.Context, userID string, id int64) (*domain.Debt, error) {
	return s.repo.FindByIDAndUser(ctx, id, userID)
}

func (s *DebtService) List(ctx context.Context, userID string, filter domain.DebtFilter, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	pred := debtPredicate(filter, userID)
	return s.repo.FindAll(ctx, pred, page.Normalize())
}

func (s *DebtService) Update(ctx context.Context, userID string, id int64, req CreateDebtRequest) (*domain.Debt, error) {
	debt, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	s.populate(debt, req)
	if err := s.repo.Save(ctx, debt); err != nil {
		return nil, err
	}
	return debt, nil
}

// Cancel marks the debt settled, keeping it listed for history.
func (s *DebtService) Cancel(ctx context.Context, userID string, id int64) (*domain.Debt, error) {
	debt, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	debt.Cancelled = true
	if err := s.repo.Save(ctx, debt); err != nil {
		return nil, err
	}
	return debt, nil
}

func (s *DebtService) Delete(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}
