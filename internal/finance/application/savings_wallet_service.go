package application

import (
	"context"

	"github.com/spendwise/backend/internal/finance/domain"
	financeErrors "github.com/spendwise/backend/internal/finance/errors"
)

type SavingsWalletService struct {
	repo domain.SavingsWalletRepository
}

func NewSavingsWalletService(repo domain.SavingsWalletRepository) *SavingsWalletService {
	return &SavingsWalletService{repo: repo}
}

func (s *SavingsWalletService) populate(wallet *domain.SavingsWallet, req SavingsWalletRequest) error {
	walletType, ok := domain.ParseSavingsWalletType(req.Type)
	if !ok {
		return financeErrors.NewValidationError("Unknown savings wallet type")
	}
	wallet.Name = req.Name
	wallet.Type = walletType
	wallet.Icon = req.Icon
	return nil
}

func (s *SavingsWalletService) Create(ctx context.Context, userID string, req SavingsWalletRequest) (*domain.SavingsWallet, error) {
	wallet := &domain.SavingsWallet{UserID: userID, Enabled: true}
	if err := s.populate(wallet, req); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *SavingsWalletService) FindByID(ctx context.Context, userID string, id int64) (*domain.SavingsWallet, error) {
	return s.repo.FindByIDAndUser(ctx, id, userID)
}

func (s *SavingsWalletService) List(ctx context.Context, userID string, filter domain.SavingsWalletFilter, page domain.PageRequest) (domain.Page[domain.SavingsWallet], error) {
	pred := savingsWalletPredicate(filter, userID)
	return s.repo.FindAll(ctx, pred, page.Normalize())
}

func (s *SavingsWalletService) Update(ctx context.Context, userID string, id int64, req SavingsWalletRequest) (*domain.SavingsWallet, error) {
	wallet, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.populate(wallet, req); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *SavingsWalletService) Delete(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *SavingsWalletService) Enable(ctx context.Context, userID string, id int64) error {
	return s.repo.SetEnabled(ctx, id, userID, true)
}

func (s *SavingsWalletService) Disable(ctx context.Context, userID string, id int64) error {
	return s.repo.SetEnabled(ctx, id, userID, false)
}
