package application

import (
	"context"

	"github.com/spendwise/backend/internal/finance/domain"
	financeErrors "github.com/spendwise/backend/internal/finance/errors"
)

type PaymentMethodService struct {
	repo domain.PaymentMethodRepository
}

func NewPaymentMethodService(repo domain.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{repo: repo}
}

func (s *PaymentMethodService) populate(method *domain.PaymentMethod, req PaymentMethodRequest) error {
	methodType, ok := domain.ParsePaymentMethodType(req.Type)
	if !ok {
		return financeErrors.NewValidationError("Unknown payment method type")
	}
	method.Name = req.Name
	method.Type = methodType
	method.Brand = req.Brand
	method.Icon = req.Icon
	method.IssuingEntityID = req.IssuingEntityID
	return nil
}

func (s *PaymentMethodService) Create(ctx context.Context, userID string, req PaymentMethodRequest) (*domain.PaymentMethod, error) {
	method := &domain.PaymentMethod{UserID: userID, Enabled: true}
	if err := s.populate(method, req); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (s *PaymentMethodService) FindByID(ctx context.Context, userID string, id int64) (*domain.PaymentMethod, error) {
	return s.repo.FindByIDAndUser(ctx, id, userID)
}

func (s *PaymentMethodService) List(ctx context.Context, userID string, filter domain.PaymentMethodFilter, page domain.PageRequest) (domain.Page[domain.PaymentMethod], error) {
	pred := paymentMethodPredicate(filter, userID)
	return s.repo.FindAll(ctx, pred, page.Normalize())
}

func (s *PaymentMethodService) Update(ctx context.Context, userID string, id int64, req PaymentMethodRequest) (*domain.PaymentMethod, error) {
	method, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.populate(method, req); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (s *PaymentMethodService) Delete(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *PaymentMethodService) Enable(ctx context.Context, userID string, id int64) error {
	return s.repo.SetEnabled(ctx, id, userID, true)
}

func (s *PaymentMethodService) Disable(ctx context.Context, userID string, id int64) error {
	return s.repo.SetEnabled(ctx, id, userID, false)
}
