package application

import (
	"context"

	"github.com/spendwise/backend/internal/finance/domain"
)

type IssuingEntityService struct {
	repo domain.IssuingEntityRepository
}

func NewIssuingEntityService(repo domain.IssuingEntityRepository) *IssuingEntityService {
	return &IssuingEntityService{repo: repo}
}

func (s *IssuingEntityService) Create(ctx context.Context, userID string, req IssuingEntityRequest) (*domain.IssuingEntity, error) {
	entity := &domain.IssuingEntity{
		UserID:      userID,
		Description: req.Description,
		Enabled:     true,
	}
	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *IssuingEntityService) FindByID(ctx context.Context, userID string, id int64) (*domain.IssuingEntity, error) {
	return s.repo.FindByIDAndUser(ctx, id, userID)
}

func (s *IssuingEntityService) List(ctx context.Context, userID string, filter domain.IssuingEntityFilter, page domain.PageRequest) (domain.Page[domain.IssuingEntity], error) {
	pred := issuingEntityPredicate(filter, userID)
	return s.repo.FindAll(ctx, pred, page.Normalize())
}

func (s *IssuingEntityService) Update(ctx context.Context, userID string, id int64, req IssuingEntityRequest) (*domain.IssuingEntity, error) {
	entity, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	entity.Description = req.Description
	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *IssuingEntityService) Delete(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *IssuingEntityService) Enable(ctx context.Context, userID string, id int64) error {
	return s.repo.SetEnabled(ctx, id, userID, true)
}

func (s *IssuingEntityService) Disable(ctx context.Context, userID string, id int64) error {
	return s.repo.SetEnabled(ctx, id, userID, false)
}
