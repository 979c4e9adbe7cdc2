package application

import (
	"context"

	"github.com/spendwise/backend/internal/finance/domain"
	financeErrors "github.com/spendwise/backend/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, userID string, req CategoryRequest) (*domain.Category, error) {
	categoryType, ok := domain.ParseCategoryType(req.Type)
	if !ok {
		return nil, financeErrors.NewValidationError("Type must be INCOME or EXPENSE")
	}
	category := &domain.Category{
		UserID:  userID,
		Name:    req.Name,
		Type:    categoryType,
		Enabled: true,
	}
	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) FindByID(ctx context.Context, userID string, id int64) (*domain.Category, error) {
	return s.repo.FindByIDAndUser(ctx, id, userID)
}

func (s *CategoryService) List(ctx context.Context, userID string, filter domain.CategoryFilter, page domain.PageRequest) (domain.Page[domain.Category], error) {
	pred := categoryPredicate(filter, userID)
	return s.repo.FindAll(ctx, pred, page.Normalize())
}

func (s *CategoryService) Update(ctx context.Context, userID string, id int64, req CategoryRequest) (*domain.Category, error) {
	category, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if req.Type != "" {
		categoryType, ok := domain.ParseCategoryType(req.Type)
		if !ok {
			return nil, financeErrors.NewValidationError("Type must be INCOME or EXPENSE")
		}
		category.Type = categoryType
	}
	category.Name = req.Name
	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *CategoryService) Enable(ctx context.Context, userID string, id int64) error {
	return s.repo.SetEnabled(ctx, id, userID, true)
}

func (s *CategoryService) Disable(ctx context.Context, userID string, id int64) error {
	return s.repo.SetEnabled(ctx, id, userID, false)
}
