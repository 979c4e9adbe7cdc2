package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendwise/backend/internal/finance/domain"
	financeErrors "github.com/spendwise/backend/internal/finance/errors"
	"github.com/spendwise/backend/internal/finance/infrastructure"
)

func TestCategoryService_Create_EnabledByDefault(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	category, err := service.Create(context.Background(), testUserID, CategoryRequest{
		Name: "Comida",
		Type: "expense",
	})

	assert.NoError(t, err)
	assert.True(t, category.Enabled)
	assert.Equal(t, domain.CategoryTypeExpense, category.Type)
}

func TestCategoryService_Create_RejectsUnknownType(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	_, err := service.Create(context.Background(), testUserID, CategoryRequest{
		Name: "Comida",
		Type: "TRANSFER",
	})

	assert.True(t, financeErrors.IsValidationError(err))
	assert.Empty(t, repo.Categories)
}

func TestCategoryService_EnableDisable(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	category, err := service.Create(context.Background(), testUserID, CategoryRequest{Name: "Sueldo", Type: "INCOME"})
	assert.NoError(t, err)

	assert.NoError(t, service.Disable(context.Background(), testUserID, category.ID))
	stored, err := service.FindByID(context.Background(), testUserID, category.ID)
	assert.NoError(t, err)
	assert.False(t, stored.Enabled)

	assert.NoError(t, service.Enable(context.Background(), testUserID, category.ID))
	stored, err = service.FindByID(context.Background(), testUserID, category.ID)
	assert.NoError(t, err)
	assert.True(t, stored.Enabled)
}
