// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// ListCategoriesInput represents the input for listing a user's categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	userRepo     adapter.UserRepository
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(
	userRepo adapter.UserRepository,
	categoryRepo adapter.CategoryRepository,
) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute lists the categories owned by a user. The user is resolved first so
// a typo'd id yields a consistent not-found failure instead of an empty list.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryOwnerNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
