// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Type   entity.CategoryType
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	userRepo     adapter.UserRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(
	userRepo adapter.UserRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	// Validate category type
	if !isValidCategoryType(input.Type) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	// The owning user must exist
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

	name := strings.TrimSpace(input.Name)

	// Category names are unique per owning user
	exists, err := uc.categoryRepo.ExistsByNameAndUser(ctx, name, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	category := entity.NewCategory(input.UserID, name, input.Type)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// isValidCategoryType validates the category type.
func isValidCategoryType(categoryType entity.CategoryType) bool {
	return categoryType == entity.CategoryTypeExpense || categoryType == entity.CategoryTypeIncome
}
