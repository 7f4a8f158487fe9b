// Package user contains user-related use cases.
package user

import (
	"context"
	"fmt"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// ListUsersOutput represents the output of listing users.
type ListUsersOutput struct {
	Users []*entity.User
}

// ListUsersUseCase handles user listing logic.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute returns all registered users.
func (uc *ListUsersUseCase) Execute(ctx context.Context) (*ListUsersOutput, error) {
	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &ListUsersOutput{
		Users: users,
	}, nil
}
