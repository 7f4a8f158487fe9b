// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fintrack/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Name   string `json:"name" binding:"required,min=1,max=100"`
	Type   string `json:"type" binding:"required,oneof=expense income"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		UserID:    category.UserID.String(),
		Name:      category.Name,
		Type:      string(category.Type),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryListResponse converts a slice of Category entities to response DTOs.
func ToCategoryListResponse(categories []*entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}
