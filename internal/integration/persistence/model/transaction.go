// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// There is no soft-delete column: deletes are permanent.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(10);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TrxDate     time.Time       `gorm:"column:trx_date;type:date;not null;index"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount,
		TrxDate:     m.TrxDate,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a TransactionModel with its preloaded
// Category to a TransactionWithCategory entity.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	result := &entity.TransactionWithCategory{
		Transaction: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		CategoryID:  transaction.CategoryID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		TrxDate:     transaction.TrxDate,
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
