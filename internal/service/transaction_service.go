package service

import (
	"context"
	"strings"
	"time"

	"github.com/anggaranku/anggarandb/internal/domain"
	"github.com/google/uuid"
)

// TransactionService handles business logic for expense records
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository, categoryRepo domain.CategoryRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// CreateTransaction records a new expense for a user
func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, categoryID int32, amount int64, description string, date time.Time) (*domain.Transaction, error) {
	// Validate amount (must be positive)
	if amount <= 0 {
		return nil, domain.ErrAmountNotPositive
	}

	// Validate description
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.ErrDescriptionRequired
	}

	if date.IsZero() {
		return nil, domain.ErrDateRequired
	}

	// Validate category exists
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	return s.transactionRepo.Create(ctx, &domain.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		Date:        date,
	})
}

// GetTransaction retrieves a user's transaction by ID
func (s *TransactionService) GetTransaction(ctx context.Context, userID uuid.UUID, id int32) (*domain.TransactionWithCategory, error) {
	return s.transactionRepo.GetByID(ctx, userID, id)
}

// GetTransactions retrieves a user's transactions with filters applied
func (s *TransactionService) GetTransactions(ctx context.Context, userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.TransactionWithCategory, error) {
	return s.transactionRepo.GetAllByUser(ctx, userID, filters)
}

// GetTransactionsByCategory retrieves transactions recorded against a category
func (s *TransactionService) GetTransactionsByCategory(ctx context.Context, categoryID int32, limit, offset int32) ([]*domain.Transaction, error) {
	return s.transactionRepo.GetAllByCategory(ctx, categoryID, limit, offset)
}

// UpdateTransaction applies a partial update to a user's transaction
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID uuid.UUID, id int32, update *domain.TransactionUpdate) (*domain.Transaction, error) {
	if update == nil || (update.CategoryID == nil && update.Amount == nil && update.Description == nil && update.Date == nil) {
		return nil, domain.ErrInvalidInput
	}
	if update.Amount != nil && *update.Amount <= 0 {
		return nil, domain.ErrAmountNotPositive
	}
	if update.Description != nil {
		trimmed := strings.TrimSpace(*update.Description)
		if trimmed == "" {
			return nil, domain.ErrDescriptionRequired
		}
		update.Description = &trimmed
	}
	if update.Date != nil && update.Date.IsZero() {
		return nil, domain.ErrDateRequired
	}

	// Validate the new category exists before moving the record
	if update.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *update.CategoryID); err != nil {
			return nil, err
		}
	}

	return s.transactionRepo.Update(ctx, userID, id, update)
}

// DeleteTransaction removes a user's transaction
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID uuid.UUID, id int32) error {
	return s.transactionRepo.Delete(ctx, userID, id)
}
