package service

import (
	"context"

	"github.com/anggaranku/anggarandb/internal/domain"
	"github.com/google/uuid"
)

// BudgetService handles business logic for per-category budgets
type BudgetService struct {
	budgetRepo   domain.BudgetRepository
	categoryRepo domain.CategoryRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository, categoryRepo domain.CategoryRepository) *BudgetService {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateBudget allocates a budget for a user on a category
func (s *BudgetService) CreateBudget(ctx context.Context, userID uuid.UUID, categoryID int32, amount int64) (*domain.Budget, error) {
	if amount <= 0 {
		return nil, domain.ErrAmountNotPositive
	}

	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	return s.budgetRepo.Create(ctx, &domain.Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
	})
}

// GetBudget retrieves a user's budget by ID
func (s *BudgetService) GetBudget(ctx context.Context, userID uuid.UUID, id int32) (*domain.BudgetWithCategory, error) {
	return s.budgetRepo.GetByID(ctx, userID, id)
}

// GetBudgetByCategory retrieves the budget a user holds for a category
func (s *BudgetService) GetBudgetByCategory(ctx context.Context, userID uuid.UUID, categoryID int32) (*domain.Budget, error) {
	return s.budgetRepo.GetByUserAndCategory(ctx, userID, categoryID)
}

// GetBudgets retrieves all budgets for a user
func (s *BudgetService) GetBudgets(ctx context.Context, userID uuid.UUID) ([]*domain.BudgetWithCategory, error) {
	return s.budgetRepo.GetAllByUser(ctx, userID)
}

// GetBudgetsByCategory retrieves every budget allocated to a category
func (s *BudgetService) GetBudgetsByCategory(ctx context.Context, categoryID int32) ([]*domain.Budget, error) {
	return s.budgetRepo.GetAllByCategory(ctx, categoryID)
}

// UpdateBudget applies a partial update to a user's budget
func (s *BudgetService) UpdateBudget(ctx context.Context, userID uuid.UUID, id int32, update *domain.BudgetUpdate) (*domain.Budget, error) {
	if update == nil || (update.Amount == nil && update.Spent == nil) {
		return nil, domain.ErrInvalidInput
	}
	if update.Amount != nil && *update.Amount <= 0 {
		return nil, domain.ErrAmountNotPositive
	}
	if update.Spent != nil && *update.Spent < 0 {
		return nil, domain.ErrSpentNegative
	}

	return s.budgetRepo.Update(ctx, userID, id, update)
}

// RecordSpending adds amount to the budget's spent total
func (s *BudgetService) RecordSpending(ctx context.Context, id int32, amount int64) (*domain.Budget, error) {
	if amount <= 0 {
		return nil, domain.ErrAmountNotPositive
	}

	return s.budgetRepo.AddSpent(ctx, id, amount)
}

// ReleaseSpending subtracts amount from the budget's spent total,
// flooring at zero
func (s *BudgetService) ReleaseSpending(ctx context.Context, id int32, amount int64) (*domain.Budget, error) {
	if amount <= 0 {
		return nil, domain.ErrAmountNotPositive
	}

	return s.budgetRepo.ReleaseSpent(ctx, id, amount)
}

// DeleteBudget removes a user's budget
func (s *BudgetService) DeleteBudget(ctx context.Context, userID uuid.UUID, id int32) error {
	return s.budgetRepo.Delete(ctx, userID, id)
}
