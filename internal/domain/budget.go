package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Budget struct {
	ID         int32     `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	CategoryID int32     `json:"categoryId"`
	Amount     int64     `json:"amount"`
	Spent      int64     `json:"spent"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Remaining reports how much of the allocation is left. Spent can
// exceed Amount, in which case the result is negative.
func (b *Budget) Remaining() int64 {
	return b.Amount - b.Spent
}

// Percentage reports spent as a share of the allocated amount.
func (b *Budget) Percentage() float64 {
	if b.Amount <= 0 {
		return 0
	}
	return float64(b.Spent) / float64(b.Amount) * 100
}

type BudgetWithCategory struct {
	Budget
	CategoryName string `json:"categoryName"`
}

// BudgetUpdate carries a partial update; nil fields keep the current value.
type BudgetUpdate struct {
	Amount *int64
	Spent  *int64
}

type BudgetRepository interface {
	Create(ctx context.Context, budget *Budget) (*Budget, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int32) (*BudgetWithCategory, error)
	GetByUserAndCategory(ctx context.Context, userID uuid.UUID, categoryID int32) (*Budget, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*BudgetWithCategory, error)
	GetAllByCategory(ctx context.Context, categoryID int32) ([]*Budget, error)
	Update(ctx context.Context, userID uuid.UUID, id int32, update *BudgetUpdate) (*Budget, error)
	AddSpent(ctx context.Context, id int32, delta int64) (*Budget, error)
	ReleaseSpent(ctx context.Context, id int32, amount int64) (*Budget, error)
	Delete(ctx context.Context, userID uuid.UUID, id int32) error
}
