package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID          int32     `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	CategoryID  int32     `json:"categoryId"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TransactionWithCategory struct {
	Transaction
	CategoryName string `json:"categoryName"`
}

type TransactionFilters struct {
	CategoryID *int32
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int32
	Offset     int32
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// Normalize clamps the limit into [1, MaxListLimit], applying
// DefaultListLimit when unset, and floors a negative offset at zero.
func (f *TransactionFilters) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// TransactionUpdate carries a partial update; nil fields keep the current value.
type TransactionUpdate struct {
	CategoryID  *int32
	Amount      *int64
	Description *string
	Date        *time.Time
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) (*Transaction, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int32) (*TransactionWithCategory, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID, filters *TransactionFilters) ([]*TransactionWithCategory, error)
	GetAllByCategory(ctx context.Context, categoryID int32, limit, offset int32) ([]*Transaction, error)
	Update(ctx context.Context, userID uuid.UUID, id int32, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, userID uuid.UUID, id int32) error
}
