package postgres

import (
	"context"

	"github.com/anggaranku/anggarandb/internal/database"
	"github.com/anggaranku/anggarandb/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	db database.DB
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(db database.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Create inserts a new budget; spent starts at zero
func (r *BudgetRepository) Create(ctx context.Context, budget *domain.Budget) (*domain.Budget, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO budgets (user_id, category_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, category_id, amount, spent, created_at, updated_at`,
		budget.UserID, budget.CategoryID, budget.Amount,
	)
	created, err := scanBudget(row)
	if err != nil {
		return nil, mapConstraintError(err)
	}
	return created, nil
}

// GetByID retrieves a user's budget together with its category name
func (r *BudgetRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.BudgetWithCategory, error) {
	row := r.db.QueryRow(ctx, `
		SELECT b.id, b.user_id, b.category_id, b.amount, b.spent, b.created_at, b.updated_at, c.name
		FROM budgets b
		JOIN categories c ON b.category_id = c.id
		WHERE b.id = $1 AND b.user_id = $2`,
		id, userID,
	)
	var b domain.BudgetWithCategory
	err := row.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Spent, &b.CreatedAt, &b.UpdatedAt, &b.CategoryName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return &b, nil
}

// GetByUserAndCategory retrieves the single budget a user holds for a category
func (r *BudgetRepository) GetByUserAndCategory(ctx context.Context, userID uuid.UUID, categoryID int32) (*domain.Budget, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, category_id, amount, spent, created_at, updated_at
		FROM budgets
		WHERE user_id = $1 AND category_id = $2`,
		userID, categoryID,
	)
	budget, err := scanBudget(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// GetAllByUser retrieves all budgets for a user with category names,
// newest first
func (r *BudgetRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*domain.BudgetWithCategory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.user_id, b.category_id, b.amount, b.spent, b.created_at, b.updated_at, c.name
		FROM budgets b
		JOIN categories c ON b.category_id = c.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*domain.BudgetWithCategory
	for rows.Next() {
		var b domain.BudgetWithCategory
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Spent, &b.CreatedAt, &b.UpdatedAt, &b.CategoryName); err != nil {
			return nil, err
		}
		budgets = append(budgets, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return budgets, nil
}

// GetAllByCategory retrieves every budget allocated to a category,
// across users
func (r *BudgetRepository) GetAllByCategory(ctx context.Context, categoryID int32) ([]*domain.Budget, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, category_id, amount, spent, created_at, updated_at
		FROM budgets
		WHERE category_id = $1
		ORDER BY created_at DESC`,
		categoryID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*domain.Budget
	for rows.Next() {
		var b domain.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Spent, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return budgets, nil
}

// Update applies a partial update to a user's budget; nil fields keep
// their current value
func (r *BudgetRepository) Update(ctx context.Context, userID uuid.UUID, id int32, update *domain.BudgetUpdate) (*domain.Budget, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE budgets
		SET amount = COALESCE($3, amount),
		    spent = COALESCE($4, spent),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, category_id, amount, spent, created_at, updated_at`,
		id, userID, update.Amount, update.Spent,
	)
	budget, err := scanBudget(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, mapConstraintError(err)
	}
	return budget, nil
}

// AddSpent atomically adjusts the running spent total by delta in a
// single statement, so concurrent writers cannot lose updates.
// Negative deltas floor at zero rather than violating the spent check.
func (r *BudgetRepository) AddSpent(ctx context.Context, id int32, delta int64) (*domain.Budget, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE budgets
		SET spent = GREATEST(spent + $2, 0),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, category_id, amount, spent, created_at, updated_at`,
		id, delta,
	)
	budget, err := scanBudget(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// ReleaseSpent gives back a previously recorded spend, flooring at zero
func (r *BudgetRepository) ReleaseSpent(ctx context.Context, id int32, amount int64) (*domain.Budget, error) {
	return r.AddSpent(ctx, id, -amount)
}

// Delete removes a user's budget
func (r *BudgetRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM budgets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

// Helper functions

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var b domain.Budget
	err := row.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Spent, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
