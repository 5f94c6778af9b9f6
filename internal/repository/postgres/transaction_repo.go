package postgres

import (
	"context"
	"fmt"

	"github.com/anggaranku/anggarandb/internal/database"
	"github.com/anggaranku/anggarandb/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	db database.DB
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db database.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO transaksi (user_id, category_id, amount, description, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, category_id, amount, description, date, created_at, updated_at`,
		transaction.UserID, transaction.CategoryID, transaction.Amount, transaction.Description, transaction.Date,
	)
	created, err := scanTransaction(row)
	if err != nil {
		return nil, mapConstraintError(err)
	}
	return created, nil
}

// GetByID retrieves a user's transaction together with its category name
func (r *TransactionRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.TransactionWithCategory, error) {
	row := r.db.QueryRow(ctx, `
		SELECT t.id, t.user_id, t.category_id, t.amount, t.description, t.date, t.created_at, t.updated_at, c.name
		FROM transaksi t
		JOIN categories c ON t.category_id = c.id
		WHERE t.id = $1 AND t.user_id = $2`,
		id, userID,
	)
	var tx domain.TransactionWithCategory
	err := row.Scan(&tx.ID, &tx.UserID, &tx.CategoryID, &tx.Amount, &tx.Description, &tx.Date, &tx.CreatedAt, &tx.UpdatedAt, &tx.CategoryName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// GetAllByUser retrieves a user's transactions, optionally filtered by
// category and date range, newest first
func (r *TransactionRepository) GetAllByUser(ctx context.Context, userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.TransactionWithCategory, error) {
	if filters == nil {
		filters = &domain.TransactionFilters{}
	}
	filters.Normalize()

	query := `
		SELECT t.id, t.user_id, t.category_id, t.amount, t.description, t.date, t.created_at, t.updated_at, c.name
		FROM transaksi t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1`
	args := []any{userID}

	if filters.CategoryID != nil {
		args = append(args, *filters.CategoryID)
		query += fmt.Sprintf(" AND t.category_id = $%d", len(args))
	}
	if filters.StartDate != nil {
		args = append(args, *filters.StartDate)
		query += fmt.Sprintf(" AND t.date >= $%d", len(args))
	}
	if filters.EndDate != nil {
		args = append(args, *filters.EndDate)
		query += fmt.Sprintf(" AND t.date <= $%d", len(args))
	}

	query += " ORDER BY t.date DESC, t.created_at DESC"
	args = append(args, filters.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filters.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.TransactionWithCategory
	for rows.Next() {
		var tx domain.TransactionWithCategory
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.CategoryID, &tx.Amount, &tx.Description, &tx.Date, &tx.CreatedAt, &tx.UpdatedAt, &tx.CategoryName); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

// GetAllByCategory retrieves transactions recorded against a category,
// across users, newest first
func (r *TransactionRepository) GetAllByCategory(ctx context.Context, categoryID int32, limit, offset int32) ([]*domain.Transaction, error) {
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	if limit > domain.MaxListLimit {
		limit = domain.MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, category_id, amount, description, date, created_at, updated_at
		FROM transaksi
		WHERE category_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3`,
		categoryID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.CategoryID, &tx.Amount, &tx.Description, &tx.Date, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

// Update applies a partial update to a user's transaction; nil fields
// keep their current value
func (r *TransactionRepository) Update(ctx context.Context, userID uuid.UUID, id int32, update *domain.TransactionUpdate) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE transaksi
		SET category_id = COALESCE($3, category_id),
		    amount = COALESCE($4, amount),
		    description = COALESCE($5, description),
		    date = COALESCE($6, date),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, category_id, amount, description, date, created_at, updated_at`,
		id, userID, update.CategoryID, update.Amount, update.Description, update.Date,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, mapConstraintError(err)
	}
	return transaction, nil
}

// Delete removes a user's transaction
func (r *TransactionRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transaksi WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// Helper functions

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := row.Scan(&tx.ID, &tx.UserID, &tx.CategoryID, &tx.Amount, &tx.Description, &tx.Date, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
