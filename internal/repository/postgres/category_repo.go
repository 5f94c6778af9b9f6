package postgres

import (
	"context"

	"github.com/anggaranku/anggarandb/internal/database"
	"github.com/anggaranku/anggarandb/internal/domain"
	"github.com/jackc/pgx/v5"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	db database.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db database.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category
func (r *CategoryRepository) Create(ctx context.Context, name string) (*domain.Category, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at`,
		name,
	)
	created, err := scanCategory(row)
	if err != nil {
		return nil, mapConstraintError(err)
	}
	return created, nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM categories
		WHERE id = $1`,
		id,
	)
	category, err := scanCategory(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// GetByName retrieves a category by its exact name
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM categories
		WHERE name = $1`,
		name,
	)
	category, err := scanCategory(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// GetAll retrieves every category, newest first
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM categories
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCategories(rows)
}

// SearchByPrefix retrieves categories whose name starts with prefix,
// for autocomplete
func (r *CategoryRepository) SearchByPrefix(ctx context.Context, prefix string, limit int32) ([]*domain.Category, error) {
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM categories
		WHERE name LIKE $1 || '%'
		ORDER BY name ASC
		LIMIT $2`,
		prefix, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCategories(rows)
}

// Update renames a category
func (r *CategoryRepository) Update(ctx context.Context, id int32, name string) (*domain.Category, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE categories
		SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, created_at, updated_at`,
		id, name,
	)
	category, err := scanCategory(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, mapConstraintError(err)
	}
	return category, nil
}

// Delete removes a category; dependent budgets and transactions
// cascade with it
func (r *CategoryRepository) Delete(ctx context.Context, id int32) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Helper functions

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCategories(rows pgx.Rows) ([]*domain.Category, error) {
	var categories []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
