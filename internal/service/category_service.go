package service

import (
	"context"
	"strings"

	"github.com/anggaranku/anggarandb/internal/domain"
)

// CategoryService handles business logic for spending categories
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory creates a new spending category
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxCategoryNameLength {
		return nil, domain.ErrNameTooLong
	}

	return s.categoryRepo.Create(ctx, name)
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id int32) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// GetCategoryByName retrieves a category by exact name
func (s *CategoryService) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	return s.categoryRepo.GetByName(ctx, name)
}

// GetCategories retrieves all categories
func (s *CategoryService) GetCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

// SearchCategories retrieves categories whose name starts with prefix
func (s *CategoryService) SearchCategories(ctx context.Context, prefix string, limit int32) ([]*domain.Category, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, domain.ErrNameRequired
	}

	return s.categoryRepo.SearchByPrefix(ctx, prefix, limit)
}

// UpdateCategory renames a category
func (s *CategoryService) UpdateCategory(ctx context.Context, id int32, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxCategoryNameLength {
		return nil, domain.ErrNameTooLong
	}

	return s.categoryRepo.Update(ctx, id, name)
}

// DeleteCategory removes a category along with its budgets and transactions
func (s *CategoryService) DeleteCategory(ctx context.Context, id int32) error {
	return s.categoryRepo.Delete(ctx, id)
}
