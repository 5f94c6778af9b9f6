package testutil

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/anggaranku/anggarandb/internal/domain"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users    map[uuid.UUID]*domain.User
	ByEmail  map[string]*domain.User
	CreateFn func(ctx context.Context, user *domain.User) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:   make(map[uuid.UUID]*domain.User),
		ByEmail: make(map[string]*domain.User),
	}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if _, ok := m.ByEmail[user.Email]; ok {
		return nil, domain.ErrEmailTaken
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.Users[user.ID] = user
	m.ByEmail[user.Email] = user
	return user, nil
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if user, ok := m.Users[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByEmail retrieves a user by email
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := m.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// Delete removes a user
func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	user, ok := m.Users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(m.Users, id)
	delete(m.ByEmail, user.Email)
	return nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.Users[user.ID] = user
	m.ByEmail[user.Email] = user
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[int32]*domain.Category
	NextID     int32
	CreateFn   func(ctx context.Context, name string) (*domain.Category, error)
	GetByIDFn  func(ctx context.Context, id int32) (*domain.Category, error)
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[int32]*domain.Category),
		NextID:     1,
	}
}

// Create creates a new category, enforcing name uniqueness like the
// database constraint does
func (m *MockCategoryRepository) Create(ctx context.Context, name string) (*domain.Category, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, name)
	}
	for _, c := range m.Categories {
		if c.Name == name {
			return nil, domain.ErrCategoryNameTaken
		}
	}
	category := &domain.Category{
		ID:        m.NextID,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.NextID++
	m.Categories[category.ID] = category
	return category, nil
}

// GetByID retrieves a category by ID
func (m *MockCategoryRepository) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if category, ok := m.Categories[id]; ok {
		return category, nil
	}
	return nil, domain.ErrCategoryNotFound
}

// GetByName retrieves a category by exact name
func (m *MockCategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	for _, c := range m.Categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// GetAll retrieves all categories
func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	categories := make([]*domain.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].CreatedAt.After(categories[j].CreatedAt)
	})
	return categories, nil
}

// SearchByPrefix retrieves categories whose name starts with prefix
func (m *MockCategoryRepository) SearchByPrefix(ctx context.Context, prefix string, limit int32) ([]*domain.Category, error) {
	var matches []*domain.Category
	for _, c := range m.Categories {
		if strings.HasPrefix(c.Name, prefix) {
			matches = append(matches, c)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Name < matches[j].Name
	})
	if limit > 0 && int32(len(matches)) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// Update renames a category
func (m *MockCategoryRepository) Update(ctx context.Context, id int32, name string) (*domain.Category, error) {
	category, ok := m.Categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	for _, c := range m.Categories {
		if c.ID != id && c.Name == name {
			return nil, domain.ErrCategoryNameTaken
		}
	}
	category.Name = name
	category.UpdatedAt = time.Now()
	return category, nil
}

// Delete removes a category
func (m *MockCategoryRepository) Delete(ctx context.Context, id int32) error {
	if _, ok := m.Categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	m.Categories[category.ID] = category
	if category.ID >= m.NextID {
		m.NextID = category.ID + 1
	}
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets       map[int32]*domain.Budget
	CategoryNames map[int32]string
	NextID        int32
	CreateFn      func(ctx context.Context, budget *domain.Budget) (*domain.Budget, error)
	AddSpentFn    func(ctx context.Context, id int32, delta int64) (*domain.Budget, error)
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Budgets:       make(map[int32]*domain.Budget),
		CategoryNames: make(map[int32]string),
		NextID:        1,
	}
}

// Create creates a new budget, enforcing one budget per user and
// category like the database constraint does
func (m *MockBudgetRepository) Create(ctx context.Context, budget *domain.Budget) (*domain.Budget, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, budget)
	}
	for _, b := range m.Budgets {
		if b.UserID == budget.UserID && b.CategoryID == budget.CategoryID {
			return nil, domain.ErrBudgetExists
		}
	}
	created := &domain.Budget{
		ID:         m.NextID,
		UserID:     budget.UserID,
		CategoryID: budget.CategoryID,
		Amount:     budget.Amount,
		Spent:      0,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	m.NextID++
	m.Budgets[created.ID] = created
	return created, nil
}

// GetByID retrieves a user's budget with its category name
func (m *MockBudgetRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.BudgetWithCategory, error) {
	budget, ok := m.Budgets[id]
	if !ok || budget.UserID != userID {
		return nil, domain.ErrBudgetNotFound
	}
	return &domain.BudgetWithCategory{
		Budget:       *budget,
		CategoryName: m.CategoryNames[budget.CategoryID],
	}, nil
}

// GetByUserAndCategory retrieves the budget a user holds for a category
func (m *MockBudgetRepository) GetByUserAndCategory(ctx context.Context, userID uuid.UUID, categoryID int32) (*domain.Budget, error) {
	for _, b := range m.Budgets {
		if b.UserID == userID && b.CategoryID == categoryID {
			return b, nil
		}
	}
	return nil, domain.ErrBudgetNotFound
}

// GetAllByUser retrieves all budgets for a user
func (m *MockBudgetRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*domain.BudgetWithCategory, error) {
	var budgets []*domain.BudgetWithCategory
	for _, b := range m.Budgets {
		if b.UserID == userID {
			budgets = append(budgets, &domain.BudgetWithCategory{
				Budget:       *b,
				CategoryName: m.CategoryNames[b.CategoryID],
			})
		}
	}
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.After(budgets[j].CreatedAt)
	})
	return budgets, nil
}

// GetAllByCategory retrieves every budget allocated to a category
func (m *MockBudgetRepository) GetAllByCategory(ctx context.Context, categoryID int32) ([]*domain.Budget, error) {
	var budgets []*domain.Budget
	for _, b := range m.Budgets {
		if b.CategoryID == categoryID {
			budgets = append(budgets, b)
		}
	}
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.After(budgets[j].CreatedAt)
	})
	return budgets, nil
}

// Update applies a partial update, enforcing the amount and spent
// checks like the database does
func (m *MockBudgetRepository) Update(ctx context.Context, userID uuid.UUID, id int32, update *domain.BudgetUpdate) (*domain.Budget, error) {
	budget, ok := m.Budgets[id]
	if !ok || budget.UserID != userID {
		return nil, domain.ErrBudgetNotFound
	}
	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, domain.ErrAmountNotPositive
		}
		budget.Amount = *update.Amount
	}
	if update.Spent != nil {
		if *update.Spent < 0 {
			return nil, domain.ErrSpentNegative
		}
		budget.Spent = *update.Spent
	}
	budget.UpdatedAt = time.Now()
	return budget, nil
}

// AddSpent adjusts the spent total by delta, flooring at zero
func (m *MockBudgetRepository) AddSpent(ctx context.Context, id int32, delta int64) (*domain.Budget, error) {
	if m.AddSpentFn != nil {
		return m.AddSpentFn(ctx, id, delta)
	}
	budget, ok := m.Budgets[id]
	if !ok {
		return nil, domain.ErrBudgetNotFound
	}
	budget.Spent += delta
	if budget.Spent < 0 {
		budget.Spent = 0
	}
	budget.UpdatedAt = time.Now()
	return budget, nil
}

// ReleaseSpent gives back a previously recorded spend
func (m *MockBudgetRepository) ReleaseSpent(ctx context.Context, id int32, amount int64) (*domain.Budget, error) {
	return m.AddSpent(ctx, id, -amount)
}

// Delete removes a user's budget
func (m *MockBudgetRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	budget, ok := m.Budgets[id]
	if !ok || budget.UserID != userID {
		return domain.ErrBudgetNotFound
	}
	delete(m.Budgets, id)
	return nil
}

// AddBudget adds a budget to the mock repository (helper for tests)
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	m.Budgets[budget.ID] = budget
	if budget.ID >= m.NextID {
		m.NextID = budget.ID + 1
	}
}

// SetCategoryName registers the category name used for joined reads
func (m *MockBudgetRepository) SetCategoryName(categoryID int32, name string) {
	m.CategoryNames[categoryID] = name
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions  map[int32]*domain.Transaction
	CategoryNames map[int32]string
	NextID        int32
	CreateFn      func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions:  make(map[int32]*domain.Transaction),
		CategoryNames: make(map[int32]string),
		NextID:        1,
	}
}

// Create creates a new transaction
func (m *MockTransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, transaction)
	}
	created := &domain.Transaction{
		ID:          m.NextID,
		UserID:      transaction.UserID,
		CategoryID:  transaction.CategoryID,
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Date:        transaction.Date,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.NextID++
	m.Transactions[created.ID] = created
	return created, nil
}

// GetByID retrieves a user's transaction with its category name
func (m *MockTransactionRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.TransactionWithCategory, error) {
	transaction, ok := m.Transactions[id]
	if !ok || transaction.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}
	return &domain.TransactionWithCategory{
		Transaction:  *transaction,
		CategoryName: m.CategoryNames[transaction.CategoryID],
	}, nil
}

// GetAllByUser retrieves a user's transactions with filters applied
func (m *MockTransactionRepository) GetAllByUser(ctx context.Context, userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.TransactionWithCategory, error) {
	if filters == nil {
		filters = &domain.TransactionFilters{}
	}
	filters.Normalize()

	var transactions []*domain.TransactionWithCategory
	for _, tx := range m.Transactions {
		if tx.UserID != userID {
			continue
		}
		if filters.CategoryID != nil && tx.CategoryID != *filters.CategoryID {
			continue
		}
		if filters.StartDate != nil && tx.Date.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && tx.Date.After(*filters.EndDate) {
			continue
		}
		transactions = append(transactions, &domain.TransactionWithCategory{
			Transaction:  *tx,
			CategoryName: m.CategoryNames[tx.CategoryID],
		})
	}
	sort.Slice(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})

	start := int(filters.Offset)
	if start > len(transactions) {
		start = len(transactions)
	}
	end := start + int(filters.Limit)
	if end > len(transactions) {
		end = len(transactions)
	}
	return transactions[start:end], nil
}

// GetAllByCategory retrieves transactions recorded against a category
func (m *MockTransactionRepository) GetAllByCategory(ctx context.Context, categoryID int32, limit, offset int32) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	for _, tx := range m.Transactions {
		if tx.CategoryID == categoryID {
			transactions = append(transactions, tx)
		}
	}
	sort.Slice(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})

	if offset < 0 {
		offset = 0
	}
	start := int(offset)
	if start > len(transactions) {
		start = len(transactions)
	}
	transactions = transactions[start:]
	if limit > 0 && int32(len(transactions)) > limit {
		transactions = transactions[:limit]
	}
	return transactions, nil
}

// Update applies a partial update to a user's transaction
func (m *MockTransactionRepository) Update(ctx context.Context, userID uuid.UUID, id int32, update *domain.TransactionUpdate) (*domain.Transaction, error) {
	transaction, ok := m.Transactions[id]
	if !ok || transaction.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}
	if update.CategoryID != nil {
		transaction.CategoryID = *update.CategoryID
	}
	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, domain.ErrAmountNotPositive
		}
		transaction.Amount = *update.Amount
	}
	if update.Description != nil {
		transaction.Description = *update.Description
	}
	if update.Date != nil {
		transaction.Date = *update.Date
	}
	transaction.UpdatedAt = time.Now()
	return transaction, nil
}

// Delete removes a user's transaction
func (m *MockTransactionRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	transaction, ok := m.Transactions[id]
	if !ok || transaction.UserID != userID {
		return domain.ErrTransactionNotFound
	}
	delete(m.Transactions, id)
	return nil
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) {
	m.Transactions[transaction.ID] = transaction
	if transaction.ID >= m.NextID {
		m.NextID = transaction.ID + 1
	}
}

// SetCategoryName registers the category name used for joined reads
func (m *MockTransactionRepository) SetCategoryName(categoryID int32, name string) {
	m.CategoryNames[categoryID] = name
}
