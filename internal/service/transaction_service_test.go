package service

import (
	"context"
	"testing"
	"time"

	"github.com/anggaranku/anggarandb/internal/domain"
	"github.com/anggaranku/anggarandb/internal/testutil"
	"github.com/google/uuid"
)

func newTransactionServiceWithCategory(t *testing.T, name string) (*TransactionService, *testutil.MockTransactionRepository, int32) {
	t.Helper()

	categoryRepo := testutil.NewMockCategoryRepository()
	transactionRepo := testutil.NewMockTransactionRepository()

	category, err := categoryRepo.Create(context.Background(), name)
	if err != nil {
		t.Fatalf("Expected no error creating category, got %v", err)
	}
	transactionRepo.SetCategoryName(category.ID, category.Name)

	return NewTransactionService(transactionRepo, categoryRepo), transactionRepo, category.ID
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateTransaction_Success(t *testing.T) {
	transactionService, _, categoryID := newTransactionServiceWithCategory(t, "Groceries")
	userID := uuid.New()

	transaction, err := transactionService.CreateTransaction(context.Background(), userID, categoryID, 85000, "Weekly shop", date(2024, time.March, 5))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if transaction.Amount != 85000 {
		t.Errorf("Expected amount 85000, got %d", transaction.Amount)
	}

	if transaction.Description != "Weekly shop" {
		t.Errorf("Expected description 'Weekly shop', got %s", transaction.Description)
	}

	if transaction.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, transaction.UserID)
	}

	if transaction.ID == 0 {
		t.Error("Expected transaction to be assigned an ID")
	}
}

func TestCreateTransaction_NonPositiveAmount(t *testing.T) {
	transactionService, _, categoryID := newTransactionServiceWithCategory(t, "Groceries")

	for _, amount := range []int64{0, -10000} {
		_, err := transactionService.CreateTransaction(context.Background(), uuid.New(), categoryID, amount, "Weekly shop", date(2024, time.March, 5))
		if err != domain.ErrAmountNotPositive {
			t.Errorf("Expected ErrAmountNotPositive for amount %d, got %v", amount, err)
		}
	}
}

func TestCreateTransaction_EmptyDescription(t *testing.T) {
	transactionService, _, categoryID := newTransactionServiceWithCategory(t, "Groceries")

	_, err := transactionService.CreateTransaction(context.Background(), uuid.New(), categoryID, 85000, "   ", date(2024, time.March, 5))
	if err != domain.ErrDescriptionRequired {
		t.Errorf("Expected ErrDescriptionRequired, got %v", err)
	}
}

func TestCreateTransaction_ZeroDate(t *testing.T) {
	transactionService, _, categoryID := newTransactionServiceWithCategory(t, "Groceries")

	_, err := transactionService.CreateTransaction(context.Background(), uuid.New(), categoryID, 85000, "Weekly shop", time.Time{})
	if err != domain.ErrDateRequired {
		t.Errorf("Expected ErrDateRequired, got %v", err)
	}
}

func TestCreateTransaction_CategoryMissing(t *testing.T) {
	transactionService, _, _ := newTransactionServiceWithCategory(t, "Groceries")

	_, err := transactionService.CreateTransaction(context.Background(), uuid.New(), 999, 85000, "Weekly shop", date(2024, time.March, 5))
	if err != domain.ErrCategoryNotFound {
		t.Errorf("Expected ErrCategoryNotFound, got %v", err)
	}
}

func TestGetTransactions_NewestFirst(t *testing.T) {
	transactionService, _, categoryID := newTransactionServiceWithCategory(t, "Groceries")
	userID := uuid.New()

	dates := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.February, 1),
		date(2024, time.January, 15),
	}
	for i, d := range dates {
		_, err := transactionService.CreateTransaction(context.Background(), userID, categoryID, int64(10000*(i+1)), "Weekly shop", d)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	transactions, err := transactionService.GetTransactions(context.Background(), userID, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(transactions) != 3 {
		t.Fatalf("Expected 3 transactions, got %d", len(transactions))
	}

	want := []time.Time{
		date(2024, time.February, 1),
		date(2024, time.January, 15),
		date(2024, time.January, 1),
	}
	for i, tx := range transactions {
		if !tx.Date.Equal(want[i]) {
			t.Errorf("Expected transaction %d on %s, got %s", i, want[i].Format("2006-01-02"), tx.Date.Format("2006-01-02"))
		}
	}
}

func TestGetTransactions_DateRangeFilter(t *testing.T) {
	transactionService, _, categoryID := newTransactionServiceWithCategory(t, "Groceries")
	userID := uuid.New()

	for _, d := range []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 15),
		date(2024, time.February, 1),
	} {
		if _, err := transactionService.CreateTransaction(context.Background(), userID, categoryID, 10000, "Weekly shop", d); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	start := date(2024, time.January, 10)
	end := date(2024, time.January, 31)
	transactions, err := transactionService.GetTransactions(context.Background(), userID, &domain.TransactionFilters{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(transactions) != 1 {
		t.Fatalf("Expected 1 transaction in range, got %d", len(transactions))
	}

	if !transactions[0].Date.Equal(date(2024, time.January, 15)) {
		t.Errorf("Expected transaction on 2024-01-15, got %s", transactions[0].Date.Format("2006-01-02"))
	}
}

func TestGetTransactions_LimitAndOffset(t *testing.T) {
	transactionService, _, categoryID := newTransactionServiceWithCategory(t, "Groceries")
	userID := uuid.New()

	for day := 1; day <= 5; day++ {
		if _, err := transactionService.CreateTransaction(context.Background(), userID, categoryID, 10000, "Weekly shop", date(2024, time.March, day)); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	transactions, err := transactionService.GetTransactions(context.Background(), userID, &domain.TransactionFilters{
		Limit:  2,
		Offset: 2,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(transactions) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(transactions))
	}

	if !transactions[0].Date.Equal(date(2024, time.March, 3)) {
		t.Errorf("Expected first transaction on 2024-03-03, got %s", transactions[0].Date.Format("2006-01-02"))
	}
}

func TestUpdateTransaction_EmptyUpdate(t *testing.T) {
	transactionService, _, _ := newTransactionServiceWithCategory(t, "Groceries")

	_, err := transactionService.UpdateTransaction(context.Background(), uuid.New(), 1, &domain.TransactionUpdate{})
	if err != domain.ErrInvalidInput {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateTransaction_MoveToMissingCategory(t *testing.T) {
	transactionService, _, categoryID := newTransactionServiceWithCategory(t, "Groceries")
	userID := uuid.New()

	created, err := transactionService.CreateTransaction(context.Background(), userID, categoryID, 85000, "Weekly shop", date(2024, time.March, 5))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	missing := int32(999)
	_, err = transactionService.UpdateTransaction(context.Background(), userID, created.ID, &domain.TransactionUpdate{CategoryID: &missing})
	if err != domain.ErrCategoryNotFound {
		t.Errorf("Expected ErrCategoryNotFound, got %v", err)
	}
}

func TestUpdateTransaction_PartialUpdate(t *testing.T) {
	transactionService, _, categoryID := newTransactionServiceWithCategory(t, "Groceries")
	userID := uuid.New()

	created, err := transactionService.CreateTransaction(context.Background(), userID, categoryID, 85000, "Weekly shop", date(2024, time.March, 5))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	amount := int64(92000)
	updated, err := transactionService.UpdateTransaction(context.Background(), userID, created.ID, &domain.TransactionUpdate{Amount: &amount})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Amount != 92000 {
		t.Errorf("Expected amount 92000, got %d", updated.Amount)
	}

	if updated.Description != "Weekly shop" {
		t.Errorf("Expected description untouched, got %s", updated.Description)
	}
}

func TestDeleteTransaction_ScopedToUser(t *testing.T) {
	transactionService, transactionRepo, categoryID := newTransactionServiceWithCategory(t, "Groceries")
	owner := uuid.New()

	created, err := transactionService.CreateTransaction(context.Background(), owner, categoryID, 85000, "Weekly shop", date(2024, time.March, 5))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := transactionService.DeleteTransaction(context.Background(), uuid.New(), created.ID); err != domain.ErrTransactionNotFound {
		t.Errorf("Expected ErrTransactionNotFound for other user, got %v", err)
	}

	if err := transactionService.DeleteTransaction(context.Background(), owner, created.ID); err != nil {
		t.Errorf("Expected no error for owner, got %v", err)
	}

	if len(transactionRepo.Transactions) != 0 {
		t.Errorf("Expected no transactions left, got %d", len(transactionRepo.Transactions))
	}
}
