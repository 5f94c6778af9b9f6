package report

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/anggaranku/anggarandb/internal/database"
	"github.com/anggaranku/anggarandb/internal/domain"
	"github.com/anggaranku/anggarandb/internal/repository/postgres"
	"github.com/google/uuid"
)

// newTestReporter connects to the database named by TEST_DATABASE_URL,
// applies migrations, and truncates every table so each test starts
// clean. Tests are skipped when the variable is unset.
func newTestReporter(t *testing.T) (*Reporter, *postgres.Store) {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration tests")
	}

	ctx := context.Background()
	if err := database.Migrate(url); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	pool, err := database.Connect(ctx, url, 4)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE transaksi, budgets, categories, users RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}

	return NewReporter(pool), postgres.NewStore(pool)
}

func seedUser(t *testing.T, store *postgres.Store) *domain.User {
	t.Helper()
	user, err := store.Users.Create(context.Background(), &domain.User{
		Username:     "budi",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, store *postgres.Store, name string) *domain.Category {
	t.Helper()
	category, err := store.Categories.Create(context.Background(), name)
	if err != nil {
		t.Fatalf("create category %q: %v", name, err)
	}
	return category
}

func seedTransaction(t *testing.T, store *postgres.Store, userID uuid.UUID, categoryID int32, amount int64, day time.Time) *domain.Transaction {
	t.Helper()
	tx, err := store.Transactions.Create(context.Background(), &domain.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: "seeded",
		Date:        day,
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	return tx
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCategoryBreakdown(t *testing.T) {
	reporter, store := newTestReporter(t)
	ctx := context.Background()

	user := seedUser(t, store)
	groceries := seedCategory(t, store, "Groceries")
	transport := seedCategory(t, store, "Transport")
	seedCategory(t, store, "Entertainment")
	seedCategory(t, store, "Books")

	seedTransaction(t, store, user.ID, groceries.ID, 50000, day(2024, time.March, 2))
	seedTransaction(t, store, user.ID, groceries.ID, 30000, day(2024, time.March, 5))
	seedTransaction(t, store, user.ID, transport.ID, 20000, day(2024, time.March, 8))

	breakdown, err := reporter.CategoryBreakdown(ctx, user.ID, day(2024, time.March, 1), day(2024, time.March, 31))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(breakdown) != 4 {
		t.Fatalf("Expected 4 rows including zero-spend categories, got %d", len(breakdown))
	}

	if breakdown[0].CategoryName != "Groceries" || breakdown[0].Total != 80000 {
		t.Errorf("Expected Groceries with 80000 first, got %s with %d", breakdown[0].CategoryName, breakdown[0].Total)
	}
	if breakdown[0].Count != 2 {
		t.Errorf("Expected Groceries count 2, got %d", breakdown[0].Count)
	}
	if breakdown[0].Percentage.StringFixed(2) != "80.00" {
		t.Errorf("Expected Groceries at 80.00%%, got %s", breakdown[0].Percentage.StringFixed(2))
	}

	if breakdown[1].CategoryName != "Transport" || breakdown[1].Percentage.StringFixed(2) != "20.00" {
		t.Errorf("Expected Transport at 20.00%%, got %s at %s", breakdown[1].CategoryName, breakdown[1].Percentage.StringFixed(2))
	}

	// Zero-spend categories follow, ordered by name
	if breakdown[2].CategoryName != "Books" || breakdown[3].CategoryName != "Entertainment" {
		t.Errorf("Expected zero-spend rows [Books Entertainment], got [%s %s]", breakdown[2].CategoryName, breakdown[3].CategoryName)
	}
	if breakdown[2].Total != 0 || breakdown[2].Count != 0 {
		t.Errorf("Expected zero totals for Books, got total %d count %d", breakdown[2].Total, breakdown[2].Count)
	}
}

func TestCategoryBreakdown_ScopedToUser(t *testing.T) {
	reporter, store := newTestReporter(t)
	ctx := context.Background()

	user := seedUser(t, store)
	other := seedUser(t, store)
	groceries := seedCategory(t, store, "Groceries")

	seedTransaction(t, store, user.ID, groceries.ID, 50000, day(2024, time.March, 2))
	seedTransaction(t, store, other.ID, groceries.ID, 99000, day(2024, time.March, 2))

	breakdown, err := reporter.CategoryBreakdown(ctx, user.ID, day(2024, time.March, 1), day(2024, time.March, 31))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if breakdown[0].Total != 50000 {
		t.Errorf("Expected only the user's own 50000, got %d", breakdown[0].Total)
	}
}

func TestSummarize(t *testing.T) {
	reporter, store := newTestReporter(t)
	ctx := context.Background()

	user := seedUser(t, store)
	groceries := seedCategory(t, store, "Groceries")

	seedTransaction(t, store, user.ID, groceries.ID, 60000, day(2024, time.March, 1))
	seedTransaction(t, store, user.ID, groceries.ID, 40000, day(2024, time.March, 10))
	// Outside the window
	seedTransaction(t, store, user.ID, groceries.ID, 99000, day(2024, time.April, 1))

	summary, err := reporter.Summarize(ctx, user.ID, day(2024, time.March, 1), day(2024, time.March, 10))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if summary.Total != 100000 {
		t.Errorf("Expected total 100000, got %d", summary.Total)
	}
	if summary.Count != 2 {
		t.Errorf("Expected count 2, got %d", summary.Count)
	}
	if summary.DailyAverage.StringFixed(2) != "10000.00" {
		t.Errorf("Expected daily average 10000.00, got %s", summary.DailyAverage.StringFixed(2))
	}
}

func TestDailySeries_FillsMissingDays(t *testing.T) {
	reporter, store := newTestReporter(t)
	ctx := context.Background()

	user := seedUser(t, store)
	groceries := seedCategory(t, store, "Groceries")

	seedTransaction(t, store, user.ID, groceries.ID, 10000, day(2024, time.March, 1))
	seedTransaction(t, store, user.ID, groceries.ID, 30000, day(2024, time.March, 3))

	series, err := reporter.DailySeries(ctx, user.ID, day(2024, time.March, 1), day(2024, time.March, 3))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(series) != 3 {
		t.Fatalf("Expected 3 days, got %d", len(series))
	}

	want := []int64{10000, 0, 30000}
	for i, point := range series {
		if point.Total != want[i] {
			t.Errorf("Expected day %d total %d, got %d", i, want[i], point.Total)
		}
	}
}

func TestDashboard(t *testing.T) {
	reporter, store := newTestReporter(t)
	ctx := context.Background()

	user := seedUser(t, store)
	groceries := seedCategory(t, store, "Groceries")
	transport := seedCategory(t, store, "Transport")

	today := day(2024, time.March, 15)
	seedTransaction(t, store, user.ID, groceries.ID, 25000, today)
	seedTransaction(t, store, user.ID, transport.ID, 80000, day(2024, time.March, 10))
	seedTransaction(t, store, user.ID, groceries.ID, 10000, day(2024, time.March, 1))
	// Previous month stays out of the monthly numbers
	seedTransaction(t, store, user.ID, groceries.ID, 99000, day(2024, time.February, 15))

	dashboard, err := reporter.Dashboard(ctx, user.ID, today)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if dashboard.TodayTotal != 25000 {
		t.Errorf("Expected today total 25000, got %d", dashboard.TodayTotal)
	}
	if dashboard.MonthTotal != 115000 {
		t.Errorf("Expected month total 115000, got %d", dashboard.MonthTotal)
	}

	if dashboard.Largest == nil || dashboard.Largest.Amount != 80000 {
		t.Errorf("Expected largest 80000, got %+v", dashboard.Largest)
	}
	if dashboard.Smallest == nil || dashboard.Smallest.Amount != 10000 {
		t.Errorf("Expected smallest 10000, got %+v", dashboard.Smallest)
	}

	if len(dashboard.WeekSeries) != 7 {
		t.Fatalf("Expected 7 series points, got %d", len(dashboard.WeekSeries))
	}
	if !dashboard.WeekSeries[0].Date.Equal(day(2024, time.March, 9)) {
		t.Errorf("Expected series to start 2024-03-09, got %s", dashboard.WeekSeries[0].Date.Format("2006-01-02"))
	}
	if dashboard.WeekSeries[1].Total != 80000 {
		t.Errorf("Expected 80000 on 2024-03-10, got %d", dashboard.WeekSeries[1].Total)
	}
	if dashboard.WeekSeries[6].Total != 25000 {
		t.Errorf("Expected 25000 today, got %d", dashboard.WeekSeries[6].Total)
	}

	if len(dashboard.Recent) != 4 {
		t.Fatalf("Expected 4 recent transactions, got %d", len(dashboard.Recent))
	}
	if !dashboard.Recent[0].Date.Equal(today) {
		t.Errorf("Expected newest transaction first, got %s", dashboard.Recent[0].Date.Format("2006-01-02"))
	}
	if dashboard.Recent[0].CategoryName != "Groceries" {
		t.Errorf("Expected category name joined, got %q", dashboard.Recent[0].CategoryName)
	}
}

func TestDashboard_EmptyUser(t *testing.T) {
	reporter, store := newTestReporter(t)
	ctx := context.Background()

	user := seedUser(t, store)

	dashboard, err := reporter.Dashboard(ctx, user.ID, day(2024, time.March, 15))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if dashboard.TodayTotal != 0 || dashboard.MonthTotal != 0 {
		t.Errorf("Expected zero totals, got today %d month %d", dashboard.TodayTotal, dashboard.MonthTotal)
	}
	if dashboard.Largest != nil || dashboard.Smallest != nil {
		t.Errorf("Expected nil extremes, got %+v and %+v", dashboard.Largest, dashboard.Smallest)
	}
	if len(dashboard.WeekSeries) != 7 {
		t.Errorf("Expected 7 zero series points, got %d", len(dashboard.WeekSeries))
	}
	if len(dashboard.Recent) != 0 {
		t.Errorf("Expected no recent transactions, got %d", len(dashboard.Recent))
	}
}
