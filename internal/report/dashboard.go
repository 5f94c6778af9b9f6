package report

import (
	"context"
	"fmt"
	"time"

	"github.com/anggaranku/anggarandb/internal/domain"
	"github.com/anggaranku/anggarandb/internal/util"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Dashboard is the at-a-glance view of a user's recent spending
type Dashboard struct {
	TodayTotal int64                             `json:"todayTotal"`
	MonthTotal int64                             `json:"monthTotal"`
	Largest    *domain.TransactionWithCategory   `json:"largest"`
	Smallest   *domain.TransactionWithCategory   `json:"smallest"`
	WeekSeries []*DaySpend                       `json:"weekSeries"`
	Recent     []*domain.TransactionWithCategory `json:"recent"`
}

const recentTransactionCount = 10

// Dashboard assembles today's total, the month-to-date total, the
// extreme transactions of the month, a seven-day series, and the most
// recent records.
func (r *Reporter) Dashboard(ctx context.Context, userID uuid.UUID, today time.Time) (*Dashboard, error) {
	todayStart, todayEnd := util.DailyWindow(today)
	monthStart, monthEnd := util.MonthlyWindow(today.Year(), today.Month(), today)

	daySummary, err := r.Summarize(ctx, userID, todayStart, todayEnd)
	if err != nil {
		return nil, err
	}

	monthSummary, err := r.Summarize(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	largest, err := r.extremeTransaction(ctx, userID, monthStart, monthEnd, "DESC")
	if err != nil {
		return nil, err
	}

	smallest, err := r.extremeTransaction(ctx, userID, monthStart, monthEnd, "ASC")
	if err != nil {
		return nil, err
	}

	// The chart covers the six days before today plus today itself
	seriesStart := todayEnd.AddDate(0, 0, -6)
	series, err := r.DailySeries(ctx, userID, seriesStart, todayEnd)
	if err != nil {
		return nil, err
	}

	recent, err := r.RecentTransactions(ctx, userID, recentTransactionCount)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TodayTotal: daySummary.Total,
		MonthTotal: monthSummary.Total,
		Largest:    largest,
		Smallest:   smallest,
		WeekSeries: series,
		Recent:     recent,
	}, nil
}

// DailySeries reports spending per day between start and end inclusive,
// emitting a zero entry for days with no transactions
func (r *Reporter) DailySeries(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*DaySpend, error) {
	query := `
		SELECT date, COALESCE(SUM(amount), 0)
		FROM transaksi
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY date
	`

	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query daily series: %w", err)
	}
	defer rows.Close()

	totals := make(map[time.Time]int64)
	for rows.Next() {
		var day time.Time
		var total int64
		if err := rows.Scan(&day, &total); err != nil {
			return nil, fmt.Errorf("scan daily series: %w", err)
		}
		totals[util.DateOnly(day)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily series: %w", err)
	}

	var series []*DaySpend
	for day := util.DateOnly(start); !day.After(util.DateOnly(end)); day = day.AddDate(0, 0, 1) {
		series = append(series, &DaySpend{Date: day, Total: totals[day]})
	}
	return series, nil
}

// RecentTransactions retrieves the user's latest records, newest first
func (r *Reporter) RecentTransactions(ctx context.Context, userID uuid.UUID, limit int32) ([]*domain.TransactionWithCategory, error) {
	if limit <= 0 {
		limit = recentTransactionCount
	}

	query := `
		SELECT t.id, t.user_id, t.category_id, t.amount, t.description, t.date,
		       t.created_at, t.updated_at, c.name
		FROM transaksi t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*domain.TransactionWithCategory
	for rows.Next() {
		tx, err := scanTransactionWithCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recent transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent transactions: %w", err)
	}
	return transactions, nil
}

// extremeTransaction returns the single largest or smallest record in
// the window, or nil when the window is empty
func (r *Reporter) extremeTransaction(ctx context.Context, userID uuid.UUID, start, end time.Time, direction string) (*domain.TransactionWithCategory, error) {
	query := fmt.Sprintf(`
		SELECT t.id, t.user_id, t.category_id, t.amount, t.description, t.date,
		       t.created_at, t.updated_at, c.name
		FROM transaksi t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.date >= $2 AND t.date <= $3
		ORDER BY t.amount %s
		LIMIT 1
	`, direction)

	row := r.db.QueryRow(ctx, query, userID, start, end)
	tx, err := scanTransactionWithCategory(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query extreme transaction: %w", err)
	}
	return tx, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransactionWithCategory(row rowScanner) (*domain.TransactionWithCategory, error) {
	var tx domain.TransactionWithCategory
	err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.CategoryID,
		&tx.Amount,
		&tx.Description,
		&tx.Date,
		&tx.CreatedAt,
		&tx.UpdatedAt,
		&tx.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
