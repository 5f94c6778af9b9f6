package report

import (
	"context"
	"fmt"
	"time"

	"github.com/anggaranku/anggarandb/internal/database"
	"github.com/anggaranku/anggarandb/internal/util"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategorySpend is one row of a spending breakdown. Categories with no
// transactions in the window still appear with a zero total.
type CategorySpend struct {
	CategoryID   int32           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Total        int64           `json:"total"`
	Count        int64           `json:"count"`
	Percentage   decimal.Decimal `json:"percentage"`
}

// Summary aggregates a user's spending over a date window
type Summary struct {
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	Total        int64           `json:"total"`
	Count        int64           `json:"count"`
	DailyAverage decimal.Decimal `json:"dailyAverage"`
}

// DaySpend is one point of a day-by-day spending series
type DaySpend struct {
	Date  time.Time `json:"date"`
	Total int64     `json:"total"`
}

// Reporter runs read-only aggregate queries over a user's expenses
type Reporter struct {
	db database.DB
}

// NewReporter creates a new Reporter
func NewReporter(db database.DB) *Reporter {
	return &Reporter{db: db}
}

// Summarize totals a user's spending between start and end inclusive
func (r *Reporter) Summarize(ctx context.Context, userID uuid.UUID, start, end time.Time) (*Summary, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0), COUNT(id)
		FROM transaksi
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`

	var total, count int64
	if err := r.db.QueryRow(ctx, query, userID, start, end).Scan(&total, &count); err != nil {
		return nil, fmt.Errorf("summarize spending: %w", err)
	}

	return &Summary{
		StartDate:    start,
		EndDate:      end,
		Total:        total,
		Count:        count,
		DailyAverage: dailyAverage(total, util.WindowDays(start, end)),
	}, nil
}

// CategoryBreakdown reports per-category spending between start and end
// inclusive. Every category appears, heaviest spending first, ties
// broken by name.
func (r *Reporter) CategoryBreakdown(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*CategorySpend, error) {
	query := `
		SELECT c.id, c.name,
		       COALESCE(SUM(t.amount), 0) AS total,
		       COUNT(t.id) AS count
		FROM categories c
		LEFT JOIN transaksi t
		       ON t.category_id = c.id
		      AND t.user_id = $1
		      AND t.date >= $2
		      AND t.date <= $3
		GROUP BY c.id, c.name
		ORDER BY total DESC, c.name ASC
	`

	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query category breakdown: %w", err)
	}
	defer rows.Close()

	var breakdown []*CategorySpend
	var grandTotal int64
	for rows.Next() {
		var spend CategorySpend
		if err := rows.Scan(&spend.CategoryID, &spend.CategoryName, &spend.Total, &spend.Count); err != nil {
			return nil, fmt.Errorf("scan category breakdown: %w", err)
		}
		grandTotal += spend.Total
		breakdown = append(breakdown, &spend)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category breakdown: %w", err)
	}

	for _, spend := range breakdown {
		spend.Percentage = percentOf(spend.Total, grandTotal)
	}
	return breakdown, nil
}

// percentOf returns part as a percentage of total, rounded to two
// decimal places
func percentOf(part, total int64) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		Round(2)
}

// dailyAverage spreads total over the window's days, rounded to two
// decimal places
func dailyAverage(total int64, days int) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(total).
		Div(decimal.NewFromInt(int64(days))).
		Round(2)
}
