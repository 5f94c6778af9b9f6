package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anggaranku/anggarandb/internal/config"
	"github.com/anggaranku/anggarandb/internal/database"
	"github.com/anggaranku/anggarandb/internal/report"
	"github.com/anggaranku/anggarandb/internal/util"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run read-only spending reports",
	}

	cmd.PersistentFlags().String("user", "", "user ID to report on (required)")
	cmd.PersistentFlags().String("period", "monthly", "reporting window (daily, weekly, monthly)")
	cmd.PersistentFlags().Int("year", 0, "report year (defaults to the current year)")
	cmd.PersistentFlags().Int("month", 0, "report month 1-12 (defaults to the current month)")

	cmd.AddCommand(&cobra.Command{
		Use:   "breakdown",
		Short: "Spending per category, heaviest first",
		RunE:  runBreakdown,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Total, count, and daily average for the window",
		RunE:  runSummary,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "dashboard",
		Short: "Today's and this month's spending at a glance",
		RunE:  runDashboard,
	})

	return cmd
}

func runBreakdown(cmd *cobra.Command, _ []string) error {
	userID, err := userFlag(cmd)
	if err != nil {
		return err
	}
	start, end, err := windowFlags(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	breakdown, err := report.NewReporter(pool).CategoryBreakdown(ctx, userID, start, end)
	if err != nil {
		return err
	}
	return printJSON(cmd, breakdown)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	userID, err := userFlag(cmd)
	if err != nil {
		return err
	}
	start, end, err := windowFlags(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	summary, err := report.NewReporter(pool).Summarize(ctx, userID, start, end)
	if err != nil {
		return err
	}
	return printJSON(cmd, summary)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	userID, err := userFlag(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	dashboard, err := report.NewReporter(pool).Dashboard(ctx, userID, time.Now())
	if err != nil {
		return err
	}
	return printJSON(cmd, dashboard)
}

func userFlag(cmd *cobra.Command) (uuid.UUID, error) {
	raw, _ := cmd.Flags().GetString("user")
	if raw == "" {
		return uuid.Nil, fmt.Errorf("--user is required")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --user: %w", err)
	}
	return userID, nil
}

// windowFlags resolves --period, --year, and --month into a date window
func windowFlags(cmd *cobra.Command) (time.Time, time.Time, error) {
	period, _ := cmd.Flags().GetString("period")
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")

	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --month %d", month)
	}

	switch strings.ToLower(period) {
	case "daily":
		start, end := util.DailyWindow(now)
		return start, end, nil
	case "weekly":
		start, end := util.WeeklyWindow(now)
		return start, end, nil
	case "monthly":
		start, end := util.MonthlyWindow(year, time.Month(month), now)
		return start, end, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("invalid --period %q", period)
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return database.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
