package main

import (
	"context"
	"fmt"
	"time"

	"github.com/anggaranku/anggarandb/internal/config"
	"github.com/anggaranku/anggarandb/internal/database"
	"github.com/anggaranku/anggarandb/internal/domain"
	"github.com/anggaranku/anggarandb/internal/repository/postgres"
	"github.com/anggaranku/anggarandb/internal/service"
	"github.com/anggaranku/anggarandb/internal/util"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// seedCategories are the starter categories every seeded database gets
var seedCategories = []string{
	"Groceries", "Transport", "Dining", "Entertainment",
	"Utilities", "Health", "Education", "Shopping",
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with sample data",
		RunE:  runSeed,
	}

	cmd.Flags().Int("users", 3, "number of sample users to create")
	cmd.Flags().Int("transactions", 25, "number of expense records per user")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	userCount, _ := cmd.Flags().GetInt("users")
	txCount, _ := cmd.Flags().GetInt("transactions")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pool, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return err
	}
	defer pool.Close()

	store := postgres.NewStore(pool)
	userService := service.NewUserService(store.Users)
	categoryService := service.NewCategoryService(store.Categories)
	budgetService := service.NewBudgetService(store.Budgets, store.Categories)

	// Categories are shared across users; create any that are missing
	categories := make([]*domain.Category, 0, len(seedCategories))
	for _, name := range seedCategories {
		category, err := categoryService.GetCategoryByName(ctx, name)
		if err == domain.ErrCategoryNotFound {
			category, err = categoryService.CreateCategory(ctx, name)
		}
		if err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
		categories = append(categories, category)
	}

	today := util.DateOnly(time.Now())
	for i := 0; i < userCount; i++ {
		user, err := userService.CreateUser(ctx,
			gofakeit.Username(),
			gofakeit.Email(),
			gofakeit.Password(true, true, true, false, false, 32),
		)
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		// Budget roughly half of the categories
		for _, category := range categories {
			if gofakeit.Bool() {
				continue
			}
			amount := int64(gofakeit.Number(5, 50)) * 100000
			if _, err := budgetService.CreateBudget(ctx, user.ID, category.ID, amount); err != nil {
				return fmt.Errorf("seed budget: %w", err)
			}
		}

		for j := 0; j < txCount; j++ {
			category := categories[gofakeit.Number(0, len(categories)-1)]
			record := &domain.Transaction{
				UserID:      user.ID,
				CategoryID:  category.ID,
				Amount:      int64(gofakeit.Number(10, 500)) * 1000,
				Description: gofakeit.Sentence(3),
				Date:        today.AddDate(0, 0, -gofakeit.Number(0, 29)),
			}
			if err := recordExpense(ctx, store, record); err != nil {
				return fmt.Errorf("seed transaction: %w", err)
			}
		}

		log.Info().Str("user", user.Username).Str("email", user.Email).Int("transactions", txCount).Msg("Seeded user")
	}

	log.Info().Int("users", userCount).Int("categories", len(categories)).Msg("Seeding complete")
	return nil
}

// recordExpense inserts the expense and counts it against the matching
// budget, if any, in a single database transaction
func recordExpense(ctx context.Context, store *postgres.Store, record *domain.Transaction) error {
	return store.WithinTx(ctx, func(s *postgres.Store) error {
		created, err := s.Transactions.Create(ctx, record)
		if err != nil {
			return err
		}

		budget, err := s.Budgets.GetByUserAndCategory(ctx, created.UserID, created.CategoryID)
		if err == domain.ErrBudgetNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		_, err = s.Budgets.AddSpent(ctx, budget.ID, created.Amount)
		return err
	})
}
