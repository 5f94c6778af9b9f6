package postgres

import (
	"errors"

	"github.com/anggaranku/anggarandb/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the schema can raise.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// mapConstraintError translates constraint violations reported by the
// storage engine into domain errors, keyed by the constraint names the
// migrations declare. Anything unrecognized passes through untouched.
func mapConstraintError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case "categories_name_key":
			return domain.ErrCategoryNameTaken
		case "budgets_user_id_category_id_key":
			return domain.ErrBudgetExists
		case "users_email_key":
			return domain.ErrEmailTaken
		}
	case pgForeignKeyViolation:
		switch pgErr.ConstraintName {
		case "budgets_user_id_fkey", "transaksi_user_id_fkey":
			return domain.ErrUserNotFound
		case "budgets_category_id_fkey", "transaksi_category_id_fkey":
			return domain.ErrCategoryNotFound
		}
	case pgCheckViolation:
		switch pgErr.ConstraintName {
		case "budgets_amount_positive", "transaksi_amount_positive":
			return domain.ErrAmountNotPositive
		case "budgets_spent_nonnegative":
			return domain.ErrSpentNegative
		}
	}

	return err
}
