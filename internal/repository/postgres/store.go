package postgres

import (
	"context"
	"fmt"

	"github.com/anggaranku/anggarandb/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store bundles the repositories behind one database handle. The
// application layer composes multi-statement work through WithinTx,
// for example recording a transaction and bumping the matching
// budget's spent total without risking a lost update.
type Store struct {
	pool *pgxpool.Pool

	Users        domain.UserRepository
	Categories   domain.CategoryRepository
	Budgets      domain.BudgetRepository
	Transactions domain.TransactionRepository
}

// NewStore creates a Store with every repository wired to the pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:         pool,
		Users:        NewUserRepository(pool),
		Categories:   NewCategoryRepository(pool),
		Budgets:      NewBudgetRepository(pool),
		Transactions: NewTransactionRepository(pool),
	}
}

// WithinTx runs fn against a Store whose repositories share a single
// database transaction. The transaction commits when fn returns nil
// and rolls back otherwise. A nested call joins the open transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(*Store) error) error {
	if s.pool == nil {
		return fn(s)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txStore := &Store{
		Users:        NewUserRepository(tx),
		Categories:   NewCategoryRepository(tx),
		Budgets:      NewBudgetRepository(tx),
		Transactions: NewTransactionRepository(tx),
	}

	if err := fn(txStore); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
