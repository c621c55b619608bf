// Package store defines the persistence interfaces the services program
// against. The Postgres implementations live in src/db/sql; an in-memory
// implementation for tests lives in src/store/memstore.
package store

import (
	"context"
	"errors"
	"time"

	"finance-tracker-server/src/models"
)

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on unique or referential constraint violations.
	ErrConflict = errors.New("conflict")
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	// GetByIDAndUser scopes the lookup to the owning user: a category that
	// exists but belongs to someone else is ErrNotFound.
	GetByIDAndUser(ctx context.Context, id, userID int64) (*models.Category, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Category, error)
	ListByUserAndType(ctx context.Context, userID int64, typ models.TransactionType) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id, userID int64) error
}

type TransactionStore interface {
	Create(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error)
	ListByUserAndType(ctx context.Context, userID int64, typ models.TransactionType) ([]models.Transaction, error)
	// ListByUserAndDateRange treats both bounds as inclusive.
	ListByUserAndDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.Transaction, error)
	SumByUserAndType(ctx context.Context, userID int64, typ models.TransactionType) (float64, error)
	SumByTypeAndMonth(ctx context.Context, userID int64, typ models.TransactionType, month models.Month) (float64, error)
	SumByCategoryAndMonth(ctx context.Context, userID, categoryID int64, typ models.TransactionType, month models.Month) (float64, error)
	// ExpenseTotalsByCategory groups the user's expense transactions by
	// category name; categories with no expenses are absent from the map.
	ExpenseTotalsByCategory(ctx context.Context, userID int64) (map[string]float64, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
	Update(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

type BudgetStore interface {
	Create(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	GetByID(ctx context.Context, id int64) (*models.Budget, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Budget, error)
	ListByUserAndMonth(ctx context.Context, userID int64, month models.Month) ([]models.Budget, error)
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
	Update(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	Delete(ctx context.Context, id int64) error
}
