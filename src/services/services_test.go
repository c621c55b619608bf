package services

import (
	"context"
	"testing"
	"time"

	"finance-tracker-server/src/models"
	"finance-tracker-server/src/store/memstore"

	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret"
	testPassword = "Str0ng!pass"
)

// fixture wires every service over a shared in-memory store.
type fixture struct {
	store        *memstore.Store
	auth         *AuthService
	categories   *CategoryService
	transactions *TransactionService
	budgets      *BudgetService
	dashboard    *DashboardService
}

func newFixture() *fixture {
	s := memstore.New()
	return &fixture{
		store:        s,
		auth:         NewAuthService(s.Users(), testSecret, 24*time.Hour),
		categories:   NewCategoryService(s.Categories(), s.Transactions(), s.Budgets()),
		transactions: NewTransactionService(s.Transactions(), s.Categories()),
		budgets:      NewBudgetService(s.Budgets(), s.Categories(), s.Transactions()),
		dashboard:    NewDashboardService(s.Transactions()),
	}
}

func (f *fixture) user(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := f.auth.Register(context.Background(), username, username+"@example.com", testPassword)
	require.NoError(t, err)
	return user
}

func (f *fixture) category(t *testing.T, userID int64, name, typ string) *models.Category {
	t.Helper()
	category, err := f.categories.Create(context.Background(), userID, models.CreateCategoryRequest{
		Name: name,
		Type: typ,
	})
	require.NoError(t, err)
	return category
}

func (f *fixture) transaction(t *testing.T, userID, categoryID int64, amount float64, typ string, date time.Time) *models.Transaction {
	t.Helper()
	transaction, err := f.transactions.Create(context.Background(), userID, models.CreateTransactionRequest{
		CategoryID: categoryID,
		Amount:     amount,
		Type:       typ,
		Date:       &date,
	})
	require.NoError(t, err)
	return transaction
}

func strPtr(s string) *string    { return &s }
func f64Ptr(f float64) *float64  { return &f }
func i64Ptr(i int64) *int64      { return &i }
func monthPtr(m models.Month) *models.Month { return &m }
