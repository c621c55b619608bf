package services

import (
	"context"
	"testing"
	"time"

	"finance-tracker-server/src/models"
	"finance-tracker-server/src/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransactionRequiresOwnedCategory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bobby")

	aliceCategory := f.category(t, alice.ID, "Food", "EXPENSE")

	// Bob referencing Alice's category must fail, never succeed.
	_, err := f.transactions.Create(ctx, bob.ID, models.CreateTransactionRequest{
		CategoryID: aliceCategory.ID,
		Amount:     10,
		Type:       "EXPENSE",
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateTransactionTypeIsCaseSensitive(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	user := f.user(t, "alice")
	category := f.category(t, user.ID, "Salary", "INCOME")

	// Unlike category creation, the lowercase form is rejected here.
	_, err := f.transactions.Create(ctx, user.ID, models.CreateTransactionRequest{
		CategoryID: category.ID,
		Amount:     100,
		Type:       "income",
	})
	assert.ErrorIs(t, err, ErrValidation)

	created, err := f.transactions.Create(ctx, user.ID, models.CreateTransactionRequest{
		CategoryID: category.ID,
		Amount:     100,
		Type:       "INCOME",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TypeIncome, created.Type)
	assert.Equal(t, "Salary", created.CategoryName)
}

func TestCreateTransactionDefaultsDateToNow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	user := f.user(t, "alice")
	category := f.category(t, user.ID, "Food", "EXPENSE")

	fixed := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	f.transactions.now = func() time.Time { return fixed }

	created, err := f.transactions.Create(ctx, user.ID, models.CreateTransactionRequest{
		CategoryID: category.ID,
		Amount:     10,
		Type:       "EXPENSE",
	})
	require.NoError(t, err)
	assert.Equal(t, fixed, created.Date)

	explicit := fixed.AddDate(0, -1, 0)
	created, err = f.transactions.Create(ctx, user.ID, models.CreateTransactionRequest{
		CategoryID: category.ID,
		Amount:     10,
		Type:       "EXPENSE",
		Date:       &explicit,
	})
	require.NoError(t, err)
	assert.Equal(t, explicit, created.Date)
}

func TestCreateTransactionRejectsNegativeAmount(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	user := f.user(t, "alice")
	category := f.category(t, user.ID, "Food", "EXPENSE")

	_, err := f.transactions.Create(ctx, user.ID, models.CreateTransactionRequest{
		CategoryID: category.ID,
		Amount:     -5,
		Type:       "EXPENSE",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTotalByType(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	user := f.user(t, "alice")
	food := f.category(t, user.ID, "Food", "EXPENSE")
	salary := f.category(t, user.ID, "Salary", "INCOME")

	f.transaction(t, user.ID, food.ID, 120, "EXPENSE", time.Now())
	f.transaction(t, user.ID, food.ID, 30.50, "EXPENSE", time.Now())
	f.transaction(t, user.ID, salary.ID, 5000, "INCOME", time.Now())

	total, err := f.transactions.TotalByType(ctx, user.ID, "expense")
	require.NoError(t, err)
	assert.InDelta(t, 150.50, total, 0.001)

	total, err = f.transactions.TotalByType(ctx, user.ID, "INCOME")
	require.NoError(t, err)
	assert.InDelta(t, 5000, total, 0.001)

	// A user with no matching transactions gets zero, not an error.
	other := f.user(t, "bobby")
	total, err = f.transactions.TotalByType(ctx, other.ID, "EXPENSE")
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestListByDateRangeBoundsAreInclusive(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	user := f.user(t, "alice")
	category := f.category(t, user.ID, "Food", "EXPENSE")

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	f.transaction(t, user.ID, category.ID, 1, "EXPENSE", start)
	f.transaction(t, user.ID, category.ID, 2, "EXPENSE", end)
	f.transaction(t, user.ID, category.ID, 4, "EXPENSE", start.Add(-time.Second))
	f.transaction(t, user.ID, category.ID, 8, "EXPENSE", end.Add(time.Second))

	listed, err := f.transactions.ListByDateRange(ctx, user.ID, start, end)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	_, err = f.transactions.ListByDateRange(ctx, user.ID, end, start)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateTransactionPartialFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	user := f.user(t, "alice")
	food := f.category(t, user.ID, "Food", "EXPENSE")
	rent := f.category(t, user.ID, "Rent", "EXPENSE")

	created, err := f.transactions.Create(ctx, user.ID, models.CreateTransactionRequest{
		CategoryID: food.ID,
		Amount:     100,
		Type:       "EXPENSE",
		Note:       strPtr("weekly shop"),
	})
	require.NoError(t, err)

	updated, err := f.transactions.Update(ctx, user.ID, created.ID, models.UpdateTransactionRequest{
		Amount: f64Ptr(80),
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, updated.Amount)
	require.NotNil(t, updated.Note)
	assert.Equal(t, "weekly shop", *updated.Note)
	assert.Equal(t, food.ID, updated.CategoryID)

	updated, err = f.transactions.Update(ctx, user.ID, created.ID, models.UpdateTransactionRequest{
		CategoryID: i64Ptr(rent.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, rent.ID, updated.CategoryID)
	assert.Equal(t, "Rent", updated.CategoryName)

	_, err = f.transactions.Update(ctx, user.ID, created.ID, models.UpdateTransactionRequest{
		Type: strPtr("expense"),
	})
	assert.ErrorIs(t, err, ErrValidation, "update type parse stays case-sensitive")
}

func TestUpdateTransactionOwnership(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bobby")

	food := f.category(t, alice.ID, "Food", "EXPENSE")
	transaction := f.transaction(t, alice.ID, food.ID, 100, "EXPENSE", time.Now())

	// A foreign transaction is unauthorized, a missing one is not found.
	_, err := f.transactions.Update(ctx, bob.ID, transaction.ID, models.UpdateTransactionRequest{
		Amount: f64Ptr(1),
	})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.transactions.Update(ctx, alice.ID, 9999, models.UpdateTransactionRequest{
		Amount: f64Ptr(1),
	})
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Re-categorizing onto someone else's category is rejected.
	bobCategory := f.category(t, bob.ID, "Rent", "EXPENSE")
	_, err = f.transactions.Update(ctx, alice.ID, transaction.ID, models.UpdateTransactionRequest{
		CategoryID: i64Ptr(bobCategory.ID),
	})
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = f.transactions.Delete(ctx, bob.ID, transaction.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
