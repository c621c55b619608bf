// Package memstore is an in-memory implementation of the store interfaces,
// mirroring the Postgres queries closely enough for service and handler
// tests to run without a database.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"finance-tracker-server/src/models"
	"finance-tracker-server/src/store"
)

type Store struct {
	mu           sync.RWMutex
	seq          int64
	users        map[int64]models.User
	categories   map[int64]models.Category
	transactions map[int64]models.Transaction
	budgets      map[int64]models.Budget
}

func New() *Store {
	return &Store{
		users:        make(map[int64]models.User),
		categories:   make(map[int64]models.Category),
		transactions: make(map[int64]models.Transaction),
		budgets:      make(map[int64]models.Budget),
	}
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func (s *Store) Users() store.UserStore               { return &userStore{s} }
func (s *Store) Categories() store.CategoryStore      { return &categoryStore{s} }
func (s *Store) Transactions() store.TransactionStore { return &transactionStore{s} }
func (s *Store) Budgets() store.BudgetStore           { return &budgetStore{s} }

// ---- users ----

type userStore struct{ s *Store }

func (u *userStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, existing := range u.s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, store.ErrConflict
		}
	}
	created := *user
	created.ID = u.s.nextID()
	created.CreatedAt = time.Now()
	u.s.users[created.ID] = created
	return &created, nil
}

func (u *userStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	if user, ok := u.s.users[id]; ok {
		return &user, nil
	}
	return nil, store.ErrNotFound
}

func (u *userStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return u.find(func(user models.User) bool { return user.Username == username })
}

func (u *userStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return u.find(func(user models.User) bool { return user.Email == email })
}

func (u *userStore) find(match func(models.User) bool) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, user := range u.s.users {
		if match(user) {
			found := user
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

// ---- categories ----

type categoryStore struct{ s *Store }

func (c *categoryStore) Create(_ context.Context, category *models.Category) (*models.Category, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	created := *category
	created.ID = c.s.nextID()
	created.CreatedAt = time.Now()
	c.s.categories[created.ID] = created
	return &created, nil
}

func (c *categoryStore) GetByIDAndUser(_ context.Context, id, userID int64) (*models.Category, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	category, ok := c.s.categories[id]
	if !ok || category.UserID != userID {
		return nil, store.ErrNotFound
	}
	return &category, nil
}

func (c *categoryStore) ListByUser(_ context.Context, userID int64) ([]models.Category, error) {
	return c.list(func(cat models.Category) bool { return cat.UserID == userID })
}

func (c *categoryStore) ListByUserAndType(_ context.Context, userID int64, typ models.TransactionType) ([]models.Category, error) {
	return c.list(func(cat models.Category) bool { return cat.UserID == userID && cat.Type == typ })
}

func (c *categoryStore) list(match func(models.Category) bool) ([]models.Category, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	var categories []models.Category
	for _, category := range c.s.categories {
		if match(category) {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (c *categoryStore) Update(_ context.Context, category *models.Category) (*models.Category, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	existing, ok := c.s.categories[category.ID]
	if !ok || existing.UserID != category.UserID {
		return nil, store.ErrNotFound
	}
	updated := *category
	updated.CreatedAt = existing.CreatedAt
	c.s.categories[updated.ID] = updated
	return &updated, nil
}

func (c *categoryStore) Delete(_ context.Context, id, userID int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	category, ok := c.s.categories[id]
	if !ok || category.UserID != userID {
		return store.ErrNotFound
	}
	// Emulate the ON DELETE RESTRICT foreign keys.
	for _, t := range c.s.transactions {
		if t.CategoryID == id {
			return store.ErrConflict
		}
	}
	for _, b := range c.s.budgets {
		if b.CategoryID == id {
			return store.ErrConflict
		}
	}
	delete(c.s.categories, id)
	return nil
}

// ---- transactions ----

type transactionStore struct{ s *Store }

func (t *transactionStore) Create(_ context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.categories[transaction.CategoryID]; !ok {
		return nil, store.ErrConflict
	}
	created := *transaction
	created.ID = t.s.nextID()
	created.CreatedAt = time.Now()
	t.s.transactions[created.ID] = created
	return &created, nil
}

func (t *transactionStore) GetByID(_ context.Context, id int64) (*models.Transaction, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	transaction, ok := t.s.transactions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	t.withCategoryName(&transaction)
	return &transaction, nil
}

func (t *transactionStore) ListByUser(_ context.Context, userID int64) ([]models.Transaction, error) {
	return t.list(func(tr models.Transaction) bool { return tr.UserID == userID })
}

func (t *transactionStore) ListByUserAndType(_ context.Context, userID int64, typ models.TransactionType) ([]models.Transaction, error) {
	return t.list(func(tr models.Transaction) bool { return tr.UserID == userID && tr.Type == typ })
}

func (t *transactionStore) ListByUserAndDateRange(_ context.Context, userID int64, start, end time.Time) ([]models.Transaction, error) {
	return t.list(func(tr models.Transaction) bool {
		return tr.UserID == userID && !tr.Date.Before(start) && !tr.Date.After(end)
	})
}

func (t *transactionStore) SumByUserAndType(_ context.Context, userID int64, typ models.TransactionType) (float64, error) {
	return t.sum(func(tr models.Transaction) bool { return tr.UserID == userID && tr.Type == typ })
}

func (t *transactionStore) SumByTypeAndMonth(_ context.Context, userID int64, typ models.TransactionType, month models.Month) (float64, error) {
	return t.sum(func(tr models.Transaction) bool {
		return tr.UserID == userID && tr.Type == typ && month.Contains(tr.Date)
	})
}

func (t *transactionStore) SumByCategoryAndMonth(_ context.Context, userID, categoryID int64, typ models.TransactionType, month models.Month) (float64, error) {
	return t.sum(func(tr models.Transaction) bool {
		return tr.UserID == userID && tr.CategoryID == categoryID &&
			tr.Type == typ && month.Contains(tr.Date)
	})
}

func (t *transactionStore) ExpenseTotalsByCategory(_ context.Context, userID int64) (map[string]float64, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	totals := make(map[string]float64)
	for _, tr := range t.s.transactions {
		if tr.UserID != userID || tr.Type != models.TypeExpense {
			continue
		}
		totals[t.s.categories[tr.CategoryID].Name] += tr.Amount
	}
	return totals, nil
}

func (t *transactionStore) CountByUser(_ context.Context, userID int64) (int, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	count := 0
	for _, tr := range t.s.transactions {
		if tr.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (t *transactionStore) CountByCategory(_ context.Context, categoryID int64) (int, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	count := 0
	for _, tr := range t.s.transactions {
		if tr.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (t *transactionStore) Update(_ context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	existing, ok := t.s.transactions[transaction.ID]
	if !ok {
		return nil, store.ErrNotFound
	}
	updated := *transaction
	updated.CreatedAt = existing.CreatedAt
	t.s.transactions[updated.ID] = updated
	t.withCategoryName(&updated)
	return &updated, nil
}

func (t *transactionStore) Delete(_ context.Context, id int64) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.transactions[id]; !ok {
		return store.ErrNotFound
	}
	delete(t.s.transactions, id)
	return nil
}

func (t *transactionStore) withCategoryName(tr *models.Transaction) {
	tr.CategoryName = t.s.categories[tr.CategoryID].Name
}

func (t *transactionStore) list(match func(models.Transaction) bool) ([]models.Transaction, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	var transactions []models.Transaction
	for _, tr := range t.s.transactions {
		if match(tr) {
			t.withCategoryName(&tr)
			transactions = append(transactions, tr)
		}
	}
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions, nil
}

func (t *transactionStore) sum(match func(models.Transaction) bool) (float64, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	total := 0.0
	for _, tr := range t.s.transactions {
		if match(tr) {
			total += tr.Amount
		}
	}
	return total, nil
}

// ---- budgets ----

type budgetStore struct{ s *Store }

func (b *budgetStore) Create(_ context.Context, budget *models.Budget) (*models.Budget, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	if _, ok := b.s.categories[budget.CategoryID]; !ok {
		return nil, store.ErrConflict
	}
	created := *budget
	created.ID = b.s.nextID()
	created.CreatedAt = time.Now()
	b.s.budgets[created.ID] = created
	return &created, nil
}

func (b *budgetStore) GetByID(_ context.Context, id int64) (*models.Budget, error) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()
	budget, ok := b.s.budgets[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	b.withCategoryName(&budget)
	return &budget, nil
}

func (b *budgetStore) ListByUser(_ context.Context, userID int64) ([]models.Budget, error) {
	return b.list(func(bd models.Budget) bool { return bd.UserID == userID })
}

func (b *budgetStore) ListByUserAndMonth(_ context.Context, userID int64, month models.Month) ([]models.Budget, error) {
	return b.list(func(bd models.Budget) bool { return bd.UserID == userID && bd.Month == month })
}

func (b *budgetStore) CountByCategory(_ context.Context, categoryID int64) (int, error) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()
	count := 0
	for _, bd := range b.s.budgets {
		if bd.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (b *budgetStore) Update(_ context.Context, budget *models.Budget) (*models.Budget, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	existing, ok := b.s.budgets[budget.ID]
	if !ok {
		return nil, store.ErrNotFound
	}
	updated := *budget
	updated.CreatedAt = existing.CreatedAt
	b.s.budgets[updated.ID] = updated
	b.withCategoryName(&updated)
	return &updated, nil
}

func (b *budgetStore) Delete(_ context.Context, id int64) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	if _, ok := b.s.budgets[id]; !ok {
		return store.ErrNotFound
	}
	delete(b.s.budgets, id)
	return nil
}

func (b *budgetStore) withCategoryName(bd *models.Budget) {
	bd.CategoryName = b.s.categories[bd.CategoryID].Name
}

func (b *budgetStore) list(match func(models.Budget) bool) ([]models.Budget, error) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()
	var budgets []models.Budget
	for _, bd := range b.s.budgets {
		if match(bd) {
			b.withCategoryName(&bd)
			budgets = append(budgets, bd)
		}
	}
	sort.Slice(budgets, func(i, j int) bool { return budgets[i].ID < budgets[j].ID })
	return budgets, nil
}
