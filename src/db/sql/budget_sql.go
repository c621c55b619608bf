package db

import (
	"context"

	"finance-tracker-server/src/models"
	"finance-tracker-server/src/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BudgetStore struct {
	pool *pgxpool.Pool
}

func NewBudgetStore(pool *pgxpool.Pool) *BudgetStore {
	return &BudgetStore{pool: pool}
}

const selectBudget = `
	SELECT b.id, b.user_id, b.category_id, c.name, b.amount, b.month, b.created_at
	FROM budgets b
	JOIN categories c ON c.id = b.category_id
`

func (s *BudgetStore) Create(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (user_id, category_id, amount, month)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	created := *budget
	err := s.pool.QueryRow(ctx, query,
		budget.UserID, budget.CategoryID, budget.Amount, budget.Month.String()).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &created, nil
}

func (s *BudgetStore) GetByID(ctx context.Context, id int64) (*models.Budget, error) {
	query := selectBudget + `WHERE b.id = $1`
	return s.scanRow(s.pool.QueryRow(ctx, query, id))
}

func (s *BudgetStore) ListByUser(ctx context.Context, userID int64) ([]models.Budget, error) {
	query := selectBudget + `WHERE b.user_id = $1 ORDER BY b.month DESC, b.id`
	return s.list(ctx, query, userID)
}

func (s *BudgetStore) ListByUserAndMonth(ctx context.Context, userID int64, month models.Month) ([]models.Budget, error) {
	query := selectBudget + `WHERE b.user_id = $1 AND b.month = $2 ORDER BY b.id`
	return s.list(ctx, query, userID, month.String())
}

func (s *BudgetStore) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM budgets WHERE category_id = $1`, categoryID).
		Scan(&count)
	return count, translateError(err)
}

func (s *BudgetStore) Update(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	query := `UPDATE budgets SET amount = $1 WHERE id = $2`
	cmd, err := s.pool.Exec(ctx, query, budget.Amount, budget.ID)
	if err != nil {
		return nil, translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, store.ErrNotFound
	}
	return s.GetByID(ctx, budget.ID)
}

func (s *BudgetStore) Delete(ctx context.Context, id int64) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *BudgetStore) scanRow(row rowScanner) (*models.Budget, error) {
	var b models.Budget
	var month string
	err := row.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.CategoryName,
		&b.Amount, &month, &b.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	parsed, err := models.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	b.Month = parsed
	return &b, nil
}

func (s *BudgetStore) list(ctx context.Context, query string, args ...interface{}) ([]models.Budget, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		b, err := s.scanRow(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, *b)
	}
	return budgets, rows.Err()
}
