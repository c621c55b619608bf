package db

import (
	"context"
	"time"

	"finance-tracker-server/src/models"
	"finance-tracker-server/src/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionStore struct {
	pool *pgxpool.Pool
}

func NewTransactionStore(pool *pgxpool.Pool) *TransactionStore {
	return &TransactionStore{pool: pool}
}

// selectTransaction joins the owning category so every returned row carries
// its display name.
const selectTransaction = `
	SELECT t.id, t.user_id, t.category_id, c.name, t.amount, t.type, t.note, t.date, t.created_at
	FROM transactions t
	JOIN categories c ON c.id = t.category_id
`

func (s *TransactionStore) Create(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, category_id, amount, type, note, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	created := *transaction
	err := s.pool.QueryRow(ctx, query,
		transaction.UserID, transaction.CategoryID, transaction.Amount,
		string(transaction.Type), transaction.Note, transaction.Date).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &created, nil
}

func (s *TransactionStore) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := selectTransaction + `WHERE t.id = $1`
	return s.scanRow(s.pool.QueryRow(ctx, query, id))
}

func (s *TransactionStore) ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query := selectTransaction + `WHERE t.user_id = $1 ORDER BY t.date DESC`
	return s.list(ctx, query, userID)
}

func (s *TransactionStore) ListByUserAndType(ctx context.Context, userID int64, typ models.TransactionType) ([]models.Transaction, error) {
	query := selectTransaction + `WHERE t.user_id = $1 AND t.type = $2 ORDER BY t.date DESC`
	return s.list(ctx, query, userID, string(typ))
}

func (s *TransactionStore) ListByUserAndDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.Transaction, error) {
	query := selectTransaction + `WHERE t.user_id = $1 AND t.date >= $2 AND t.date <= $3 ORDER BY t.date DESC`
	return s.list(ctx, query, userID, start, end)
}

func (s *TransactionStore) SumByUserAndType(ctx context.Context, userID int64, typ models.TransactionType) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions WHERE user_id = $1 AND type = $2
	`
	return s.sum(ctx, query, userID, string(typ))
}

func (s *TransactionStore) SumByTypeAndMonth(ctx context.Context, userID int64, typ models.TransactionType, month models.Month) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND type = $2 AND to_char(date, 'YYYY-MM') = $3
	`
	return s.sum(ctx, query, userID, string(typ), month.String())
}

func (s *TransactionStore) SumByCategoryAndMonth(ctx context.Context, userID, categoryID int64, typ models.TransactionType, month models.Month) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2 AND type = $3 AND to_char(date, 'YYYY-MM') = $4
	`
	return s.sum(ctx, query, userID, categoryID, string(typ), month.String())
}

func (s *TransactionStore) ExpenseTotalsByCategory(ctx context.Context, userID int64) (map[string]float64, error) {
	query := `
		SELECT c.name, SUM(t.amount)
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.type = $2
		GROUP BY c.name
	`
	rows, err := s.pool.Query(ctx, query, userID, string(models.TypeExpense))
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var name string
		var total float64
		if err := rows.Scan(&name, &total); err != nil {
			return nil, err
		}
		totals[name] = total
	}
	return totals, rows.Err()
}

func (s *TransactionStore) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE user_id = $1`, userID).
		Scan(&count)
	return count, translateError(err)
}

func (s *TransactionStore) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE category_id = $1`, categoryID).
		Scan(&count)
	return count, translateError(err)
}

func (s *TransactionStore) Update(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET category_id = $1, amount = $2, type = $3, note = $4
		WHERE id = $5
	`
	cmd, err := s.pool.Exec(ctx, query,
		transaction.CategoryID, transaction.Amount, string(transaction.Type),
		transaction.Note, transaction.ID)
	if err != nil {
		return nil, translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, store.ErrNotFound
	}
	return s.GetByID(ctx, transaction.ID)
}

func (s *TransactionStore) Delete(ctx context.Context, id int64) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *TransactionStore) scanRow(row rowScanner) (*models.Transaction, error) {
	var t models.Transaction
	var typ string
	err := row.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.CategoryName,
		&t.Amount, &typ, &t.Note, &t.Date, &t.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	t.Type = models.TransactionType(typ)
	return &t, nil
}

func (s *TransactionStore) list(ctx context.Context, query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		t, err := s.scanRow(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

func (s *TransactionStore) sum(ctx context.Context, query string, args ...interface{}) (float64, error) {
	var total float64
	err := s.pool.QueryRow(ctx, query, args...).Scan(&total)
	return total, translateError(err)
}
