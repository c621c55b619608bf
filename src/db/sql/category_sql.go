package db

import (
	"context"

	"finance-tracker-server/src/models"
	"finance-tracker-server/src/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryStore struct {
	pool *pgxpool.Pool
}

func NewCategoryStore(pool *pgxpool.Pool) *CategoryStore {
	return &CategoryStore{pool: pool}
}

func (s *CategoryStore) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	query := `
		INSERT INTO categories (user_id, name, description, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, description, type, created_at
	`
	return s.scanRow(s.pool.QueryRow(ctx, query,
		category.UserID, category.Name, category.Description, string(category.Type)))
}

func (s *CategoryStore) GetByIDAndUser(ctx context.Context, id, userID int64) (*models.Category, error) {
	query := `
		SELECT id, user_id, name, description, type, created_at
		FROM categories WHERE id = $1 AND user_id = $2
	`
	return s.scanRow(s.pool.QueryRow(ctx, query, id, userID))
}

func (s *CategoryStore) ListByUser(ctx context.Context, userID int64) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, description, type, created_at
		FROM categories WHERE user_id = $1
		ORDER BY id
	`
	return s.list(ctx, query, userID)
}

func (s *CategoryStore) ListByUserAndType(ctx context.Context, userID int64, typ models.TransactionType) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, description, type, created_at
		FROM categories WHERE user_id = $1 AND type = $2
		ORDER BY id
	`
	return s.list(ctx, query, userID, string(typ))
}

func (s *CategoryStore) Update(ctx context.Context, category *models.Category) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = $1, description = $2, type = $3
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, name, description, type, created_at
	`
	return s.scanRow(s.pool.QueryRow(ctx, query,
		category.Name, category.Description, string(category.Type), category.ID, category.UserID))
}

func (s *CategoryStore) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *CategoryStore) scanRow(row rowScanner) (*models.Category, error) {
	var c models.Category
	var typ string
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &typ, &c.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	c.Type = models.TransactionType(typ)
	return &c, nil
}

func (s *CategoryStore) list(ctx context.Context, query string, args ...interface{}) ([]models.Category, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		c, err := s.scanRow(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}
