package services

import (
	"context"
	"fmt"
	"strings"

	"finance-tracker-server/src/models"
	"finance-tracker-server/src/store"
)

// CategoryService manages per-user income/expense categories. Type strings
// are parsed case-insensitively here, unlike transaction creation.
type CategoryService struct {
	categories   store.CategoryStore
	transactions store.TransactionStore
	budgets      store.BudgetStore
}

func NewCategoryService(categories store.CategoryStore, transactions store.TransactionStore, budgets store.BudgetStore) *CategoryService {
	return &CategoryService{
		categories:   categories,
		transactions: transactions,
		budgets:      budgets,
	}
}

func (s *CategoryService) Create(ctx context.Context, userID int64, req models.CreateCategoryRequest) (*models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	typ, err := models.ParseTransactionTypeFold(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return s.categories.Create(ctx, &models.Category{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Type:        typ,
	})
}

func (s *CategoryService) Get(ctx context.Context, userID, id int64) (*models.Category, error) {
	return s.categories.GetByIDAndUser(ctx, id, userID)
}

func (s *CategoryService) List(ctx context.Context, userID int64) ([]models.Category, error) {
	return s.categories.ListByUser(ctx, userID)
}

func (s *CategoryService) ListByType(ctx context.Context, userID int64, typeStr string) ([]models.Category, error) {
	typ, err := models.ParseTransactionTypeFold(typeStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.categories.ListByUserAndType(ctx, userID, typ)
}

func (s *CategoryService) Update(ctx context.Context, userID, id int64, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categories.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.Type != nil {
		typ, err := models.ParseTransactionTypeFold(*req.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		category.Type = typ
	}

	return s.categories.Update(ctx, category)
}

// Delete refuses to remove a category that transactions or budgets still
// reference, so no dangling category ids can exist.
func (s *CategoryService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.categories.GetByIDAndUser(ctx, id, userID); err != nil {
		return err
	}

	transactionCount, err := s.transactions.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if transactionCount > 0 {
		return fmt.Errorf("%w: category has transactions", ErrConflict)
	}

	budgetCount, err := s.budgets.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if budgetCount > 0 {
		return fmt.Errorf("%w: category has budgets", ErrConflict)
	}

	return s.categories.Delete(ctx, id, userID)
}
