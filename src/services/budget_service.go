package services

import (
	"context"
	"time"

	"finance-tracker-server/src/models"
	"finance-tracker-server/src/store"
)

type BudgetService struct {
	budgets      store.BudgetStore
	categories   store.CategoryStore
	transactions store.TransactionStore
	now          func() time.Time
}

func NewBudgetService(budgets store.BudgetStore, categories store.CategoryStore, transactions store.TransactionStore) *BudgetService {
	return &BudgetService{
		budgets:      budgets,
		categories:   categories,
		transactions: transactions,
		now:          time.Now,
	}
}

func (s *BudgetService) Create(ctx context.Context, userID int64, req models.CreateBudgetRequest) (*models.Budget, error) {
	category, err := s.categories.GetByIDAndUser(ctx, req.CategoryID, userID)
	if err != nil {
		return nil, err
	}

	month := models.MonthOf(s.now())
	if req.Month != nil {
		month = *req.Month
	}

	created, err := s.budgets.Create(ctx, &models.Budget{
		UserID:     userID,
		CategoryID: category.ID,
		Amount:     req.BudgetAmount,
		Month:      month,
	})
	if err != nil {
		return nil, err
	}
	created.CategoryName = category.Name
	return s.withDerived(ctx, created)
}

func (s *BudgetService) Get(ctx context.Context, userID, id int64) (*models.Budget, error) {
	budget, err := s.loadOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.withDerived(ctx, budget)
}

func (s *BudgetService) List(ctx context.Context, userID int64) ([]models.Budget, error) {
	budgets, err := s.budgets.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.deriveAll(ctx, budgets)
}

func (s *BudgetService) ListByMonth(ctx context.Context, userID int64, month models.Month) ([]models.Budget, error) {
	budgets, err := s.budgets.ListByUserAndMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	return s.deriveAll(ctx, budgets)
}

// Update only touches the budget amount; category and month are fixed at
// creation.
func (s *BudgetService) Update(ctx context.Context, userID, id int64, req models.UpdateBudgetRequest) (*models.Budget, error) {
	budget, err := s.loadOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.BudgetAmount != nil {
		budget.Amount = *req.BudgetAmount
	}

	updated, err := s.budgets.Update(ctx, budget)
	if err != nil {
		return nil, err
	}
	return s.withDerived(ctx, updated)
}

func (s *BudgetService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.loadOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.budgets.Delete(ctx, id)
}

func (s *BudgetService) loadOwned(ctx context.Context, userID, id int64) (*models.Budget, error) {
	budget, err := s.budgets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ownerCheck(budget.UserID, userID); err != nil {
		return nil, err
	}
	return budget, nil
}

// withDerived computes spent and remaining at read time from the expense
// transactions matching the budget's user, category, and month.
func (s *BudgetService) withDerived(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	spent, err := s.transactions.SumByCategoryAndMonth(ctx,
		budget.UserID, budget.CategoryID, models.TypeExpense, budget.Month)
	if err != nil {
		return nil, err
	}
	budget.Spent = spent
	budget.Remaining = budget.Amount - spent
	return budget, nil
}

func (s *BudgetService) deriveAll(ctx context.Context, budgets []models.Budget) ([]models.Budget, error) {
	for i := range budgets {
		if _, err := s.withDerived(ctx, &budgets[i]); err != nil {
			return nil, err
		}
	}
	return budgets, nil
}
