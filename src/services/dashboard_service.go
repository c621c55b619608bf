package services

import (
	"context"
	"time"

	"finance-tracker-server/src/models"
	"finance-tracker-server/src/store"
)

// DashboardService aggregates a user's transactions on demand. Every call
// re-queries the store; nothing is cached or materialized.
type DashboardService struct {
	transactions store.TransactionStore
	now          func() time.Time
}

func NewDashboardService(transactions store.TransactionStore) *DashboardService {
	return &DashboardService{
		transactions: transactions,
		now:          time.Now,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context, userID int64) (*models.Dashboard, error) {
	totalIncome, err := s.transactions.SumByUserAndType(ctx, userID, models.TypeIncome)
	if err != nil {
		return nil, err
	}
	totalExpense, err := s.transactions.SumByUserAndType(ctx, userID, models.TypeExpense)
	if err != nil {
		return nil, err
	}

	categoryExpenses, err := s.transactions.ExpenseTotalsByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Income per month for the trailing 12 months ending now, every key
	// present even when the sum is zero. Expenses are deliberately not part
	// of this series.
	monthlyData := make(map[string]float64, 12)
	current := models.MonthOf(s.now())
	for i := 11; i >= 0; i-- {
		month := current.AddMonths(-i)
		income, err := s.transactions.SumByTypeAndMonth(ctx, userID, models.TypeIncome, month)
		if err != nil {
			return nil, err
		}
		monthlyData[month.String()] = income
	}

	count, err := s.transactions.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		NetBalance:       totalIncome - totalExpense,
		CategoryExpenses: categoryExpenses,
		MonthlyData:      monthlyData,
		TransactionCount: count,
	}, nil
}
