package services

import (
	"context"
	"fmt"
	"time"

	"finance-tracker-server/src/models"
	"finance-tracker-server/src/store"
)

type TransactionService struct {
	transactions store.TransactionStore
	categories   store.CategoryStore
	now          func() time.Time
}

func NewTransactionService(transactions store.TransactionStore, categories store.CategoryStore) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		categories:   categories,
		now:          time.Now,
	}
}

// Create requires the category to belong to the caller and, unlike the
// category service, parses the type string case-sensitively.
func (s *TransactionService) Create(ctx context.Context, userID int64, req models.CreateTransactionRequest) (*models.Transaction, error) {
	category, err := s.categories.GetByIDAndUser(ctx, req.CategoryID, userID)
	if err != nil {
		return nil, err
	}

	typ, err := models.ParseTransactionType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if req.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must be non-negative", ErrValidation)
	}

	date := s.now()
	if req.Date != nil {
		date = *req.Date
	}

	created, err := s.transactions.Create(ctx, &models.Transaction{
		UserID:     userID,
		CategoryID: category.ID,
		Amount:     req.Amount,
		Type:       typ,
		Note:       req.Note,
		Date:       date,
	})
	if err != nil {
		return nil, err
	}
	created.CategoryName = category.Name
	return created, nil
}

func (s *TransactionService) Get(ctx context.Context, userID, id int64) (*models.Transaction, error) {
	return s.loadOwned(ctx, userID, id)
}

func (s *TransactionService) List(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return s.transactions.ListByUser(ctx, userID)
}

func (s *TransactionService) ListByType(ctx context.Context, userID int64, typeStr string) ([]models.Transaction, error) {
	typ, err := models.ParseTransactionTypeFold(typeStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.transactions.ListByUserAndType(ctx, userID, typ)
}

func (s *TransactionService) ListByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.Transaction, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end must not precede start", ErrValidation)
	}
	return s.transactions.ListByUserAndDateRange(ctx, userID, start, end)
}

// TotalByType returns zero, not an error, when no transactions match.
func (s *TransactionService) TotalByType(ctx context.Context, userID int64, typeStr string) (float64, error) {
	typ, err := models.ParseTransactionTypeFold(typeStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.transactions.SumByUserAndType(ctx, userID, typ)
}

func (s *TransactionService) Update(ctx context.Context, userID, id int64, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := s.loadOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, fmt.Errorf("%w: amount must be non-negative", ErrValidation)
		}
		transaction.Amount = *req.Amount
	}
	if req.Type != nil {
		typ, err := models.ParseTransactionType(*req.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		transaction.Type = typ
	}
	if req.Note != nil {
		transaction.Note = req.Note
	}
	if req.CategoryID != nil {
		category, err := s.categories.GetByIDAndUser(ctx, *req.CategoryID, userID)
		if err != nil {
			return nil, err
		}
		transaction.CategoryID = category.ID
		transaction.CategoryName = category.Name
	}

	return s.transactions.Update(ctx, transaction)
}

func (s *TransactionService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.loadOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.transactions.Delete(ctx, id)
}

// loadOwned distinguishes a missing transaction (not found) from one owned by
// another user (unauthorized).
func (s *TransactionService) loadOwned(ctx context.Context, userID, id int64) (*models.Transaction, error) {
	transaction, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ownerCheck(transaction.UserID, userID); err != nil {
		return nil, err
	}
	return transaction, nil
}
