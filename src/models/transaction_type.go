package models

import (
	"fmt"
	"strings"
)

// TransactionType classifies categories and transactions as money coming in
// or going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// ParseTransactionType accepts the exact uppercase form only. Transaction
// creation and updates use this strict variant.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeIncome, TypeExpense:
		return TransactionType(s), nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// ParseTransactionTypeFold is the case-insensitive variant used by the
// category service and by type filters.
func ParseTransactionTypeFold(s string) (TransactionType, error) {
	return ParseTransactionType(strings.ToUpper(s))
}
