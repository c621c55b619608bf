package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionTypeIsCaseSensitive(t *testing.T) {
	typ, err := ParseTransactionType("INCOME")
	require.NoError(t, err)
	assert.Equal(t, TypeIncome, typ)

	typ, err = ParseTransactionType("EXPENSE")
	require.NoError(t, err)
	assert.Equal(t, TypeExpense, typ)

	for _, bad := range []string{"income", "Expense", "TRANSFER", ""} {
		_, err := ParseTransactionType(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestParseTransactionTypeFold(t *testing.T) {
	for _, s := range []string{"income", "INCOME", "Income"} {
		typ, err := ParseTransactionTypeFold(s)
		require.NoError(t, err)
		assert.Equal(t, TypeIncome, typ)
	}

	_, err := ParseTransactionTypeFold("transfer")
	assert.Error(t, err)
}
