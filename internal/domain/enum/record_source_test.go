package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordSourceColumns(t *testing.T) {
	tests := []struct {
		source     RecordSource
		table      string
		dateColumn string
	}{
		{SourceProducts, "products", "created_at"},
		{SourceSuppliers, "suppliers", "created_at"},
		{SourceOrders, "orders", "created_at"},
		{SourceExpenses, "expenses", "expense_date"},
		{SourceTransactions, "transactions", "transaction_date"},
		{SourceUsers, "users", "created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			assert.Equal(t, tt.table, tt.source.TableName())
			assert.Equal(t, tt.table, tt.source.String())
			assert.Equal(t, tt.dateColumn, tt.source.DateColumn())
		})
	}

	assert.Len(t, CountedSources(), len(tests))
	assert.Empty(t, RecordSource(99).TableName())
}
