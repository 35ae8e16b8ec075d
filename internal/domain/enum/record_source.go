package enum

// RecordSource names one of the collections the metrics aggregator counts
type RecordSource int

const (
	SourceProducts RecordSource = iota
	SourceSuppliers
	SourceOrders
	SourceExpenses
	SourceTransactions
	SourceUsers
)

// CountedSources is the fixed set of sources in a metric snapshot.
func CountedSources() []RecordSource {
	return []RecordSource{
		SourceProducts,
		SourceSuppliers,
		SourceOrders,
		SourceExpenses,
		SourceTransactions,
		SourceUsers,
	}
}

func (s RecordSource) String() string {
	return s.TableName()
}

// TableName is the backing table of the source
func (s RecordSource) TableName() string {
	switch s {
	case SourceProducts:
		return "products"
	case SourceSuppliers:
		return "suppliers"
	case SourceOrders:
		return "orders"
	case SourceExpenses:
		return "expenses"
	case SourceTransactions:
		return "transactions"
	case SourceUsers:
		return "users"
	}
	return ""
}

// DateColumn is the timestamp column a period window filters on.
// Expenses and transactions are dated by their business date, not by
// when the row was inserted.
func (s RecordSource) DateColumn() string {
	switch s {
	case SourceExpenses:
		return "expense_date"
	case SourceTransactions:
		return "transaction_date"
	default:
		return "created_at"
	}
}
