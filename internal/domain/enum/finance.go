package enum

// ExpenseCategory classifies an expense
type ExpenseCategory string

const (
	ExpenseCategoryFixed          ExpenseCategory = "FIXED"
	ExpenseCategoryVariable       ExpenseCategory = "VARIABLE"
	ExpenseCategoryOperational    ExpenseCategory = "OPERATIONAL"
	ExpenseCategoryAdministrative ExpenseCategory = "ADMINISTRATIVE"
)

// PaymentMode is how money changed hands
type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "CASH"
	PaymentModeUPI          PaymentMode = "UPI"
	PaymentModeCard         PaymentMode = "CARD"
	PaymentModeBankTransfer PaymentMode = "BANK_TRANSFER"
)

// TransactionType distinguishes money in from money out
type TransactionType string

const (
	TransactionTypeSale     TransactionType = "SALE"
	TransactionTypePurchase TransactionType = "PURCHASE"
)

// PaymentStatus is the settlement state of a transaction
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// UserRole is the role attached to an account
type UserRole string

const (
	UserRoleOwner UserRole = "owner"
	UserRoleStaff UserRole = "staff"
	// UserRoleUser marks customer accounts; only these are counted as users in metrics.
	UserRoleUser UserRole = "user"
)
