package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents money spent running the business
type Expense struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	ReferenceNo string               `gorm:"size:50;uniqueIndex" json:"referenceNo"`
	ExpenseType string               `gorm:"size:100;not null" json:"expenseType"`
	Category    enum.ExpenseCategory `gorm:"size:30;not null" json:"category"`
	Amount      decimal.Decimal      `gorm:"type:numeric(14,2);not null" json:"amount"`
	PaymentMode enum.PaymentMode     `gorm:"size:30;not null;default:'CASH'" json:"paymentMode"`
	ExpenseDate time.Time            `gorm:"not null;index" json:"date"`
	Description *string              `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}

// Transaction represents a payment movement, in or out
type Transaction struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	ReferenceNo     string               `gorm:"size:50;uniqueIndex" json:"referenceNo"`
	TransactionType enum.TransactionType `gorm:"size:20;not null" json:"transactionType"`
	Amount          decimal.Decimal      `gorm:"type:numeric(14,2);not null" json:"amount"`
	PaymentMode     enum.PaymentMode     `gorm:"size:30;not null;default:'CASH'" json:"paymentMode"`
	PaymentStatus   enum.PaymentStatus   `gorm:"size:20;not null;default:'PAID'" json:"paymentStatus"`
	ReferenceID     *uuid.UUID           `gorm:"type:uuid;index" json:"referenceId,omitempty"`
	TransactionDate time.Time            `gorm:"not null;index" json:"date"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
