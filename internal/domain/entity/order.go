package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a sales order
type Order struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber  string           `gorm:"size:100;index" json:"orderNumber,omitempty"`
	CustomerName string           `gorm:"size:255" json:"customer,omitempty"`
	TotalAmount  decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0" json:"totalAmount"`
	Status       enum.OrderStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// DisplayNumber returns the order number, or a short reference derived from
// the id when the order was stored without one.
func (o *Order) DisplayNumber() string {
	if o.OrderNumber != "" {
		return o.OrderNumber
	}
	hex := uuidHex(o.ID)
	return "ORD-" + hex[len(hex)-6:]
}

// DisplayCustomer falls back to "Guest" for walk-in orders
func (o *Order) DisplayCustomer() string {
	if o.CustomerName != "" {
		return o.CustomerName
	}
	return "Guest"
}

// OrderItem represents a line item in an order
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"orderId"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price"` // unit price at sale time
	CreatedAt time.Time       `json:"createdAt"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal is price times quantity
func (oi *OrderItem) LineTotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

func uuidHex(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}
