package repository

import (
	"context"

	"github.com/sangkips/ownerdesk-api/internal/domain/entity"
)

// OrderRepository defines the read operations the analytics engine needs on orders
type OrderRepository interface {
	// ListRecent returns the newest orders first
	ListRecent(ctx context.Context, limit int) ([]entity.Order, error)
	// ListInWindow returns orders created inside w, oldest first
	ListInWindow(ctx context.Context, w Window) ([]entity.Order, error)
	// ListItems returns the line items of orders created inside w
	ListItems(ctx context.Context, w Window) ([]entity.OrderItem, error)
}
