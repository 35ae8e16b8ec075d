package repository

import (
	"context"

	"github.com/sangkips/ownerdesk-api/internal/domain/entity"
)

// ProductRepository defines the read operations the analytics engine needs on the catalogue
type ProductRepository interface {
	// ListWithCategory returns every product with its category preloaded
	ListWithCategory(ctx context.Context) ([]entity.Product, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
}
