package mocks

import (
	"context"

	"github.com/sangkips/ownerdesk-api/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// ProductRepository is a testify mock of repository.ProductRepository
type ProductRepository struct {
	mock.Mock
}

func NewProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProductRepository) ListWithCategory(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]entity.Product)
	return res, args.Error(1)
}

func (m *ProductRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]entity.Category)
	return res, args.Error(1)
}
