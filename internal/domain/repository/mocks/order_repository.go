package mocks

import (
	"context"

	"github.com/sangkips/ownerdesk-api/internal/domain/entity"
	"github.com/sangkips/ownerdesk-api/internal/domain/repository"
	"github.com/stretchr/testify/mock"
)

// OrderRepository is a testify mock of repository.OrderRepository
type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) ListRecent(ctx context.Context, limit int) ([]entity.Order, error) {
	args := m.Called(ctx, limit)
	res, _ := args.Get(0).([]entity.Order)
	return res, args.Error(1)
}

func (m *OrderRepository) ListInWindow(ctx context.Context, w repository.Window) ([]entity.Order, error) {
	args := m.Called(ctx, w)
	res, _ := args.Get(0).([]entity.Order)
	return res, args.Error(1)
}

func (m *OrderRepository) ListItems(ctx context.Context, w repository.Window) ([]entity.OrderItem, error) {
	args := m.Called(ctx, w)
	res, _ := args.Get(0).([]entity.OrderItem)
	return res, args.Error(1)
}
