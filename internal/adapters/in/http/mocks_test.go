package http_test

import (
	"context"

	"seomarket/internal/core/application/usecases/commands"
	"seomarket/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type mockCreateOrder struct{ mock.Mock }

func (m *mockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockChangeOrderStatus struct{ mock.Mock }

func (m *mockChangeOrderStatus) Handle(
	ctx context.Context,
	cmd commands.ChangeOrderStatusCommand,
) (commands.ChangeOrderStatusResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ChangeOrderStatusResult), args.Error(1)
}

type mockUpdateOrderPricing struct{ mock.Mock }

func (m *mockUpdateOrderPricing) Handle(ctx context.Context, cmd commands.UpdateOrderPricingCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockDeleteOrder struct{ mock.Mock }

func (m *mockDeleteOrder) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockGetOrder struct{ mock.Mock }

func (m *mockGetOrder) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type mockGetActiveOrders struct{ mock.Mock }

func (m *mockGetActiveOrders) Handle(
	ctx context.Context,
	query queries.GetActiveOrdersQuery,
) ([]queries.GetActiveOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetActiveOrdersQueryResponse), args.Error(1)
}

type mockGetOrderStatusHistory struct{ mock.Mock }

func (m *mockGetOrderStatusHistory) Handle(
	ctx context.Context,
	query queries.GetOrderStatusHistoryQuery,
) ([]queries.GetOrderStatusHistoryQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetOrderStatusHistoryQueryResponse), args.Error(1)
}
