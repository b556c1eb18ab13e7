package http_test

import (
	"context"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.PlaceOrderResult), args.Error(1)
}

type MockUpdateOrderStatusHandler struct{ mock.Mock }

func (m *MockUpdateOrderStatusHandler) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockAddMenuItemHandler struct{ mock.Mock }

func (m *MockAddMenuItemHandler) Handle(ctx context.Context, cmd commands.AddMenuItemCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockUpdateMenuItemHandler struct{ mock.Mock }

func (m *MockUpdateMenuItemHandler) Handle(ctx context.Context, cmd commands.UpdateMenuItemCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockCreatePartnerHandler struct{ mock.Mock }

func (m *MockCreatePartnerHandler) Handle(ctx context.Context, cmd commands.CreatePartnerCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(
	ctx context.Context,
	query queries.ListOrdersQuery,
) ([]queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ListOrdersQueryResponse), args.Error(1)
}

type MockGetMenuHandler struct{ mock.Mock }

func (m *MockGetMenuHandler) Handle(ctx context.Context, query queries.GetMenuQuery) ([]queries.GetMenuQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetMenuQueryResponse), args.Error(1)
}
