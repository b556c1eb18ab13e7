package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewAddMenuItemCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewAddMenuItemCommand(testRestaurantID, " Dosa ", mustMoney(t, "40.50"), 12)

		require.NoError(t, err)
		assert.Equal(t, testRestaurantID, cmd.RestaurantID())
		assert.Equal(t, "Dosa", cmd.Name())
		assert.Equal(t, "40.50", cmd.Price().String())
		assert.Equal(t, 12, cmd.Quantity())
	})

	t.Run("invalid input is aggregated", func(t *testing.T) {
		_, err := commands.NewAddMenuItemCommand(kernel.ID{}, "", kernel.Money{}, -1)

		require.ErrorIs(t, err, menu.ErrItemNameIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, errs.IsValidation(err))
	})
}

func TestNewUpdateMenuItemCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewUpdateMenuItemCommand(testRestaurantID, testItemID, "Dosa", mustMoney(t, "45"), 0)

		require.NoError(t, err)
		assert.Equal(t, testItemID, cmd.ItemID())
		assert.Equal(t, "45.00", cmd.Price().String())
		assert.Equal(t, 0, cmd.Quantity())
	})

	t.Run("missing item id", func(t *testing.T) {
		_, err := commands.NewUpdateMenuItemCommand(testRestaurantID, kernel.ID{}, "Dosa", mustMoney(t, "45"), 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAddMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddMenuItemCommand(testRestaurantID, "Dosa", mustMoney(t, "40.00"), 12)
	require.NoError(t, err)

	items := new(MockMenuItemRepository)
	uow := new(MockUoW)
	factory := new(MockMenuUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(items).Once(),
		items.On("NextID", ctx).Return(kernel.MustNewID(31), nil).Once(),
		items.On("Add", ctx, mock.MatchedBy(func(i *menu.Item) bool {
			return i.ID().Int64() == 31 && i.Name() == "Dosa" && i.Quantity() == 12 &&
				i.RestaurantID().IsEqual(testRestaurantID)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	id, err := commands.NewAddMenuItemCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.MustNewID(31), id)
	items.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddMenuItemCommandHandler_Handle_AddFails(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddMenuItemCommand(testRestaurantID, "Dosa", mustMoney(t, "40.00"), 12)
	require.NoError(t, err)

	items := new(MockMenuItemRepository)
	uow := new(MockUoW)
	factory := new(MockMenuUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuItemRepository").Return(items).Once()
	items.On("NextID", ctx).Return(kernel.MustNewID(31), nil).Once()
	items.On("Add", ctx, mock.Anything).Return(errors.New("insert failed")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err = commands.NewAddMenuItemCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateMenuItemCommand(testRestaurantID, testItemID, "Veg Biryani", mustMoney(t, "75.00"), 3)
	require.NoError(t, err)
	item := newTestItem(t, 10)

	items := new(MockMenuItemRepository)
	uow := new(MockUoW)
	factory := new(MockMenuUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(items).Once(),
		items.On("GetForUpdate", ctx, testRestaurantID, testItemID).Return(item, nil).Once(),
		items.On("Update", ctx, item).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewUpdateMenuItemCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Veg Biryani", item.Name())
	assert.Equal(t, "75.00", item.Price().String())
	assert.Equal(t, 3, item.Quantity())
	items.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateMenuItemCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateMenuItemCommand(testRestaurantID, testItemID, "Dosa", mustMoney(t, "1"), 1)
	require.NoError(t, err)

	items := new(MockMenuItemRepository)
	uow := new(MockUoW)
	factory := new(MockMenuUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuItemRepository").Return(items).Once()
	items.On("GetForUpdate", ctx, testRestaurantID, testItemID).
		Return(nil, errs.NewObjectNotFoundError("menu_item", testItemID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewUpdateMenuItemCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
