package commands_test

import (
	"context"
	"testing"

	"seomarket/internal/core/application/usecases/commands"
	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/role"
	"seomarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(role.Requester{}, kernel.UUID{})

	require.ErrorIs(t, err, role.ErrRequesterIsNotConstructed)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var cmd commands.DeleteOrderCommand
	assert.Equal(t, commands.ErrDeleteOrderCommandIsNotConstructed, cmd.Validate())
}

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand(newRequester(t, role.Manager), orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Delete", ctx, orderID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_ForbiddenRole(t *testing.T) {
	cmd, err := commands.NewDeleteOrderCommand(newRequester(t, role.Seoer), kernel.NewUUID())
	require.NoError(t, err)
	factory := new(MockOrderUoWFactory)

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(context.Background(), cmd)

	require.ErrorIs(t, err, errs.ErrActionIsForbidden)
	assert.EqualError(t, err, "action is forbidden: role SEOER cannot delete orders")
	factory.AssertNotCalled(t, "Create")
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand(newRequester(t, role.Assistant), orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Delete", ctx, orderID).Return(errs.NewObjectNotFoundError("orderId", orderID)).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
