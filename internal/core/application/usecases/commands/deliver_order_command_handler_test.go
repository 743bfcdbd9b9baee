package commands_test

import (
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeliverHandler(
	factory commands.OrderUoWFactory,
	users *MockUserGateway,
	traceability *MockTraceabilityGateway,
) commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(
		factory, services.NewOrderValidator(), users, traceability,
	)
}

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	employeeID := kernel.NewUUID()
	o := newReadyOrder(t, restaurantID, employeeID, "0042")

	cmd, err := commands.NewDeliverOrderCommand(o.ID(), employeeID, "0042", role.Employee)
	require.NoError(t, err)

	users := new(MockUserGateway)
	users.On("GetEmployeeRestaurant", mock.Anything, employeeID).Return(restaurantID, true).Once()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o, order.Ready).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	traceability := new(MockTraceabilityGateway)
	traceability.On("RecordStatusChange", mock.Anything, mock.Anything).Once()

	h := newDeliverHandler(factory, users, traceability)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Delivered, o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	traceability.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_WrongPin(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	employeeID := kernel.NewUUID()
	o := newReadyOrder(t, restaurantID, employeeID, "0042")

	cmd, err := commands.NewDeliverOrderCommand(o.ID(), employeeID, "4200", role.Employee)
	require.NoError(t, err)

	users := new(MockUserGateway)
	users.On("GetEmployeeRestaurant", mock.Anything, employeeID).Return(restaurantID, true).Once()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newDeliverHandler(factory, users, new(MockTraceabilityGateway))
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidSecurityPin)
	require.Equal(t, order.Ready, o.Status())
}

func TestDeliverOrderCommandHandler_Handle_NotReady(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	employeeID := kernel.NewUUID()
	o := newInPreparationOrder(t, restaurantID, employeeID)

	cmd, err := commands.NewDeliverOrderCommand(o.ID(), employeeID, "0042", role.Employee)
	require.NoError(t, err)

	users := new(MockUserGateway)
	users.On("GetEmployeeRestaurant", mock.Anything, employeeID).Return(restaurantID, true).Once()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newDeliverHandler(factory, users, new(MockTraceabilityGateway))
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidOrderStatusTransition)
}
