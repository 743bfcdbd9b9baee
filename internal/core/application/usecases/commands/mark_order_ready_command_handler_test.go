package commands_test

import (
	"testing"
	"time"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMarkReadyHandler(
	factory commands.OrderUoWFactory,
	users *MockUserGateway,
	traceability *MockTraceabilityGateway,
	notifications *MockNotificationGateway,
) commands.MarkOrderReadyCommandHandler {
	return commands.NewMarkOrderReadyCommandHandler(
		factory, services.NewOrderValidator(), users, traceability, notifications,
	)
}

func TestMarkOrderReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	employeeID := kernel.NewUUID()
	o := newInPreparationOrder(t, restaurantID, employeeID)

	cmd, err := commands.NewMarkOrderReadyCommand(o.ID(), employeeID, role.Employee)
	require.NoError(t, err)

	users := new(MockUserGateway)
	users.On("GetEmployeeRestaurant", mock.Anything, employeeID).Return(restaurantID, true).Once()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o, order.InPreparation).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	traceability := new(MockTraceabilityGateway)
	traceability.On("RecordStatusChange", mock.Anything, mock.Anything).Once()

	notifications := new(MockNotificationGateway)
	notifications.On("SendOrderReadySMS",
		mock.Anything, o.ClientPhone(), o.ID(), mock.MatchedBy(order.IsValidSecurityPin)).Once()

	h := newMarkReadyHandler(factory, users, traceability, notifications)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Ready, o.Status())
	require.True(t, order.IsValidSecurityPin(o.SecurityPin()))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	traceability.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

func TestMarkOrderReadyCommandHandler_Handle_NoPhoneSkipsSMS(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	employeeID := kernel.NewUUID()

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1)
	require.NoError(t, err)
	price, err := kernel.NewMoneyFromString("10000.00")
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "client@mail.com", "",
		restaurantID, []order.Item{item.Enrich("Pizza", price)}, time.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, o.Assign(employeeID, "employee@mail.com", time.Now()))

	cmd, err := commands.NewMarkOrderReadyCommand(o.ID(), employeeID, role.Employee)
	require.NoError(t, err)

	users := new(MockUserGateway)
	users.On("GetEmployeeRestaurant", mock.Anything, employeeID).Return(restaurantID, true).Once()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o, order.InPreparation).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	traceability := new(MockTraceabilityGateway)
	traceability.On("RecordStatusChange", mock.Anything, mock.Anything).Once()

	notifications := new(MockNotificationGateway)

	h := newMarkReadyHandler(factory, users, traceability, notifications)
	require.NoError(t, h.Handle(ctx, cmd))
	notifications.AssertNotCalled(t, "SendOrderReadySMS",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkOrderReadyCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	employeeID := kernel.NewUUID()
	o := newPendingOrder(t, kernel.NewUUID(), restaurantID)

	cmd, err := commands.NewMarkOrderReadyCommand(o.ID(), employeeID, role.Employee)
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

	h := newMarkReadyHandler(factory, users, new(MockTraceabilityGateway), new(MockNotificationGateway))
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidOrderStatusTransition)
}
