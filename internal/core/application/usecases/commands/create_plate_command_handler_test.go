package commands_test

import (
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ownedRestaurant(t *testing.T, ownerID kernel.UUID) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), "La Plaza", "900123456", "Calle 10",
		"+573001234567", "", ownerID,
	)
	require.NoError(t, err)
	return r
}

func TestCreatePlateCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	r := ownedRestaurant(t, ownerID)

	cmd, err := commands.NewCreatePlateCommand(
		kernel.NewUUID(), "Pizza", "desc", "Italian",
		mustMoney(t, "25000.00"), "", r.ID(), ownerID, role.Owner,
	)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	plateRepo := new(MockPlateRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once(),
		uow.On("PlateRepository").Return(plateRepo).Once(),
		plateRepo.On("Add", mock.Anything, mock.AnythingOfType("*plate.Plate")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePlateCommandHandler(factory)
	p, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, p.IsActive())
	require.True(t, p.RestaurantID().IsEqual(r.ID()))
	restaurantRepo.AssertExpectations(t)
	plateRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePlateCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	cmd, err := commands.NewCreatePlateCommand(
		kernel.NewUUID(), "Pizza", "desc", "Italian",
		mustMoney(t, "25000.00"), "", restaurantID, ownerID, role.Owner,
	)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, restaurantID).
			Return(nil, errs.NewObjectNotFoundError("restaurantID", restaurantID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePlateCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrRestaurantNotFound)
}

func TestCreatePlateCommandHandler_Handle_NotTheOwner(t *testing.T) {
	ctx := t.Context()
	r := ownedRestaurant(t, kernel.NewUUID())
	intruder := kernel.NewUUID()

	cmd, err := commands.NewCreatePlateCommand(
		kernel.NewUUID(), "Pizza", "desc", "Italian",
		mustMoney(t, "25000.00"), "", r.ID(), intruder, role.Owner,
	)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePlateCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrRestaurantNotOwner)
}

func TestCreatePlateCommandHandler_Handle_NonOwnerRole(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePlateCommand(
		kernel.NewUUID(), "Pizza", "desc", "Italian",
		mustMoney(t, "25000.00"), "", kernel.NewUUID(), kernel.NewUUID(), role.Client,
	)
	require.NoError(t, err)

	h := commands.NewCreatePlateCommandHandler(new(MockPlateUoWFactory))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInsufficientPermissions)
}
