package commands_test

import (
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/plate"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTogglePlateStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	r := ownedRestaurant(t, ownerID)
	p, err := plate.NewPlate(
		kernel.NewUUID(), "Pizza", "desc", "Italian",
		mustMoney(t, "25000.00"), "", r.ID(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewTogglePlateStatusCommand(p.ID(), false, ownerID, role.Owner)
	require.NoError(t, err)

	plateRepo := new(MockPlateRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PlateRepository").Return(plateRepo).Once(),
		plateRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once(),
		plateRepo.On("Update", mock.Anything, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTogglePlateStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.False(t, p.IsActive())
	// everything except the flag is untouched
	require.Equal(t, "Pizza", p.Name())
	require.True(t, p.Price().IsEqual(mustMoney(t, "25000.00")))
	plateRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTogglePlateStatusCommandHandler_Handle_PlateNotFound(t *testing.T) {
	ctx := t.Context()
	plateID := kernel.NewUUID()

	cmd, err := commands.NewTogglePlateStatusCommand(plateID, true, kernel.NewUUID(), role.Owner)
	require.NoError(t, err)

	plateRepo := new(MockPlateRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PlateRepository").Return(plateRepo).Once(),
		plateRepo.On("Get", mock.Anything, plateID).
			Return(nil, errs.NewObjectNotFoundError("plateID", plateID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTogglePlateStatusCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrPlateNotFound)
}
