package commands_test

import (
	"context"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/plate"
	"foodcourt/internal/core/domain/model/restaurant"
	"foodcourt/internal/core/domain/model/trace"
	"foodcourt/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, observed order.Status) error {
	args := m.Called(ctx, o, observed)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPlateRepository struct{ mock.Mock }

func (m *MockPlateRepository) Add(ctx context.Context, p *plate.Plate) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlateRepository) Update(ctx context.Context, p *plate.Plate) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlateRepository) Get(ctx context.Context, id kernel.UUID) (*plate.Plate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plate.Plate), args.Error(1)
}

func (m *MockPlateRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*plate.Plate, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*plate.Plate), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) ExistsByNit(ctx context.Context, nit string) (bool, error) {
	args := m.Called(ctx, nit)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit of work combination used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PlateRepository() ports.PlateRepository {
	args := m.Called()
	return args.Get(0).(ports.PlateRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPlateUoWFactory struct{ mock.Mock }

func (m *MockPlateUoWFactory) Create() commands.PlateUoW {
	args := m.Called()
	return args.Get(0).(commands.PlateUoW)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	args := m.Called()
	return args.Get(0).(commands.RestaurantUoW)
}

type MockUserGateway struct{ mock.Mock }

func (m *MockUserGateway) HasOwnerRole(ctx context.Context, userID kernel.UUID) bool {
	args := m.Called(ctx, userID)
	return args.Bool(0)
}

func (m *MockUserGateway) GetEmployeeRestaurant(ctx context.Context, employeeID kernel.UUID) (kernel.UUID, bool) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(kernel.UUID), args.Bool(1)
}

type MockTraceabilityGateway struct{ mock.Mock }

func (m *MockTraceabilityGateway) RecordStatusChange(ctx context.Context, change trace.StatusChange) {
	m.Called(ctx, change)
}

func (m *MockTraceabilityGateway) GetOrderTraces(ctx context.Context, orderID kernel.UUID) ([]trace.OrderTrace, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trace.OrderTrace), args.Error(1)
}

func (m *MockTraceabilityGateway) GetEmployeesRanking(
	ctx context.Context, restaurantID kernel.UUID,
) ([]trace.EmployeeRanking, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trace.EmployeeRanking), args.Error(1)
}

type MockNotificationGateway struct{ mock.Mock }

func (m *MockNotificationGateway) SendOrderReadySMS(
	ctx context.Context, phone string, orderID kernel.UUID, securityPin string,
) {
	m.Called(ctx, phone, orderID, securityPin)
}
