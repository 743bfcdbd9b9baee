package cmd

import (
	"log/slog"
	"net/http"
	"time"

	"foodcourt/internal/adapters/out/httpgw"
	"foodcourt/internal/adapters/out/postgres"
	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	validator  services.OrderValidator

	userGateway         ports.UserGateway
	traceabilityGateway ports.TraceabilityGateway
	notificationGateway ports.NotificationGateway
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	httpClient := &http.Client{Timeout: 5 * time.Second}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		validator:  services.NewOrderValidator(),

		userGateway:         httpgw.NewUserGateway(configs.UserServiceURL, httpClient, logger),
		traceabilityGateway: httpgw.NewTraceabilityGateway(configs.TraceabilityServiceURL, httpClient, logger),
		notificationGateway: httpgw.NewNotificationGateway(configs.NotificationServiceURL, httpClient, logger),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.validator, c.traceabilityGateway)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f, c.validator, c.userGateway, c.traceabilityGateway)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderReadyCommandHandler(
		f, c.validator, c.userGateway, c.traceabilityGateway, c.notificationGateway,
	)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f, c.validator, c.userGateway, c.traceabilityGateway)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.validator, c.traceabilityGateway)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f, c.userGateway)
}

func (c *CompositionRoot) CreateCreatePlateCommandHandler() commands.CreatePlateCommandHandler {
	var f commands.PlateUoWFactory = FuncPlateUoWFactory(func() commands.PlateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePlateCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePlateCommandHandler() commands.UpdatePlateCommandHandler {
	var f commands.PlateUoWFactory = FuncPlateUoWFactory(func() commands.PlateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePlateCommandHandler(f)
}

func (c *CompositionRoot) CreateTogglePlateStatusCommandHandler() commands.TogglePlateStatusCommandHandler {
	var f commands.PlateUoWFactory = FuncPlateUoWFactory(func() commands.PlateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTogglePlateStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersByStatusQueryHandler() queries.ListOrdersByStatusQueryHandler {
	return queries.NewListOrdersByStatusQueryHandler(c.gormDB, c.userGateway)
}

func (c *CompositionRoot) CreateListRestaurantsQueryHandler() queries.ListRestaurantsQueryHandler {
	return queries.NewListRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPlatesByRestaurantQueryHandler() queries.ListPlatesByRestaurantQueryHandler {
	return queries.NewListPlatesByRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTracesQueryHandler() queries.GetOrderTracesQueryHandler {
	return queries.NewGetOrderTracesQueryHandler(c.gormDB, c.traceabilityGateway)
}

func (c *CompositionRoot) CreateGetEmployeesRankingQueryHandler() queries.GetEmployeesRankingQueryHandler {
	return queries.NewGetEmployeesRankingQueryHandler(c.gormDB, c.traceabilityGateway)
}

func (c *CompositionRoot) CreateValidateOwnerRestaurantQueryHandler() queries.ValidateOwnerRestaurantQueryHandler {
	return queries.NewValidateOwnerRestaurantQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlateUoWFactory func() commands.PlateUoW

func (f FuncPlateUoWFactory) Create() commands.PlateUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
