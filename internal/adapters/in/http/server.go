// Package http exposes the application over a REST API built on echo.
// Handlers translate between the wire shapes and the use-case commands and
// queries; all business decisions live below this layer.
package http

import (
	"net/http"
	"strconv"
	"time"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/page"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	assignOrderHandler       commands.AssignOrderCommandHandler
	markOrderReadyHandler    commands.MarkOrderReadyCommandHandler
	deliverOrderHandler      commands.DeliverOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	createRestaurantHandler  commands.CreateRestaurantCommandHandler
	createPlateHandler       commands.CreatePlateCommandHandler
	updatePlateHandler       commands.UpdatePlateCommandHandler
	togglePlateStatusHandler commands.TogglePlateStatusCommandHandler

	// Query handlers
	listOrdersByStatusHandler      queries.ListOrdersByStatusQueryHandler
	listRestaurantsHandler         queries.ListRestaurantsQueryHandler
	listPlatesByRestaurantHandler  queries.ListPlatesByRestaurantQueryHandler
	getOrderTracesHandler          queries.GetOrderTracesQueryHandler
	getEmployeesRankingHandler     queries.GetEmployeesRankingQueryHandler
	validateOwnerRestaurantHandler queries.ValidateOwnerRestaurantQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	createPlateHandler commands.CreatePlateCommandHandler,
	updatePlateHandler commands.UpdatePlateCommandHandler,
	togglePlateStatusHandler commands.TogglePlateStatusCommandHandler,
	listOrdersByStatusHandler queries.ListOrdersByStatusQueryHandler,
	listRestaurantsHandler queries.ListRestaurantsQueryHandler,
	listPlatesByRestaurantHandler queries.ListPlatesByRestaurantQueryHandler,
	getOrderTracesHandler queries.GetOrderTracesQueryHandler,
	getEmployeesRankingHandler queries.GetEmployeesRankingQueryHandler,
	validateOwnerRestaurantHandler queries.ValidateOwnerRestaurantQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		assignOrderHandler:             assignOrderHandler,
		markOrderReadyHandler:          markOrderReadyHandler,
		deliverOrderHandler:            deliverOrderHandler,
		cancelOrderHandler:             cancelOrderHandler,
		createRestaurantHandler:        createRestaurantHandler,
		createPlateHandler:             createPlateHandler,
		updatePlateHandler:             updatePlateHandler,
		togglePlateStatusHandler:       togglePlateStatusHandler,
		listOrdersByStatusHandler:      listOrdersByStatusHandler,
		listRestaurantsHandler:         listRestaurantsHandler,
		listPlatesByRestaurantHandler:  listPlatesByRestaurantHandler,
		getOrderTracesHandler:          getOrderTracesHandler,
		getEmployeesRankingHandler:     getEmployeesRankingHandler,
		validateOwnerRestaurantHandler: validateOwnerRestaurantHandler,
	}
}

// RegisterRoutes binds all REST endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/orders", s.CreateOrder)
	e.GET("/api/orders", s.ListOrders)
	e.PUT("/api/orders/:id/assign", s.AssignOrder)
	e.PUT("/api/orders/:id/ready", s.MarkOrderReady)
	e.PUT("/api/orders/:id/deliver", s.DeliverOrder)
	e.PUT("/api/orders/:id/cancel", s.CancelOrder)
	e.GET("/api/orders/:id/traces", s.GetOrderTraces)
	e.GET("/api/efficiency/ranking", s.GetEmployeesRanking)

	e.POST("/api/restaurants", s.CreateRestaurant)
	e.GET("/api/restaurants", s.ListRestaurants)
	e.GET("/api/restaurants/:id/plates", s.ListPlates)
	e.GET("/api/restaurants/:id/owner/:ownerId", s.ValidateOwnerRestaurant)

	e.POST("/api/plates", s.CreatePlate)
	e.PUT("/api/plates/:id", s.UpdatePlate)
	e.PATCH("/api/plates/:id/status", s.TogglePlateStatus)
}

type orderItemJSON struct {
	PlateID   string `json:"plateId"`
	PlateName string `json:"plateName,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice,omitempty"`
	Subtotal  string `json:"subtotal,omitempty"`
}

type orderJSON struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"clientId"`
	RestaurantID string          `json:"restaurantId"`
	Status       string          `json:"status"`
	TotalAmount  string          `json:"totalAmount"`
	Items        []orderItemJSON `json:"items"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type pageJSON[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func toPageJSON[T, U any](result page.Result[U], convert func(U) T) pageJSON[T] {
	content := make([]T, 0, len(result.Content))
	for _, item := range result.Content {
		content = append(content, convert(item))
	}
	return pageJSON[T]{
		Content:       content,
		Page:          result.Number,
		Size:          result.Size,
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
	}
}

// CreateOrder handles POST /api/orders - places a new order for the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Items []struct {
			PlateID  string `json:"plateId"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
	}
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	items := make([]commands.ItemSpec, 0, len(body.Items))
	for _, item := range body.Items {
		plateID, err := kernel.UUIDFromString(item.PlateID)
		if err != nil {
			return writeBadRequest(ctx, "invalid plate id")
		}
		items = append(items, commands.ItemSpec{PlateID: plateID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), caller.UserID, caller.Email, caller.Phone, caller.Role, items,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderJSON(placed))
}

// ListOrders handles GET /api/orders - lists the caller restaurant's orders
// in one status, paged.
func (s *Server) ListOrders(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return writeBadRequest(ctx, "invalid status")
	}

	pageNumber, pageSize := pageParams(ctx)
	query, err := queries.NewListOrdersByStatusQuery(
		caller.UserID, caller.Role, status, pageNumber, pageSize,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.listOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPageJSON(result, func(o queries.OrderResponse) orderJSON {
		items := make([]orderItemJSON, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, orderItemJSON{
				PlateName: item.PlateName,
				Quantity:  item.Quantity,
				Subtotal:  item.Subtotal,
			})
		}
		return orderJSON{
			ID:          o.ID.String(),
			Status:      o.Status,
			TotalAmount: o.TotalAmount,
			Items:       items,
			CreatedAt:   o.CreatedAt,
		}
	}))
}

// AssignOrder handles PUT /api/orders/:id/assign - the calling employee takes
// the order into preparation.
func (s *Server) AssignOrder(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, caller.UserID, caller.Email, caller.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderReady handles PUT /api/orders/:id/ready - the assigned employee
// marks the order ready for pickup.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID, caller.UserID, caller.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles PUT /api/orders/:id/deliver - hands the order off
// after verifying the client's security pin.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	var body struct {
		SecurityPin string `json:"securityPin"`
	}
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, caller.UserID, body.SecurityPin, caller.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles PUT /api/orders/:id/cancel - the client withdraws a
// still-pending order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, caller.UserID, caller.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderTraces handles GET /api/orders/:id/traces - the client reads their
// order's status history.
func (s *Server) GetOrderTraces(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderTracesQuery(orderID, caller.UserID, caller.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	traces, err := s.getOrderTracesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	type traceJSON struct {
		OrderID        string    `json:"orderId"`
		PreviousStatus string    `json:"previousStatus,omitempty"`
		NewStatus      string    `json:"newStatus"`
		EmployeeEmail  string    `json:"employeeEmail,omitempty"`
		OccurredAt     time.Time `json:"occurredAt"`
	}

	response := make([]traceJSON, 0, len(traces))
	for _, t := range traces {
		response = append(response, traceJSON{
			OrderID:        t.OrderID.String(),
			PreviousStatus: t.PreviousStatus,
			NewStatus:      t.NewStatus,
			EmployeeEmail:  t.EmployeeEmail,
			OccurredAt:     t.OccurredAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetEmployeesRanking handles GET /api/efficiency/ranking - the owner reads
// the per-employee average completion time report for their restaurant.
func (s *Server) GetEmployeesRanking(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	restaurantID, err := kernel.UUIDFromString(ctx.QueryParam("restaurantId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetEmployeesRankingQuery(restaurantID, caller.UserID, caller.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	rankings, err := s.getEmployeesRankingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	type rankingJSON struct {
		EmployeeID               string  `json:"employeeId"`
		EmployeeEmail            string  `json:"employeeEmail"`
		ProcessedOrders          int     `json:"processedOrders"`
		AverageDurationInMinutes float64 `json:"averageDurationInMinutes"`
	}

	response := make([]rankingJSON, 0, len(rankings))
	for _, r := range rankings {
		response = append(response, rankingJSON{
			EmployeeID:               r.EmployeeID.String(),
			EmployeeEmail:            r.EmployeeEmail,
			ProcessedOrders:          r.ProcessedOrders,
			AverageDurationInMinutes: r.AverageDurationInMinutes,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRestaurant handles POST /api/restaurants - an admin registers a
// restaurant for an owner.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Name    string `json:"name"`
		Nit     string `json:"nit"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		URLLogo string `json:"urlLogo"`
		OwnerID string `json:"ownerId"`
	}
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(body.OwnerID)
	if err != nil {
		return writeBadRequest(ctx, "invalid owner id")
	}

	cmd, err := commands.NewCreateRestaurantCommand(
		kernel.NewUUID(), body.Name, body.Nit, body.Address, body.Phone,
		body.URLLogo, ownerID, caller.Role,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"id":      created.ID().String(),
		"name":    created.Name(),
		"nit":     created.Nit(),
		"address": created.Address(),
		"phone":   created.Phone(),
		"urlLogo": created.URLLogo(),
		"ownerId": created.OwnerID().String(),
	})
}

// ListRestaurants handles GET /api/restaurants - any authenticated user
// browses the registered restaurants, paged and ordered by name.
func (s *Server) ListRestaurants(ctx echo.Context) error {
	if _, err := callerIdentity(ctx); err != nil {
		return writeError(ctx, err)
	}

	pageNumber, pageSize := pageParams(ctx)
	query := queries.NewListRestaurantsQuery(pageNumber, pageSize)

	result, err := s.listRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	type restaurantJSON struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		URLLogo string `json:"urlLogo"`
	}

	return ctx.JSON(http.StatusOK, toPageJSON(result,
		func(r queries.RestaurantResponse) restaurantJSON {
			return restaurantJSON{ID: r.ID.String(), Name: r.Name, URLLogo: r.URLLogo}
		}))
}

// ListPlates handles GET /api/restaurants/:id/plates - any authenticated user
// browses a restaurant's active menu, optionally filtered by category.
func (s *Server) ListPlates(ctx echo.Context) error {
	if _, err := callerIdentity(ctx); err != nil {
		return writeError(ctx, err)
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid restaurant id")
	}

	pageNumber, pageSize := pageParams(ctx)
	query, err := queries.NewListPlatesByRestaurantQuery(
		restaurantID, ctx.QueryParam("category"), pageNumber, pageSize,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.listPlatesByRestaurantHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	type plateJSON struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Price       string `json:"price"`
		URLImage    string `json:"urlImage"`
	}

	return ctx.JSON(http.StatusOK, toPageJSON(result, func(p queries.PlateResponse) plateJSON {
		return plateJSON{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Price:       p.Price,
			URLImage:    p.URLImage,
		}
	}))
}

// ValidateOwnerRestaurant handles GET /api/restaurants/:id/owner/:ownerId -
// reports whether the given user owns the given restaurant. Used by the
// user service during employee registration.
func (s *Server) ValidateOwnerRestaurant(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid restaurant id")
	}

	ownerID, err := kernel.UUIDFromString(ctx.Param("ownerId"))
	if err != nil {
		return writeBadRequest(ctx, "invalid owner id")
	}

	query, err := queries.NewValidateOwnerRestaurantQuery(restaurantID, ownerID, caller.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	isOwner, err := s.validateOwnerRestaurantHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"isOwner": isOwner})
}

// CreatePlate handles POST /api/plates - the owner adds a plate to their
// restaurant's menu.
func (s *Server) CreatePlate(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		Category     string `json:"category"`
		Price        string `json:"price"`
		URLImage     string `json:"urlImage"`
		RestaurantID string `json:"restaurantId"`
	}
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return writeBadRequest(ctx, "invalid restaurant id")
	}

	price, err := kernel.NewMoneyFromString(body.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreatePlateCommand(
		kernel.NewUUID(), body.Name, body.Description, body.Category, price,
		body.URLImage, restaurantID, caller.UserID, caller.Role,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createPlateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"id":           created.ID().String(),
		"name":         created.Name(),
		"description":  created.Description(),
		"category":     created.Category(),
		"price":        created.Price().String(),
		"urlImage":     created.URLImage(),
		"restaurantId": created.RestaurantID().String(),
		"active":       created.IsActive(),
	})
}

// UpdatePlate handles PUT /api/plates/:id - the owner changes a plate's
// price and description. Nothing else is editable.
func (s *Server) UpdatePlate(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	plateID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid plate id")
	}

	var body struct {
		Price       string `json:"price"`
		Description string `json:"description"`
	}
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoneyFromString(body.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdatePlateCommand(
		plateID, price, body.Description, caller.UserID, caller.Role,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updatePlateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TogglePlateStatus handles PATCH /api/plates/:id/status - the owner
// activates or deactivates a plate on the menu.
func (s *Server) TogglePlateStatus(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	plateID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid plate id")
	}

	var body struct {
		Active bool `json:"active"`
	}
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewTogglePlateStatusCommand(plateID, body.Active, caller.UserID, caller.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.togglePlateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// pageParams reads page/size query params; malformed or missing values fall
// back to the defaults applied by page.NewRequest.
func pageParams(ctx echo.Context) (int, int) {
	pageNumber, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("size"))
	return pageNumber, pageSize
}

func toOrderJSON(o *order.Order) orderJSON {
	items := make([]orderItemJSON, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, orderItemJSON{
			PlateID:   item.PlateID().String(),
			PlateName: item.PlateName(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
			Subtotal:  item.Subtotal().String(),
		})
	}

	return orderJSON{
		ID:           o.ID().String(),
		ClientID:     o.ClientID().String(),
		RestaurantID: o.RestaurantID().String(),
		Status:       o.Status().String(),
		TotalAmount:  o.TotalAmount().String(),
		Items:        items,
		CreatedAt:    o.CreatedAt(),
	}
}
