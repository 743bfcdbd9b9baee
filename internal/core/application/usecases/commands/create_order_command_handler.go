package commands

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/plate"
	"foodcourt/internal/core/domain/model/trace"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// It enforces the one-active-order rule, resolves the requested plates from
// the menu, prices each line from the plate's current price, and reports the
// creation to the traceability service once the order is committed.
type CreateOrderCommandHandler struct {
	uowFactory   UoWFactory
	validator    services.OrderValidator
	traceability ports.TraceabilityGateway
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	validator services.OrderValidator,
	traceability ports.TraceabilityGateway,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		validator:    validator,
		traceability: traceability,
	}
}

// Handle processes the order placement command and returns the persisted
// order. The active-order check and the insert run in one transaction; the
// partial unique index on active client orders backs the check against
// concurrent placements.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := cmd.ActorRole().EnsureClient(); err != nil {
		return nil, err
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return nil, err
	}
	if err = h.validator.ValidateStructure(items); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	activeOrders, err := orderRepo.GetActiveByClient(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}
	if err = h.validator.EnsureNoActiveOrders(activeOrders); err != nil {
		return nil, err
	}

	plates, err := h.resolvePlates(ctx, uow.PlateRepository(), cmd.Items())
	if err != nil {
		return nil, err
	}
	restaurantID, err := h.validator.SameRestaurant(plates)
	if err != nil {
		return nil, err
	}

	enriched := enrichItems(items, plates)

	placed, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ClientID(),
		cmd.ClientEmail(),
		cmd.ClientPhone(),
		restaurantID,
		enriched,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.traceability.RecordStatusChange(ctx, trace.StatusChange{
		OrderID:     placed.ID(),
		ClientID:    placed.ClientID(),
		ClientEmail: placed.ClientEmail(),
		Previous:    nil,
		New:         placed.Status(),
		OccurredAt:  placed.CreatedAt(),
	})

	return placed, nil
}

func (h *CreateOrderCommandHandler) resolvePlates(
	ctx context.Context, plateRepo ports.PlateRepository, specs []ItemSpec,
) ([]*plate.Plate, error) {
	ids := make([]kernel.UUID, 0, len(specs))
	seen := make(map[kernel.UUID]bool, len(specs))
	for _, spec := range specs {
		if !seen[spec.PlateID] {
			seen[spec.PlateID] = true
			ids = append(ids, spec.PlateID)
		}
	}

	plates, err := plateRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(plates) != len(ids) {
		return nil, errs.ErrPlateNotFound
	}
	return plates, nil
}

func buildItems(specs []ItemSpec) ([]order.Item, error) {
	items := make([]order.Item, 0, len(specs))
	for _, spec := range specs {
		item, err := order.NewItem(kernel.NewUUID(), spec.PlateID, spec.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func enrichItems(items []order.Item, plates []*plate.Plate) []order.Item {
	byID := make(map[kernel.UUID]*plate.Plate, len(plates))
	for _, p := range plates {
		byID[p.ID()] = p
	}

	enriched := make([]order.Item, 0, len(items))
	for _, item := range items {
		p := byID[item.PlateID()]
		enriched = append(enriched, item.Enrich(p.Name(), p.Price()))
	}
	return enriched
}
