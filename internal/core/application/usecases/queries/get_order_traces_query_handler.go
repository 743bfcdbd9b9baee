package queries

import (
	"context"

	"foodcourt/internal/core/domain/model/trace"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTracesQueryHandler retrieves an order's status history. The
// ownership check runs against the local orders table; the history itself
// comes from the traceability service and read failures propagate, unlike
// the best-effort writes.
type GetOrderTracesQueryHandler struct {
	db           *gorm.DB
	traceability ports.TraceabilityGateway
}

// NewGetOrderTracesQueryHandler creates a handler for order trace lookups.
func NewGetOrderTracesQueryHandler(
	db *gorm.DB,
	traceability ports.TraceabilityGateway,
) GetOrderTracesQueryHandler {
	return GetOrderTracesQueryHandler{db: db, traceability: traceability}
}

// Handle executes the trace lookup.
func (h GetOrderTracesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTracesQuery,
) ([]trace.OrderTrace, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.ActorRole().EnsureClient(); err != nil {
		return nil, err
	}

	var clientID uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT client_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row().Scan(&clientID)
	if err != nil {
		if isNoRows(err) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, err
	}

	if query.ClientID().String() != clientID.String() {
		return nil, errs.ErrInsufficientPermissions
	}

	return h.traceability.GetOrderTraces(ctx, query.OrderID())
}
