package queries

import (
	"context"

	"foodcourt/internal/core/domain/model/trace"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEmployeesRankingQueryHandler retrieves a restaurant's per-employee
// average completion times from the traceability service, after confirming
// the requester owns the restaurant.
type GetEmployeesRankingQueryHandler struct {
	db           *gorm.DB
	traceability ports.TraceabilityGateway
}

// NewGetEmployeesRankingQueryHandler creates a handler for the efficiency
// report.
func NewGetEmployeesRankingQueryHandler(
	db *gorm.DB,
	traceability ports.TraceabilityGateway,
) GetEmployeesRankingQueryHandler {
	return GetEmployeesRankingQueryHandler{db: db, traceability: traceability}
}

// Handle executes the report query.
func (h GetEmployeesRankingQueryHandler) Handle(
	ctx context.Context,
	query GetEmployeesRankingQuery,
) ([]trace.EmployeeRanking, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.ActorRole().EnsureOwner(); err != nil {
		return nil, err
	}

	var ownerID uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT owner_id
		FROM restaurants
		WHERE id = ?
	`, query.RestaurantID().String()).Row().Scan(&ownerID)
	if err != nil {
		if isNoRows(err) {
			return nil, errs.ErrRestaurantNotFound
		}
		return nil, err
	}

	if query.OwnerID().String() != ownerID.String() {
		return nil, errs.ErrRestaurantNotOwner
	}

	return h.traceability.GetEmployeesRanking(ctx, query.RestaurantID())
}
