package queries

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/page"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersByStatusQueryHandler reads a restaurant's order backlog straight
// from the database. The restaurant is resolved from the requesting employee
// through the user service, so an employee only ever sees their own
// restaurant's orders.
type ListOrdersByStatusQueryHandler struct {
	db    *gorm.DB
	users ports.UserGateway
}

// NewListOrdersByStatusQueryHandler creates a handler for order listings.
func NewListOrdersByStatusQueryHandler(db *gorm.DB, users ports.UserGateway) ListOrdersByStatusQueryHandler {
	return ListOrdersByStatusQueryHandler{db: db, users: users}
}

// Handle executes the listing query. Results are ordered by creation time so
// the kitchen works the backlog first-come first-served.
func (h ListOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByStatusQuery,
) (page.Result[OrderResponse], error) {
	var empty page.Result[OrderResponse]

	if err := query.Validate(); err != nil {
		return empty, err
	}
	if err := query.ActorRole().EnsureEmployee(); err != nil {
		return empty, err
	}

	restaurantID, ok := h.users.GetEmployeeRestaurant(ctx, query.EmployeeID())
	if !ok {
		return empty, errs.ErrInsufficientPermissions
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM orders
		WHERE restaurant_id = ? AND status = ?
	`, restaurantID.String(), query.Status()).Scan(&total).Error
	if err != nil {
		return empty, err
	}

	req := query.PageRequest()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_email,
			employee_email,
			status,
			total_amount,
			created_at
		FROM orders
		WHERE restaurant_id = ? AND status = ?
		ORDER BY created_at
		LIMIT ? OFFSET ?
	`, restaurantID.String(), query.Status(), req.Size, req.Offset()).Rows()
	if err != nil {
		return empty, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, req.Size)
	ids := make([]string, 0, req.Size)
	for rows.Next() {
		var (
			id            uuid.UUID
			clientEmail   string
			employeeEmail string
			status        int
			totalAmount   decimal.Decimal
			createdAt     time.Time
		)
		if err = rows.Scan(&id, &clientEmail, &employeeEmail, &status, &totalAmount, &createdAt); err != nil {
			return empty, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return empty, idErr
		}

		orders = append(orders, OrderResponse{
			ID:            orderID,
			ClientEmail:   clientEmail,
			EmployeeEmail: employeeEmail,
			Status:        order.Status(status).String(),
			TotalAmount:   totalAmount.StringFixed(2),
			CreatedAt:     createdAt,
		})
		ids = append(ids, orderID.String())
	}
	if err = rows.Err(); err != nil {
		return empty, err
	}

	if err = h.loadItems(ctx, ids, orders); err != nil {
		return empty, err
	}

	return page.NewResult(orders, req, total), nil
}

func (h ListOrdersByStatusQueryHandler) loadItems(
	ctx context.Context, ids []string, orders []OrderResponse,
) error {
	if len(ids) == 0 {
		return nil
	}

	byID := make(map[string]int, len(orders))
	for i, o := range orders {
		byID[o.ID.String()] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			plate_name,
			quantity,
			subtotal
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   uuid.UUID
			plateName string
			quantity  int
			subtotal  decimal.Decimal
		)
		if err = rows.Scan(&orderID, &plateName, &quantity, &subtotal); err != nil {
			return err
		}

		idx, known := byID[orderID.String()]
		if !known {
			continue
		}
		orders[idx].Items = append(orders[idx].Items, OrderItemResponse{
			PlateName: plateName,
			Quantity:  quantity,
			Subtotal:  subtotal.StringFixed(2),
		})
	}
	return rows.Err()
}
