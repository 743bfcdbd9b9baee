package queries

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/page"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListPlatesByRestaurantQueryHandler reads a restaurant's menu from the
// database. Disabled plates are excluded, so the listing is what a client
// can actually order.
type ListPlatesByRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewListPlatesByRestaurantQueryHandler creates a handler for menu listings.
func NewListPlatesByRestaurantQueryHandler(db *gorm.DB) ListPlatesByRestaurantQueryHandler {
	return ListPlatesByRestaurantQueryHandler{db: db}
}

// Handle executes the menu query, ordered by plate name.
func (h ListPlatesByRestaurantQueryHandler) Handle(
	ctx context.Context,
	query ListPlatesByRestaurantQuery,
) (page.Result[PlateResponse], error) {
	var empty page.Result[PlateResponse]

	if err := query.Validate(); err != nil {
		return empty, err
	}

	where := `restaurant_id = ? AND active`
	args := []any{query.RestaurantID().String()}
	if query.Category() != "" {
		where += ` AND category = ?`
		args = append(args, query.Category())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT count(*) FROM plates WHERE `+where, args...).
		Scan(&total).Error
	if err != nil {
		return empty, err
	}

	req := query.PageRequest()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			category,
			price,
			url_image
		FROM plates
		WHERE `+where+`
		ORDER BY name
		LIMIT ? OFFSET ?
	`, append(args, req.Size, req.Offset())...).Rows()
	if err != nil {
		return empty, err
	}
	defer rows.Close()

	plates := make([]PlateResponse, 0, req.Size)
	for rows.Next() {
		var (
			id          uuid.UUID
			name        string
			description string
			category    string
			price       decimal.Decimal
			urlImage    string
		)
		if err = rows.Scan(&id, &name, &description, &category, &price, &urlImage); err != nil {
			return empty, err
		}

		plateID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return empty, idErr
		}

		plates = append(plates, PlateResponse{
			ID:          plateID,
			Name:        name,
			Description: description,
			Category:    category,
			Price:       price.StringFixed(2),
			URLImage:    urlImage,
		})
	}
	if err = rows.Err(); err != nil {
		return empty, err
	}

	return page.NewResult(plates, req, total), nil
}
