package queries

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/page"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRestaurantsQueryHandler reads the restaurant directory from the
// database. The listing exposes only the fields a browsing client needs.
type ListRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewListRestaurantsQueryHandler creates a handler for the restaurant
// directory.
func NewListRestaurantsQueryHandler(db *gorm.DB) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{db: db}
}

// Handle executes the directory query, ordered alphabetically by name.
func (h ListRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantsQuery,
) (page.Result[RestaurantResponse], error) {
	var empty page.Result[RestaurantResponse]

	if err := query.Validate(); err != nil {
		return empty, err
	}

	var total int64
	if err := h.db.WithContext(ctx).Raw(`SELECT count(*) FROM restaurants`).Scan(&total).Error; err != nil {
		return empty, err
	}

	req := query.PageRequest()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			url_logo
		FROM restaurants
		ORDER BY name
		LIMIT ? OFFSET ?
	`, req.Size, req.Offset()).Rows()
	if err != nil {
		return empty, err
	}
	defer rows.Close()

	restaurants := make([]RestaurantResponse, 0, req.Size)
	for rows.Next() {
		var (
			id      uuid.UUID
			name    string
			urlLogo string
		)
		if err = rows.Scan(&id, &name, &urlLogo); err != nil {
			return empty, err
		}

		restaurantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return empty, idErr
		}

		restaurants = append(restaurants, RestaurantResponse{
			ID:      restaurantID,
			Name:    name,
			URLLogo: urlLogo,
		})
	}
	if err = rows.Err(); err != nil {
		return empty, err
	}

	return page.NewResult(restaurants, req, total), nil
}
