package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/page"
	"foodcourt/internal/pkg/guard"
)

var ErrListPlatesByRestaurantQueryIsNotConstructed = errors.New(
	"ListPlatesByRestaurantQuery must be created via NewListPlatesByRestaurantQuery constructor",
)

// ListPlatesByRestaurantQuery retrieves one page of a restaurant's menu,
// optionally filtered by category. Clients browsing the menu see active
// plates only.
type ListPlatesByRestaurantQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	category     string
	pageReq      page.Request

	guard guard.ConstructorGuard
}

// NewListPlatesByRestaurantQuery creates a query for a restaurant's menu.
// An empty category means no category filter.
func NewListPlatesByRestaurantQuery(
	restaurantID kernel.UUID,
	category string,
	pageNumber int,
	pageSize int,
) (ListPlatesByRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListPlatesByRestaurantQuery{}, err
	}

	return ListPlatesByRestaurantQuery{
		restaurantID: restaurantID,
		category:     category,
		pageReq:      page.NewRequest(pageNumber, pageSize),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPlatesByRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrListPlatesByRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant whose menu is
// listed.
func (q ListPlatesByRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Category returns the category filter, empty for all categories.
func (q ListPlatesByRestaurantQuery) Category() string {
	return q.category
}

// PageRequest returns the normalized page request.
func (q ListPlatesByRestaurantQuery) PageRequest() page.Request {
	return q.pageReq
}

// PlateResponse is one plate in a menu listing.
type PlateResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Category    string
	Price       string
	URLImage    string
}
