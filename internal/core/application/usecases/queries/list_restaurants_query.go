package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/page"
	"foodcourt/internal/pkg/guard"
)

var ErrListRestaurantsQueryIsNotConstructed = errors.New(
	"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
)

// ListRestaurantsQuery retrieves one page of registered restaurants ordered
// alphabetically. Open to any authenticated user.
type ListRestaurantsQuery struct {
	pageReq page.Request

	guard guard.ConstructorGuard
}

// NewListRestaurantsQuery creates a query for the restaurant directory.
func NewListRestaurantsQuery(pageNumber, pageSize int) ListRestaurantsQuery {
	return ListRestaurantsQuery{
		pageReq: page.NewRequest(pageNumber, pageSize),
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

// PageRequest returns the normalized page request.
func (q ListRestaurantsQuery) PageRequest() page.Request {
	return q.pageReq
}

// RestaurantResponse is one restaurant in the directory listing.
type RestaurantResponse struct {
	ID      kernel.UUID
	Name    string
	URLLogo string
}
