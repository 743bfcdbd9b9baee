// Package restaurantrepo provides data transfer objects and mapping functions for restaurant persistence.
package restaurantrepo

import (
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant
// aggregates. The NIT carries a unique index so registration can rely on the
// database to reject duplicates under concurrency.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255)"`
	Nit     string    `gorm:"type:varchar(20);uniqueIndex"`
	Address string    `gorm:"type:varchar(255)"`
	Phone   string    `gorm:"type:varchar(20)"`
	URLLogo string    `gorm:"type:text"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:      r.ID().Bytes(),
		Name:    r.Name(),
		Nit:     r.Nit(),
		Address: r.Address(),
		Phone:   r.Phone(),
		URLLogo: r.URLLogo(),
		OwnerID: r.OwnerID().Bytes(),
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		id,
		dto.Name,
		dto.Nit,
		dto.Address,
		dto.Phone,
		dto.URLLogo,
		ownerID,
	), nil
}
