// Package platerepo provides data transfer objects and mapping functions for plate persistence.
package platerepo

import (
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/plate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlateDTO represents the database structure for persisting plate entities.
// Indexed by restaurant so menu listings stay cheap.
type PlateDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255)"`
	Description  string          `gorm:"type:text"`
	Category     string          `gorm:"type:varchar(100);index"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	URLImage     string          `gorm:"type:text"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;index"`
	Active       bool
}

// TableName specifies the database table name for plate entities.
func (PlateDTO) TableName() string {
	return "plates"
}

// fromDomain converts a plate domain entity to its database representation.
func fromDomain(p *plate.Plate) PlateDTO {
	return PlateDTO{
		ID:           p.ID().Bytes(),
		Name:         p.Name(),
		Description:  p.Description(),
		Category:     p.Category(),
		Price:        p.Price().Amount(),
		URLImage:     p.URLImage(),
		RestaurantID: p.RestaurantID().Bytes(),
		Active:       p.IsActive(),
	}
}

// toDomain converts a database DTO to a plate domain entity.
func toDomain(dto PlateDTO) (*plate.Plate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return plate.RestorePlate(
		id,
		dto.Name,
		dto.Description,
		dto.Category,
		price,
		dto.URLImage,
		restaurantID,
		dto.Active,
	), nil
}
