// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by restaurant, client, and status.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID      uuid.UUID       `gorm:"type:uuid;index"`
	ClientEmail   string          `gorm:"type:varchar(255)"`
	ClientPhone   string          `gorm:"type:varchar(20)"`
	RestaurantID  uuid.UUID       `gorm:"type:uuid;index"`
	EmployeeID    *uuid.UUID      `gorm:"type:uuid;index"`
	EmployeeEmail string          `gorm:"type:varchar(255)"`
	Status        int             `gorm:"index"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2)"`
	SecurityPin   string          `gorm:"type:varchar(8)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single order line with its plate snapshot.
// The plate name and unit price are denormalized at order creation time so
// later plate edits never change what the client agreed to pay.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	PlateID   uuid.UUID `gorm:"type:uuid"`
	PlateName string    `gorm:"type:varchar(255)"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional employee assignment and the
// item snapshot rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	var employeeID *uuid.UUID
	if id := aggregate.Employee(); id != nil {
		raw := id.Bytes()
		employeeID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			PlateID:   item.PlateID().Bytes(),
			PlateName: item.PlateName(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
			Subtotal:  item.Subtotal().Amount(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		ClientID:      aggregate.ClientID().Bytes(),
		ClientEmail:   aggregate.ClientEmail(),
		ClientPhone:   aggregate.ClientPhone(),
		RestaurantID:  aggregate.RestaurantID().Bytes(),
		EmployeeID:    employeeID,
		EmployeeEmail: aggregate.EmployeeEmail(),
		Status:        int(aggregate.Status()),
		TotalAmount:   aggregate.TotalAmount().Amount(),
		SecurityPin:   aggregate.SecurityPin(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Items:         items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items, status, and the
// optional employee assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var employeeID *kernel.UUID
	if dto.EmployeeID != nil {
		eID, employeeErr := kernel.UUIDFromBytes((*dto.EmployeeID)[:])
		if employeeErr != nil {
			return nil, employeeErr
		}

		employeeID = &eID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		clientID,
		dto.ClientEmail,
		dto.ClientPhone,
		restaurantID,
		employeeID,
		dto.EmployeeEmail,
		items,
		order.Status(dto.Status),
		dto.SecurityPin,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	plateID, err := kernel.UUIDFromBytes(dto.PlateID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(id, plateID, dto.PlateName, dto.Quantity, unitPrice, subtotal)
}
