package plate

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrPlateIsNotConstructed is returned when a Plate instance was not created
// through the NewPlate or RestorePlate factory methods.
var ErrPlateIsNotConstructed = errors.New("Plate must be created via NewPlate constructor")

// Plate represents a dish on a restaurant's menu. It is an entity owned by
// exactly one restaurant and is created active.
//
// After creation only the price, the description, and the active flag may
// change. Name, category, image, and the owning restaurant are immutable.
type Plate struct {
	id           kernel.UUID
	name         string
	description  string
	category     string
	price        kernel.Money
	urlImage     string
	restaurantID kernel.UUID
	active       bool

	isConstructed bool
}

// NewPlate creates a new active plate, validating that all required fields
// are present and that the price is strictly positive.
func NewPlate(
	id kernel.UUID,
	name string,
	description string,
	category string,
	price kernel.Money,
	urlImage string,
	restaurantID kernel.UUID,
) (*Plate, error) {
	p := &Plate{
		description:   description,
		urlImage:      urlImage,
		active:        true,
		isConstructed: true,
	}

	err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		p.setPrice(price),
		p.setRestaurantID(restaurantID),
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// RestorePlate reconstructs a plate from persistent storage, bypassing the
// creation-time validation.
func RestorePlate(
	id kernel.UUID,
	name string,
	description string,
	category string,
	price kernel.Money,
	urlImage string,
	restaurantID kernel.UUID,
	active bool,
) *Plate {
	return &Plate{
		id:            id,
		name:          name,
		description:   description,
		category:      category,
		price:         price,
		urlImage:      urlImage,
		restaurantID:  restaurantID,
		active:        active,
		isConstructed: true,
	}
}

// Validate checks that the plate was properly constructed.
func (p *Plate) Validate() error {
	if !p.isConstructed {
		return ErrPlateIsNotConstructed
	}
	return nil
}

// ID returns the plate's unique identifier.
func (p *Plate) ID() kernel.UUID {
	return p.id
}

// Name returns the plate's name.
func (p *Plate) Name() string {
	return p.name
}

// Description returns the plate's description.
func (p *Plate) Description() string {
	return p.description
}

// Category returns the plate's category.
func (p *Plate) Category() string {
	return p.category
}

// Price returns the plate's price.
func (p *Plate) Price() kernel.Money {
	return p.price
}

// URLImage returns the link to the plate's image.
func (p *Plate) URLImage() string {
	return p.urlImage
}

// RestaurantID returns the identifier of the owning restaurant.
func (p *Plate) RestaurantID() kernel.UUID {
	return p.restaurantID
}

// IsActive reports whether the plate can currently be ordered.
func (p *Plate) IsActive() bool {
	return p.active
}

// ChangePrice sets a new price, which must be strictly positive.
func (p *Plate) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

// ChangeDescription replaces the plate's description.
func (p *Plate) ChangeDescription(description string) {
	p.description = description
}

// SetActive enables or disables the plate on the menu.
func (p *Plate) SetActive(active bool) {
	p.active = active
}

func (p *Plate) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	p.id = id
	return nil
}

func (p *Plate) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Plate) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

func (p *Plate) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}

func (p *Plate) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	p.restaurantID = restaurantID
	return nil
}
