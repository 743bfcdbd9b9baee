package restaurant

import (
	"errors"
	"regexp"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through the NewRestaurant or RestoreRestaurant factory methods.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

var (
	digitsOnlyPattern = regexp.MustCompile(`^\d+$`)
	phonePattern      = regexp.MustCompile(`^\+?\d{1,13}$`)
)

// Restaurant represents a registered restaurant. It is an aggregate root
// owned by a single user with the owner role.
//
// Restaurant enforces these format rules:
//   - name must contain at least one non-digit character
//   - nit must consist of digits only
//   - phone must match an optional plus sign followed by up to 13 digits
type Restaurant struct {
	id      kernel.UUID
	name    string
	nit     string
	address string
	phone   string
	urlLogo string
	ownerID kernel.UUID

	isConstructed bool
}

// NewRestaurant creates a new restaurant, validating all required fields and
// the name, nit, and phone formats.
func NewRestaurant(
	id kernel.UUID,
	name string,
	nit string,
	address string,
	phone string,
	urlLogo string,
	ownerID kernel.UUID,
) (*Restaurant, error) {
	r := &Restaurant{
		urlLogo:       urlLogo,
		isConstructed: true,
	}

	err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setNit(nit),
		r.setAddress(address),
		r.setPhone(phone),
		r.setOwnerID(ownerID),
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// RestoreRestaurant reconstructs a restaurant from persistent storage,
// bypassing the creation-time validation.
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	nit string,
	address string,
	phone string,
	urlLogo string,
	ownerID kernel.UUID,
) *Restaurant {
	return &Restaurant{
		id:            id,
		name:          name,
		nit:           nit,
		address:       address,
		phone:         phone,
		urlLogo:       urlLogo,
		ownerID:       ownerID,
		isConstructed: true,
	}
}

// Validate checks that the restaurant was properly constructed.
func (r *Restaurant) Validate() error {
	if !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's name.
func (r *Restaurant) Name() string {
	return r.name
}

// Nit returns the restaurant's tax identifier.
func (r *Restaurant) Nit() string {
	return r.nit
}

// Address returns the restaurant's address.
func (r *Restaurant) Address() string {
	return r.address
}

// Phone returns the restaurant's contact phone.
func (r *Restaurant) Phone() string {
	return r.phone
}

// URLLogo returns the link to the restaurant's logo.
func (r *Restaurant) URLLogo() string {
	return r.urlLogo
}

// OwnerID returns the identifier of the owning user.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// IsOwnedBy reports whether the given user owns this restaurant.
func (r *Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if digitsOnlyPattern.MatchString(name) {
		return errs.ErrRestaurantNameInvalid
	}
	r.name = name
	return nil
}

func (r *Restaurant) setNit(nit string) error {
	if nit == "" {
		return errs.NewValueIsRequiredError("nit")
	}
	if !digitsOnlyPattern.MatchString(nit) {
		return errs.ErrInvalidNitFormat
	}
	r.nit = nit
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}

func (r *Restaurant) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(phone) {
		return errs.ErrInvalidPhoneFormat
	}
	r.phone = phone
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	r.ownerID = ownerID
	return nil
}
