package errs

// BusinessError is a domain-rule violation carrying a stable machine-readable
// code and a human message. Business errors are raised at the point of
// detection and propagate unmodified to the API boundary, where the code is
// mapped to an HTTP status.
//
// Matching is by code, so errors.Is(err, ErrOrderNotFound) holds for any
// BusinessError with the ORDER_NOT_FOUND code.
type BusinessError struct {
	Code    string
	Message string
}

// NewBusinessError creates a business error with the given code and message.
func NewBusinessError(code, message string) *BusinessError {
	return &BusinessError{Code: code, Message: message}
}

func (e *BusinessError) Error() string {
	return e.Code + ": " + e.Message
}

// Is reports whether target is a BusinessError with the same code.
func (e *BusinessError) Is(target error) bool {
	t, ok := target.(*BusinessError)
	return ok && t.Code == e.Code
}

// The complete business-error taxonomy. Each entry is a sentinel usable both
// as a return value and as an errors.Is target.
var (
	ErrInvalidToken = NewBusinessError(
		"INVALID_TOKEN", "invalid authentication token")
	ErrRestaurantNotFound = NewBusinessError(
		"RESTAURANT_NOT_FOUND", "restaurant not found")
	ErrRestaurantNitAlreadyExists = NewBusinessError(
		"RESTAURANT_NIT_ALREADY_EXISTS", "a restaurant with this NIT already exists")
	ErrRestaurantNameInvalid = NewBusinessError(
		"RESTAURANT_NAME_INVALID", "restaurant name cannot consist of digits only")
	ErrInvalidPhoneFormat = NewBusinessError(
		"INVALID_PHONE_FORMAT", "invalid phone format")
	ErrInvalidNitFormat = NewBusinessError(
		"INVALID_NIT_FORMAT", "NIT must contain digits only")
	ErrRestaurantNotOwner = NewBusinessError(
		"RESTAURANT_NOT_OWNER", "user is not the owner of the restaurant")
	ErrUserNotOwner = NewBusinessError(
		"USER_NOT_OWNER", "user does not have the owner role")
	ErrPlateNotFound = NewBusinessError(
		"PLATE_NOT_FOUND", "plate not found")
	ErrCustomerHasActiveOrder = NewBusinessError(
		"CUSTOMER_HAS_ACTIVE_ORDER", "customer already has an active order")
	ErrOrderItemsRequired = NewBusinessError(
		"ORDER_ITEMS_REQUIRED", "order must contain at least one item")
	ErrOrderPlatesDifferentRestaurants = NewBusinessError(
		"ORDER_PLATES_DIFFERENT_RESTAURANTS", "all plates in an order must be from the same restaurant")
	ErrInvalidItemQuantity = NewBusinessError(
		"INVALID_ITEM_QUANTITY", "item quantity must be greater than zero")
	ErrInsufficientPermissions = NewBusinessError(
		"INSUFFICIENT_PERMISSIONS", "user does not have required permissions")
	ErrOrderNotFound = NewBusinessError(
		"ORDER_NOT_FOUND", "order not found")
	ErrOrderAlreadyAssigned = NewBusinessError(
		"ORDER_ALREADY_ASSIGNED", "order is already assigned to an employee")
	ErrInvalidOrderStatusTransition = NewBusinessError(
		"INVALID_ORDER_STATUS_TRANSITION", "invalid order status transition")
	ErrInvalidSecurityPin = NewBusinessError(
		"INVALID_SECURITY_PIN", "security pin does not match")
	ErrOrderCannotBeCancelled = NewBusinessError(
		"ORDER_CANNOT_BE_CANCELLED", "only pending orders can be cancelled")
)
