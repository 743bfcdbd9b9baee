package http

import (
	"errors"
	"net/http"

	"foodcourt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the wire shape of every non-2xx answer.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusByCode maps business-error codes to HTTP statuses. Codes absent from
// the map answer 500.
var statusByCode = map[string]int{
	"INVALID_TOKEN": http.StatusUnauthorized,

	"INSUFFICIENT_PERMISSIONS": http.StatusForbidden,
	"RESTAURANT_NOT_OWNER":     http.StatusForbidden,
	"USER_NOT_OWNER":           http.StatusForbidden,
	"INVALID_SECURITY_PIN":     http.StatusForbidden,

	"ORDER_NOT_FOUND":      http.StatusNotFound,
	"PLATE_NOT_FOUND":      http.StatusNotFound,
	"RESTAURANT_NOT_FOUND": http.StatusNotFound,

	"RESTAURANT_NIT_ALREADY_EXISTS":   http.StatusConflict,
	"CUSTOMER_HAS_ACTIVE_ORDER":       http.StatusConflict,
	"ORDER_ALREADY_ASSIGNED":          http.StatusConflict,
	"INVALID_ORDER_STATUS_TRANSITION": http.StatusConflict,
	"ORDER_CANNOT_BE_CANCELLED":       http.StatusConflict,

	"RESTAURANT_NAME_INVALID":            http.StatusBadRequest,
	"INVALID_NIT_FORMAT":                 http.StatusBadRequest,
	"INVALID_PHONE_FORMAT":               http.StatusBadRequest,
	"ORDER_ITEMS_REQUIRED":               http.StatusBadRequest,
	"INVALID_ITEM_QUANTITY":              http.StatusBadRequest,
	"ORDER_PLATES_DIFFERENT_RESTAURANTS": http.StatusBadRequest,
}

// writeError maps a use-case error onto the HTTP taxonomy: business errors
// answer their mapped status, validation errors answer 400, unknown object
// lookups 404, everything else 500.
func writeError(ctx echo.Context, err error) error {
	var businessErr *errs.BusinessError
	if errors.As(err, &businessErr) {
		status, ok := statusByCode[businessErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		return ctx.JSON(status, errorResponse{
			Code:    businessErr.Code,
			Message: businessErr.Message,
		})
	}

	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	}

	var requiredErr *errs.ValueIsRequiredError
	var invalidErr *errs.ValueIsInvalidError
	var outOfRangeErr *errs.ValueIsOutOfRangeError
	if errors.As(err, &requiredErr) || errors.As(err, &invalidErr) || errors.As(err, &outOfRangeErr) {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
	})
}

// writeBadRequest answers 400 with a literal message for malformed input the
// use-case layer never sees (unparseable bodies, bad path params).
func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    "BAD_REQUEST",
		Message: message,
	})
}
