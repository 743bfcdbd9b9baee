package http

import (
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/role"
	"foodcourt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// identity is the authenticated caller, resolved upstream by the API gateway
// and forwarded in headers. This service trusts the gateway and never parses
// the JWT itself.
type identity struct {
	UserID kernel.UUID
	Email  string
	Phone  string
	Role   role.Role
}

// callerIdentity extracts the caller identity from the X-User-* headers.
// Returns errs.ErrInvalidToken when the id or role header is missing or
// malformed.
func callerIdentity(ctx echo.Context) (identity, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-User-Id"))
	if err != nil {
		return identity{}, errs.ErrInvalidToken
	}

	callerRole, err := role.FromString(ctx.Request().Header.Get("X-User-Role"))
	if err != nil {
		return identity{}, errs.ErrInvalidToken
	}

	return identity{
		UserID: userID,
		Email:  ctx.Request().Header.Get("X-User-Email"),
		Phone:  ctx.Request().Header.Get("X-User-Phone"),
		Role:   callerRole,
	}, nil
}
