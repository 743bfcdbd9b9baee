// Package httpgw implements the outbound gateways to the user, traceability,
// and notification services over plain HTTP/JSON.
//
// All gateways forward the caller's Authorization header when one was stored
// in the request context, so the downstream services see the same identity
// that invoked this service.
package httpgw

import (
	"context"
	"net/http"
)

type authContextKey struct{}

// WithAuthorization stores the caller's Authorization header value in the
// context for forwarding to downstream services.
func WithAuthorization(ctx context.Context, header string) context.Context {
	if header == "" {
		return ctx
	}
	return context.WithValue(ctx, authContextKey{}, header)
}

// applyAuthorization copies a stored Authorization header onto an outbound
// request, if one is present.
func applyAuthorization(ctx context.Context, req *http.Request) {
	if header, ok := ctx.Value(authContextKey{}).(string); ok {
		req.Header.Set("Authorization", header)
	}
}
