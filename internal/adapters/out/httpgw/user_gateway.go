package httpgw

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"foodcourt/internal/core/domain/model/kernel"
)

// UserGateway resolves roles and employment against the external user
// service. It is fail-closed: any transport or decoding failure is logged and
// reported as "no" so callers deny the operation instead of guessing.
type UserGateway struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewUserGateway creates a gateway against the user service at baseURL.
func NewUserGateway(baseURL string, client *http.Client, logger *slog.Logger) *UserGateway {
	return &UserGateway{
		baseURL: baseURL,
		client:  client,
		logger:  logger.With("component", "user_gateway"),
	}
}

// HasOwnerRole reports whether the given user holds the owner role.
func (g *UserGateway) HasOwnerRole(ctx context.Context, userID kernel.UUID) bool {
	var payload struct {
		Role string `json:"role"`
	}

	url := fmt.Sprintf("%s/api/users/%s", g.baseURL, userID.String())
	if err := g.getJSON(ctx, url, &payload); err != nil {
		g.logger.Warn("owner role check failed", "user_id", userID.String(), "error", err)
		return false
	}

	return payload.Role == "OWNER"
}

// GetEmployeeRestaurant resolves the restaurant an employee works for. The
// boolean is false when the user is not an employee of any restaurant or the
// lookup failed.
func (g *UserGateway) GetEmployeeRestaurant(
	ctx context.Context, employeeID kernel.UUID,
) (kernel.UUID, bool) {
	var payload struct {
		RestaurantID string `json:"restaurantId"`
	}

	url := fmt.Sprintf("%s/api/users/%s/restaurant", g.baseURL, employeeID.String())
	if err := g.getJSON(ctx, url, &payload); err != nil {
		g.logger.Warn("employee restaurant lookup failed",
			"employee_id", employeeID.String(), "error", err)
		return kernel.UUID{}, false
	}

	restaurantID, err := kernel.UUIDFromString(payload.RestaurantID)
	if err != nil {
		g.logger.Warn("employee restaurant lookup returned invalid id",
			"employee_id", employeeID.String(), "error", err)
		return kernel.UUID{}, false
	}

	return restaurantID, true
}

func (g *UserGateway) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	applyAuthorization(ctx, req)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("user service answered %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
