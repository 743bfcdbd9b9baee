package httpgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"foodcourt/internal/core/domain/model/kernel"
)

// NotificationGateway sends SMS notifications through the external messaging
// service. Sends are best-effort: a failure is logged and swallowed.
type NotificationGateway struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewNotificationGateway creates a gateway against the messaging service at
// baseURL.
func NewNotificationGateway(
	baseURL string, client *http.Client, logger *slog.Logger,
) *NotificationGateway {
	return &NotificationGateway{
		baseURL: baseURL,
		client:  client,
		logger:  logger.With("component", "notification_gateway"),
	}
}

// SendOrderReadySMS notifies the client that their order is ready, including
// the pickup security pin.
func (g *NotificationGateway) SendOrderReadySMS(
	ctx context.Context, phone string, orderID kernel.UUID, securityPin string,
) {
	payload := struct {
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}{
		Phone: phone,
		Message: fmt.Sprintf(
			"Tu orden #%s esta lista para que la tomes. PIN de Seguridad: %s",
			orderID.String(), securityPin,
		),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		g.logger.Warn("order ready SMS not sent", "order_id", orderID.String(), "error", err)
		return
	}

	url := g.baseURL + "/api/notifications/sms"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		g.logger.Warn("order ready SMS not sent", "order_id", orderID.String(), "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	applyAuthorization(ctx, req)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("order ready SMS not sent", "order_id", orderID.String(), "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		g.logger.Warn("order ready SMS not sent",
			"order_id", orderID.String(), "status", resp.StatusCode)
	}
}
