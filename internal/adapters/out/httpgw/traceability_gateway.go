package httpgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/trace"
)

// TraceabilityGateway talks to the external traceability service.
// Writes are best-effort; reads propagate their errors.
type TraceabilityGateway struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewTraceabilityGateway creates a gateway against the traceability service
// at baseURL.
func NewTraceabilityGateway(
	baseURL string, client *http.Client, logger *slog.Logger,
) *TraceabilityGateway {
	return &TraceabilityGateway{
		baseURL: baseURL,
		client:  client,
		logger:  logger.With("component", "traceability_gateway"),
	}
}

type statusChangeRequest struct {
	OrderID        string    `json:"orderId"`
	ClientID       string    `json:"clientId"`
	ClientEmail    string    `json:"clientEmail"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	NewStatus      string    `json:"newStatus"`
	EmployeeID     string    `json:"employeeId,omitempty"`
	EmployeeEmail  string    `json:"employeeEmail,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

type orderTraceResponse struct {
	OrderID        string    `json:"orderId"`
	ClientID       string    `json:"clientId"`
	ClientEmail    string    `json:"clientEmail"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	EmployeeID     string    `json:"employeeId"`
	EmployeeEmail  string    `json:"employeeEmail"`
	OccurredAt     time.Time `json:"occurredAt"`
}

type employeeRankingResponse struct {
	EmployeeID               string  `json:"employeeId"`
	EmployeeEmail            string  `json:"employeeEmail"`
	ProcessedOrders          int     `json:"processedOrders"`
	AverageDurationInMinutes float64 `json:"averageDurationInMinutes"`
}

// RecordStatusChange reports a status transition. A failure is logged and
// swallowed so the order operation itself is never rolled back by an audit
// outage.
func (g *TraceabilityGateway) RecordStatusChange(ctx context.Context, change trace.StatusChange) {
	payload := statusChangeRequest{
		OrderID:       change.OrderID.String(),
		ClientID:      change.ClientID.String(),
		ClientEmail:   change.ClientEmail,
		NewStatus:     change.New.String(),
		EmployeeEmail: change.EmployeeEmail,
		OccurredAt:    change.OccurredAt,
	}
	if change.Previous != nil {
		payload.PreviousStatus = change.Previous.String()
	}
	if change.EmployeeID != nil {
		payload.EmployeeID = change.EmployeeID.String()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		g.logger.Warn("status change not recorded",
			"order_id", change.OrderID.String(), "error", err)
		return
	}

	url := g.baseURL + "/api/traces"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		g.logger.Warn("status change not recorded",
			"order_id", change.OrderID.String(), "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	applyAuthorization(ctx, req)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("status change not recorded",
			"order_id", change.OrderID.String(), "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		g.logger.Warn("status change not recorded",
			"order_id", change.OrderID.String(), "status", resp.StatusCode)
	}
}

// GetOrderTraces retrieves the full status history of an order.
func (g *TraceabilityGateway) GetOrderTraces(
	ctx context.Context, orderID kernel.UUID,
) ([]trace.OrderTrace, error) {
	url := fmt.Sprintf("%s/api/traces/%s", g.baseURL, orderID.String())

	var payload []orderTraceResponse
	if err := g.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	traces := make([]trace.OrderTrace, 0, len(payload))
	for _, item := range payload {
		t, err := toOrderTrace(item)
		if err != nil {
			return nil, err
		}
		traces = append(traces, t)
	}

	return traces, nil
}

// GetEmployeesRanking retrieves the per-employee efficiency report for a
// restaurant.
func (g *TraceabilityGateway) GetEmployeesRanking(
	ctx context.Context, restaurantID kernel.UUID,
) ([]trace.EmployeeRanking, error) {
	url := fmt.Sprintf("%s/api/traces/ranking/%s", g.baseURL, restaurantID.String())

	var payload []employeeRankingResponse
	if err := g.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	rankings := make([]trace.EmployeeRanking, 0, len(payload))
	for _, item := range payload {
		employeeID, err := kernel.UUIDFromString(item.EmployeeID)
		if err != nil {
			return nil, err
		}

		rankings = append(rankings, trace.EmployeeRanking{
			EmployeeID:               employeeID,
			EmployeeEmail:            item.EmployeeEmail,
			ProcessedOrders:          item.ProcessedOrders,
			AverageDurationInMinutes: item.AverageDurationInMinutes,
		})
	}

	return rankings, nil
}

func (g *TraceabilityGateway) getJSON(ctx context.Context, url string, out any) error {
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
		return fmt.Errorf("traceability service answered %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func toOrderTrace(item orderTraceResponse) (trace.OrderTrace, error) {
	orderID, err := kernel.UUIDFromString(item.OrderID)
	if err != nil {
		return trace.OrderTrace{}, err
	}

	clientID, err := kernel.UUIDFromString(item.ClientID)
	if err != nil {
		return trace.OrderTrace{}, err
	}

	var employeeID *kernel.UUID
	if item.EmployeeID != "" {
		id, err := kernel.UUIDFromString(item.EmployeeID)
		if err != nil {
			return trace.OrderTrace{}, err
		}
		employeeID = &id
	}

	return trace.OrderTrace{
		OrderID:        orderID,
		ClientID:       clientID,
		ClientEmail:    item.ClientEmail,
		PreviousStatus: item.PreviousStatus,
		NewStatus:      item.NewStatus,
		EmployeeID:     employeeID,
		EmployeeEmail:  item.EmployeeEmail,
		OccurredAt:     item.OccurredAt,
	}, nil
}
