package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/atxserves/community-directory/internal/queue"
	queue_publisher "github.com/atxserves/community-directory/internal/service"
	"github.com/atxserves/community-directory/internal/store"
)

// AlertHandler serves the emergency-alert endpoints. Publish is the broker
// hook invoked after an alert is created; tests replace it.
type AlertHandler struct {
	Store   *store.Store
	Publish func(context.Context, queue.AlertRaisedEvent) error
}

// NewAlertHandler wires the handler to the store and the RabbitMQ publisher.
func NewAlertHandler(s *store.Store) *AlertHandler {
	return &AlertHandler{Store: s, Publish: queue_publisher.PublishAlertRaised}
}

type createAlertReq struct {
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	Active    *bool      `json:"active"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

// GetActiveAlerts lists alerts currently flagged active. The time window is
// not consulted; an expired alert stays visible until it is deactivated.
func (h *AlertHandler) GetActiveAlerts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.GetActiveAlerts(c.Request().Context()))
}

// GetAllAlerts lists every alert, active or not.
func (h *AlertHandler) GetAllAlerts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.GetAllAlerts(c.Request().Context()))
}

// CreateAlert raises an emergency alert and publishes it to the broker for
// downstream notifiers. Broker failures are ignored; the alert is stored
// either way.
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	var req createAlertReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Message == "" || req.Type == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "message and type are required"})
	}
	start := time.Now()
	if req.StartTime != nil {
		start = *req.StartTime
	}
	a := h.Store.CreateAlert(c.Request().Context(), store.NewAlert{
		Message:   req.Message,
		Type:      req.Type,
		Active:    req.Active,
		StartTime: start,
		EndTime:   req.EndTime,
	})

	event := queue.AlertRaisedEvent{
		AlertID:  a.ID,
		Message:  a.Message,
		Type:     a.Type,
		Active:   a.Active,
		StartsAt: a.StartTime.UTC().Format(time.RFC3339),
		RaisedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if a.EndTime != nil {
		event.EndsAt = a.EndTime.UTC().Format(time.RFC3339)
	}
	_ = h.Publish(c.Request().Context(), event)

	return c.JSON(http.StatusCreated, a)
}
