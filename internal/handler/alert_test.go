package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atxserves/community-directory/internal/handler"
	"github.com/atxserves/community-directory/internal/queue"
	"github.com/atxserves/community-directory/internal/store"
)

func TestCreateAlertPublishesEvent(t *testing.T) {
	s := store.New()
	h := handler.NewAlertHandler(s)
	var published []queue.AlertRaisedEvent
	h.Publish = func(_ context.Context, ev queue.AlertRaisedEvent) error {
		published = append(published, ev)
		return nil
	}
	e := echo.New()

	c, rec := post(e, "/", `{"message":"Flash Flood Warning","type":"warning"}`)
	require.NoError(t, h.CreateAlert(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["active"], "active defaults to true")

	require.Len(t, published, 1)
	assert.Equal(t, uint64(1), published[0].AlertID)
	assert.Equal(t, "Flash Flood Warning", published[0].Message)
	assert.NotEmpty(t, published[0].RaisedAt)
}

func TestCreateAlertValidation(t *testing.T) {
	h := handler.NewAlertHandler(store.New())
	h.Publish = func(context.Context, queue.AlertRaisedEvent) error { return nil }
	e := echo.New()

	c, rec := post(e, "/", `{"type":"warning"}`)
	require.NoError(t, h.CreateAlert(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetActiveAlertsFiltersInactive(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	inactive := false
	s.CreateAlert(ctx, store.NewAlert{Message: "old", Type: "info", Active: &inactive, StartTime: time.Now()})
	s.CreateAlert(ctx, store.NewAlert{Message: "current", Type: "warning", StartTime: time.Now()})
	h := handler.NewAlertHandler(s)
	e := echo.New()

	c, rec := get(e, "/", nil, nil)
	require.NoError(t, h.GetActiveAlerts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "current", body[0]["message"])

	c, rec = get(e, "/", nil, nil)
	require.NoError(t, h.GetAllAlerts(c))
	var all []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 2)
}
