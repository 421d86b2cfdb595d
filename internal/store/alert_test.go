package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atxserves/community-directory/internal/store"
)

func TestActiveAlertsIgnoreTimeWindow(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	now := time.Now()
	pastEnd := now.Add(-2 * time.Hour)

	// Expired window but still flagged active.
	expired := s.CreateAlert(ctx, store.NewAlert{
		Message:   "Flash Flood Warning",
		Type:      "warning",
		StartTime: now.Add(-12 * time.Hour),
		EndTime:   &pastEnd,
	})
	inactive := s.CreateAlert(ctx, store.NewAlert{
		Message:   "Boil Notice lifted",
		Type:      "info",
		Active:    boolPtr(false),
		StartTime: now,
	})
	current := s.CreateAlert(ctx, store.NewAlert{
		Message:   "Heat Advisory",
		Type:      "warning",
		StartTime: now,
	})

	active := s.GetActiveAlerts(ctx)
	require.Len(t, active, 2)
	assert.Equal(t, expired.ID, active[0].ID)
	assert.Equal(t, current.ID, active[1].ID)

	all := s.GetAllAlerts(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, inactive.ID, all[1].ID)
}

func TestCreateAlertDefaults(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	a := s.CreateAlert(ctx, store.NewAlert{Message: "m", Type: "warning", StartTime: time.Now()})
	assert.True(t, a.Active, "active defaults to true")
	assert.Nil(t, a.EndTime)

	b := s.CreateAlert(ctx, store.NewAlert{Message: "m", Type: "warning", Active: boolPtr(false), StartTime: time.Now()})
	assert.False(t, b.Active)
}
