package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atxserves/community-directory/internal/store"
)

func TestGetEventsByService(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	e1 := s.CreateEvent(ctx, store.NewEvent{Title: "Job Fair", Date: date, ServiceID: 1})
	s.CreateEvent(ctx, store.NewEvent{Title: "Elsewhere", Date: date, ServiceID: 2})
	e2 := s.CreateEvent(ctx, store.NewEvent{Title: "ESL Class", Date: date, ServiceID: 1})

	got := s.GetEventsByService(ctx, 1)
	assert.Equal(t, []store.Event{*e1, *e2}, got)

	assert.Empty(t, s.GetEventsByService(ctx, 3))
}

func TestGetEventWithService(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	cat := s.CreateCategory(ctx, store.NewCategory{Name: "Health", Icon: "heartbeat", Color: "#F44336"})
	svc := s.CreateService(ctx, store.NewService{Name: "Clinic", Address: "9 Elm St", CategoryID: cat.ID})
	ev := s.CreateEvent(ctx, store.NewEvent{
		Title:      "Health Screenings",
		Date:       time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
		ServiceID:  svc.ID,
		CategoryID: u64ptr(cat.ID),
	})

	got, err := s.GetEventWithService(ctx, ev.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Service)
	assert.Equal(t, svc.ID, got.Service.ID)
	require.NotNil(t, got.Category)
	assert.Equal(t, cat.ID, got.Category.ID)
}

func TestGetEventWithServiceDanglingReferences(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	ev := s.CreateEvent(ctx, store.NewEvent{
		Title:      "Orphan Event",
		Date:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		ServiceID:  41,
		CategoryID: u64ptr(42),
	})

	got, err := s.GetEventWithService(ctx, ev.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Service)
	assert.Nil(t, got.Category)

	_, err = s.GetEventWithService(ctx, 99)
	assert.ErrorIs(t, err, store.ErrEventNotFound)
}
