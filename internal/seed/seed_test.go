package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atxserves/community-directory/internal/seed"
	"github.com/atxserves/community-directory/internal/store"
)

func TestLoadPopulatesDemoDataset(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	seed.Load(ctx, s)

	assert.Len(t, s.GetAllCategories(ctx), 6)
	assert.Len(t, s.GetAllServices(ctx), 5)
	assert.Len(t, s.GetAllEvents(ctx), 5)
	require.Len(t, s.GetActiveAlerts(ctx), 1)

	// The flagship center carries its offerings and parking.
	d, err := s.GetServiceWithDetails(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Rosewood-Zaragosa Neighborhood Center", d.Name)
	require.NotNil(t, d.Category)
	assert.Equal(t, "Food Assistance", d.Category.Name)
	assert.Len(t, d.Offerings, 3)
	assert.Len(t, d.Parking, 1)
}

func TestLoadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	seed.Load(ctx, s)
	seed.Load(ctx, s)

	assert.Len(t, s.GetAllCategories(ctx), 6)
	assert.Len(t, s.GetAllServices(ctx), 5)
}

func TestLoadSkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	s.CreateCategory(ctx, store.NewCategory{Name: "Custom", Icon: "star", Color: "#123"})

	seed.Load(ctx, s)

	assert.Len(t, s.GetAllCategories(ctx), 1)
	assert.Empty(t, s.GetAllServices(ctx))
}
