package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atxserves/community-directory/internal/config"
	"github.com/atxserves/community-directory/internal/handler"
	"github.com/atxserves/community-directory/internal/store"
)

func testCfg() config.Config {
	return config.Config{Env: "test", Port: "0", BcryptCost: 4, NearbyRadius: 10}
}

func ptr(s string) *string { return &s }

// get builds an echo context for a GET request with optional path params.
func get(e *echo.Echo, target string, names []string, values []string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

// post builds an echo context for a JSON POST request.
func post(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

func TestGetServiceDetails(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	cat := s.CreateCategory(ctx, store.NewCategory{Name: "Food", Icon: "utensils", Color: "#E57200"})
	svc := s.CreateService(ctx, store.NewService{
		Name:       "Pantry",
		Address:    "1 Main St",
		Hours:      ptr("24/7"),
		CategoryID: cat.ID,
	})
	h := handler.NewDirectoryHandler(testCfg(), s)
	e := echo.New()

	t.Run("invalid id", func(t *testing.T) {
		c, rec := get(e, "/", []string{"serviceId"}, []string{"abc"})
		require.NoError(t, h.GetServiceDetails(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		c, rec := get(e, "/", []string{"serviceId"}, []string{"99"})
		require.NoError(t, h.GetServiceDetails(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("found with live status", func(t *testing.T) {
		c, rec := get(e, "/", []string{"serviceId"}, []string{"1"})
		require.NoError(t, h.GetServiceDetails(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, svc.Name, body["name"])
		assert.Equal(t, "open", body["currentStatus"], "24/7 schedule is always open")
		require.NotNil(t, body["category"])
		assert.NotContains(t, body, "closingTime")
	})
}

func TestGetNearbyServices(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	s.CreateService(ctx, store.NewService{Name: "Close", Address: "a", Latitude: 30.0, Longitude: -97.0, CategoryID: 1})
	s.CreateService(ctx, store.NewService{Name: "Distant", Address: "b", Latitude: 31.0, Longitude: -97.0, CategoryID: 1})
	h := handler.NewDirectoryHandler(testCfg(), s)
	e := echo.New()

	t.Run("invalid coordinates", func(t *testing.T) {
		c, rec := get(e, "/?latitude=abc&longitude=-97", nil, nil)
		require.NoError(t, h.GetNearbyServices(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid radius", func(t *testing.T) {
		c, rec := get(e, "/?latitude=30&longitude=-97&radius=-1", nil, nil)
		require.NoError(t, h.GetNearbyServices(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("default radius filters and annotates distance", func(t *testing.T) {
		c, rec := get(e, "/?latitude=30&longitude=-97", nil, nil)
		require.NoError(t, h.GetNearbyServices(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "Close", body[0]["name"])
		assert.Equal(t, 0.0, body[0]["distance"])
	})

	t.Run("wider radius reaches the distant one", func(t *testing.T) {
		c, rec := get(e, "/?latitude=30&longitude=-97&radius=100", nil, nil)
		require.NoError(t, h.GetNearbyServices(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, 69.1, body[1]["distance"])
	})
}

func TestSearchServicesRequiresQuery(t *testing.T) {
	h := handler.NewDirectoryHandler(testCfg(), store.New())
	e := echo.New()

	c, rec := get(e, "/", nil, nil)
	require.NoError(t, h.SearchServices(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateService(t *testing.T) {
	s := store.New()
	h := handler.NewDirectoryHandler(testCfg(), s)
	e := echo.New()

	t.Run("missing fields", func(t *testing.T) {
		c, rec := post(e, "/", `{"name":"No Address"}`)
		require.NoError(t, h.CreateService(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created with defaults", func(t *testing.T) {
		c, rec := post(e, "/", `{"name":"Pantry","address":"1 Main St","latitude":30.1,"longitude":-97.2,"categoryId":3}`)
		require.NoError(t, h.CreateService(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1.0, body["id"])
		assert.Equal(t, "open", body["status"])
		assert.NotContains(t, body, "phone")
	})
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	s := store.New()
	h := handler.NewDirectoryHandler(testCfg(), s)
	e := echo.New()

	c, rec := post(e, "/", `{"name":"Food","icon":"utensils","color":"#E57200"}`)
	require.NoError(t, h.CreateCategory(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = post(e, "/", `{"name":"Food","icon":"utensils","color":"#E57200"}`)
	require.NoError(t, h.CreateCategory(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
