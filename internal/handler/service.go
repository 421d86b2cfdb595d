// Package handler exposes the HTTP handlers of the directory API. Handlers
// validate and parse request input, call into the store and translate store
// results and sentinel errors into JSON responses: absent entities become
// 404s, bad parameters 400s, everything else a generic 500.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/atxserves/community-directory/internal/config"
	"github.com/atxserves/community-directory/internal/geo"
	"github.com/atxserves/community-directory/internal/hours"
	"github.com/atxserves/community-directory/internal/store"
)

// DirectoryHandler serves the browse side of the API: categories, services,
// offerings, events and parking.
type DirectoryHandler struct {
	Store *store.Store
	Cfg   config.Config
}

// NewDirectoryHandler bundles the store and config for the browse endpoints.
func NewDirectoryHandler(cfg config.Config, s *store.Store) *DirectoryHandler {
	return &DirectoryHandler{Store: s, Cfg: cfg}
}

// serviceDetail is the by-id response: the composite view plus a live
// status derived from the opening-hours string when it parses.
type serviceDetail struct {
	store.ServiceWithDetails
	CurrentStatus *string `json:"currentStatus,omitempty"`
	ClosingTime   *string `json:"closingTime,omitempty"`
}

// nearbyService annotates a result of the nearby query with its rounded
// distance in miles from the query point.
type nearbyService struct {
	store.ServiceWithDetails
	Distance float64 `json:"distance"`
}

type createServiceReq struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Phone       *string `json:"phone"`
	Hours       *string `json:"hours"`
	Status      string  `json:"status"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CategoryID  uint64  `json:"categoryId"`
}

// GetAllServices returns every bare service record.
func (h *DirectoryHandler) GetAllServices(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.GetAllServices(c.Request().Context()))
}

// GetServiceDetails returns one service with category, offerings and
// parking attached, plus the live open/closed status when the service
// carries a parseable hours string.
func (h *DirectoryHandler) GetServiceDetails(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("serviceId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service id"})
	}
	d, err := h.Store.GetServiceWithDetails(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrServiceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch service details"})
	}
	resp := serviceDetail{ServiceWithDetails: *d}
	if d.Hours != nil {
		if sched, err := hours.ParseSchedule(*d.Hours); err == nil {
			status, closing := sched.StatusAt(time.Now())
			st := string(status)
			resp.CurrentStatus = &st
			if closing != "" {
				resp.ClosingTime = &closing
			}
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// GetServicesByCategory returns the detail view of every service in the
// given category.
func (h *DirectoryHandler) GetServicesByCategory(c echo.Context) error {
	categoryID, err := strconv.ParseUint(c.Param("categoryId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
	}
	return c.JSON(http.StatusOK, h.Store.GetServicesByCategory(c.Request().Context(), categoryID))
}

// GetNearbyServices returns services within the requested radius of a
// point, each annotated with its distance. The radius query parameter is
// optional and falls back to the configured default.
func (h *DirectoryHandler) GetNearbyServices(c echo.Context) error {
	latitude, latErr := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	longitude, lonErr := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if latErr != nil || lonErr != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid location coordinates"})
	}
	radius := h.Cfg.NearbyRadius
	if rs := c.QueryParam("radius"); rs != "" {
		r, err := strconv.ParseFloat(rs, 64)
		if err != nil || r <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid radius"})
		}
		radius = r
	}
	found := h.Store.GetServicesNearLocation(c.Request().Context(), latitude, longitude, radius)
	out := make([]nearbyService, 0, len(found))
	for _, d := range found {
		out = append(out, nearbyService{
			ServiceWithDetails: d,
			Distance:           geo.Round1(geo.Distance(latitude, longitude, d.Latitude, d.Longitude)),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// SearchServices returns services matching the q parameter against name,
// description or address.
func (h *DirectoryHandler) SearchServices(c echo.Context) error {
	query := c.QueryParam("q")
	if len(query) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "search query is required"})
	}
	return c.JSON(http.StatusOK, h.Store.SearchServices(c.Request().Context(), query))
}

// GetServiceOfferings lists the offerings of one service.
func (h *DirectoryHandler) GetServiceOfferings(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("serviceId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service id"})
	}
	return c.JSON(http.StatusOK, h.Store.GetOfferingsByService(c.Request().Context(), id))
}

// CreateService creates a service location.
func (h *DirectoryHandler) CreateService(c echo.Context) error {
	var req createServiceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Address == "" || req.CategoryID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, address and categoryId are required"})
	}
	svc := h.Store.CreateService(c.Request().Context(), store.NewService{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Hours:       req.Hours,
		Status:      req.Status,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CategoryID:  req.CategoryID,
	})
	return c.JSON(http.StatusCreated, svc)
}

type createOfferingReq struct {
	ServiceID uint64 `json:"serviceId"`
	Name      string `json:"name"`
}

// CreateOffering attaches a named program to a service.
func (h *DirectoryHandler) CreateOffering(c echo.Context) error {
	var req createOfferingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.ServiceID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "serviceId and name are required"})
	}
	o := h.Store.CreateOffering(c.Request().Context(), store.NewOffering{
		ServiceID: req.ServiceID,
		Name:      req.Name,
	})
	return c.JSON(http.StatusCreated, o)
}
