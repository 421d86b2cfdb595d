package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/atxserves/community-directory/internal/store"
)

type createParkingReq struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Type      string  `json:"type"`
	Hours     *string `json:"hours"`
	Rate      *string `json:"rate"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	ServiceID uint64  `json:"serviceId"`
}

// GetParkingByService lists the parking facilities of one service.
func (h *DirectoryHandler) GetParkingByService(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("serviceId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service id"})
	}
	return c.JSON(http.StatusOK, h.Store.GetParkingByService(c.Request().Context(), id))
}

// CreateParking attaches a parking facility to a service.
func (h *DirectoryHandler) CreateParking(c echo.Context) error {
	var req createParkingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Address == "" || req.Type == "" || req.ServiceID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, address, type and serviceId are required"})
	}
	p := h.Store.CreateParking(c.Request().Context(), store.NewParking{
		Name:      req.Name,
		Address:   req.Address,
		Type:      req.Type,
		Hours:     req.Hours,
		Rate:      req.Rate,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		ServiceID: req.ServiceID,
	})
	return c.JSON(http.StatusCreated, p)
}
