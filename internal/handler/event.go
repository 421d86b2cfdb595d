package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/atxserves/community-directory/internal/store"
)

type createEventReq struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	StartTime   *string   `json:"startTime"`
	EndTime     *string   `json:"endTime"`
	ServiceID   uint64    `json:"serviceId"`
	CategoryID  *uint64   `json:"categoryId"`
}

// GetAllEvents lists every event. Clients sort by date themselves.
func (h *DirectoryHandler) GetAllEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.GetAllEvents(c.Request().Context()))
}

// GetEvent returns one event together with its host service and category.
func (h *DirectoryHandler) GetEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("eventId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ev, err := h.Store.GetEventWithService(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch event"})
	}
	return c.JSON(http.StatusOK, ev)
}

// GetEventsByService lists events hosted at one service.
func (h *DirectoryHandler) GetEventsByService(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("serviceId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid service id"})
	}
	return c.JSON(http.StatusOK, h.Store.GetEventsByService(c.Request().Context(), id))
}

// CreateEvent schedules an event at a service.
func (h *DirectoryHandler) CreateEvent(c echo.Context) error {
	var req createEventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title == "" || req.ServiceID == 0 || req.Date.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title, date and serviceId are required"})
	}
	ev := h.Store.CreateEvent(c.Request().Context(), store.NewEvent{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		ServiceID:   req.ServiceID,
		CategoryID:  req.CategoryID,
	})
	return c.JSON(http.StatusCreated, ev)
}
