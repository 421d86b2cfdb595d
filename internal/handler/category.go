package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/atxserves/community-directory/internal/store"
)

type createCategoryReq struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// GetAllCategories lists every category.
func (h *DirectoryHandler) GetAllCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.GetAllCategories(c.Request().Context()))
}

// GetCategory returns one category by id.
func (h *DirectoryHandler) GetCategory(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category id"})
	}
	cat, err := h.Store.GetCategory(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch category"})
	}
	return c.JSON(http.StatusOK, cat)
}

// CreateCategory creates a category. The schema declares names unique but
// the store stays permissive, so the handler rejects a duplicate up front.
func (h *DirectoryHandler) CreateCategory(c echo.Context) error {
	var req createCategoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Icon == "" || req.Color == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, icon and color are required"})
	}
	ctx := c.Request().Context()
	for _, existing := range h.Store.GetAllCategories(ctx) {
		if existing.Name == req.Name {
			return c.JSON(http.StatusConflict, echo.Map{"error": "category name already exists"})
		}
	}
	cat := h.Store.CreateCategory(ctx, store.NewCategory{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	return c.JSON(http.StatusCreated, cat)
}
