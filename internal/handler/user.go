package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/atxserves/community-directory/internal/config"
	"github.com/atxserves/community-directory/internal/store"
	"github.com/atxserves/community-directory/internal/utils"
)

// UserHandler serves the user collection. Users are unrelated to directory
// browsing; the endpoints exist so the store's full surface is reachable.
type UserHandler struct {
	Store *store.Store
	Cfg   config.Config
}

// NewUserHandler bundles the store and config for the user endpoints.
func NewUserHandler(cfg config.Config, s *store.Store) *UserHandler {
	return &UserHandler{Store: s, Cfg: cfg}
}

type createUserReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GetUser returns one user by id. The password hash never leaves the server.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	u, err := h.Store.GetUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch user"})
	}
	return c.JSON(http.StatusOK, u)
}

// CreateUser registers a user. The password is bcrypt-hashed before it
// reaches the store and usernames must be unique.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}
	ctx := c.Request().Context()
	if _, err := h.Store.GetUserByUsername(ctx, req.Username); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "username already taken"})
	}
	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create user"})
	}
	u := h.Store.CreateUser(ctx, store.NewUser{Username: req.Username, Password: hash})
	return c.JSON(http.StatusCreated, u)
}
