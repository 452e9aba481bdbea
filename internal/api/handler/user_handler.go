package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gestiondocumental/document-system/internal/core/domain"
	"github.com/gestiondocumental/document-system/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users with an optional exact cargo filter.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        cargo  query     string  false  "Filter by cargo"
// @Success      200    {array}   domain.User
// @Failure      404    {object}  map[string]string
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context(), c.QueryParam("cargo"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /api/users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User fields"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrValidation
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrValidation
	}

	user, err := h.service.Create(c.Request().Context(), toCreateUserInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Update handles PUT /api/users/:id with a partial payload.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrUserNotFound
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrValidation
	}

	user, err := h.service.Update(c.Request().Context(), id, toUserUpdate(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id  path      int  true  "User id"
// @Success      200 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrUserNotFound
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Usuario eliminado con éxito."})
}
