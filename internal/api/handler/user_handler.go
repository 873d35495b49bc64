package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/angelb-studio/studio-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user management and the public
// artist views. Management endpoints live under the admin group.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Username string `json:"username"  validate:"required,min=3"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"required,oneof=player coach admin"`
}

type updateUserRequest struct {
	FullName *string `json:"full_name"`
	Username *string `json:"username"  validate:"omitempty,min=3"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// ListArtists handles GET /v1/artists.
//
// @Summary      List all artists
// @Tags         artists
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /v1/artists [get]
func (h *UserHandler) ListArtists(c echo.Context) error {
	artists, err := h.service.ListArtists(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artists)
}

// ArtistProfile handles GET /v1/artists/:id.
//
// @Summary      Get an artist with their artworks and posts
// @Tags         artists
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  ports.ArtistProfile
// @Failure      404  {object}  map[string]string
// @Router       /v1/artists/{id} [get]
func (h *UserHandler) ArtistProfile(c echo.Context) error {
	profile, err := h.service.ArtistProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// List handles GET /v1/admin/users.
//
// @Summary      List all users (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /v1/admin/users/:id.
//
// @Summary      Get a user (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /v1/admin/users. Unlike registration, the role is
// caller-chosen but still validated against the closed enum.
//
// @Summary      Create a user (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		FullName: req.FullName,
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Update handles PUT /v1/admin/users/:id. Role changes are rejected here;
// they go through the dedicated role endpoint.
//
// @Summary      Update a user (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admin/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUser{
		FullName: req.FullName,
		Username: req.Username,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangeRole handles PUT /v1/admin/users/:id/role. An invalid role value
// is rejected before the stored role is touched.
//
// @Summary      Change a user's role (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      changeRoleRequest  true  "New role"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/users/{id}/role [put]
func (h *UserHandler) ChangeRole(c echo.Context) error {
	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.ChangeRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /v1/admin/users/:id. Deleting a user cascades to
// their artworks, posts, wellness entries and section memberships, so the
// caller must acknowledge the cascade with the X-Confirm-Cascade header.
// Admins can never delete their own account.
//
// @Summary      Delete a user and their content (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id                 path    string  true  "User id"
// @Param        X-Confirm-Cascade  header  string  true  "Must be \"true\" to confirm the cascade"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if c.Request().Header.Get("X-Confirm-Cascade") != "true" {
		return echo.NewHTTPError(http.StatusBadRequest, "cascade deletion must be confirmed with the X-Confirm-Cascade header")
	}

	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
