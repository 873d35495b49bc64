package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/angelb-studio/studio-api/internal/api/metrics"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

// SectionHandler handles HTTP requests for sections. Reads are public;
// every mutation lives under the admin group.
type SectionHandler struct {
	service ports.SectionService
}

func NewSectionHandler(service ports.SectionService) *SectionHandler {
	return &SectionHandler{service: service}
}

type createSectionRequest struct {
	Name        string `json:"name"        validate:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"   validate:"omitempty,url"`
}

type updateSectionRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"   validate:"omitempty,url"`
}

type memberRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// List handles GET /v1/sections.
//
// @Summary      List all sections
// @Tags         sections
// @Produce      json
// @Success      200  {array}  domain.Section
// @Router       /v1/sections [get]
func (h *SectionHandler) List(c echo.Context) error {
	sections, err := h.service.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sections)
}

// Profile handles GET /v1/sections/:slugOrID. The parameter is resolved as
// a slug first, then as an id.
//
// @Summary      Get a section profile with its content and members
// @Tags         sections
// @Produce      json
// @Param        slugOrID  path      string  true  "Section slug or id"
// @Success      200       {object}  ports.SectionProfile
// @Failure      404       {object}  map[string]string
// @Router       /v1/sections/{slugOrID} [get]
func (h *SectionHandler) Profile(c echo.Context) error {
	profile, err := h.service.Profile(c.Request().Context(), c.Param("slugOrID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Create handles POST /v1/admin/sections.
//
// @Summary      Create a section (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSectionRequest  true  "Section details"
// @Success      201   {object}  domain.Section
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admin/sections [post]
func (h *SectionHandler) Create(c echo.Context) error {
	var req createSectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	section, err := h.service.Create(c.Request().Context(), ports.CreateSectionInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues("section").Inc()
	return c.JSON(http.StatusCreated, section)
}

// Update handles PUT /v1/admin/sections/:id.
//
// @Summary      Update a section (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Section id"
// @Param        body  body      updateSectionRequest  true  "Fields to update"
// @Success      200   {object}  domain.Section
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admin/sections/{id} [put]
func (h *SectionHandler) Update(c echo.Context) error {
	var req updateSectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	section, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateSection{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, section)
}

// Delete handles DELETE /v1/admin/sections/:id.
//
// @Summary      Delete a section (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Section id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/sections/{id} [delete]
func (h *SectionHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddMember handles POST /v1/admin/sections/:id/members.
//
// @Summary      Add a member to a section (admin)
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string         true  "Section id"
// @Param        body  body  memberRequest  true  "Member to add"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/sections/{id}/members [post]
func (h *SectionHandler) AddMember(c echo.Context) error {
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.AddMember(c.Request().Context(), c.Param("id"), req.UserID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveMember handles DELETE /v1/admin/sections/:id/members/:userID.
//
// @Summary      Remove a member from a section (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id      path  string  true  "Section id"
// @Param        userID  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/sections/{id}/members/{userID} [delete]
func (h *SectionHandler) RemoveMember(c echo.Context) error {
	if err := h.service.RemoveMember(c.Request().Context(), c.Param("id"), c.Param("userID")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
