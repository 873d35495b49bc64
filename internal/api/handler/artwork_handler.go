package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/angelb-studio/studio-api/internal/api/metrics"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

// ArtworkHandler handles HTTP requests for artworks.
type ArtworkHandler struct {
	service ports.ArtworkService
}

func NewArtworkHandler(service ports.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{service: service}
}

type createArtworkRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"   validate:"required,url"`
	SectionID   string `json:"section_id"`
	Featured    bool   `json:"featured"`
}

type updateArtworkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"   validate:"omitempty,url"`
	SectionID   *string `json:"section_id"`
	Featured    *bool   `json:"featured"`
}

func (r *updateArtworkRequest) toUpdate() ports.UpdateArtwork {
	return ports.UpdateArtwork{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		SectionID:   r.SectionID,
		Featured:    r.Featured,
	}
}

// List handles GET /v1/artworks.
//
// @Summary      List all artworks
// @Tags         artworks
// @Produce      json
// @Success      200  {array}  domain.Artwork
// @Router       /v1/artworks [get]
func (h *ArtworkHandler) List(c echo.Context) error {
	artworks, err := h.service.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artworks)
}

// ListFeatured handles GET /v1/artworks/featured.
//
// @Summary      List featured artworks
// @Tags         artworks
// @Produce      json
// @Success      200  {array}  domain.Artwork
// @Router       /v1/artworks/featured [get]
func (h *ArtworkHandler) ListFeatured(c echo.Context) error {
	artworks, err := h.service.ListFeatured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artworks)
}

// Get handles GET /v1/artworks/:id.
//
// @Summary      Get an artwork by id
// @Tags         artworks
// @Produce      json
// @Param        id   path      string  true  "Artwork id"
// @Success      200  {object}  domain.Artwork
// @Failure      404  {object}  map[string]string
// @Router       /v1/artworks/{id} [get]
func (h *ArtworkHandler) Get(c echo.Context) error {
	artwork, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artwork)
}

// ListOwn handles GET /v1/me/artworks.
//
// @Summary      List the caller's artworks
// @Tags         artworks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Artwork
// @Failure      401  {object}  map[string]string
// @Router       /v1/me/artworks [get]
func (h *ArtworkHandler) ListOwn(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	artworks, err := h.service.ListOwn(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artworks)
}

// Create handles POST /v1/artworks. The owner is always the caller; any
// owner field in the payload is ignored.
//
// @Summary      Create an artwork
// @Tags         artworks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArtworkRequest  true  "Artwork details"
// @Success      201   {object}  domain.Artwork
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/artworks [post]
func (h *ArtworkHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createArtworkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	artwork, err := h.service.Create(c.Request().Context(), actor, ports.CreateArtworkInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SectionID:   req.SectionID,
		Featured:    req.Featured,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues("artwork").Inc()
	return c.JSON(http.StatusCreated, artwork)
}

// Update handles PUT /v1/artworks/:id (owner-only, no admin override).
//
// @Summary      Update an owned artwork
// @Tags         artworks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Artwork id"
// @Param        body  body      updateArtworkRequest  true  "Fields to update"
// @Success      200   {object}  domain.Artwork
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/artworks/{id} [put]
func (h *ArtworkHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateArtworkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	artwork, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artwork)
}

// Delete handles DELETE /v1/artworks/:id (owner-only, no admin override).
//
// @Summary      Delete an owned artwork
// @Tags         artworks
// @Security     BearerAuth
// @Param        id  path  string  true  "Artwork id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/artworks/{id} [delete]
func (h *ArtworkHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AdminUpdate handles PUT /v1/admin/artworks/:id.
//
// @Summary      Update any artwork (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Artwork id"
// @Param        body  body      updateArtworkRequest  true  "Fields to update"
// @Success      200   {object}  domain.Artwork
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/artworks/{id} [put]
func (h *ArtworkHandler) AdminUpdate(c echo.Context) error {
	var req updateArtworkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	artwork, err := h.service.AdminUpdate(c.Request().Context(), c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artwork)
}

// AdminDelete handles DELETE /v1/admin/artworks/:id.
//
// @Summary      Delete any artwork (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Artwork id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/artworks/{id} [delete]
func (h *ArtworkHandler) AdminDelete(c echo.Context) error {
	if err := h.service.AdminDelete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
