package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/angelb-studio/studio-api/internal/api/metrics"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

// PostHandler handles HTTP requests for blog posts.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type createPostRequest struct {
	Title     string `json:"title"      validate:"required"`
	Content   string `json:"content"    validate:"required"`
	SectionID string `json:"section_id"`
}

type updatePostRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	SectionID *string `json:"section_id"`
}

func (r *updatePostRequest) toUpdate() ports.UpdatePost {
	return ports.UpdatePost{
		Title:     r.Title,
		Content:   r.Content,
		SectionID: r.SectionID,
	}
}

// List handles GET /v1/posts.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  domain.BlogPost
// @Router       /v1/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// ListLatest handles GET /v1/posts/latest.
//
// @Summary      List the most recent posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  domain.BlogPost
// @Router       /v1/posts/latest [get]
func (h *PostHandler) ListLatest(c echo.Context) error {
	posts, err := h.service.ListLatest(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /v1/posts/:id.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.BlogPost
// @Failure      404  {object}  map[string]string
// @Router       /v1/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// ListOwn handles GET /v1/me/posts.
//
// @Summary      List the caller's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.BlogPost
// @Failure      401  {object}  map[string]string
// @Router       /v1/me/posts [get]
func (h *PostHandler) ListOwn(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	posts, err := h.service.ListOwn(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Create handles POST /v1/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  domain.BlogPost
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), actor, ports.CreatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		SectionID: req.SectionID,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues("post").Inc()
	return c.JSON(http.StatusCreated, post)
}

// Update handles PUT /v1/posts/:id (owner-only, no admin override).
//
// @Summary      Update an owned post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  domain.BlogPost
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /v1/posts/:id (owner-only, no admin override).
//
// @Summary      Delete an owned post
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AdminUpdate handles PUT /v1/admin/posts/:id.
//
// @Summary      Update any post (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  domain.BlogPost
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/posts/{id} [put]
func (h *PostHandler) AdminUpdate(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.AdminUpdate(c.Request().Context(), c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// AdminDelete handles DELETE /v1/admin/posts/:id.
//
// @Summary      Delete any post (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/posts/{id} [delete]
func (h *PostHandler) AdminDelete(c echo.Context) error {
	if err := h.service.AdminDelete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
