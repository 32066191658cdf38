package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/devbloghq/blog-portal/internal/blogportal"
	"github.com/labstack/echo/v4"
)

type PostHandler struct {
	uc  *blogportal.Manager
	log *slog.Logger
}

func NewPostHandler(uc *blogportal.Manager, log *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:  uc,
		log: log,
	}
}

// handleError classifies a storage failure and renders it as the structured
// {title, message, category} body the UI expects. The raw error never
// reaches the client except through the generic category.
func (h *PostHandler) handleError(c echo.Context, err error, operation string) error {
	blogportal.LogClassification(h.log, operation, err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, blogportal.ErrEmptySlug):
		status = http.StatusBadRequest
	case errors.Is(err, blogportal.ErrSlugConflict), errors.Is(err, blogportal.ErrSlugExhausted):
		status = http.StatusConflict
	}

	fault := blogportal.Classify(err)
	h.log.Error("request failed",
		"operation", operation,
		"error", err,
		"status", status,
		"category", fault.Category,
	)

	return c.JSON(status, NewErrorResponse(fault))
}

// Posts handles GET /api/v1/posts
// @Summary List all posts
// @Description Retrieves all posts sorted by date DESC (most recent first)
// @Tags posts
// @Produce json
// @Success 200 {array} rest.Post
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/v1/posts [get]
func (h *PostHandler) Posts(c echo.Context) error {
	posts, err := h.uc.Posts(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, "list posts")
	}

	return c.JSON(http.StatusOK, NewPosts(posts))
}

// PostByID handles GET /api/v1/posts/:id
// @Summary Get a post by id
// @Description Retrieves a single post by its slug id
// @Tags posts
// @Produce json
// @Param id path string true "Post slug"
// @Success 200 {object} rest.Post
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /api/v1/posts/{id} [get]
func (h *PostHandler) PostByID(c echo.Context) error {
	id := c.Param("id")

	post, err := h.uc.PostByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, "get post")
	}
	if post == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Title:    "Not Found",
			Message:  "post not found",
			Category: blogportal.FaultGeneric,
		})
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// CreatePost handles POST /api/v1/posts
// @Summary Create a post
// @Description Creates a post; the id is a unique slug derived from the title, readTime is estimated from content when not supplied
// @Tags posts
// @Accept json
// @Produce json
// @Param post body rest.CreatePostRequest true "Post fields"
// @Success 201 {object} rest.Post
// @Failure 400,409,500 {object} rest.ErrorResponse
// @Router /api/v1/posts [post]
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Title:    "Invalid Request",
			Message:  "request body could not be parsed",
			Category: blogportal.FaultGeneric,
		})
	}

	if req.Title == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Title:    "Invalid Request",
			Message:  "title and content must not be empty",
			Category: blogportal.FaultGeneric,
		})
	}

	post, err := h.uc.Create(c.Request().Context(), blogportal.CreateParams{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Author:   req.Author,
		ReadTime: req.ReadTime,
	})
	if err != nil {
		return h.handleError(c, err, "create post")
	}

	return c.JSON(http.StatusCreated, NewPost(*post))
}

// UpdatePost handles PUT /api/v1/posts/:id
// @Summary Update a post
// @Description Applies the supplied fields; readTime is recomputed when content changes
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post slug"
// @Param post body rest.UpdatePostRequest true "Fields to update"
// @Success 200 {object} rest.Post
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/v1/posts/{id} [put]
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id := c.Param("id")

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Title:    "Invalid Request",
			Message:  "request body could not be parsed",
			Category: blogportal.FaultGeneric,
		})
	}

	post, err := h.uc.Update(c.Request().Context(), id, blogportal.UpdateParams{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Author:   req.Author,
		ReadTime: req.ReadTime,
	})
	if err != nil {
		return h.handleError(c, err, "update post")
	}
	if post == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Title:    "Not Found",
			Message:  "post not found",
			Category: blogportal.FaultGeneric,
		})
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// DeletePost handles DELETE /api/v1/posts/:id
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Param id path string true "Post slug"
// @Success 204
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /api/v1/posts/{id} [delete]
func (h *PostHandler) DeletePost(c echo.Context) error {
	id := c.Param("id")

	deleted, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, "delete post")
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Title:    "Not Found",
			Message:  "post not found",
			Category: blogportal.FaultGeneric,
		})
	}

	return c.NoContent(http.StatusNoContent)
}

// Categories handles GET /api/v1/categories
// @Summary Get suggested categories
// @Description Returns the fixed category list used by the create form
// @Tags categories
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/categories [get]
func (h *PostHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Categories())
}
