package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-blog-api/pkg/response"
	"github.com/oksasatya/go-blog-api/pkg/validation"
)

const postNotFoundMsg = "Post does not exist"

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Title string `json:"title" binding:"required,min=3,max=150"`
	Body  string `json:"body" binding:"required,min=3,max=500"`
}

type updatePostRequest struct {
	Title *string `json:"title" binding:"omitempty,min=3,max=150"`
	Body  *string `json:"body" binding:"omitempty,min=3,max=500"`
}

// List GET /posts
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, postNotFoundMsg)
		return
	}
	out := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		out = append(out, postJSON(p))
	}
	resp := response.Success(c, http.StatusOK, gin.H{"posts": out}, "posts", nil)
	c.JSON(resp.Status, resp)
}

// Get GET /posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, postNotFoundMsg)
		return
	}
	resp := response.Success(c, http.StatusOK, postJSON(p), "post", nil)
	c.JSON(resp.Status, resp)
}

// Create POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToMessages(err))
		c.JSON(resp.Status, resp)
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), req.Title, req.Body)
	if err != nil {
		respondError(c, err, postNotFoundMsg)
		return
	}
	resp := response.Success(c, http.StatusCreated, postJSON(p), "post created", nil)
	c.JSON(resp.Status, resp)
}

// Update PUT /posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToMessages(err))
		c.JSON(resp.Status, resp)
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"),
		application.UpdatePostInput{Title: req.Title, Body: req.Body})
	if err != nil {
		respondError(c, err, postNotFoundMsg)
		return
	}
	resp := response.Success(c, http.StatusOK, postJSON(p), "post updated", nil)
	c.JSON(resp.Status, resp)
}

// Delete DELETE /posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		respondError(c, err, postNotFoundMsg)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search GET /posts/search?q=
func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		resp := response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		c.JSON(resp.Status, resp)
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, 10)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("post search failed")
		}
		resp := response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success(c, http.StatusOK, gin.H{"posts": hits}, "search results", nil)
	c.JSON(resp.Status, resp)
}
