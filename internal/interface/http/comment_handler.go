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

const commentNotFoundMsg = "Couldn't find comment"

type CommentHandler struct {
	Svc    *application.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

type createCommentRequest struct {
	PostID string `json:"post_id" binding:"required"`
	Body   string `json:"body" binding:"required,min=3,max=300"`
}

type updateCommentRequest struct {
	Body string `json:"body" binding:"required,min=3,max=300"`
}

// List GET /comments
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, commentNotFoundMsg)
		return
	}
	out := make([]gin.H, 0, len(comments))
	for _, cm := range comments {
		out = append(out, commentJSON(cm))
	}
	resp := response.Success(c, http.StatusOK, gin.H{"comments": out}, "comments", nil)
	c.JSON(resp.Status, resp)
}

// Get GET /comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
	cm, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, commentNotFoundMsg)
		return
	}
	resp := response.Success(c, http.StatusOK, commentJSON(cm), "comment", nil)
	c.JSON(resp.Status, resp)
}

// Create POST /comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToMessages(err))
		c.JSON(resp.Status, resp)
		return
	}
	cm, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), req.PostID, req.Body)
	if err != nil {
		respondError(c, err, commentNotFoundMsg)
		return
	}
	resp := response.Success(c, http.StatusCreated, commentJSON(cm), "comment created", nil)
	c.JSON(resp.Status, resp)
}

// Update PUT /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToMessages(err))
		c.JSON(resp.Status, resp)
		return
	}
	cm, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req.Body)
	if err != nil {
		respondError(c, err, commentNotFoundMsg)
		return
	}
	resp := response.Success(c, http.StatusOK, commentJSON(cm), "comment updated", nil)
	c.JSON(resp.Status, resp)
}

// Delete DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		respondError(c, err, commentNotFoundMsg)
		return
	}
	c.Status(http.StatusNoContent)
}
