package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-blog-api/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// List GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "user not found")
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userJSON(u))
	}
	resp := response.Success(c, http.StatusOK, gin.H{"users": out}, "users", nil)
	c.JSON(resp.Status, resp)
}

// Profile GET /user/profile
func (h *UserHandler) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, application.ErrUnauthorized, "")
		return
	}
	p, err := h.Svc.Profile(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "user not found")
		return
	}

	posts := make([]gin.H, 0, len(p.Posts))
	for _, post := range p.Posts {
		posts = append(posts, postJSON(post))
	}
	comments := make([]gin.H, 0, len(p.Comments))
	for _, cm := range p.Comments {
		comments = append(comments, commentJSON(cm))
	}

	resp := response.Success(c, http.StatusOK, gin.H{
		"user":     userJSON(p.User),
		"posts":    posts,
		"comments": comments,
	}, "profile", nil)
	c.JSON(resp.Status, resp)
}
