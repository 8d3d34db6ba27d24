package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/container"
	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
)

// CommentModule registers all comment routes behind the auth guard.
type CommentModule struct {
	Handler *handlers.CommentHandler
	Svc     *application.SessionService
}

func NewCommentModule(h *handlers.CommentHandler, svc *application.SessionService) *CommentModule {
	return &CommentModule{Handler: h, Svc: svc}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Svc))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/comments", m.Handler.List)
		auth.GET("/comments/:id", m.Handler.Get)
		auth.POST("/comments", m.Handler.Create)
		auth.PUT("/comments/:id", m.Handler.Update)
		auth.DELETE("/comments/:id", m.Handler.Delete)
	}
}
