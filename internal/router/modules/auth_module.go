package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/container"
	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
)

// AuthModule wires registration and session routes.
// Public: POST /auth, POST /auth/sign_in
// Protected: DELETE /auth/sign_out
type AuthModule struct {
	Sessions     *handlers.SessionHandler
	Registration *handlers.RegistrationHandler
	Svc          *application.SessionService
}

func NewAuthModule(sessions *handlers.SessionHandler, registration *handlers.RegistrationHandler, svc *application.SessionService) *AuthModule {
	return &AuthModule{Sessions: sessions, Registration: registration, Svc: svc}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	signInLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth", registerLimiter, m.Registration.Register)
	rg.POST("/auth/sign_in", signInLimiter, m.Sessions.SignIn)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Svc))
	{
		auth.DELETE("/auth/sign_out", m.Sessions.SignOut)
	}
}
