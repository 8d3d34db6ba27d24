package router

import (
	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/container"
	pginfra "github.com/oksasatya/go-blog-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-blog-api/internal/interface/http"
	"github.com/oksasatya/go-blog-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	comments := pginfra.NewCommentRepository(pool)
	tokens := pginfra.NewTokenRepository(pool)

	sessions := application.NewSessionService(users, tokens, container.GetRedis(), logger, cfg.TokenTTL)
	registration := application.NewRegistrationService(users, container.GetRabbitPub(), logger, cfg.MailSendEnabled)
	postSvc := application.NewPostService(posts, logger, container.GetES(), cfg.ESPostsIndex)
	commentSvc := application.NewCommentService(comments, logger)
	userSvc := application.NewUserService(users, posts, comments, logger)

	r.Add(modules.NewAuthModule(
		handlers.NewSessionHandler(sessions, logger),
		handlers.NewRegistrationHandler(registration, logger),
		sessions,
	))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), sessions))
	r.Add(modules.NewCommentModule(handlers.NewCommentHandler(commentSvc, logger), sessions))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), sessions))
	r.Add(modules.NewDebugModule())
}
