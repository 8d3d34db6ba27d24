package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/pkg/response"
)

const (
	ctxUserKey   = "currentUser"
	CtxUserIDKey = "userID"

	// Request headers carrying the session credentials.
	HeaderUID    = "uid"
	HeaderClient = "client"
	HeaderToken  = "access-token"
)

// Auth resolves the uid/client/access-token headers to a user and injects it
// into the Gin context. Every protected route sits behind this guard.
func Auth(sessions *application.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := sessions.Resolve(
			c.Request.Context(),
			c.GetHeader(HeaderUID),
			c.GetHeader(HeaderClient),
			c.GetHeader(HeaderToken),
		)
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, application.ErrUnauthorized.Error(), nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Set(ctxUserKey, u)
		c.Set(CtxUserIDKey, u.ID)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Auth, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}
