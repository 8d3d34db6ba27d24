package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-blog-api/pkg/response"
	"github.com/oksasatya/go-blog-api/pkg/validation"
)

// SessionHandler exposes sign in / sign out. The minted token travels back in
// response headers, never in the body, and must be replayed on every
// authenticated request together with uid and client.
type SessionHandler struct {
	Svc    *application.SessionService
	Logger *logrus.Logger
}

func NewSessionHandler(svc *application.SessionService, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{Svc: svc, Logger: logger}
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignIn POST /auth/sign_in
func (h *SessionHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToMessages(err))
		c.JSON(resp.Status, resp)
		return
	}

	sess, err := h.Svc.SignIn(c.Request.Context(), req.Email, req.Password, c.GetHeader("client"))
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.Header("access-token", sess.Token)
	c.Header("client", sess.Client)
	c.Header("uid", sess.User.Email)
	c.Header("expiry", strconv.FormatInt(sess.ExpiresAt.Unix(), 10))

	resp := response.Success(c, http.StatusOK, gin.H{"user": userJSON(sess.User)}, "signed in", nil)
	c.JSON(resp.Status, resp)
}

// SignOut DELETE /auth/sign_out
func (h *SessionHandler) SignOut(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondError(c, application.ErrUnauthorized, "")
		return
	}
	if err := h.Svc.SignOut(c.Request.Context(), user, c.GetHeader("client")); err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", user.ID).Error("sign out failed")
		}
		respondError(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}
