package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/pkg/response"
)

// respondError maps the application error taxonomy onto HTTP in one place.
// Ownership failures ride on 422 with their message, mirroring how the API's
// consumers already distinguish them from plain validation lists.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var verr *application.ValidationError
	var ferr *application.ForbiddenError
	switch {
	case errors.As(err, &verr):
		resp := response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", verr.Messages)
		c.JSON(resp.Status, resp)
	case errors.As(err, &ferr):
		resp := response.Error[any](c, http.StatusUnprocessableEntity, ferr.Message, []string{ferr.Message})
		c.JSON(resp.Status, resp)
	case errors.Is(err, application.ErrNotFound):
		resp := response.Error[any](c, http.StatusNotFound, notFoundMsg, nil)
		c.JSON(resp.Status, resp)
	case errors.Is(err, application.ErrInvalidCredentials):
		resp := response.Error[any](c, http.StatusUnprocessableEntity, application.ErrInvalidCredentials.Error(), nil)
		c.JSON(resp.Status, resp)
	case errors.Is(err, application.ErrUnauthorized):
		resp := response.Error[any](c, http.StatusUnauthorized, application.ErrUnauthorized.Error(), nil)
		c.JSON(resp.Status, resp)
	default:
		resp := response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		c.JSON(resp.Status, resp)
	}
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"sername":    u.Sername,
		"nickname":   u.Nickname,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

func postJSON(p *entity.Post) gin.H {
	return gin.H{
		"id":         p.ID,
		"user_id":    p.UserID,
		"title":      p.Title,
		"body":       p.Body,
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}

func commentJSON(cm *entity.Comment) gin.H {
	return gin.H{
		"id":         cm.ID,
		"post_id":    cm.PostID,
		"body":       cm.Body,
		"author":     gin.H{"id": cm.UserID, "name": cm.AuthorName},
		"created_at": cm.CreatedAt,
		"updated_at": cm.UpdatedAt,
	}
}
