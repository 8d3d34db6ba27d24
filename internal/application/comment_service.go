package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-blog-api/internal/domain/repository"
)

// CommentService owns comment CRUD and the author-only mutation rule.
type CommentService struct {
	Comments repo.CommentRepository
	Logger   *logrus.Logger
}

func NewCommentService(comments repo.CommentRepository, logger *logrus.Logger) *CommentService {
	return &CommentService{Comments: comments, Logger: logger}
}

func (s *CommentService) List(ctx context.Context) ([]*entity.Comment, error) {
	return s.Comments.List(ctx)
}

func (s *CommentService) Get(ctx context.Context, id string) (*entity.Comment, error) {
	c, err := s.Comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Create attaches a comment to an existing post. A missing or unknown post id
// is a validation failure, not a 404: the comment payload referenced
// something that must exist.
func (s *CommentService) Create(ctx context.Context, user *entity.User, postID, body string) (*entity.Comment, error) {
	if postID == "" {
		return nil, validationErr("Post must exist")
	}
	c := &entity.Comment{PostID: postID, UserID: user.ID, Body: body, AuthorName: user.Name}
	if err := s.Comments.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrPostMissing) {
			return nil, validationErr("Post must exist")
		}
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, user *entity.User, id, body string) (*entity.Comment, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !Authorize(user.ID, c, ActionUpdate) {
		return nil, errNotYourComment()
	}
	c.Body = body
	if err := s.Comments.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, user *entity.User, id string) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !Authorize(user.ID, c, ActionDelete) {
		return errNotYourComment()
	}
	return s.Comments.Delete(ctx, id)
}
