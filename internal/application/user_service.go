package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-blog-api/internal/domain/repository"
)

// UserService reads user listings and the authenticated profile.
type UserService struct {
	Users    repo.UserRepository
	Posts    repo.PostRepository
	Comments repo.CommentRepository
	Logger   *logrus.Logger
}

func NewUserService(users repo.UserRepository, posts repo.PostRepository, comments repo.CommentRepository, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Posts: posts, Comments: comments, Logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*entity.User, error) {
	return s.Users.List(ctx)
}

// Profile bundles a user with everything they have written.
type Profile struct {
	User     *entity.User
	Posts    []*entity.Post
	Comments []*entity.Comment
}

func (s *UserService) Profile(ctx context.Context, userID string) (*Profile, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	posts, err := s.Posts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	comments, err := s.Comments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: u, Posts: posts, Comments: comments}, nil
}
