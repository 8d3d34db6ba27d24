package repository

import (
	"context"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
)

// PostRepository defines the interface for post-related database operations.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	// Delete removes the post; comments referencing it go with it via the
	// schema's ON DELETE CASCADE.
	Delete(ctx context.Context, id string) error
}
