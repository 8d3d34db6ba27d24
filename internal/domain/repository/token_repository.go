package repository

import (
	"context"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
)

// TokenRepository persists per-(user, client) auth token records.
type TokenRepository interface {
	// Upsert replaces any existing token row for the same (user, client) pair,
	// so concurrent sign-ins from different clients never interfere.
	Upsert(ctx context.Context, t *entity.AuthToken) error
	Get(ctx context.Context, userID, client string) (*entity.AuthToken, error)
	// Delete is idempotent; deleting an absent row is not an error.
	Delete(ctx context.Context, userID, client string) error
}
