package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/domain/repository"
)

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

// Upsert relies on the (user_id, client) primary key, so a new sign-in from
// the same client supersedes the previous token atomically.
func (r *TokenRepository) Upsert(ctx context.Context, t *entity.AuthToken) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO auth_tokens (user_id, client, token_digest, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, client)
		DO UPDATE SET token_digest = EXCLUDED.token_digest, expires_at = EXCLUDED.expires_at, created_at = now()
		RETURNING created_at
	`, t.UserID, t.Client, t.Digest, t.ExpiresAt)

	if err := row.Scan(&t.CreatedAt); err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *TokenRepository) Get(ctx context.Context, userID, client string) (*entity.AuthToken, error) {
	t := &entity.AuthToken{}
	row := r.pool.QueryRow(ctx, `
		SELECT user_id, client, token_digest, expires_at, created_at
		FROM auth_tokens
		WHERE user_id = $1 AND client = $2
	`, userID, client)
	if err := row.Scan(&t.UserID, &t.Client, &t.Digest, &t.ExpiresAt, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TokenRepository) Delete(ctx context.Context, userID, client string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM auth_tokens WHERE user_id = $1 AND client = $2
	`, userID, client)
	return err
}

var _ repository.TokenRepository = (*TokenRepository)(nil)
