package application

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

const tokenBytes = 32

// SessionService issues, resolves, and revokes per-(user, client) bearer
// tokens. Postgres is authoritative; Redis holds a best-effort session cache
// and is skipped entirely when not configured.
type SessionService struct {
	Users    repo.UserRepository
	Tokens   repo.TokenRepository
	Redis    *redis.Client
	Logger   *logrus.Logger
	TokenTTL time.Duration
}

func NewSessionService(users repo.UserRepository, tokens repo.TokenRepository, rdb *redis.Client, logger *logrus.Logger, tokenTTL time.Duration) *SessionService {
	return &SessionService{Users: users, Tokens: tokens, Redis: rdb, Logger: logger, TokenTTL: tokenTTL}
}

// Session is what sign-in hands back to the transport layer: the user plus
// the credentials the client must replay on subsequent requests.
type Session struct {
	User      *entity.User
	Token     string
	Client    string
	ExpiresAt time.Time
}

type sessionRecord struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Sername   string    `json:"sername"`
	Nickname  string    `json:"nickname"`
	Digest    string    `json:"digest"`
	ExpiresAt time.Time `json:"expires_at"`
}

func sessionKey(uid, client string) string {
	return "session:" + strings.ToLower(uid) + ":" + client
}

// SignIn validates credentials and mints a fresh token for the given client.
// An empty client gets a generated identifier, so every device holds its own
// token slot. Issuing supersedes the client's previous token.
func (s *SessionService) SignIn(ctx context.Context, email, password, client string) (*Session, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	if client == "" {
		client = uuid.NewString()
	}
	token, err := helpers.MintToken(tokenBytes)
	if err != nil {
		return nil, err
	}
	digest := helpers.TokenDigest(token)
	expiresAt := time.Now().Add(s.TokenTTL)

	if err := s.Tokens.Upsert(ctx, &entity.AuthToken{
		UserID:    u.ID,
		Client:    client,
		Digest:    digest,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, err
	}

	s.cacheSession(ctx, u, client, digest, expiresAt)

	return &Session{User: u, Token: token, Client: client, ExpiresAt: expiresAt}, nil
}

// SignOut invalidates the token for one client only; other clients of the
// same user keep their sessions. Idempotent. The cache entry goes first: a
// surviving cache record would keep resolving a token whose row is gone, so a
// failed cache delete aborts the sign-out and leaves both sides intact.
func (s *SessionService) SignOut(ctx context.Context, user *entity.User, client string) error {
	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, sessionKey(user.Email, client)); err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("client", client).Error("session cache delete failed")
			}
			return err
		}
	}
	return s.Tokens.Delete(ctx, user.ID, client)
}

// Resolve maps (uid, client, token) headers to a user, or ErrUnauthorized.
// Digest comparison is constant-time; the uid scopes the lookup to a single
// row so no timing-sensitive search over token values happens.
func (s *SessionService) Resolve(ctx context.Context, uid, client, token string) (*entity.User, error) {
	if uid == "" || client == "" || token == "" {
		return nil, ErrUnauthorized
	}

	if u := s.resolveCached(ctx, uid, client, token); u != nil {
		return u, nil
	}

	u, err := s.Users.GetByEmail(ctx, uid)
	if err != nil || u == nil {
		return nil, ErrUnauthorized
	}
	t, err := s.Tokens.Get(ctx, u.ID, client)
	if err != nil || t == nil {
		return nil, ErrUnauthorized
	}
	if !helpers.SecureCompareDigest(t.Digest, token) || t.Expired(time.Now()) {
		return nil, ErrUnauthorized
	}
	return u, nil
}

func (s *SessionService) cacheSession(ctx context.Context, u *entity.User, client string, digest []byte, expiresAt time.Time) {
	if s.Redis == nil {
		return
	}
	rec := sessionRecord{
		UserID:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Sername:   u.Sername,
		Nickname:  u.Nickname,
		Digest:    base64.StdEncoding.EncodeToString(digest),
		ExpiresAt: expiresAt,
	}
	key := sessionKey(u.Email, client)
	if err := helpers.RedisSetJSON(ctx, s.Redis, key, rec, time.Until(expiresAt)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("session cache write failed")
	}
}

// resolveCached answers from the Redis session cache when possible. Cache
// misses and malformed records fall through to the database.
func (s *SessionService) resolveCached(ctx context.Context, uid, client, token string) *entity.User {
	if s.Redis == nil {
		return nil
	}
	var rec sessionRecord
	found, err := helpers.RedisGetJSON(ctx, s.Redis, sessionKey(uid, client), &rec)
	if err != nil || !found {
		return nil
	}
	digest, err := base64.StdEncoding.DecodeString(rec.Digest)
	if err != nil || len(digest) == 0 {
		return nil
	}
	if !helpers.SecureCompareDigest(digest, token) || time.Now().After(rec.ExpiresAt) {
		return nil
	}
	return &entity.User{
		ID:       rec.UserID,
		Email:    rec.Email,
		Name:     rec.Name,
		Sername:  rec.Sername,
		Nickname: rec.Nickname,
	}
}
