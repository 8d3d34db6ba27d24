package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-blog-api/pkg/validation"
)

// Slim in-memory repositories backing the end-to-end handler tests. Handlers
// run under a real Gin engine with the real binding and auth middleware; only
// the storage is faked.

type memStore struct {
	users    map[string]*entity.User
	posts    map[string]*entity.Post
	comments map[string]*entity.Comment
	tokens   map[string]*entity.AuthToken
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]*entity.User{},
		posts:    map[string]*entity.Post{},
		comments: map[string]*entity.Comment{},
		tokens:   map[string]*entity.AuthToken{},
	}
}

func (m *memStore) Create(_ context.Context, u *entity.User) error {
	for _, e := range m.users {
		if strings.EqualFold(e.Email, u.Email) {
			return repo.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	m.users[u.ID] = u
	return nil
}

func (m *memStore) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

type memPosts struct{ s *memStore }

func (m memPosts) Create(_ context.Context, p *entity.Post) error {
	p.ID = uuid.NewString()
	m.s.posts[p.ID] = p
	return nil
}

func (m memPosts) GetByID(_ context.Context, id string) (*entity.Post, error) {
	if p, ok := m.s.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (m memPosts) List(_ context.Context) ([]*entity.Post, error) {
	out := make([]*entity.Post, 0, len(m.s.posts))
	for _, p := range m.s.posts {
		out = append(out, p)
	}
	return out, nil
}

func (m memPosts) ListByUser(_ context.Context, userID string) ([]*entity.Post, error) {
	var out []*entity.Post
	for _, p := range m.s.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m memPosts) Update(_ context.Context, p *entity.Post) error {
	if _, ok := m.s.posts[p.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *p
	m.s.posts[p.ID] = &cp
	return nil
}

func (m memPosts) Delete(_ context.Context, id string) error {
	if _, ok := m.s.posts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.s.posts, id)
	return nil
}

type memComments struct{ s *memStore }

func (m memComments) Create(_ context.Context, c *entity.Comment) error {
	if _, ok := m.s.posts[c.PostID]; !ok {
		return repo.ErrPostMissing
	}
	c.ID = uuid.NewString()
	m.s.comments[c.ID] = c
	return nil
}

func (m memComments) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	if c, ok := m.s.comments[id]; ok {
		cp := *c
		if u, ok := m.s.users[c.UserID]; ok {
			cp.AuthorName = u.Name
		}
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (m memComments) List(_ context.Context) ([]*entity.Comment, error) {
	out := make([]*entity.Comment, 0, len(m.s.comments))
	for _, c := range m.s.comments {
		out = append(out, c)
	}
	return out, nil
}

func (m memComments) ListByUser(_ context.Context, userID string) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range m.s.comments {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m memComments) Update(_ context.Context, c *entity.Comment) error {
	if _, ok := m.s.comments[c.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *c
	m.s.comments[c.ID] = &cp
	return nil
}

func (m memComments) Delete(_ context.Context, id string) error {
	if _, ok := m.s.comments[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.s.comments, id)
	return nil
}

type memTokens struct{ s *memStore }

func (m memTokens) Upsert(_ context.Context, t *entity.AuthToken) error {
	cp := *t
	m.s.tokens[t.UserID+"|"+t.Client] = &cp
	return nil
}

func (m memTokens) Get(_ context.Context, userID, client string) (*entity.AuthToken, error) {
	if t, ok := m.s.tokens[userID+"|"+client]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (m memTokens) Delete(_ context.Context, userID, client string) error {
	delete(m.s.tokens, userID+"|"+client)
	return nil
}

type testApp struct {
	engine *gin.Engine
	store  *memStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	store := newMemStore()
	logger := logrus.New()
	logger.SetOutput(testWriter{t})

	sessions := application.NewSessionService(store, memTokens{store}, nil, logger, time.Hour)
	registration := application.NewRegistrationService(store, nil, logger, false)
	postSvc := application.NewPostService(memPosts{store}, logger, nil, "")
	commentSvc := application.NewCommentService(memComments{store}, logger)
	userSvc := application.NewUserService(store, memPosts{store}, memComments{store}, logger)

	sessH := NewSessionHandler(sessions, logger)
	regH := NewRegistrationHandler(registration, logger)
	postH := NewPostHandler(postSvc, logger)
	commentH := NewCommentHandler(commentSvc, logger)
	userH := NewUserHandler(userSvc, logger)

	auth := middleware.Auth(sessions)

	r := gin.New()
	r.POST("/auth", regH.Register)
	r.POST("/auth/sign_in", sessH.SignIn)
	r.DELETE("/auth/sign_out", auth, sessH.SignOut)

	r.GET("/posts", auth, postH.List)
	r.GET("/posts/:id", auth, postH.Get)
	r.POST("/posts", auth, postH.Create)
	r.PUT("/posts/:id", auth, postH.Update)
	r.DELETE("/posts/:id", auth, postH.Delete)

	r.GET("/comments", auth, commentH.List)
	r.GET("/comments/:id", auth, commentH.Get)
	r.POST("/comments", auth, commentH.Create)
	r.PUT("/comments/:id", auth, commentH.Update)
	r.DELETE("/comments/:id", auth, commentH.Delete)

	r.GET("/users", auth, userH.List)
	r.GET("/user/profile", auth, userH.Profile)

	return &testApp{engine: r, store: store}
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimSpace(string(p)))
	return len(p), nil
}

func (a *testApp) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func errorList(t *testing.T, e envelope) []string {
	t.Helper()
	var msgs []string
	require.NoError(t, json.Unmarshal(e.Error, &msgs))
	return msgs
}

// signUpAndIn registers a user and signs in, returning the auth headers to
// replay on protected requests.
func (a *testApp) signUpAndIn(t *testing.T, email string) map[string]string {
	t.Helper()
	w := a.do(http.MethodPost, "/auth", gin.H{
		"email":    email,
		"password": "password123",
		"name":     "Test User",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/auth/sign_in", gin.H{
		"email":    email,
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return map[string]string{
		"uid":          w.Header().Get("uid"),
		"client":       w.Header().Get("client"),
		"access-token": w.Header().Get("access-token"),
	}
}

func TestRegisterAndSignInFlow(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodPost, "/auth", gin.H{
		"email":    "alice@example.com",
		"password": "password123",
		"name":     "Alice",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(http.MethodPost, "/auth/sign_in", gin.H{
		"email":    "alice@example.com",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotEmpty(t, w.Header().Get("access-token"))
	assert.NotEmpty(t, w.Header().Get("client"))
	assert.Equal(t, "alice@example.com", w.Header().Get("uid"))
	assert.NotEmpty(t, w.Header().Get("expiry"))

	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "alice@example.com")
	assert.NotContains(t, string(env.Data), "password", "password hash never leaves the API")
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodPost, "/auth", gin.H{
		"email":    "not-an-email",
		"password": "short",
	}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	msgs := errorList(t, decode(t, w))
	assert.Contains(t, msgs, "email must be a valid email")
	assert.Contains(t, msgs, "password must be at least 8 characters long")
}

func TestRegisterDuplicateEmailResponse(t *testing.T) {
	app := newTestApp(t)
	app.signUpAndIn(t, "alice@example.com")

	w := app.do(http.MethodPost, "/auth", gin.H{
		"email":    "alice@example.com",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"Email has already been taken"}, errorList(t, decode(t, w)))
}

func TestSignInWrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.signUpAndIn(t, "alice@example.com")

	w := app.do(http.MethodPost, "/auth/sign_in", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-password",
	}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid password or email", decode(t, w).Message)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodPost, "/posts", gin.H{"title": "A title", "body": "A body."}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "You need to sign in or sign up before continuing.", decode(t, w).Message)

	// Listing is gated too.
	w = app.do(http.MethodGet, "/posts", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignOutInvalidatesToken(t *testing.T) {
	app := newTestApp(t)
	hdr := app.signUpAndIn(t, "alice@example.com")

	w := app.do(http.MethodDelete, "/auth/sign_out", nil, hdr)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = app.do(http.MethodPost, "/posts", gin.H{"title": "A title", "body": "Some body text."}, hdr)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPostCRUD(t *testing.T) {
	app := newTestApp(t)
	hdr := app.signUpAndIn(t, "alice@example.com")

	w := app.do(http.MethodPost, "/posts", gin.H{
		"title": "First post",
		"body":  "This is the body of the first post.",
	}, hdr)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))
	require.NotEmpty(t, created.ID)

	w = app.do(http.MethodGet, "/posts/"+created.ID, nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodPut, "/posts/"+created.ID, gin.H{"title": "Edited title"}, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), "Edited title")

	w = app.do(http.MethodDelete, "/posts/"+created.ID, nil, hdr)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = app.do(http.MethodGet, "/posts/"+created.ID, nil, hdr)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post does not exist", decode(t, w).Message)
}

func TestPostValidationMessages(t *testing.T) {
	app := newTestApp(t)
	hdr := app.signUpAndIn(t, "alice@example.com")

	w := app.do(http.MethodPost, "/posts", gin.H{"title": "ab", "body": ""}, hdr)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	msgs := errorList(t, decode(t, w))
	assert.Contains(t, msgs, "title must be at least 3 characters long")
	assert.Contains(t, msgs, "body is required")
}

func TestPostMutationByNonOwner(t *testing.T) {
	app := newTestApp(t)
	alice := app.signUpAndIn(t, "alice@example.com")
	bob := app.signUpAndIn(t, "bob@example.com")

	w := app.do(http.MethodPost, "/posts", gin.H{
		"title": "Alice's post",
		"body":  "Written by alice, owned by alice.",
	}, alice)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))

	w = app.do(http.MethodPut, "/posts/"+created.ID, gin.H{"title": "Bob was here"}, bob)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "not your post", decode(t, w).Message)

	w = app.do(http.MethodDelete, "/posts/"+created.ID, nil, bob)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "not your post", decode(t, w).Message)
}

func TestCommentFlow(t *testing.T) {
	app := newTestApp(t)
	alice := app.signUpAndIn(t, "alice@example.com")
	bob := app.signUpAndIn(t, "bob@example.com")

	w := app.do(http.MethodPost, "/posts", gin.H{
		"title": "A post to discuss",
		"body":  "Please leave your thoughts below.",
	}, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))

	w = app.do(http.MethodPost, "/comments", gin.H{
		"post_id": created.ID,
		"body":    "Great post!",
	}, bob)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var cc struct {
		ID     string `json:"id"`
		Author struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"author"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &cc))
	require.NotEmpty(t, cc.ID)
	assert.Equal(t, "Test User", cc.Author.Name)

	// Unknown post id is a validation failure, not a 404.
	w = app.do(http.MethodPost, "/comments", gin.H{
		"post_id": uuid.NewString(),
		"body":    "Lost comment",
	}, bob)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"Post must exist"}, errorList(t, decode(t, w)))

	// Only the comment author may edit, even on someone else's post.
	w = app.do(http.MethodPut, "/comments/"+cc.ID, gin.H{"body": "Edited by alice"}, alice)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "not your comment", decode(t, w).Message)

	w = app.do(http.MethodDelete, "/comments/"+cc.ID, nil, bob)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = app.do(http.MethodGet, "/comments/"+cc.ID, nil, bob)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Couldn't find comment", decode(t, w).Message)
}

func TestProfileAggregates(t *testing.T) {
	app := newTestApp(t)
	hdr := app.signUpAndIn(t, "alice@example.com")

	w := app.do(http.MethodPost, "/posts", gin.H{
		"title": "Profile post",
		"body":  "Shows up on the profile.",
	}, hdr)
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(http.MethodGet, "/user/profile", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		User  json.RawMessage   `json:"user"`
		Posts []json.RawMessage `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &profile))
	assert.Contains(t, string(profile.User), "alice@example.com")
	assert.Len(t, profile.Posts, 1)
}
