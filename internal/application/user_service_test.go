package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
)

func TestUserProfile(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	alice := seedUser(t, users, "alice@example.com", "password123")
	bob := seedUser(t, users, "bob@example.com", "password123")

	posts := newFakePostRepo()
	p := &entity.Post{UserID: alice.ID, Title: "Alice writes", Body: "A body for the post."}
	require.NoError(t, posts.Create(ctx, p))
	require.NoError(t, posts.Create(ctx, &entity.Post{UserID: bob.ID, Title: "Bob writes", Body: "Another body."}))

	comments := newFakeCommentRepo(posts, users)
	require.NoError(t, comments.Create(ctx, &entity.Comment{PostID: p.ID, UserID: alice.ID, Body: "Replying to myself"}))

	svc := NewUserService(users, posts, comments, testLogger())

	profile, err := svc.Profile(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, profile.User.ID)
	require.Len(t, profile.Posts, 1)
	assert.Equal(t, "Alice writes", profile.Posts[0].Title)
	require.Len(t, profile.Comments, 1)
	assert.Equal(t, "Replying to myself", profile.Comments[0].Body)
}

func TestUserProfileUnknown(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), newFakePostRepo(), nil, testLogger())
	_, err := svc.Profile(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}
