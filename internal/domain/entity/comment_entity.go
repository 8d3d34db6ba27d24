package entity

import (
	"time"
)

// Comment is attached to exactly one post and one author.
type Comment struct {
	ID        string
	PostID    string
	UserID    string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// AuthorName is populated on reads that join the author, for responses
	// which embed the author next to the comment.
	AuthorName string
}

// OwnerID identifies the only user allowed to mutate the comment.
func (c *Comment) OwnerID() string { return c.UserID }
