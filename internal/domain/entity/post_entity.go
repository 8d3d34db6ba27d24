package entity

import (
	"time"
)

// Post belongs to the user who created it. Comments referencing a post are
// removed together with it (enforced by the schema).
type Post struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerID identifies the only user allowed to mutate the post.
func (p *Post) OwnerID() string { return p.UserID }
