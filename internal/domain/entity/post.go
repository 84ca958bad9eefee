package entity

import "github.com/google/uuid"

// Post is a piece of content written by a single user.
type Post struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	AuthorID uuid.UUID `json:"authorId"`
}
