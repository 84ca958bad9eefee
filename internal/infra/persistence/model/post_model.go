package model

import (
	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. AuthorID references users.id.
type PostModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title    string    `gorm:"type:varchar(255);not null"`
	Content  string    `gorm:"type:text;not null"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
