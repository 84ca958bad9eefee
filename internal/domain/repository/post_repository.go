package repository

import (
	"context"

	"membergraph/internal/domain/entity"
	"membergraph/internal/errors"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindManyByIDs retrieves every existing post among ids. Order is not guaranteed.
	FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Post, error)

	// FindByAuthorIDs retrieves all posts written by any of the given users.
	FindByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) ([]*entity.Post, error)

	// FindAll retrieves every post.
	FindAll(ctx context.Context) ([]*entity.Post, error)

	// DeleteByAuthorID removes every post written by authorID.
	DeleteByAuthorID(ctx context.Context, authorID uuid.UUID) error
}
