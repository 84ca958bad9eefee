package repository

import (
	"context"

	"membergraph/internal/domain/entity"
	"membergraph/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations for profile persistence.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindManyByIDs retrieves every existing profile among ids. Order is not guaranteed.
	FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error)

	// FindByUserIDs retrieves the profiles owned by any of the given users.
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Profile, error)

	// FindAll retrieves every profile.
	FindAll(ctx context.Context) ([]*entity.Profile, error)

	// DeleteByUserID removes the profile owned by userID, if any.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
