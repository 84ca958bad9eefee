package repository

import (
	"context"

	"membergraph/internal/domain/entity"
	"membergraph/internal/errors"
)

// ErrMemberTypeNotFound is returned when a member type is not found.
var ErrMemberTypeNotFound = errors.New("member type not found")

// MemberTypeRepository defines the read operations for membership tiers.
type MemberTypeRepository interface {
	// FindByID retrieves a single member type.
	FindByID(ctx context.Context, id entity.MemberTypeID) (*entity.MemberType, error)

	// FindManyByIDs retrieves every existing member type among ids. Order is not guaranteed.
	FindManyByIDs(ctx context.Context, ids []entity.MemberTypeID) ([]*entity.MemberType, error)

	// FindAll retrieves every member type.
	FindAll(ctx context.Context) ([]*entity.MemberType, error)
}
