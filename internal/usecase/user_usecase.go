// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"membergraph/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a new user.
type CreateUserInput struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Balance float64 `json:"balance"`
}

// ChangeUserInput defines a partial update of a user. Nil fields are left untouched.
type ChangeUserInput struct {
	Name    *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Balance *float64 `json:"balance,omitempty"`
}

// UserUsecase defines the write operations on users.
// Reads go through the request loaders and never reach this interface.
type UserUsecase interface {
	// CreateUser persists a new user with a freshly generated ID.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	// ChangeUser applies input to the user identified by id.
	ChangeUser(ctx context.Context, id uuid.UUID, input *ChangeUserInput) (*entity.User, error)
	// DeleteUser removes the user and everything it owns. It reports false when
	// no such user exists.
	DeleteUser(ctx context.Context, id uuid.UUID) (bool, error)
}
