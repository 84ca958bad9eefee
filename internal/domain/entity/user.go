// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/google/uuid"

// User is an account holder. Profile, posts and subscription edges hang off its ID
// and are fetched separately, never embedded.
type User struct {
	ID      uuid.UUID `json:"id"`      // The Global Unique Identifier (GUID) for the user.
	Name    string    `json:"name"`    // The user's display name.
	Balance float64   `json:"balance"` // The user's account balance.
}
