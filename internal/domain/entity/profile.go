package entity

import "github.com/google/uuid"

// Profile holds the optional personal data of a user. Each user has at most one.
type Profile struct {
	ID           uuid.UUID    `json:"id"`
	IsMale       bool         `json:"isMale"`
	YearOfBirth  int          `json:"yearOfBirth"`
	UserID       uuid.UUID    `json:"userId"`       // Owning user, unique across profiles.
	MemberTypeID MemberTypeID `json:"memberTypeId"` // Must reference an existing MemberType.
}
