package model

import (
	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. UserID is unique so a user owns at most one profile.
type ProfileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	IsMale       bool      `gorm:"not null"`
	YearOfBirth  int       `gorm:"not null"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	MemberTypeID string    `gorm:"type:varchar(32);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
