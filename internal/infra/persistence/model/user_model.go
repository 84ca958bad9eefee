package model

import (
	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Balance float64   `gorm:"type:double precision;not null"`

	Profile *ProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Posts   []PostModel   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
