package model

import (
	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscribers_on_authors' join table.
// The composite primary key keeps one edge per (subscriber, author) pair.
type SubscriptionModel struct {
	SubscriberID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`

	Subscriber UserModel `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE"`
	Author     UserModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscribers_on_authors"
}
