package repository

import (
	"context"

	"membergraph/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionRepository defines the interface for subscription edge persistence.
type SubscriptionRepository interface {
	// FindBySubscriberIDs retrieves every edge whose subscriber is one of subscriberIDs.
	FindBySubscriberIDs(ctx context.Context, subscriberIDs []uuid.UUID) ([]*entity.Subscription, error)

	// FindByAuthorIDs retrieves every edge whose author is one of authorIDs.
	FindByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) ([]*entity.Subscription, error)

	// DeleteByUserID removes every edge touching userID in either direction.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
