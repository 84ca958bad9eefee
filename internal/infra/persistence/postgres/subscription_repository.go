package postgres

import (
	"context"

	"membergraph/internal/domain/entity"
	domainerrors "membergraph/internal/domain/errors"
	"membergraph/internal/domain/repository"
	"membergraph/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindBySubscriberIDs retrieves every edge whose subscriber is in subscriberIDs.
func (repo *subscriptionRepository) FindBySubscriberIDs(ctx context.Context, subscriberIDs []uuid.UUID) ([]*entity.Subscription, error) {
	if len(subscriberIDs) == 0 {
		return []*entity.Subscription{}, nil
	}

	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("subscriber_id IN ?", subscriberIDs).
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by subscriber ids")
	}

	return toSubscriptionDomains(subscriptionModels), nil
}

// FindByAuthorIDs retrieves every edge whose author is in authorIDs.
func (repo *subscriptionRepository) FindByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) ([]*entity.Subscription, error) {
	if len(authorIDs) == 0 {
		return []*entity.Subscription{}, nil
	}

	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by author ids")
	}

	return toSubscriptionDomains(subscriptionModels), nil
}

// DeleteByUserID removes every edge touching userID in either direction.
func (repo *subscriptionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("subscriber_id = ? OR author_id = ?", userID, userID).
		Delete(&model.SubscriptionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete subscriptions")
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		SubscriberID: data.SubscriberID,
		AuthorID:     data.AuthorID,
	}
}

func toSubscriptionDomains(data []*model.SubscriptionModel) []*entity.Subscription {
	subscriptions := make([]*entity.Subscription, 0, len(data))
	for _, subscriptionM := range data {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions
}
