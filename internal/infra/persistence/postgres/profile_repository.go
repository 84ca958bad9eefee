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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a single profile by its ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// FindManyByIDs retrieves every profile whose ID is in ids.
func (repo *profileRepository) FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error) {
	if len(ids) == 0 {
		return []*entity.Profile{}, nil
	}

	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by ids")
	}

	return toProfileDomains(profileModels), nil
}

// FindByUserIDs retrieves the profiles owned by the given users.
func (repo *profileRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Profile, error) {
	if len(userIDs) == 0 {
		return []*entity.Profile{}, nil
	}

	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by user ids")
	}

	return toProfileDomains(profileModels), nil
}

// FindAll retrieves every profile.
func (repo *profileRepository) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles")
	}

	return toProfileDomains(profileModels), nil
}

// DeleteByUserID removes the profile owned by userID. Missing profiles are not an error.
func (repo *profileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ProfileModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile")
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:           data.ID,
		IsMale:       data.IsMale,
		YearOfBirth:  data.YearOfBirth,
		UserID:       data.UserID,
		MemberTypeID: entity.MemberTypeID(data.MemberTypeID),
	}
}

func toProfileDomains(data []*model.ProfileModel) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(data))
	for _, profileM := range data {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles
}
