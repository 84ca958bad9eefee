package postgres

import (
	"context"

	"membergraph/internal/domain/entity"
	"membergraph/internal/domain/repository"
	"membergraph/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// memberTypeRepository implements the repository.MemberTypeRepository interface.
type memberTypeRepository struct {
	db *gorm.DB
}

// NewMemberTypeRepository is the constructor for memberTypeRepository.
func NewMemberTypeRepository(db *gorm.DB) repository.MemberTypeRepository {
	return &memberTypeRepository{
		db: db,
	}
}

// FindByID retrieves a single member type.
func (repo *memberTypeRepository) FindByID(ctx context.Context, id entity.MemberTypeID) (*entity.MemberType, error) {
	var memberTypeM model.MemberTypeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", string(id)).
		First(&memberTypeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find member type by id")
	}

	return toMemberTypeDomain(&memberTypeM), nil
}

// FindManyByIDs retrieves every member type whose ID is in ids.
func (repo *memberTypeRepository) FindManyByIDs(ctx context.Context, ids []entity.MemberTypeID) ([]*entity.MemberType, error) {
	if len(ids) == 0 {
		return []*entity.MemberType{}, nil
	}

	rawIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, string(id))
	}

	var memberTypeModels []*model.MemberTypeModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", rawIDs).
		Find(&memberTypeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find member types by ids")
	}

	return toMemberTypeDomains(memberTypeModels), nil
}

// FindAll retrieves every member type.
func (repo *memberTypeRepository) FindAll(ctx context.Context) ([]*entity.MemberType, error) {
	var memberTypeModels []*model.MemberTypeModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&memberTypeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find member types")
	}

	return toMemberTypeDomains(memberTypeModels), nil
}

// --- Mapper Functions ---

// toMemberTypeDomain converts a GORM MemberTypeModel to a domain MemberType entity.
func toMemberTypeDomain(data *model.MemberTypeModel) *entity.MemberType {
	if data == nil {
		return nil
	}

	return &entity.MemberType{
		ID:                 entity.MemberTypeID(data.ID),
		Discount:           data.Discount,
		PostsLimitPerMonth: data.PostsLimitPerMonth,
	}
}

func toMemberTypeDomains(data []*model.MemberTypeModel) []*entity.MemberType {
	memberTypes := make([]*entity.MemberType, 0, len(data))
	for _, memberTypeM := range data {
		memberTypes = append(memberTypes, toMemberTypeDomain(memberTypeM))
	}

	return memberTypes
}
