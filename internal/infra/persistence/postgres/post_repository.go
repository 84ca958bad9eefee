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

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{
		db: db,
	}
}

// FindByID retrieves a single post by its ID.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindManyByIDs retrieves every post whose ID is in ids.
func (repo *postRepository) FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Post, error) {
	if len(ids) == 0 {
		return []*entity.Post{}, nil
	}

	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts by ids")
	}

	return toPostDomains(postModels), nil
}

// FindByAuthorIDs retrieves all posts written by the given users.
func (repo *postRepository) FindByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) ([]*entity.Post, error) {
	if len(authorIDs) == 0 {
		return []*entity.Post{}, nil
	}

	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts by author ids")
	}

	return toPostDomains(postModels), nil
}

// FindAll retrieves every post.
func (repo *postRepository) FindAll(ctx context.Context) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts")
	}

	return toPostDomains(postModels), nil
}

// DeleteByAuthorID removes every post written by authorID.
func (repo *postRepository) DeleteByAuthorID(ctx context.Context, authorID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&model.PostModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete posts")
	}

	return nil
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:       data.ID,
		Title:    data.Title,
		Content:  data.Content,
		AuthorID: data.AuthorID,
	}
}

func toPostDomains(data []*model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(data))
	for _, postM := range data {
		posts = append(posts, toPostDomain(postM))
	}

	return posts
}
