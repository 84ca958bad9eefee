package postgres

import (
	"context"
	"log/slog"

	"membergraph/config"
	"membergraph/internal/domain/entity"
	"membergraph/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultMemberTypes are the tiers every deployment starts with.
var defaultMemberTypes = []model.MemberTypeModel{
	{ID: string(entity.MemberTypeBasic), Discount: 2.3, PostsLimitPerMonth: 20},
	{ID: string(entity.MemberTypeBusiness), Discount: 7.7, PostsLimitPerMonth: 100},
}

// Migrate creates the tables and seeds member types when enabled by configuration.
func Migrate(ctx context.Context, db *gorm.DB, cfg *config.MigrationConfig, logger *slog.Logger) error {
	if cfg == nil {
		return nil
	}

	if cfg.AutoMigrate {
		logger.Info("Running schema auto-migration")

		if err := db.WithContext(ctx).AutoMigrate(
			&model.MemberTypeModel{},
			&model.UserModel{},
			&model.ProfileModel{},
			&model.PostModel{},
			&model.SubscriptionModel{},
		); err != nil {
			return errors.Wrap(err, "failed to auto-migrate schema")
		}
	}

	if cfg.SeedMemberTypes {
		// Existing tiers keep their stored values.
		if err := db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&defaultMemberTypes).Error; err != nil {
			return errors.Wrap(err, "failed to seed member types")
		}

		logger.Info("Member types seeded", slog.Int("count", len(defaultMemberTypes)))
	}

	return nil
}
