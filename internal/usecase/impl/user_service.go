// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "membergraph/internal/delivery/context"
	"membergraph/internal/domain/constants"
	"membergraph/internal/domain/entity"
	domainerrors "membergraph/internal/domain/errors"
	"membergraph/internal/domain/repository"
	"membergraph/internal/domain/service"
	"membergraph/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	publisher service.EventPublisher
	validate  *validator.Validate
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		publisher: params.Publisher,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser validates input and stores a new user.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("create user input is required")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		ID:      uuid.New(),
		Name:    input.Name,
		Balance: input.Balance,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.String("user_id", user.ID.String()))
	srv.publish(ctx, constants.UserEventCreated, user)

	return user, nil
}

// ChangeUser applies the non-nil fields of input to an existing user.
func (srv *userService) ChangeUser(ctx context.Context, id uuid.UUID, input *usecase.ChangeUserInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("change user input is required")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Balance != nil {
		user.Balance = *input.Balance
	}

	err = srv.userRepo.Update(ctx, user)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User changed", slog.String("user_id", user.ID.String()))
	srv.publish(ctx, constants.UserEventUpdated, user)

	return user, nil
}

// DeleteUser removes the user together with its subscriptions, posts and profile
// in a single transaction.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) (bool, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SubscriptionRepo().DeleteByUserID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete subscriptions")
		}
		if err := repoFactory.PostRepo().DeleteByAuthorID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete posts")
		}
		if err := repoFactory.ProfileRepo().DeleteByUserID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete profile")
		}

		return repoFactory.UserRepo().Delete(ctx, id)
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("User to delete not found", slog.String("user_id", id.String()))

		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("user_id", id.String()))
	srv.publish(ctx, constants.UserEventDeleted, &entity.User{ID: id})

	return true, nil
}

// publish emits a change event. Failures are logged and never fail the write.
func (srv *userService) publish(ctx context.Context, eventType string, user *entity.User) {
	if srv.publisher == nil {
		return
	}

	event := &service.UserEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       eventType,
		UserID:     user.ID.String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if eventType != constants.UserEventDeleted {
		balance := user.Balance
		event.Name = user.Name
		event.Balance = &balance
	}

	if err := srv.publisher.PublishUserEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish user event",
			slog.String("type", eventType),
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
		)
	}
}
