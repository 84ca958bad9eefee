package loader

import (
	"context"
	"log/slog"

	"membergraph/config"
	deliverycontext "membergraph/internal/delivery/context"
	"membergraph/internal/domain/entity"
	"membergraph/internal/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Loaders bundles every loader used to resolve relations within one request.
type Loaders struct {
	Users          *Loader[uuid.UUID, *entity.User]
	Profiles       *Loader[uuid.UUID, *entity.Profile]
	ProfilesByUser *Loader[uuid.UUID, *entity.Profile]
	Posts          *Loader[uuid.UUID, *entity.Post]
	PostsByAuthor  *Loader[uuid.UUID, []*entity.Post]
	MemberTypes    *Loader[entity.MemberTypeID, *entity.MemberType]

	// SubscribedTo is keyed by subscriber and yields the ids of the authors they follow.
	SubscribedTo *Loader[uuid.UUID, []uuid.UUID]
	// Subscribers is keyed by author and yields the ids of the users following them.
	Subscribers *Loader[uuid.UUID, []uuid.UUID]
}

// SubscribedToUsers yields the authors subscriberID follows.
func (l *Loaders) SubscribedToUsers(ctx context.Context, subscriberID uuid.UUID) Thunk[[]*entity.User] {
	return l.followEdges(ctx, l.SubscribedTo.Load(ctx, subscriberID))
}

// SubscribersOf yields the users following authorID.
func (l *Loaders) SubscribersOf(ctx context.Context, authorID uuid.UUID) Thunk[[]*entity.User] {
	return l.followEdges(ctx, l.Subscribers.Load(ctx, authorID))
}

// followEdges resolves the far ends of edges through the Users loader. Both edge
// loaders are flushed first, so the far ends of every pending edge in either
// direction land in the same user window. Edges pointing at missing users are dropped.
func (l *Loaders) followEdges(ctx context.Context, edges Thunk[[]uuid.UUID]) Thunk[[]*entity.User] {
	return func() ([]*entity.User, error) {
		l.SubscribedTo.Flush()
		l.Subscribers.Flush()

		ids, err := edges()
		if err != nil {
			return nil, err
		}

		users, err := l.Users.LoadMany(ctx, ids)()
		if err != nil {
			return nil, err
		}

		result := make([]*entity.User, 0, len(users))
		for _, user := range users {
			if user != nil {
				result = append(result, user)
			}
		}

		return result, nil
	}
}

// FactoryParams holds the dependencies needed to build request loaders.
type FactoryParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	Users         repository.UserRepository
	Profiles      repository.ProfileRepository
	Posts         repository.PostRepository
	MemberTypes   repository.MemberTypeRepository
	Subscriptions repository.SubscriptionRepository
}

// Factory creates a fresh Loaders bundle for every request.
type Factory struct {
	users         repository.UserRepository
	profiles      repository.ProfileRepository
	posts         repository.PostRepository
	memberTypes   repository.MemberTypeRepository
	subscriptions repository.SubscriptionRepository
	maxBatch      int
	logger        *slog.Logger
}

// NewFactory creates a new loader factory.
func NewFactory(params FactoryParams) *Factory {
	maxBatch := 0
	if params.Config != nil && params.Config.GraphQL != nil {
		maxBatch = params.Config.GraphQL.MaxBatchSize
	}

	return &Factory{
		users:         params.Users,
		profiles:      params.Profiles,
		posts:         params.Posts,
		memberTypes:   params.MemberTypes,
		subscriptions: params.Subscriptions,
		maxBatch:      maxBatch,
		logger:        params.Logger,
	}
}

// New builds loaders scoped to the request carried by ctx.
func (f *Factory) New(ctx context.Context) *Loaders {
	logger := deliverycontext.GetLoggerOrDefault(ctx, f.logger)
	opts := func(name string) []Option {
		return []Option{WithName(name), WithMaxBatch(f.maxBatch), WithLogger(logger)}
	}

	l := &Loaders{}
	l.Users = New(f.batchUsers, opts("users")...)
	l.Profiles = New(f.batchProfiles, opts("profiles")...)
	l.ProfilesByUser = New(func(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Profile, error) {
		return f.batchProfilesByUser(ctx, l, userIDs)
	}, opts("profiles_by_user")...)
	l.Posts = New(f.batchPosts, opts("posts")...)
	l.PostsByAuthor = New(func(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID][]*entity.Post, error) {
		return f.batchPostsByAuthor(ctx, l, authorIDs)
	}, opts("posts_by_author")...)
	l.MemberTypes = New(f.batchMemberTypes, opts("member_types")...)
	l.SubscribedTo = New(func(ctx context.Context, subscriberIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
		edges, err := f.subscriptions.FindBySubscriberIDs(ctx, subscriberIDs)
		if err != nil {
			return nil, err
		}

		return groupEdges(ctx, l, subscriberIDs, edges,
			func(s *entity.Subscription) (uuid.UUID, uuid.UUID) { return s.SubscriberID, s.AuthorID }), nil
	}, opts("subscribed_to")...)
	l.Subscribers = New(func(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
		edges, err := f.subscriptions.FindByAuthorIDs(ctx, authorIDs)
		if err != nil {
			return nil, err
		}

		return groupEdges(ctx, l, authorIDs, edges,
			func(s *entity.Subscription) (uuid.UUID, uuid.UUID) { return s.AuthorID, s.SubscriberID }), nil
	}, opts("subscribers")...)

	return l
}

func (f *Factory) batchUsers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.User, error) {
	users, err := f.users.FindManyByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return indexUsers(users), nil
}

func (f *Factory) batchProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Profile, error) {
	profiles, err := f.profiles.FindManyByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]*entity.Profile, len(profiles))
	for _, profile := range profiles {
		result[profile.ID] = profile
	}

	return result, nil
}

func (f *Factory) batchProfilesByUser(ctx context.Context, l *Loaders, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Profile, error) {
	profiles, err := f.profiles.FindByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]*entity.Profile, len(profiles))
	for _, profile := range profiles {
		result[profile.UserID] = profile
		l.Profiles.Prime(profile.ID, profile)
	}

	return result, nil
}

func (f *Factory) batchPosts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Post, error) {
	posts, err := f.posts.FindManyByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]*entity.Post, len(posts))
	for _, post := range posts {
		result[post.ID] = post
	}

	return result, nil
}

func (f *Factory) batchPostsByAuthor(ctx context.Context, l *Loaders, authorIDs []uuid.UUID) (map[uuid.UUID][]*entity.Post, error) {
	posts, err := f.posts.FindByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID][]*entity.Post, len(authorIDs))
	for _, id := range authorIDs {
		result[id] = []*entity.Post{}
	}
	for _, post := range posts {
		result[post.AuthorID] = append(result[post.AuthorID], post)
		l.Posts.Prime(post.ID, post)
	}

	return result, nil
}

func (f *Factory) batchMemberTypes(ctx context.Context, ids []entity.MemberTypeID) (map[entity.MemberTypeID]*entity.MemberType, error) {
	memberTypes, err := f.memberTypes.FindManyByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make(map[entity.MemberTypeID]*entity.MemberType, len(memberTypes))
	for _, memberType := range memberTypes {
		result[memberType.ID] = memberType
	}

	return result, nil
}

// groupEdges collects the far end ids of edges keyed by their near end and
// registers the far ends with the Users loader, whose next window fetches them.
func groupEdges(
	ctx context.Context,
	l *Loaders,
	keys []uuid.UUID,
	edges []*entity.Subscription,
	ends func(*entity.Subscription) (near, far uuid.UUID),
) map[uuid.UUID][]uuid.UUID {
	result := make(map[uuid.UUID][]uuid.UUID, len(keys))
	for _, key := range keys {
		result[key] = []uuid.UUID{}
	}

	farIDs := make([]uuid.UUID, 0, len(edges))
	for _, edge := range edges {
		near, far := ends(edge)
		result[near] = append(result[near], far)
		farIDs = append(farIDs, far)
	}
	l.Users.Prefetch(ctx, farIDs)

	return result
}

func indexUsers(users []*entity.User) map[uuid.UUID]*entity.User {
	result := make(map[uuid.UUID]*entity.User, len(users))
	for _, user := range users {
		result[user.ID] = user
	}

	return result
}

type loadersKey struct{}

// WithLoaders returns a new context carrying l.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey{}, l)
}

// FromContext extracts the request loaders from ctx.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey{}).(*Loaders)

	return l, ok && l != nil
}
