package loader

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"membergraph/config"
	"membergraph/internal/domain/entity"
	mockRepo "membergraph/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type factoryFixtures struct {
	factory       *Factory
	users         *mockRepo.MockUserRepository
	profiles      *mockRepo.MockProfileRepository
	posts         *mockRepo.MockPostRepository
	memberTypes   *mockRepo.MockMemberTypeRepository
	subscriptions *mockRepo.MockSubscriptionRepository
}

func createTestFactory(t *testing.T) factoryFixtures {
	fx := factoryFixtures{
		users:         mockRepo.NewMockUserRepository(t),
		profiles:      mockRepo.NewMockProfileRepository(t),
		posts:         mockRepo.NewMockPostRepository(t),
		memberTypes:   mockRepo.NewMockMemberTypeRepository(t),
		subscriptions: mockRepo.NewMockSubscriptionRepository(t),
	}
	fx.factory = NewFactory(FactoryParams{
		Config:        &config.Config{GraphQL: &config.GraphQLConfig{MaxBatchSize: 0}},
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Users:         fx.users,
		Profiles:      fx.profiles,
		Posts:         fx.posts,
		MemberTypes:   fx.memberTypes,
		Subscriptions: fx.subscriptions,
	})

	return fx
}

func TestLoaders_ProfilesByUserSingleBulkCall(t *testing.T) {
	fx := createTestFactory(t)
	ctx := context.Background()

	u1, u2, u3 := uuid.New(), uuid.New(), uuid.New()
	p1 := &entity.Profile{ID: uuid.New(), UserID: u1, MemberTypeID: entity.MemberTypeBasic}
	p3 := &entity.Profile{ID: uuid.New(), UserID: u3, MemberTypeID: entity.MemberTypeBusiness}

	fx.profiles.EXPECT().
		FindByUserIDs(mock.Anything, []uuid.UUID{u1, u2, u3}).
		Return([]*entity.Profile{p3, p1}, nil).
		Once()

	l := fx.factory.New(ctx)
	t1 := l.ProfilesByUser.Load(ctx, u1)
	t2 := l.ProfilesByUser.Load(ctx, u2)
	t3 := l.ProfilesByUser.Load(ctx, u3)

	got1, err := t1()
	require.NoError(t, err)
	got2, err := t2()
	require.NoError(t, err)
	got3, err := t3()
	require.NoError(t, err)

	assert.Same(t, p1, got1)
	assert.Nil(t, got2)
	assert.Same(t, p3, got3)

	primed, err := l.Profiles.Load(ctx, p1.ID)()
	require.NoError(t, err)
	assert.Same(t, p1, primed)
}

func TestLoaders_PostsByAuthorEmptyListForUnknownAuthor(t *testing.T) {
	fx := createTestFactory(t)
	ctx := context.Background()

	author, lonely := uuid.New(), uuid.New()
	post := &entity.Post{ID: uuid.New(), Title: "hello", AuthorID: author}

	fx.posts.EXPECT().
		FindByAuthorIDs(mock.Anything, []uuid.UUID{author, lonely}).
		Return([]*entity.Post{post}, nil).
		Once()

	l := fx.factory.New(ctx)
	tAuthor := l.PostsByAuthor.Load(ctx, author)
	tLonely := l.PostsByAuthor.Load(ctx, lonely)

	posts, err := tAuthor()
	require.NoError(t, err)
	assert.Equal(t, []*entity.Post{post}, posts)

	none, err := tLonely()
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestLoaders_SubscribedToUsersResolvesBothHopsInBulk(t *testing.T) {
	fx := createTestFactory(t)
	ctx := context.Background()

	alice := &entity.User{ID: uuid.New(), Name: "alice"}
	bob := &entity.User{ID: uuid.New(), Name: "bob"}
	carol := &entity.User{ID: uuid.New(), Name: "carol"}

	fx.subscriptions.EXPECT().
		FindBySubscriberIDs(mock.Anything, []uuid.UUID{alice.ID, bob.ID}).
		Return([]*entity.Subscription{
			{SubscriberID: alice.ID, AuthorID: carol.ID},
			{SubscriberID: bob.ID, AuthorID: carol.ID},
			{SubscriberID: bob.ID, AuthorID: alice.ID},
		}, nil).
		Once()
	fx.users.EXPECT().
		FindManyByIDs(mock.Anything, []uuid.UUID{carol.ID, alice.ID}).
		Return([]*entity.User{alice, carol}, nil).
		Once()

	l := fx.factory.New(ctx)
	tAlice := l.SubscribedToUsers(ctx, alice.ID)
	tBob := l.SubscribedToUsers(ctx, bob.ID)

	aliceFollows, err := tAlice()
	require.NoError(t, err)
	bobFollows, err := tBob()
	require.NoError(t, err)

	assert.Equal(t, []*entity.User{carol}, aliceFollows)
	assert.Equal(t, []*entity.User{carol, alice}, bobFollows)

	cached, err := l.Users.Load(ctx, carol.ID)()
	require.NoError(t, err)
	assert.Same(t, carol, cached)
}

func TestLoaders_EdgeDirectionsShareOneUserWindow(t *testing.T) {
	fx := createTestFactory(t)
	ctx := context.Background()

	alice := &entity.User{ID: uuid.New(), Name: "alice"}
	bob := &entity.User{ID: uuid.New(), Name: "bob"}
	carol := &entity.User{ID: uuid.New(), Name: "carol"}

	fx.subscriptions.EXPECT().
		FindBySubscriberIDs(mock.Anything, []uuid.UUID{alice.ID}).
		Return([]*entity.Subscription{{SubscriberID: alice.ID, AuthorID: bob.ID}}, nil).
		Once()
	fx.subscriptions.EXPECT().
		FindByAuthorIDs(mock.Anything, []uuid.UUID{alice.ID}).
		Return([]*entity.Subscription{{SubscriberID: carol.ID, AuthorID: alice.ID}}, nil).
		Once()
	fx.users.EXPECT().
		FindManyByIDs(mock.Anything, []uuid.UUID{bob.ID, carol.ID}).
		Return([]*entity.User{bob, carol}, nil).
		Once()

	l := fx.factory.New(ctx)
	tFollows := l.SubscribedToUsers(ctx, alice.ID)
	tFollowers := l.SubscribersOf(ctx, alice.ID)

	follows, err := tFollows()
	require.NoError(t, err)
	followers, err := tFollowers()
	require.NoError(t, err)

	assert.Equal(t, []*entity.User{bob}, follows)
	assert.Equal(t, []*entity.User{carol}, followers)
}

func TestLoaders_EdgesReuseCachedUsers(t *testing.T) {
	fx := createTestFactory(t)
	ctx := context.Background()

	alice := &entity.User{ID: uuid.New(), Name: "alice"}
	bob := &entity.User{ID: uuid.New(), Name: "bob"}

	fx.subscriptions.EXPECT().
		FindBySubscriberIDs(mock.Anything, []uuid.UUID{alice.ID, bob.ID}).
		Return([]*entity.Subscription{{SubscriberID: alice.ID, AuthorID: bob.ID}}, nil).
		Once()
	fx.subscriptions.EXPECT().
		FindByAuthorIDs(mock.Anything, []uuid.UUID{alice.ID, bob.ID}).
		Return([]*entity.Subscription{{SubscriberID: alice.ID, AuthorID: bob.ID}}, nil).
		Once()

	l := fx.factory.New(ctx)
	l.Users.Prime(alice.ID, alice)
	l.Users.Prime(bob.ID, bob)

	tAliceFollows := l.SubscribedToUsers(ctx, alice.ID)
	tBobFollows := l.SubscribedToUsers(ctx, bob.ID)
	tAliceFollowers := l.SubscribersOf(ctx, alice.ID)
	tBobFollowers := l.SubscribersOf(ctx, bob.ID)

	aliceFollows, err := tAliceFollows()
	require.NoError(t, err)
	require.Len(t, aliceFollows, 1)
	assert.Same(t, bob, aliceFollows[0])

	bobFollows, err := tBobFollows()
	require.NoError(t, err)
	assert.Empty(t, bobFollows)

	aliceFollowers, err := tAliceFollowers()
	require.NoError(t, err)
	assert.Empty(t, aliceFollowers)

	bobFollowers, err := tBobFollowers()
	require.NoError(t, err)
	require.Len(t, bobFollowers, 1)
	assert.Same(t, alice, bobFollowers[0])
}

func TestLoaders_EdgesToMissingUsersAreDropped(t *testing.T) {
	fx := createTestFactory(t)
	ctx := context.Background()

	alice, ghost := uuid.New(), uuid.New()
	fx.subscriptions.EXPECT().
		FindBySubscriberIDs(mock.Anything, []uuid.UUID{alice}).
		Return([]*entity.Subscription{{SubscriberID: alice, AuthorID: ghost}}, nil).
		Once()
	fx.users.EXPECT().
		FindManyByIDs(mock.Anything, []uuid.UUID{ghost}).
		Return([]*entity.User{}, nil).
		Once()

	follows, err := fx.factory.New(ctx).SubscribedToUsers(ctx, alice)()

	require.NoError(t, err)
	assert.NotNil(t, follows)
	assert.Empty(t, follows)
}

func TestLoaders_SubscribersWithoutEdgesSkipsUserFetch(t *testing.T) {
	fx := createTestFactory(t)
	ctx := context.Background()

	author := uuid.New()
	fx.subscriptions.EXPECT().
		FindByAuthorIDs(mock.Anything, []uuid.UUID{author}).
		Return([]*entity.Subscription{}, nil).
		Once()

	followers, err := fx.factory.New(ctx).SubscribersOf(ctx, author)()

	require.NoError(t, err)
	assert.Empty(t, followers)
}

func TestLoaders_FreshBundlePerRequest(t *testing.T) {
	fx := createTestFactory(t)

	id := uuid.New()
	user := &entity.User{ID: id, Name: "alice"}
	fx.users.EXPECT().
		FindManyByIDs(mock.Anything, []uuid.UUID{id}).
		Return([]*entity.User{user}, nil).
		Twice()

	for i := 0; i < 2; i++ {
		ctx := context.Background()
		got, err := fx.factory.New(ctx).Users.Load(ctx, id)()
		require.NoError(t, err)
		assert.Same(t, user, got)
	}
}

func TestLoaders_MemberTypesKeyedByEnum(t *testing.T) {
	fx := createTestFactory(t)
	ctx := context.Background()

	basic := &entity.MemberType{ID: entity.MemberTypeBasic, Discount: 2.3, PostsLimitPerMonth: 20}
	fx.memberTypes.EXPECT().
		FindManyByIDs(mock.Anything, []entity.MemberTypeID{entity.MemberTypeBasic, entity.MemberTypeBusiness}).
		Return([]*entity.MemberType{basic}, nil).
		Once()

	l := fx.factory.New(ctx)
	tBasic := l.MemberTypes.Load(ctx, entity.MemberTypeBasic)
	tBusiness := l.MemberTypes.Load(ctx, entity.MemberTypeBusiness)

	got, err := tBasic()
	require.NoError(t, err)
	assert.Same(t, basic, got)

	missing, err := tBusiness()
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFromContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	l := &Loaders{}
	got, ok := FromContext(WithLoaders(context.Background(), l))
	assert.True(t, ok)
	assert.Same(t, l, got)
}
