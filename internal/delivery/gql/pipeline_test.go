package gql

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"membergraph/config"
	"membergraph/internal/delivery/gql/loader"
	"membergraph/internal/delivery/gql/schema"
	"membergraph/internal/domain/entity"
	mockRepo "membergraph/internal/mocks/repository"
	mockUsecase "membergraph/internal/mocks/usecase"
	"membergraph/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pipelineFixtures struct {
	pipeline      *Pipeline
	users         *mockRepo.MockUserRepository
	profiles      *mockRepo.MockProfileRepository
	posts         *mockRepo.MockPostRepository
	memberTypes   *mockRepo.MockMemberTypeRepository
	subscriptions *mockRepo.MockSubscriptionRepository
	userUsecase   *mockUsecase.MockUserUsecase
}

func createTestPipeline(t *testing.T) pipelineFixtures {
	fx := pipelineFixtures{
		users:         mockRepo.NewMockUserRepository(t),
		profiles:      mockRepo.NewMockProfileRepository(t),
		posts:         mockRepo.NewMockPostRepository(t),
		memberTypes:   mockRepo.NewMockMemberTypeRepository(t),
		subscriptions: mockRepo.NewMockSubscriptionRepository(t),
		userUsecase:   mockUsecase.NewMockUserUsecase(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{GraphQL: &config.GraphQLConfig{Path: "/", MaxDepth: 5}}

	s, err := schema.New(schema.Params{
		UserUsecase:    fx.userUsecase,
		UserRepo:       fx.users,
		ProfileRepo:    fx.profiles,
		PostRepo:       fx.posts,
		MemberTypeRepo: fx.memberTypes,
		Logger:         logger,
	})
	require.NoError(t, err)

	factory := loader.NewFactory(loader.FactoryParams{
		Config:        cfg,
		Logger:        logger,
		Users:         fx.users,
		Profiles:      fx.profiles,
		Posts:         fx.posts,
		MemberTypes:   fx.memberTypes,
		Subscriptions: fx.subscriptions,
	})

	fx.pipeline = NewPipeline(PipelineParams{Schema: s, Loaders: factory, Config: cfg, Logger: logger})

	return fx
}

// decode renders the response the way clients see it.
func decode(t *testing.T, resp *Response) map[string]interface{} {
	t.Helper()

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))

	return out
}

func errorMessages(t *testing.T, body map[string]interface{}) []string {
	t.Helper()

	list, _ := body["errors"].([]interface{})
	messages := make([]string, 0, len(list))
	for _, item := range list {
		e, ok := item.(map[string]interface{})
		require.True(t, ok)
		msg, _ := e["message"].(string)
		messages = append(messages, msg)
	}

	return messages
}

func sameIDs(expected ...uuid.UUID) interface{} {
	return mock.MatchedBy(func(ids []uuid.UUID) bool {
		if len(ids) != len(expected) {
			return false
		}
		seen := make(map[uuid.UUID]bool, len(ids))
		for _, id := range ids {
			seen[id] = true
		}
		for _, id := range expected {
			if !seen[id] {
				return false
			}
		}

		return true
	})
}

func TestPipeline_DepthFiveAccepted(t *testing.T) {
	fx := createTestPipeline(t)
	fx.users.EXPECT().FindAll(mock.Anything).Return([]*entity.User{}, nil).Once()

	resp := fx.pipeline.Execute(context.Background(), &Request{
		Query: `{ users { posts { author { profile { memberType { id } } } } } }`,
	})

	body := decode(t, resp)
	assert.Empty(t, errorMessages(t, body))
	assert.Equal(t, map[string]interface{}{"users": []interface{}{}}, body["data"])
}

func TestPipeline_DepthSixRejectedBeforeExecution(t *testing.T) {
	fx := createTestPipeline(t)

	resp := fx.pipeline.Execute(context.Background(), &Request{
		Query: `{ users { posts { author { posts { author { profile { id } } } } } } }`,
	})

	body := decode(t, resp)
	assert.Nil(t, body["data"])
	assert.Equal(t, []string{"'' exceeds maximum operation depth of 5"}, errorMessages(t, body))
}

func TestPipeline_DepthCountsFragments(t *testing.T) {
	fx := createTestPipeline(t)

	resp := fx.pipeline.Execute(context.Background(), &Request{
		Query: `
			query Deep { users { ...Chain } }
			fragment Chain on User {
				posts { author { ... on User { posts { author { profile { id } } } } } }
			}`,
	})

	assert.Equal(t, []string{"'Deep' exceeds maximum operation depth of 5"}, errorMessages(t, decode(t, resp)))
}

func TestPipeline_DepthIgnoresIntrospection(t *testing.T) {
	fx := createTestPipeline(t)

	resp := fx.pipeline.Execute(context.Background(), &Request{
		Query: `{ __schema { types { fields { type { ofType { ofType { name } } } } } } }`,
	})

	body := decode(t, resp)
	assert.Empty(t, errorMessages(t, body))
	assert.NotNil(t, body["data"])
}

func TestPipeline_SyntaxError(t *testing.T) {
	fx := createTestPipeline(t)

	resp := fx.pipeline.Execute(context.Background(), &Request{Query: `{ users { id }`})

	body := decode(t, resp)
	assert.Nil(t, body["data"])
	messages := errorMessages(t, body)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Syntax Error")
}

func TestPipeline_UnknownFieldRejected(t *testing.T) {
	fx := createTestPipeline(t)

	resp := fx.pipeline.Execute(context.Background(), &Request{Query: `{ users { email } }`})

	messages := errorMessages(t, decode(t, resp))
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "email")
}

func TestPipeline_SiblingRelationsUseOneBulkCallPerLoader(t *testing.T) {
	fx := createTestPipeline(t)

	users := []*entity.User{
		{ID: uuid.New(), Name: "alice", Balance: 1},
		{ID: uuid.New(), Name: "bob", Balance: 2},
		{ID: uuid.New(), Name: "carol", Balance: 3},
	}
	ids := []uuid.UUID{users[0].ID, users[1].ID, users[2].ID}
	profiles := []*entity.Profile{
		{ID: uuid.New(), UserID: users[0].ID, MemberTypeID: entity.MemberTypeBasic, YearOfBirth: 1990},
		{ID: uuid.New(), UserID: users[1].ID, MemberTypeID: entity.MemberTypeBasic, YearOfBirth: 1991, IsMale: true},
		{ID: uuid.New(), UserID: users[2].ID, MemberTypeID: entity.MemberTypeBusiness, YearOfBirth: 1992},
	}

	fx.users.EXPECT().FindAll(mock.Anything).Return(users, nil).Once()
	fx.profiles.EXPECT().FindByUserIDs(mock.Anything, sameIDs(ids...)).Return(profiles, nil).Once()
	fx.posts.EXPECT().FindByAuthorIDs(mock.Anything, sameIDs(ids...)).Return([]*entity.Post{
		{ID: uuid.New(), Title: "t", Content: "c", AuthorID: users[1].ID},
	}, nil).Once()
	fx.memberTypes.EXPECT().
		FindManyByIDs(mock.Anything, mock.MatchedBy(func(keys []entity.MemberTypeID) bool { return len(keys) == 2 })).
		Return([]*entity.MemberType{
			{ID: entity.MemberTypeBasic, Discount: 2.3, PostsLimitPerMonth: 20},
			{ID: entity.MemberTypeBusiness, Discount: 7.7, PostsLimitPerMonth: 100},
		}, nil).
		Once()

	resp := fx.pipeline.Execute(context.Background(), &Request{
		Query: `{ users { id name profile { yearOfBirth memberType { id discount } } posts { title } } }`,
	})

	body := decode(t, resp)
	require.Empty(t, errorMessages(t, body))

	list := body["data"].(map[string]interface{})["users"].([]interface{})
	require.Len(t, list, 3)
	bob := list[1].(map[string]interface{})
	assert.Equal(t, "bob", bob["name"])
	assert.Len(t, bob["posts"], 1)
	carol := list[2].(map[string]interface{})
	memberType := carol["profile"].(map[string]interface{})["memberType"].(map[string]interface{})
	assert.Equal(t, "BUSINESS", memberType["id"])
	assert.InDelta(t, 7.7, memberType["discount"], 1e-9)
}

func TestPipeline_MissingMemberTypeFailsOnlyThatField(t *testing.T) {
	fx := createTestPipeline(t)

	users := []*entity.User{
		{ID: uuid.New(), Name: "alice"},
		{ID: uuid.New(), Name: "bob"},
	}
	profiles := []*entity.Profile{
		{ID: uuid.New(), UserID: users[0].ID, MemberTypeID: entity.MemberTypeBasic},
		{ID: uuid.New(), UserID: users[1].ID, MemberTypeID: entity.MemberTypeBusiness},
	}

	fx.users.EXPECT().FindAll(mock.Anything).Return(users, nil).Once()
	fx.profiles.EXPECT().FindByUserIDs(mock.Anything, mock.Anything).Return(profiles, nil).Once()
	fx.memberTypes.EXPECT().FindManyByIDs(mock.Anything, mock.Anything).Return([]*entity.MemberType{
		{ID: entity.MemberTypeBasic, Discount: 2.3, PostsLimitPerMonth: 20},
	}, nil).Once()

	resp := fx.pipeline.Execute(context.Background(), &Request{
		Query: `{ users { name profile { id memberType { id } } } }`,
	})

	body := decode(t, resp)
	assert.Equal(t, []string{"member type not found"}, errorMessages(t, body))

	failure := body["errors"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, []interface{}{"users", float64(1), "profile", "memberType"}, failure["path"])

	list := body["data"].(map[string]interface{})["users"].([]interface{})
	bob := list[1].(map[string]interface{})
	assert.Equal(t, "bob", bob["name"])
	bobProfile := bob["profile"].(map[string]interface{})
	assert.Equal(t, profiles[1].ID.String(), bobProfile["id"])
	assert.Nil(t, bobProfile["memberType"])

	alice := list[0].(map[string]interface{})
	assert.NotNil(t, alice["profile"].(map[string]interface{})["memberType"])
}

func TestPipeline_SubscriptionEdgesBothDirections(t *testing.T) {
	fx := createTestPipeline(t)

	alice := &entity.User{ID: uuid.New(), Name: "alice"}
	bob := &entity.User{ID: uuid.New(), Name: "bob"}
	carol := &entity.User{ID: uuid.New(), Name: "carol"}

	fx.users.EXPECT().FindManyByIDs(mock.Anything, []uuid.UUID{alice.ID}).Return([]*entity.User{alice}, nil).Once()
	fx.subscriptions.EXPECT().FindBySubscriberIDs(mock.Anything, []uuid.UUID{alice.ID}).
		Return([]*entity.Subscription{{SubscriberID: alice.ID, AuthorID: bob.ID}}, nil).Once()
	fx.subscriptions.EXPECT().FindByAuthorIDs(mock.Anything, []uuid.UUID{alice.ID}).
		Return([]*entity.Subscription{{SubscriberID: carol.ID, AuthorID: alice.ID}}, nil).Once()
	fx.users.EXPECT().
		FindManyByIDs(mock.Anything, sameIDs(bob.ID, carol.ID)).
		Return([]*entity.User{bob, carol}, nil).
		Once()

	resp := fx.pipeline.Execute(context.Background(), &Request{
		Query:     `query($id: UUID) { user(id: $id) { userSubscribedTo { name } subscribedToUser { name } } }`,
		Variables: map[string]interface{}{"id": alice.ID.String()},
	})

	body := decode(t, resp)
	require.Empty(t, errorMessages(t, body))

	user := body["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, []interface{}{map[string]interface{}{"name": "bob"}}, user["userSubscribedTo"])
	assert.Equal(t, []interface{}{map[string]interface{}{"name": "carol"}}, user["subscribedToUser"])
}

func TestPipeline_SubscriptionEdgesReuseUsersFromRootList(t *testing.T) {
	fx := createTestPipeline(t)

	alice := &entity.User{ID: uuid.New(), Name: "alice"}
	bob := &entity.User{ID: uuid.New(), Name: "bob"}
	ids := []uuid.UUID{alice.ID, bob.ID}
	edge := &entity.Subscription{SubscriberID: alice.ID, AuthorID: bob.ID}

	fx.users.EXPECT().FindAll(mock.Anything).Return([]*entity.User{alice, bob}, nil).Once()
	fx.subscriptions.EXPECT().FindBySubscriberIDs(mock.Anything, sameIDs(ids...)).
		Return([]*entity.Subscription{edge}, nil).Once()
	fx.subscriptions.EXPECT().FindByAuthorIDs(mock.Anything, sameIDs(ids...)).
		Return([]*entity.Subscription{edge}, nil).Once()

	resp := fx.pipeline.Execute(context.Background(), &Request{
		Query: `{ users { id userSubscribedTo { id } subscribedToUser { id } } }`,
	})

	body := decode(t, resp)
	require.Empty(t, errorMessages(t, body))
	fx.users.AssertNotCalled(t, "FindManyByIDs", mock.Anything, mock.Anything)

	list := body["data"].(map[string]interface{})["users"].([]interface{})
	require.Len(t, list, 2)
	first := list[0].(map[string]interface{})
	second := list[1].(map[string]interface{})
	assert.Equal(t, []interface{}{map[string]interface{}{"id": bob.ID.String()}}, first["userSubscribedTo"])
	assert.Equal(t, []interface{}{}, first["subscribedToUser"])
	assert.Equal(t, []interface{}{}, second["userSubscribedTo"])
	assert.Equal(t, []interface{}{map[string]interface{}{"id": alice.ID.String()}}, second["subscribedToUser"])
}

func TestPipeline_FailingBulkFinderOnlyNullsItsField(t *testing.T) {
	fx := createTestPipeline(t)

	users := []*entity.User{
		{ID: uuid.New(), Name: "alice"},
		{ID: uuid.New(), Name: "bob"},
	}
	post := &entity.Post{ID: uuid.New(), Title: "hello", Content: "c", AuthorID: users[0].ID}

	fx.users.EXPECT().FindAll(mock.Anything).Return(users, nil).Once()
	fx.profiles.EXPECT().FindByUserIDs(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset")).Once()
	fx.posts.EXPECT().FindByAuthorIDs(mock.Anything, mock.Anything).
		Return([]*entity.Post{post}, nil).Once()

	resp := fx.pipeline.Execute(context.Background(), &Request{
		Query: `{ users { name profile { id } posts { title } } }`,
	})

	body := decode(t, resp)
	failures := body["errors"].([]interface{})
	require.Len(t, failures, 2)
	paths := make([]interface{}, 0, len(failures))
	for _, item := range failures {
		failure := item.(map[string]interface{})
		assert.Equal(t, "internal server error", failure["message"])
		paths = append(paths, failure["path"])
	}
	assert.ElementsMatch(t, []interface{}{
		[]interface{}{"users", float64(0), "profile"},
		[]interface{}{"users", float64(1), "profile"},
	}, paths)

	list := body["data"].(map[string]interface{})["users"].([]interface{})
	require.Len(t, list, 2)
	alice := list[0].(map[string]interface{})
	assert.Equal(t, "alice", alice["name"])
	assert.Nil(t, alice["profile"])
	assert.Equal(t, []interface{}{map[string]interface{}{"title": "hello"}}, alice["posts"])
	bob := list[1].(map[string]interface{})
	assert.Equal(t, "bob", bob["name"])
	assert.Equal(t, []interface{}{}, bob["posts"])
}

func TestPipeline_CreateThenDeleteUser(t *testing.T) {
	fx := createTestPipeline(t)
	ctx := context.Background()

	created := &entity.User{ID: uuid.New(), Name: "Alice", Balance: 100.5}
	fx.userUsecase.EXPECT().
		CreateUser(mock.Anything, &usecase.CreateUserInput{Name: "Alice", Balance: 100.5}).
		Return(created, nil).
		Once()
	fx.posts.EXPECT().FindByAuthorIDs(mock.Anything, []uuid.UUID{created.ID}).Return([]*entity.Post{}, nil).Once()
	fx.profiles.EXPECT().FindByUserIDs(mock.Anything, []uuid.UUID{created.ID}).Return([]*entity.Profile{}, nil).Once()

	resp := fx.pipeline.Execute(ctx, &Request{
		Query: `mutation { createUser(input: {name: "Alice", balance: 100.5}) { id name balance posts { id } profile { id } } }`,
	})

	body := decode(t, resp)
	require.Empty(t, errorMessages(t, body))
	user := body["data"].(map[string]interface{})["createUser"].(map[string]interface{})
	assert.Equal(t, created.ID.String(), user["id"])
	assert.Equal(t, "Alice", user["name"])
	assert.InDelta(t, 100.5, user["balance"], 1e-9)
	assert.Equal(t, []interface{}{}, user["posts"])
	assert.Nil(t, user["profile"])

	fx.userUsecase.EXPECT().DeleteUser(mock.Anything, created.ID).Return(true, nil).Once()

	resp = fx.pipeline.Execute(ctx, &Request{
		Query:     `mutation($id: UUID!) { deleteUser(id: $id) }`,
		Variables: map[string]interface{}{"id": created.ID.String()},
	})
	body = decode(t, resp)
	require.Empty(t, errorMessages(t, body))
	assert.Equal(t, true, body["data"].(map[string]interface{})["deleteUser"])

	fx.users.EXPECT().FindManyByIDs(mock.Anything, []uuid.UUID{created.ID}).Return([]*entity.User{}, nil).Once()

	resp = fx.pipeline.Execute(ctx, &Request{
		Query:     `query($id: UUID) { user(id: $id) { id } }`,
		Variables: map[string]interface{}{"id": created.ID.String()},
	})
	body = decode(t, resp)
	assert.Empty(t, errorMessages(t, body))
	assert.Equal(t, map[string]interface{}{"user": nil}, body["data"])
}

func TestPipeline_ChangeUserPartialInput(t *testing.T) {
	fx := createTestPipeline(t)

	id := uuid.New()
	fx.userUsecase.EXPECT().
		ChangeUser(mock.Anything, id, mock.MatchedBy(func(input *usecase.ChangeUserInput) bool {
			return input.Name == nil && input.Balance != nil && *input.Balance == 5
		})).
		Return(&entity.User{ID: id, Name: "Alice", Balance: 5}, nil).
		Once()

	resp := fx.pipeline.Execute(context.Background(), &Request{
		Query:     `mutation($id: UUID!) { changeUser(id: $id, input: {balance: 5}) { name balance } }`,
		Variables: map[string]interface{}{"id": id.String()},
	})

	body := decode(t, resp)
	require.Empty(t, errorMessages(t, body))
	assert.Equal(t,
		map[string]interface{}{"changeUser": map[string]interface{}{"name": "Alice", "balance": float64(5)}},
		body["data"],
	)
}

func TestPipeline_InvalidUUIDVariable(t *testing.T) {
	fx := createTestPipeline(t)

	resp := fx.pipeline.Execute(context.Background(), &Request{
		Query:     `query($id: UUID) { user(id: $id) { id } }`,
		Variables: map[string]interface{}{"id": "not-a-uuid"},
	})

	body := decode(t, resp)
	assert.NotEmpty(t, errorMessages(t, body))
	assert.Nil(t, body["data"])
}

func TestPipeline_ConcurrentRequestsDoNotShareCache(t *testing.T) {
	fx := createTestPipeline(t)

	id := uuid.New()
	fx.users.EXPECT().
		FindManyByIDs(mock.Anything, []uuid.UUID{id}).
		Return([]*entity.User{{ID: id, Name: "alice"}}, nil).
		Times(2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := fx.pipeline.Execute(context.Background(), &Request{
				Query:     `query($id: UUID) { user(id: $id) { name } }`,
				Variables: map[string]interface{}{"id": id.String()},
			})
			assert.Empty(t, resp.Errors)
		}()
	}
	wg.Wait()
}
