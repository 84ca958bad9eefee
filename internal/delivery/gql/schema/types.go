package schema

import (
	"context"

	"membergraph/internal/delivery/gql/loader"
	"membergraph/internal/domain/entity"
	domainerrors "membergraph/internal/domain/errors"

	"github.com/graphql-go/graphql"
)

// thunk is the deferred result the executor recognizes and forces breadth-first.
type thunk = func() (interface{}, error)

func (s *Schema) buildTypes() {
	s.memberType = graphql.NewObject(graphql.ObjectConfig{
		Name: "MemberType",
		Fields: graphql.Fields{
			"id":                 &graphql.Field{Type: graphql.NewNonNull(MemberTypeID)},
			"discount":           &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"postsLimitPerMonth": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	s.post = graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":       &graphql.Field{Type: graphql.NewNonNull(UUID)},
				"title":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"content":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"authorId": &graphql.Field{Type: graphql.NewNonNull(UUID)},
				"author": &graphql.Field{
					Type:    s.user,
					Resolve: s.resolvePostAuthor,
				},
			}
		}),
	})

	s.profile = graphql.NewObject(graphql.ObjectConfig{
		Name: "Profile",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":           &graphql.Field{Type: graphql.NewNonNull(UUID)},
				"isMale":       &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
				"yearOfBirth":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"userId":       &graphql.Field{Type: graphql.NewNonNull(UUID)},
				"memberTypeId": &graphql.Field{Type: graphql.NewNonNull(MemberTypeID)},
				// Nullable so a dangling member type reference only nulls this field.
				"memberType": &graphql.Field{
					Type:    s.memberType,
					Resolve: s.resolveProfileMemberType,
				},
				"user": &graphql.Field{
					Type:    s.user,
					Resolve: s.resolveProfileUser,
				},
			}
		}),
	})

	s.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":      &graphql.Field{Type: graphql.NewNonNull(UUID)},
				"name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"balance": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
				"profile": &graphql.Field{
					Type:    s.profile,
					Resolve: s.resolveUserProfile,
				},
				"posts": &graphql.Field{
					Type:    nonNullList(s.post),
					Resolve: s.resolveUserPosts,
				},
				"userSubscribedTo": &graphql.Field{
					Description: "Authors this user is subscribed to.",
					Type:        nonNullList(s.user),
					Resolve:     s.resolveUserSubscribedTo,
				},
				"subscribedToUser": &graphql.Field{
					Description: "Users subscribed to this user.",
					Type:        nonNullList(s.user),
					Resolve:     s.resolveSubscribedToUser,
				},
			}
		}),
	})
}

func nonNullList(t graphql.Type) graphql.Type {
	return graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t)))
}

func (s *Schema) resolveUserProfile(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*entity.User)
	if !ok {
		return nil, nil
	}
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	return deferOne(s, p.Context, l.ProfilesByUser.Load(p.Context, user.ID)), nil
}

func (s *Schema) resolveUserPosts(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*entity.User)
	if !ok {
		return nil, nil
	}
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	return deferMany(s, p.Context, l.PostsByAuthor.Load(p.Context, user.ID)), nil
}

func (s *Schema) resolveUserSubscribedTo(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*entity.User)
	if !ok {
		return nil, nil
	}
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	return deferMany(s, p.Context, l.SubscribedToUsers(p.Context, user.ID)), nil
}

func (s *Schema) resolveSubscribedToUser(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*entity.User)
	if !ok {
		return nil, nil
	}
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	return deferMany(s, p.Context, l.SubscribersOf(p.Context, user.ID)), nil
}

func (s *Schema) resolveProfileMemberType(p graphql.ResolveParams) (interface{}, error) {
	profile, ok := p.Source.(*entity.Profile)
	if !ok {
		return nil, nil
	}
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	load := l.MemberTypes.Load(p.Context, profile.MemberTypeID)

	return thunk(func() (interface{}, error) {
		memberType, err := load()
		if err != nil {
			return nil, s.toFieldError(p.Context, err)
		}
		if memberType == nil {
			return nil, s.toFieldError(p.Context,
				domainerrors.ErrMemberTypeNotFound.WithDetails(string(profile.MemberTypeID)))
		}

		return memberType, nil
	}), nil
}

func (s *Schema) resolveProfileUser(p graphql.ResolveParams) (interface{}, error) {
	profile, ok := p.Source.(*entity.Profile)
	if !ok {
		return nil, nil
	}
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	return deferOne(s, p.Context, l.Users.Load(p.Context, profile.UserID)), nil
}

func (s *Schema) resolvePostAuthor(p graphql.ResolveParams) (interface{}, error) {
	post, ok := p.Source.(*entity.Post)
	if !ok {
		return nil, nil
	}
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	return deferOne(s, p.Context, l.Users.Load(p.Context, post.AuthorID)), nil
}

// deferOne adapts a loader thunk for a nullable object field. A missing row becomes null.
func deferOne[T any](s *Schema, ctx context.Context, load loader.Thunk[*T]) thunk {
	return func() (interface{}, error) {
		value, err := load()
		if err != nil {
			return nil, s.toFieldError(ctx, err)
		}
		if value == nil {
			return nil, nil
		}

		return value, nil
	}
}

// deferMany adapts a loader thunk for a non-null list field.
func deferMany[T any](s *Schema, ctx context.Context, load loader.Thunk[[]*T]) thunk {
	return func() (interface{}, error) {
		values, err := load()
		if err != nil {
			return nil, s.toFieldError(ctx, err)
		}
		if values == nil {
			values = []*T{}
		}

		return values, nil
	}
}
