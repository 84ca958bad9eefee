package schema

import (
	"membergraph/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

func (s *Schema) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQueryType",
		Fields: graphql.Fields{
			"memberTypes": &graphql.Field{
				Type:    graphql.NewList(s.memberType),
				Resolve: s.resolveMemberTypes,
			},
			"memberType": &graphql.Field{
				Type: s.memberType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: MemberTypeID},
				},
				Resolve: s.resolveMemberType,
			},
			"users": &graphql.Field{
				Type:    graphql.NewList(s.user),
				Resolve: s.resolveUsers,
			},
			"user": &graphql.Field{
				Type: s.user,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: UUID},
				},
				Resolve: s.resolveUser,
			},
			"posts": &graphql.Field{
				Type:    graphql.NewList(s.post),
				Resolve: s.resolvePosts,
			},
			"post": &graphql.Field{
				Type: s.post,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: UUID},
				},
				Resolve: s.resolvePost,
			},
			"profiles": &graphql.Field{
				Type:    graphql.NewList(s.profile),
				Resolve: s.resolveProfiles,
			},
			"profile": &graphql.Field{
				Type: s.profile,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: UUID},
				},
				Resolve: s.resolveProfile,
			},
		},
	})
}

// Root lists read straight from the store and prime the request loaders so
// nested lookups of the same rows are free.

func (s *Schema) resolveMemberTypes(p graphql.ResolveParams) (interface{}, error) {
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	memberTypes, err := s.memberTypeRepo.FindAll(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}
	for _, memberType := range memberTypes {
		l.MemberTypes.Prime(memberType.ID, memberType)
	}

	return memberTypes, nil
}

func (s *Schema) resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	users, err := s.userRepo.FindAll(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}
	for _, user := range users {
		l.Users.Prime(user.ID, user)
	}

	return users, nil
}

func (s *Schema) resolvePosts(p graphql.ResolveParams) (interface{}, error) {
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	posts, err := s.postRepo.FindAll(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}
	for _, post := range posts {
		l.Posts.Prime(post.ID, post)
	}

	return posts, nil
}

func (s *Schema) resolveProfiles(p graphql.ResolveParams) (interface{}, error) {
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	profiles, err := s.profileRepo.FindAll(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}
	for _, profile := range profiles {
		l.Profiles.Prime(profile.ID, profile)
		l.ProfilesByUser.Prime(profile.UserID, profile)
	}

	return profiles, nil
}

// Single lookups go through the loaders; an unknown or absent id yields null.

func (s *Schema) resolveMemberType(p graphql.ResolveParams) (interface{}, error) {
	id, ok := p.Args["id"].(entity.MemberTypeID)
	if !ok {
		return nil, nil
	}
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	return deferOne(s, p.Context, l.MemberTypes.Load(p.Context, id)), nil
}

func (s *Schema) resolveUser(p graphql.ResolveParams) (interface{}, error) {
	id, ok := p.Args["id"].(uuid.UUID)
	if !ok {
		return nil, nil
	}
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	return deferOne(s, p.Context, l.Users.Load(p.Context, id)), nil
}

func (s *Schema) resolvePost(p graphql.ResolveParams) (interface{}, error) {
	id, ok := p.Args["id"].(uuid.UUID)
	if !ok {
		return nil, nil
	}
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	return deferOne(s, p.Context, l.Posts.Load(p.Context, id)), nil
}

func (s *Schema) resolveProfile(p graphql.ResolveParams) (interface{}, error) {
	id, ok := p.Args["id"].(uuid.UUID)
	if !ok {
		return nil, nil
	}
	l, err := s.loaders(p.Context)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	return deferOne(s, p.Context, l.Profiles.Load(p.Context, id)), nil
}
