package schema

import (
	"membergraph/internal/usecase"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

var createUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"balance": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var changeUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangeUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"balance": &graphql.InputObjectFieldConfig{Type: graphql.Float},
	},
})

func (s *Schema) mutationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: graphql.NewNonNull(s.user),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createUserInput)},
				},
				Resolve: s.resolveCreateUser,
			},
			"changeUser": &graphql.Field{
				Type: s.user,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(UUID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(changeUserInput)},
				},
				Resolve: s.resolveChangeUser,
			},
			"deleteUser": &graphql.Field{
				Description: "Deletes the user with its profile, posts and subscriptions. False when no such user exists.",
				Type:        graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(UUID)},
				},
				Resolve: s.resolveDeleteUser,
			},
		},
	})
}

// Mutations write through the use case immediately and then refresh the
// request cache so later fields of the same document see the new state.

func (s *Schema) resolveCreateUser(p graphql.ResolveParams) (interface{}, error) {
	args, _ := p.Args["input"].(map[string]interface{})
	input := &usecase.CreateUserInput{}
	input.Name, _ = args["name"].(string)
	input.Balance, _ = args["balance"].(float64)

	user, err := s.users.CreateUser(p.Context, input)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	if l, err := s.loaders(p.Context); err == nil {
		l.Users.Prime(user.ID, user)
	}

	return user, nil
}

func (s *Schema) resolveChangeUser(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(uuid.UUID)
	args, _ := p.Args["input"].(map[string]interface{})

	input := &usecase.ChangeUserInput{}
	if name, ok := args["name"].(string); ok {
		input.Name = &name
	}
	if balance, ok := args["balance"].(float64); ok {
		input.Balance = &balance
	}

	user, err := s.users.ChangeUser(p.Context, id, input)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	if l, err := s.loaders(p.Context); err == nil {
		l.Users.Clear(user.ID)
		l.Users.Prime(user.ID, user)
	}

	return user, nil
}

func (s *Schema) resolveDeleteUser(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(uuid.UUID)

	deleted, err := s.users.DeleteUser(p.Context, id)
	if err != nil {
		return nil, s.toFieldError(p.Context, err)
	}

	if l, err := s.loaders(p.Context); err == nil {
		l.Users.Clear(id)
		l.ProfilesByUser.Clear(id)
		l.PostsByAuthor.Clear(id)
		l.SubscribedTo.Clear(id)
		l.Subscribers.Clear(id)
	}

	return deleted, nil
}
