package schema

import (
	"membergraph/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// UUID is the scalar used for every entity identifier.
var UUID = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "UUID",
	Description: "RFC 4122 universally unique identifier in its canonical string form.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case uuid.UUID:
			return v.String()
		case *uuid.UUID:
			if v == nil {
				return nil
			}

			return v.String()
		case string:
			return v
		default:
			return nil
		}
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}

		return parseUUID(s)
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		s, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}

		return parseUUID(s.Value)
	},
})

// parseUUID returns nil on malformed input so the executor reports a coercion error.
func parseUUID(s string) interface{} {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}

	return id
}

// MemberTypeID enumerates the membership tiers.
var MemberTypeID = graphql.NewEnum(graphql.EnumConfig{
	Name: "MemberTypeId",
	Values: graphql.EnumValueConfigMap{
		string(entity.MemberTypeBasic): &graphql.EnumValueConfig{
			Value: entity.MemberTypeBasic,
		},
		string(entity.MemberTypeBusiness): &graphql.EnumValueConfig{
			Value: entity.MemberTypeBusiness,
		},
	},
})
