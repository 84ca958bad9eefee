package gql

import (
	"fmt"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/kinds"
	"github.com/graphql-go/graphql/language/visitor"
)

// DepthLimitRule rejects operations whose selections nest deeper than maxDepth.
// Root fields sit at depth 0, fragments count as if inlined, and introspection
// fields (those starting with "__") are not counted.
func DepthLimitRule(maxDepth int) graphql.ValidationRuleFn {
	return func(context *graphql.ValidationContext) *graphql.ValidationRuleInstance {
		return &graphql.ValidationRuleInstance{
			VisitorOpts: &visitor.VisitorOptions{
				KindFuncMap: map[string]visitor.NamedVisitFuncs{
					kinds.OperationDefinition: {
						Kind: func(p visitor.VisitFuncParams) (string, interface{}) {
							op, ok := p.Node.(*ast.OperationDefinition)
							if !ok || op == nil {
								return visitor.ActionSkip, nil
							}

							m := &depthMeasure{context: context, max: maxDepth}
							if _, exceeded := m.selectionSet(op.SelectionSet, 0, nil); exceeded {
								context.ReportError(gqlerrors.NewError(
									fmt.Sprintf("'%s' exceeds maximum operation depth of %d", operationName(op), maxDepth),
									[]ast.Node{op},
									"",
									nil,
									[]int{},
									nil,
								))
							}

							return visitor.ActionSkip, nil
						},
					},
				},
			},
		}
	}
}

type depthMeasure struct {
	context *graphql.ValidationContext
	max     int
}

// selectionSet returns the depth below set and whether the limit was crossed.
// Measuring stops at the first violation.
func (m *depthMeasure) selectionSet(set *ast.SelectionSet, depth int, visiting map[string]bool) (int, bool) {
	if set == nil {
		return 0, false
	}

	deepest := 0
	for _, selection := range set.Selections {
		d, exceeded := m.selection(selection, depth, visiting)
		if exceeded {
			return d, true
		}
		if d > deepest {
			deepest = d
		}
	}

	return deepest, false
}

func (m *depthMeasure) selection(selection ast.Selection, depth int, visiting map[string]bool) (int, bool) {
	if depth > m.max {
		return depth, true
	}

	switch node := selection.(type) {
	case *ast.Field:
		if node.Name != nil && strings.HasPrefix(node.Name.Value, "__") {
			return 0, false
		}
		if node.SelectionSet == nil {
			return 0, false
		}
		d, exceeded := m.selectionSet(node.SelectionSet, depth+1, visiting)

		return d + 1, exceeded
	case *ast.InlineFragment:
		return m.selectionSet(node.SelectionSet, depth, visiting)
	case *ast.FragmentSpread:
		if node.Name == nil || visiting[node.Name.Value] {
			return 0, false
		}
		fragment := m.context.Fragment(node.Name.Value)
		if fragment == nil {
			return 0, false
		}

		next := make(map[string]bool, len(visiting)+1)
		for name := range visiting {
			next[name] = true
		}
		next[node.Name.Value] = true

		return m.selectionSet(fragment.SelectionSet, depth, next)
	default:
		return 0, false
	}
}

func operationName(op *ast.OperationDefinition) string {
	if op.Name == nil {
		return ""
	}

	return op.Name.Value
}
