package gqlcst

import (
	"strings"
	"testing"
)

// assertLossless checks the universal invariant that every SyntaxTree's
// document reconstructs the exact source bytes it was parsed from,
// regardless of whether the input was valid GraphQL.
func assertLossless(t *testing.T, src string, tree *SyntaxTree) {
	t.Helper()
	if got := tree.Document().Text(); got != src {
		t.Fatalf("lossless round trip failed:\n got: %q\nwant: %q", got, src)
	}
}

func TestParseEmptyInputYieldsEmptyDocument(t *testing.T) {
	t.Parallel()

	tree := Parse(nil)
	if tree.Document() == nil {
		t.Fatal("Document() = nil")
	}
	if tree.Document().Kind() != KindDocument {
		t.Fatalf("root kind = %v, want DOCUMENT", tree.Document().Kind())
	}
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}
	if got := len(tree.Document().Children()); got != 0 {
		t.Fatalf("document children = %d, want 0", got)
	}
	assertLossless(t, "", tree)
}

func TestParseWhitespaceAndCommentOnlyInputYieldsOnlyTrivia(t *testing.T) {
	t.Parallel()

	src := "  \n# just a comment\n  "
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}
	assertLossless(t, src, tree)

	for _, c := range tree.Document().Children() {
		if !c.IsToken() {
			t.Fatalf("unexpected non-token child %v in a document with no definitions", c.Kind())
		}
		switch c.Kind() {
		case KindWhitespace, KindComment:
		default:
			t.Fatalf("unexpected child kind %v, want only trivia", c.Kind())
		}
	}
}

func TestParseShorthandSelectionSetGoldenShape(t *testing.T) {
	t.Parallel()

	src := "{ field }"
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}
	assertLossless(t, src, tree)

	doc := tree.Document()
	if len(doc.Children()) != 1 {
		t.Fatalf("document children = %d, want 1 (operation)", len(doc.Children()))
	}
	op := doc.Children()[0].Node()
	if op.Kind() != KindOperationDefinition {
		t.Fatalf("child[0] kind = %v, want OPERATION_DEFINITION", op.Kind())
	}

	if len(op.Children()) != 1 || op.Children()[0].Kind() != KindSelectionSet {
		t.Fatalf("operation definition children = %+v, want a single SELECTION_SET", op.Children())
	}
	sel := op.Children()[0].Node()

	var fields []*SyntaxNode
	for _, c := range sel.Children() {
		if !c.IsToken() && c.Node().Kind() == KindField {
			fields = append(fields, c.Node())
		}
	}
	if len(fields) != 1 {
		t.Fatalf("selection set has %d FIELD children, want 1", len(fields))
	}
	name := fields[0].ChildNodes()[0]
	if name.Kind() != KindName || name.Text() != "field" {
		t.Fatalf("field name = %+v, want NAME(\"field\")", name)
	}
}

func TestParseFieldWithAlias(t *testing.T) {
	t.Parallel()

	src := "{ aliased: field }"
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}
	assertLossless(t, src, tree)

	field := findFirst(tree.Document(), KindField)
	if field == nil {
		t.Fatal("no FIELD found")
	}
	names := childrenOfKind(field, KindName)
	if len(names) != 2 {
		t.Fatalf("field has %d NAME children, want 2 (alias + field name)", len(names))
	}
	if names[0].Text() != "aliased" || names[1].Text() != "field" {
		t.Fatalf("names = %q, %q, want \"aliased\", \"field\"", names[0].Text(), names[1].Text())
	}
}

func TestParseOperationWithVariableDefinitionsAndNestedSelections(t *testing.T) {
	t.Parallel()

	src := `query Example($id: ID!, $limit: Int = 10) {
  user(id: $id) {
    name
    friends(first: $limit) {
      name
    }
  }
}`
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}
	assertLossless(t, src, tree)

	op := findFirst(tree.Document(), KindOperationDefinition)
	if op == nil {
		t.Fatal("no OPERATION_DEFINITION found")
	}
	if kw := op.Children()[0]; kw.Kind() != KindQueryKW {
		t.Fatalf("first child kind = %v, want query_KW", kw.Kind())
	}

	varDefs := findFirst(op, KindVariableDefinitions)
	if varDefs == nil {
		t.Fatal("no VARIABLE_DEFINITIONS found")
	}
	defs := childrenOfKind(varDefs, KindVariableDefinition)
	if len(defs) != 2 {
		t.Fatalf("variable definitions = %d, want 2", len(defs))
	}
	if dv := findFirst(defs[1], KindDefaultValue); dv == nil {
		t.Fatal("second variable definition missing DEFAULT_VALUE")
	}

	fields := allOfKind(tree.Document(), KindField)
	var fieldNames []string
	for _, f := range fields {
		fieldNames = append(fieldNames, f.ChildNodes()[0].Text())
	}
	want := []string{"user", "name", "friends", "name"}
	if strings.Join(fieldNames, ",") != strings.Join(want, ",") {
		t.Fatalf("field names = %v, want %v", fieldNames, want)
	}
}

func TestParseUnterminatedSelectionSetStillProducesATree(t *testing.T) {
	t.Parallel()

	src := "{ field"
	tree := Parse([]byte(src))
	if !tree.HasErrors() {
		t.Fatal("expected at least one error for an unterminated selection set")
	}
	assertLossless(t, src, tree)

	sel := findFirst(tree.Document(), KindSelectionSet)
	if sel == nil {
		t.Fatal("no SELECTION_SET found")
	}
	if findFirst(sel, KindField) == nil {
		t.Fatal("SELECTION_SET should still contain the FIELD parsed before EOF")
	}
}

func TestParseUnionTypeDefinition(t *testing.T) {
	t.Parallel()

	src := `union SearchResult = Photo | Person`
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}
	assertLossless(t, src, tree)

	union := findFirst(tree.Document(), KindUnionTypeDefinition)
	if union == nil {
		t.Fatal("no UNION_TYPE_DEFINITION found")
	}
	members := findFirst(union, KindUnionMemberTypes)
	if members == nil {
		t.Fatal("no UNION_MEMBER_TYPES found")
	}
	named := childrenOfKind(members, KindNamedType)
	if len(named) != 2 {
		t.Fatalf("union members = %d, want 2", len(named))
	}
	if named[0].Text() != "Photo" || named[1].Text() != "Person" {
		t.Fatalf("members = %q, %q", named[0].Text(), named[1].Text())
	}
}

func TestParseDirectiveDefinitionWithoutRepeatable(t *testing.T) {
	t.Parallel()

	src := `directive @example(reason: String) on FIELD | OBJECT`
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}
	assertLossless(t, src, tree)

	dd := findFirst(tree.Document(), KindDirectiveDefinition)
	if dd == nil {
		t.Fatal("no DIRECTIVE_DEFINITION found")
	}
	if hasToken(dd, KindRepeatableKW) {
		t.Fatal("unexpected repeatable_KW for a non-repeatable directive")
	}
	locs := findFirst(dd, KindDirectiveLocations)
	if locs == nil {
		t.Fatal("no DIRECTIVE_LOCATIONS found")
	}
	locNodes := childrenOfKind(locs, KindDirectiveLocation)
	if len(locNodes) != 2 {
		t.Fatalf("directive locations = %d, want 2", len(locNodes))
	}
	if locNodes[0].Children()[0].Kind() != KindLocFieldKW {
		t.Fatalf("location[0] kind = %v, want FIELD_KW", locNodes[0].Children()[0].Kind())
	}
	if locNodes[1].Children()[0].Kind() != KindLocObjectKW {
		t.Fatalf("location[1] kind = %v, want OBJECT_KW", locNodes[1].Children()[0].Kind())
	}
}

func TestParseDirectiveDefinitionWithRepeatable(t *testing.T) {
	t.Parallel()

	src := `directive @tag repeatable on FIELD_DEFINITION | ARGUMENT_DEFINITION`
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}
	assertLossless(t, src, tree)

	dd := findFirst(tree.Document(), KindDirectiveDefinition)
	if dd == nil {
		t.Fatal("no DIRECTIVE_DEFINITION found")
	}
	if !hasToken(dd, KindRepeatableKW) {
		t.Fatal("expected repeatable_KW")
	}
}

// TestParseDirectiveLocationsDoNotAlias checks that every directive
// location keyword gets its own SyntaxKind: a prior, widely copied
// implementation of this grammar mapped both MUTATION and FRAGMENT_SPREAD
// onto the wrong keyword kind.
func TestParseDirectiveLocationsDoNotAlias(t *testing.T) {
	t.Parallel()

	src := `directive @d on MUTATION | FRAGMENT_SPREAD`
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}

	dd := findFirst(tree.Document(), KindDirectiveDefinition)
	locs := childrenOfKind(findFirst(dd, KindDirectiveLocations), KindDirectiveLocation)
	if len(locs) != 2 {
		t.Fatalf("locations = %d, want 2", len(locs))
	}
	if got := locs[0].Children()[0].Kind(); got != KindLocMutationKW {
		t.Fatalf("MUTATION location kind = %v, want MUTATION_KW", got)
	}
	if got := locs[1].Children()[0].Kind(); got != KindLocFragmentSpreadKW {
		t.Fatalf("FRAGMENT_SPREAD location kind = %v, want FRAGMENT_SPREAD_KW", got)
	}
}

func TestParseInlineFragmentWithAndWithoutTypeCondition(t *testing.T) {
	t.Parallel()

	src := `{
  ... on User {
    name
  }
  ... @skip(if: $cond) {
    name
  }
  ...Frag
}`
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}
	assertLossless(t, src, tree)

	inline := allOfKind(tree.Document(), KindInlineFragment)
	if len(inline) != 2 {
		t.Fatalf("inline fragments = %d, want 2", len(inline))
	}
	if findFirst(inline[0], KindTypeCondition) == nil {
		t.Fatal("first inline fragment should have a TYPE_CONDITION")
	}
	if findFirst(inline[1], KindTypeCondition) != nil {
		t.Fatal("second inline fragment should have no TYPE_CONDITION")
	}

	spreads := allOfKind(tree.Document(), KindFragmentSpread)
	if len(spreads) != 1 {
		t.Fatalf("fragment spreads = %d, want 1", len(spreads))
	}
}

func TestParseSchemaExtension(t *testing.T) {
	t.Parallel()

	src := `extend schema @addedDirective {
  mutation: Mutation
}`
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}
	assertLossless(t, src, tree)

	ext := findFirst(tree.Document(), KindSchemaExtension)
	if ext == nil {
		t.Fatal("no SCHEMA_EXTENSION found")
	}
	if findFirst(ext, KindRootOperationTypeDefinition) == nil {
		t.Fatal("no ROOT_OPERATION_TYPE_DEFINITION found")
	}
}

func TestParseDescriptionPrecedesTypeDefinition(t *testing.T) {
	t.Parallel()

	src := `"A scalar." scalar UUID`
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}
	assertLossless(t, src, tree)

	def := findFirst(tree.Document(), KindScalarTypeDefinition)
	if def == nil {
		t.Fatal("no SCALAR_TYPE_DEFINITION found")
	}
	if findFirst(def, KindDescription) == nil {
		t.Fatal("expected DESCRIPTION as a child of the scalar type definition")
	}
}

func TestParseInputObjectAndEnumTypeDefinitions(t *testing.T) {
	t.Parallel()

	src := `enum Status {
  ACTIVE
  INACTIVE
}

input Filter {
  status: Status = ACTIVE
  tags: [String!]
}`
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}
	assertLossless(t, src, tree)

	if findFirst(tree.Document(), KindEnumTypeDefinition) == nil {
		t.Fatal("no ENUM_TYPE_DEFINITION found")
	}
	input := findFirst(tree.Document(), KindInputObjectTypeDefinition)
	if input == nil {
		t.Fatal("no INPUT_OBJECT_TYPE_DEFINITION found")
	}
	ivs := allOfKind(input, KindInputValueDefinition)
	if len(ivs) != 2 {
		t.Fatalf("input value definitions = %d, want 2", len(ivs))
	}

	nonNullList := findFirst(ivs[1], KindNonNullType)
	if nonNullList == nil {
		t.Fatal("tags field should carry a NON_NULL_TYPE for its list element")
	}
}

func TestParseInterfaceImplementsAndObjectTypeDefinition(t *testing.T) {
	t.Parallel()

	src := `interface Node {
  id: ID!
}

type User implements Node & Entity {
  id: ID!
  name: String
}`
	tree := Parse([]byte(src))
	if tree.HasErrors() {
		t.Fatalf("unexpected errors: %v", tree.Errors())
	}
	assertLossless(t, src, tree)

	obj := findFirst(tree.Document(), KindObjectTypeDefinition)
	if obj == nil {
		t.Fatal("no OBJECT_TYPE_DEFINITION found")
	}
	impl := findFirst(obj, KindImplementsInterfaces)
	if impl == nil {
		t.Fatal("no IMPLEMENTS_INTERFACES found")
	}
	named := childrenOfKind(impl, KindNamedType)
	if len(named) != 2 || named[0].Text() != "Node" || named[1].Text() != "Entity" {
		t.Fatalf("implemented interfaces = %+v, want [Node Entity]", named)
	}
}

func TestParseGarbageInputRecoversWithoutLoopingForever(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"}}}}",
		"query( : )",
		"directive @ on",
		"extend bogus",
		"{ : 1 @ }",
		"input X { }",
		"type",
	} {
		src := src
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			tree := Parse([]byte(src))
			assertLossless(t, src, tree)
		})
	}
}

func TestParseLineIndexProjectsErrorOffsets(t *testing.T) {
	t.Parallel()

	src := "query Q {\n  field(\n}"
	tree := Parse([]byte(src))
	if !tree.HasErrors() {
		t.Fatal("expected at least one error")
	}

	idx := tree.LineIndex()
	if idx == nil {
		t.Fatal("LineIndex() = nil")
	}
	for _, e := range tree.Errors() {
		pt, err := e.Point(idx)
		if err != nil {
			t.Fatalf("Point(%+v) error = %v", e, err)
		}
		if pt.Line < 0 || pt.Line >= idx.LineCount() {
			t.Fatalf("Point(%+v) = %+v, line out of range (lines=%d)", e, pt, idx.LineCount())
		}
	}
}

// -- test helpers --------------------------------------------------------

func findFirst(n *SyntaxNode, kind SyntaxKind) *SyntaxNode {
	if n == nil {
		return nil
	}
	if n.Kind() == kind {
		return n
	}
	for _, c := range n.Children() {
		if c.IsToken() {
			continue
		}
		if found := findFirst(c.Node(), kind); found != nil {
			return found
		}
	}
	return nil
}

func allOfKind(n *SyntaxNode, kind SyntaxKind) []*SyntaxNode {
	var out []*SyntaxNode
	if n == nil {
		return out
	}
	if n.Kind() == kind {
		out = append(out, n)
	}
	for _, c := range n.Children() {
		if c.IsToken() {
			continue
		}
		out = append(out, allOfKind(c.Node(), kind)...)
	}
	return out
}

// hasToken reports whether n has a direct token child of kind.
func hasToken(n *SyntaxNode, kind SyntaxKind) bool {
	for _, c := range n.Children() {
		if c.IsToken() && c.Kind() == kind {
			return true
		}
	}
	return false
}

func childrenOfKind(n *SyntaxNode, kind SyntaxKind) []*SyntaxNode {
	var out []*SyntaxNode
	for _, c := range n.ChildNodes() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}
