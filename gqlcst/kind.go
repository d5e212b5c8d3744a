package gqlcst

import "fmt"

// SyntaxKind tags every element of the syntax tree: every lexical token
// shape, every GraphQL keyword (reclassified from a plain Name token at
// parse time — see Parser.bump), and every composite node produced by a
// grammar production.
type SyntaxKind uint16

const (
	// KindError is both the sentinel zero value and the kind used for an
	// error-recovery leaf or node: a token or span the parser could not
	// make sense of, kept in the tree so nothing is ever dropped silently.
	KindError SyntaxKind = iota
	KindEOF

	// Trivia, always a leaf.
	KindWhitespace
	KindComment
	KindComma

	// Punctuators, always a leaf.
	KindBang
	KindDollar
	KindAmp
	KindSpread
	KindColon
	KindEq
	KindAt
	KindLParen
	KindRParen
	KindLBracket
	KindRBracket
	KindLBrace
	KindRBrace
	KindPipe

	// Structural leaves.
	KindIdent  // the raw identifier text underneath a NAME node
	KindIntLit // INT_VALUE leaf
	KindFloatLit
	KindStringLit

	// Operation / type-system keywords. The lexer never produces these: a
	// Name token is rebranded into one of them by the parser once its
	// grammar position is known.
	KindQueryKW
	KindMutationKW
	KindSubscriptionKW
	KindDirectiveKW
	KindOnKW
	KindRepeatableKW
	KindTypeKW
	KindInterfaceKW
	KindUnionKW
	KindScalarKW
	KindEnumKW
	KindInputKW
	KindSchemaKW
	KindExtendKW
	KindImplementsKW
	KindFragmentKW
	KindTrueKW
	KindFalseKW
	KindNullKW

	// Directive location keywords. One kind per distinct location: no two
	// locations share a SyntaxKind, even when a prior implementation
	// conflated some of them (see SPEC_FULL.md, section 5).
	KindLocQueryKW
	KindLocMutationKW
	KindLocSubscriptionKW
	KindLocFieldKW
	KindLocFragmentDefinitionKW
	KindLocFragmentSpreadKW
	KindLocInlineFragmentKW
	KindLocSchemaKW
	KindLocScalarKW
	KindLocObjectKW
	KindLocFieldDefinitionKW
	KindLocArgumentDefinitionKW
	KindLocInterfaceKW
	KindLocUnionKW
	KindLocEnumKW
	KindLocEnumValueKW
	KindLocInputObjectKW
	KindLocInputFieldDefinitionKW

	// Composite node kinds.
	KindDocument
	KindDefinition // error-recovery wrapper for an unrecognized top-level definition

	KindOperationDefinition
	KindVariableDefinitions
	KindVariableDefinition
	KindVariable
	KindDefaultValue
	KindSelectionSet
	KindField
	KindArguments
	KindArgument
	KindFragmentSpread
	KindInlineFragment
	KindFragmentDefinition
	KindTypeCondition

	KindDirectives
	KindDirective
	KindDirectiveDefinition
	KindDirectiveLocations
	KindDirectiveLocation
	KindArgumentsDefinition
	KindInputValueDefinition

	KindType
	KindNamedType
	KindListType
	KindNonNullType
	KindName

	KindListValue
	KindObjectValue
	KindObjectField

	KindDescription

	KindSchemaDefinition
	KindSchemaExtension
	KindRootOperationTypeDefinition

	KindScalarTypeDefinition
	KindScalarTypeExtension

	KindObjectTypeDefinition
	KindObjectTypeExtension
	KindImplementsInterfaces
	KindFieldsDefinition
	KindFieldDefinition

	KindInterfaceTypeDefinition
	KindInterfaceTypeExtension

	KindUnionTypeDefinition
	KindUnionTypeExtension
	KindUnionMemberTypes

	KindEnumTypeDefinition
	KindEnumTypeExtension
	KindEnumValuesDefinition
	KindEnumValueDefinition

	KindInputObjectTypeDefinition
	KindInputObjectTypeExtension
	KindInputFieldsDefinition
)

//nolint:gocyclo // a flat name table is clearer than splitting this.
func (k SyntaxKind) String() string {
	switch k {
	case KindError:
		return "ERROR"
	case KindEOF:
		return "EOF"
	case KindWhitespace:
		return "WHITESPACE"
	case KindComment:
		return "COMMENT"
	case KindComma:
		return "COMMA"
	case KindBang:
		return "BANG"
	case KindDollar:
		return "DOLLAR"
	case KindAmp:
		return "AMP"
	case KindSpread:
		return "SPREAD"
	case KindColon:
		return "COLON"
	case KindEq:
		return "EQ"
	case KindAt:
		return "AT"
	case KindLParen:
		return "L_PAREN"
	case KindRParen:
		return "R_PAREN"
	case KindLBracket:
		return "L_BRACKET"
	case KindRBracket:
		return "R_BRACKET"
	case KindLBrace:
		return "L_BRACE"
	case KindRBrace:
		return "R_BRACE"
	case KindPipe:
		return "PIPE"
	case KindIdent:
		return "IDENT"
	case KindIntLit:
		return "INT_VALUE"
	case KindFloatLit:
		return "FLOAT_VALUE"
	case KindStringLit:
		return "STRING_VALUE"
	case KindQueryKW:
		return "query_KW"
	case KindMutationKW:
		return "mutation_KW"
	case KindSubscriptionKW:
		return "subscription_KW"
	case KindDirectiveKW:
		return "directive_KW"
	case KindOnKW:
		return "on_KW"
	case KindRepeatableKW:
		return "repeatable_KW"
	case KindTypeKW:
		return "type_KW"
	case KindInterfaceKW:
		return "interface_KW"
	case KindUnionKW:
		return "union_KW"
	case KindScalarKW:
		return "scalar_KW"
	case KindEnumKW:
		return "enum_KW"
	case KindInputKW:
		return "input_KW"
	case KindSchemaKW:
		return "schema_KW"
	case KindExtendKW:
		return "extend_KW"
	case KindImplementsKW:
		return "implements_KW"
	case KindFragmentKW:
		return "fragment_KW"
	case KindTrueKW:
		return "true_KW"
	case KindFalseKW:
		return "false_KW"
	case KindNullKW:
		return "null_KW"
	case KindLocQueryKW:
		return "QUERY_KW"
	case KindLocMutationKW:
		return "MUTATION_KW"
	case KindLocSubscriptionKW:
		return "SUBSCRIPTION_KW"
	case KindLocFieldKW:
		return "FIELD_KW"
	case KindLocFragmentDefinitionKW:
		return "FRAGMENT_DEFINITION_KW"
	case KindLocFragmentSpreadKW:
		return "FRAGMENT_SPREAD_KW"
	case KindLocInlineFragmentKW:
		return "INLINE_FRAGMENT_KW"
	case KindLocSchemaKW:
		return "SCHEMA_KW"
	case KindLocScalarKW:
		return "SCALAR_KW"
	case KindLocObjectKW:
		return "OBJECT_KW"
	case KindLocFieldDefinitionKW:
		return "FIELD_DEFINITION_KW"
	case KindLocArgumentDefinitionKW:
		return "ARGUMENT_DEFINITION_KW"
	case KindLocInterfaceKW:
		return "INTERFACE_KW"
	case KindLocUnionKW:
		return "UNION_KW"
	case KindLocEnumKW:
		return "ENUM_KW"
	case KindLocEnumValueKW:
		return "ENUM_VALUE_KW"
	case KindLocInputObjectKW:
		return "INPUT_OBJECT_KW"
	case KindLocInputFieldDefinitionKW:
		return "INPUT_FIELD_DEFINITION_KW"
	case KindDocument:
		return "DOCUMENT"
	case KindDefinition:
		return "DEFINITION"
	case KindOperationDefinition:
		return "OPERATION_DEFINITION"
	case KindVariableDefinitions:
		return "VARIABLE_DEFINITIONS"
	case KindVariableDefinition:
		return "VARIABLE_DEFINITION"
	case KindVariable:
		return "VARIABLE"
	case KindDefaultValue:
		return "DEFAULT_VALUE"
	case KindSelectionSet:
		return "SELECTION_SET"
	case KindField:
		return "FIELD"
	case KindArguments:
		return "ARGUMENTS"
	case KindArgument:
		return "ARGUMENT"
	case KindFragmentSpread:
		return "FRAGMENT_SPREAD"
	case KindInlineFragment:
		return "INLINE_FRAGMENT"
	case KindFragmentDefinition:
		return "FRAGMENT_DEFINITION"
	case KindTypeCondition:
		return "TYPE_CONDITION"
	case KindDirectives:
		return "DIRECTIVES"
	case KindDirective:
		return "DIRECTIVE"
	case KindDirectiveDefinition:
		return "DIRECTIVE_DEFINITION"
	case KindDirectiveLocations:
		return "DIRECTIVE_LOCATIONS"
	case KindDirectiveLocation:
		return "DIRECTIVE_LOCATION"
	case KindArgumentsDefinition:
		return "ARGUMENTS_DEFINITION"
	case KindInputValueDefinition:
		return "INPUT_VALUE_DEFINITION"
	case KindType:
		return "TYPE"
	case KindNamedType:
		return "NAMED_TYPE"
	case KindListType:
		return "LIST_TYPE"
	case KindNonNullType:
		return "NON_NULL_TYPE"
	case KindName:
		return "NAME"
	case KindListValue:
		return "LIST_VALUE"
	case KindObjectValue:
		return "OBJECT_VALUE"
	case KindObjectField:
		return "OBJECT_FIELD"
	case KindDescription:
		return "DESCRIPTION"
	case KindSchemaDefinition:
		return "SCHEMA_DEFINITION"
	case KindSchemaExtension:
		return "SCHEMA_EXTENSION"
	case KindRootOperationTypeDefinition:
		return "ROOT_OPERATION_TYPE_DEFINITION"
	case KindScalarTypeDefinition:
		return "SCALAR_TYPE_DEFINITION"
	case KindScalarTypeExtension:
		return "SCALAR_TYPE_EXTENSION"
	case KindObjectTypeDefinition:
		return "OBJECT_TYPE_DEFINITION"
	case KindObjectTypeExtension:
		return "OBJECT_TYPE_EXTENSION"
	case KindImplementsInterfaces:
		return "IMPLEMENTS_INTERFACES"
	case KindFieldsDefinition:
		return "FIELDS_DEFINITION"
	case KindFieldDefinition:
		return "FIELD_DEFINITION"
	case KindInterfaceTypeDefinition:
		return "INTERFACE_TYPE_DEFINITION"
	case KindInterfaceTypeExtension:
		return "INTERFACE_TYPE_EXTENSION"
	case KindUnionTypeDefinition:
		return "UNION_TYPE_DEFINITION"
	case KindUnionTypeExtension:
		return "UNION_TYPE_EXTENSION"
	case KindUnionMemberTypes:
		return "UNION_MEMBER_TYPES"
	case KindEnumTypeDefinition:
		return "ENUM_TYPE_DEFINITION"
	case KindEnumTypeExtension:
		return "ENUM_TYPE_EXTENSION"
	case KindEnumValuesDefinition:
		return "ENUM_VALUES_DEFINITION"
	case KindEnumValueDefinition:
		return "ENUM_VALUE_DEFINITION"
	case KindInputObjectTypeDefinition:
		return "INPUT_OBJECT_TYPE_DEFINITION"
	case KindInputObjectTypeExtension:
		return "INPUT_OBJECT_TYPE_EXTENSION"
	case KindInputFieldsDefinition:
		return "INPUT_FIELDS_DEFINITION"
	default:
		return fmt.Sprintf("SyntaxKind(%d)", uint16(k))
	}
}

// IsToken reports whether kind is always used for a leaf (token) rather than
// a composite node. KindError, used for both error leaves and ERROR nodes,
// also reports true. It is informational only; the tree itself distinguishes
// nodes from tokens by how they were pushed onto the builder.
func (k SyntaxKind) IsToken() bool {
	return k <= KindStringLit || (k >= KindQueryKW && k <= KindLocInputFieldDefinitionKW)
}
