package ron

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ignoreSpans drops every Span field so AST comparisons focus on shape and
// values, matching the "structural equality excludes Span" convention from
// ast.go.
var ignoreSpans = cmp.Options{cmpopts.IgnoreTypes(Span{}), cmpopts.EquateEmpty()}

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse(src)
	require.Nil(t, err, "unexpected parse error: %v", err)
	return doc
}

func TestParseEmptyAnonStruct(t *testing.T) {
	doc := mustParse(t, "()")
	want := Expr{Kind: ExprStruct, Struct: Struct{Ident: nil, Fields: SpannedKvs[Ident]{}}}
	if diff := cmp.Diff(want, doc.Expr.Value, ignoreSpans); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAnonStructWithFields(t *testing.T) {
	doc := mustParse(t, "(a: 1, b: -2,)")
	require.Equal(t, ExprStruct, doc.Expr.Value.Kind)
	fields := doc.Expr.Value.Struct.Fields.Value
	require.Len(t, fields, 2)
	assert.Equal(t, Ident("a"), fields[0].Value.Key.Value)
	assert.Equal(t, UnsignedInteger{Number: 1}, fields[0].Value.Value.Value.Integer.Unsigned)
	assert.Equal(t, Ident("b"), fields[1].Value.Key.Value)
	assert.Equal(t, SignedInteger{Sign: SignNegative, Number: 2}, fields[1].Value.Value.Value.Integer.Signed)
}

func TestParseNamedStruct(t *testing.T) {
	doc := mustParse(t, "Foo(x: [1, 2, 3])")
	require.Equal(t, ExprStruct, doc.Expr.Value.Kind)
	require.NotNil(t, doc.Expr.Value.Struct.Ident)
	assert.Equal(t, Ident("Foo"), doc.Expr.Value.Struct.Ident.Value)
	fields := doc.Expr.Value.Struct.Fields.Value
	require.Len(t, fields, 1)
	assert.Equal(t, Ident("x"), fields[0].Value.Key.Value)
	assert.Len(t, fields[0].Value.Value.Value.List.Elements, 3)
}

func TestParseAttributes(t *testing.T) {
	doc := mustParse(t, "#![enable(unwrap_newtypes, implicit_some)]\ntrue")
	require.Len(t, doc.Attributes, 1)
	exts := doc.Attributes[0].Value.Enable.Value
	require.Len(t, exts, 2)
	assert.Equal(t, ExtensionUnwrapNewtypes, exts[0].Value)
	assert.Equal(t, ExtensionImplicitSome, exts[1].Value)
	assert.Equal(t, Expr{Kind: ExprBool, Bool: true}, doc.Expr.Value)
}

func TestParseUnicodeEscape(t *testing.T) {
	doc := mustParse(t, `"he\u{2764}llo"`)
	assert.Equal(t, Expr{Kind: ExprString, String: "he❤llo"}, doc.Expr.Value)
}

func TestParseNestedBlockComment(t *testing.T) {
	doc := mustParse(t, "/* a /* b */ c */ 42")
	assert.Equal(t, ExprInteger, doc.Expr.Value.Kind)
	assert.Equal(t, uint64(42), doc.Expr.Value.Integer.Unsigned.Number)
}

func TestParseDecimalWithExponent(t *testing.T) {
	doc := mustParse(t, "1.5e-3")
	d := doc.Expr.Value.Decimal
	require.NotNil(t, d.Whole)
	assert.Equal(t, uint64(1), *d.Whole)
	assert.Equal(t, uint64(5), d.Fractional)
	require.NotNil(t, d.Exponent)
	require.NotNil(t, d.Exponent.Sign)
	assert.Equal(t, SignNegative, *d.Exponent.Sign)
	assert.Equal(t, uint16(3), d.Exponent.Magnitude)
}

func TestParseTupleNotStruct(t *testing.T) {
	doc := mustParse(t, "(1, 2, 3)")
	require.Equal(t, ExprTuple, doc.Expr.Value.Kind)
	assert.Len(t, doc.Expr.Value.Tuple.Elements, 3)
}

func TestParseEmptyList(t *testing.T) {
	doc := mustParse(t, "[]")
	require.Equal(t, ExprList, doc.Expr.Value.Kind)
	assert.Empty(t, doc.Expr.Value.List.Elements)
}

func TestParseEmptyMap(t *testing.T) {
	doc := mustParse(t, "{}")
	require.Equal(t, ExprMap, doc.Expr.Value.Kind)
	assert.Empty(t, doc.Expr.Value.Map.Entries.Value)
}

func TestParseListWithTrailingComma(t *testing.T) {
	doc := mustParse(t, "[1, 2,]")
	require.Equal(t, ExprList, doc.Expr.Value.Kind)
	assert.Len(t, doc.Expr.Value.List.Elements, 2)
}

func TestParseTupleWithTrailingComma(t *testing.T) {
	doc := mustParse(t, "(1, 2, 3,)")
	require.Equal(t, ExprTuple, doc.Expr.Value.Kind)
	assert.Len(t, doc.Expr.Value.Tuple.Elements, 3)
}

func TestParseAttributeEnableWithTrailingComma(t *testing.T) {
	doc := mustParse(t, "#![enable(unwrap_newtypes,)]\ntrue")
	require.Len(t, doc.Attributes, 1)
	exts := doc.Attributes[0].Value.Enable.Value
	require.Len(t, exts, 1)
	assert.Equal(t, ExtensionUnwrapNewtypes, exts[0].Value)
}

func TestParseFatalMismatchedFieldColon(t *testing.T) {
	_, err := Parse("(a 1)")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), `character ':'`)
}

func TestParseUnterminatedBlockComment(t *testing.T) {
	_, err := Parse("/* unterminated")
	require.NotNil(t, err)
	assert.Equal(t, ExpectBlockCommentEnd, err.expected.Kind)
}

func TestParseNumericOverflowIsFatalExternal(t *testing.T) {
	_, err := Parse("99999999999999999999")
	require.NotNil(t, err)
	assert.NotNil(t, err.Unwrap())
}

func TestParseTrailingGarbageIsExpectedEof(t *testing.T) {
	_, err := Parse("true garbage")
	require.NotNil(t, err)
	assert.Equal(t, ExpectEof, err.expected.Kind)
	assert.Equal(t, 5, err.Location().Offset())
}
