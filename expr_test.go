package ron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprDispatchBool(t *testing.T) {
	_, v, err := exprParser(NewInput("true"))
	require.Nil(t, err)
	assert.Equal(t, Expr{Kind: ExprBool, Bool: true}, v)
}

func TestExprDispatchUnsignedInteger(t *testing.T) {
	_, v, err := exprParser(NewInput("42"))
	require.Nil(t, err)
	assert.Equal(t, ExprInteger, v.Kind)
	assert.Equal(t, IntegerUnsigned, v.Integer.Kind)
	assert.Equal(t, uint64(42), v.Integer.Unsigned.Number)
}

func TestExprDispatchSignedDecimal(t *testing.T) {
	_, v, err := exprParser(NewInput("-1.5"))
	require.Nil(t, err)
	assert.Equal(t, ExprDecimal, v.Kind)
	require.NotNil(t, v.Decimal.Sign)
	assert.Equal(t, SignNegative, *v.Decimal.Sign)
}

func TestExprDispatchUnescapedString(t *testing.T) {
	_, v, err := exprParser(NewInput(`"plain"`))
	require.Nil(t, err)
	assert.Equal(t, Expr{Kind: ExprStr, Str: "plain"}, v)
}

func TestExprDispatchEscapedString(t *testing.T) {
	_, v, err := exprParser(NewInput(`"he\u{2764}llo"`))
	require.Nil(t, err)
	assert.Equal(t, Expr{Kind: ExprString, String: "he❤llo"}, v)
}

func TestExprDispatchEmptyTupleParensIsStruct(t *testing.T) {
	_, v, err := exprParser(NewInput("()"))
	require.Nil(t, err)
	assert.Equal(t, ExprStruct, v.Kind)
	assert.Nil(t, v.Struct.Ident)
	assert.Empty(t, v.Struct.Fields.Value)
}

func TestExprDispatchTupleWhenNotFieldShaped(t *testing.T) {
	_, v, err := exprParser(NewInput("(1, 2, 3)"))
	require.Nil(t, err)
	assert.Equal(t, ExprTuple, v.Kind)
	assert.Len(t, v.Tuple.Elements, 3)
}

func TestExprDispatchNamedStruct(t *testing.T) {
	_, v, err := exprParser(NewInput("Foo(x: 1)"))
	require.Nil(t, err)
	assert.Equal(t, ExprStruct, v.Kind)
	require.NotNil(t, v.Struct.Ident)
	assert.Equal(t, Ident("Foo"), v.Struct.Ident.Value)
}

func TestExprDispatchMismatchedFieldColonIsFatal(t *testing.T) {
	_, _, err := exprParser(NewInput("(a 1)"))
	require.NotNil(t, err)
	assert.Equal(t, Fatal, err.Severity)
	assert.Contains(t, err.Error(), "while parsing expression")
	assert.Contains(t, err.Error(), `character ':'`)
	assert.Equal(t, 3, err.Tree.Location().Offset())
}
