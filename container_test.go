package ron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTupleParser(t *testing.T) {
	rest, v, err := tupleParser(NewInput("(1, 2, 3)"))
	require.Nil(t, err)
	require.Len(t, v.Elements, 3)
	assert.True(t, rest.IsEmpty())
}

func TestListParserEmpty(t *testing.T) {
	_, v, err := listParser(NewInput("[]"))
	require.Nil(t, err)
	assert.Empty(t, v.Elements)
}

func TestMapParser(t *testing.T) {
	_, v, err := mapParser(NewInput(`{"a": 1, "b": 2}`))
	require.Nil(t, err)
	require.Len(t, v.Entries.Value, 2)
}

func TestAnonStructEmptyBody(t *testing.T) {
	rest, v, err := anonStruct(NewInput("()"))
	require.Nil(t, err)
	assert.Nil(t, v.Ident)
	assert.Empty(t, v.Fields.Value)
	assert.True(t, rest.IsEmpty())
}

func TestAnonStructFields(t *testing.T) {
	_, v, err := anonStruct(NewInput("(a: 1, b: -2,)"))
	require.Nil(t, err)
	require.Len(t, v.Fields.Value, 2)
	assert.Equal(t, Ident("a"), v.Fields.Value[0].Value.Key.Value)
	assert.Equal(t, Ident("b"), v.Fields.Value[1].Value.Key.Value)
}

func TestAnonStructFailsRecoverablyOnNonFieldBody(t *testing.T) {
	// "(1, 2, 3)" isn't shaped like struct fields; the mismatched ":"
	// never appears so the final `)` match is what fails, recoverably.
	_, _, err := anonStruct(NewInput("(1, 2, 3)"))
	require.NotNil(t, err)
	assert.Equal(t, Recoverable, err.Severity)
}

func TestAnonStructFatalAfterIdentWithoutColon(t *testing.T) {
	_, _, err := anonStruct(NewInput("(a 1)"))
	require.NotNil(t, err)
	assert.Equal(t, Fatal, err.Severity)
}

func TestNamedStruct(t *testing.T) {
	rest, v, err := namedStruct(NewInput("Foo(x: [1, 2, 3])"))
	require.Nil(t, err)
	require.NotNil(t, v.Ident)
	assert.Equal(t, Ident("Foo"), v.Ident.Value)
	require.Len(t, v.Fields.Value, 1)
	assert.Equal(t, Ident("x"), v.Fields.Value[0].Value.Key.Value)
	assert.True(t, rest.IsEmpty())
}
