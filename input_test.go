package ron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputSliceTracksLineAndColumn(t *testing.T) {
	in := NewInput("ab\ncd")
	rest := in.Slice(3) // consumes "ab\n"
	line, col := rest.Location()
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
	assert.Equal(t, "cd", rest.Fragment())
}

func TestInputSliceWithinLineAdvancesColumn(t *testing.T) {
	in := NewInput("abcd")
	rest := in.Slice(2)
	line, col := rest.Location()
	assert.Equal(t, 1, line)
	assert.Equal(t, 3, col)
}

func TestInputTakeSplit(t *testing.T) {
	in := NewInput("hello world")
	rest, consumed := in.TakeSplit(5)
	assert.Equal(t, "hello", consumed.Fragment())
	assert.Equal(t, " world", rest.Fragment())
	assert.Equal(t, 5, rest.Offset())
}

func TestInputFirstRuneDecodesMultibyte(t *testing.T) {
	in := NewInput("❤llo")
	r, size, ok := in.FirstRune()
	require.True(t, ok)
	assert.Equal(t, '❤', r)
	assert.Equal(t, 3, size)
}

func TestInputFirstRuneAtEOF(t *testing.T) {
	in := NewInput("")
	_, _, ok := in.FirstRune()
	assert.False(t, ok)
}

func TestInputStartsWith(t *testing.T) {
	in := NewInput("enable(foo)")
	assert.True(t, in.StartsWith("enable"))
	assert.False(t, in.StartsWith("disable"))
	assert.False(t, in.StartsWith("enable(foo)(bar)"))
}
