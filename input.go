package ron

import "unicode/utf8"

// Input is an immutable view over a source buffer. It tracks a byte offset
// from the start of the buffer along with a 1-based line and column,
// computed incrementally as the input is sliced. Two Inputs that point at
// the same buffer and offset are interchangeable; Input is cheap to copy.
type Input struct {
	full string // the whole original buffer, shared by every Input derived from it
	off  int    // byte offset of frag within full
	frag string // full[off:]
	line int    // 1-based
	col  int    // 1-based, counted in runes since the last newline
}

// NewInput builds the initial Input over a complete source buffer.
func NewInput(src string) Input {
	return Input{full: src, off: 0, frag: src, line: 1, col: 1}
}

// Fragment returns the remaining unconsumed text.
func (in Input) Fragment() string { return in.frag }

// Len returns the number of remaining bytes.
func (in Input) Len() int { return len(in.frag) }

// IsEmpty reports whether no input remains.
func (in Input) IsEmpty() bool { return len(in.frag) == 0 }

// Offset returns the byte offset from the start of the original buffer.
func (in Input) Offset() int { return in.off }

// Location returns the 1-based line and column of the next unconsumed byte.
func (in Input) Location() (line, col int) { return in.line, in.col }

// Full returns the whole original buffer this Input was derived from.
func (in Input) Full() string { return in.full }

// Slice returns a new Input positioned n bytes further into the fragment,
// recomputing line/column across any runes skipped. n must be within
// [0, in.Len()].
func (in Input) Slice(n int) Input {
	skipped := in.frag[:n]
	line, col := in.line, in.col
	for _, r := range skipped {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Input{
		full: in.full,
		off:  in.off + n,
		frag: in.frag[n:],
		line: line,
		col:  col,
	}
}

// TakeSplit splits the fragment after n bytes, returning the rest of the
// input (from byte n onward) and an Input spanning exactly the first n
// consumed bytes (itself still anchored at the pre-split position, so its
// own Fragment is the consumed slice).
func (in Input) TakeSplit(n int) (rest Input, consumed Input) {
	consumed = in
	consumed.frag = in.frag[:n]
	return in.Slice(n), consumed
}

// FirstRune decodes the first rune of the fragment. ok is false at EOF or on
// invalid UTF-8.
func (in Input) FirstRune() (r rune, size int, ok bool) {
	if in.IsEmpty() {
		return 0, 0, false
	}
	r, size = utf8.DecodeRuneInString(in.frag)
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, false
	}
	return r, size, true
}

// StartsWith reports whether the fragment begins with s.
func (in Input) StartsWith(s string) bool {
	return len(in.frag) >= len(s) && in.frag[:len(s)] == s
}

// Span records the half-open byte range [Start, End) a parsed value occupied
// in the source buffer. Spans are intentionally excluded from AST equality
// (see Spanned).
type Span struct {
	Start int
	End   int
}

func spanBetween(start, end Input) Span {
	return Span{Start: start.Offset(), End: end.Offset()}
}

// Spanned wraps a parsed value together with the Span it occupied. Span is
// metadata for diagnostics, not content, but it is an ordinary field:
// reflect.DeepEqual compares it too, so comparisons on Value alone must
// ignore it explicitly (e.g. go-cmp with cmpopts.IgnoreTypes(Span{})).
type Spanned[T any] struct {
	Span  Span
	Value T
}
