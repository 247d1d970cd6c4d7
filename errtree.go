package ron

import (
	"fmt"
	"strings"
)

// ExpectationKind enumerates the terminal expectations the grammar can fail
// on.
type ExpectationKind int

const (
	ExpectChar ExpectationKind = iota
	ExpectTag
	ExpectOneOfChars
	ExpectOneOfTags
	ExpectAlpha
	ExpectDigit
	ExpectHexDigit
	ExpectMultispace
	ExpectBlockCommentEnd
	ExpectUnicodeHexSequence
	ExpectSomething
	ExpectEof
	ExpectOneOfExpectations
)

// Expectation describes what the grammar wanted to see at a failure point.
// Only the field(s) relevant to Kind are populated; this mirrors the Rust
// original's enum variants as an idiomatic Go tagged struct (the same
// pattern the spec's own BaseErrorKind uses for Expected vs External).
type Expectation struct {
	Kind   ExpectationKind
	Char   rune
	Tag    string
	Chars  string        // OneOfChars
	Tags   []string       // OneOfTags
	Got    uint32         // UnicodeHexSequence
	Nested []Expectation // OneOfExpectations
}

func expectChar(c rune) Expectation           { return Expectation{Kind: ExpectChar, Char: c} }
func expectTag(s string) Expectation          { return Expectation{Kind: ExpectTag, Tag: s} }
func expectOneOfChars(s string) Expectation    { return Expectation{Kind: ExpectOneOfChars, Chars: s} }
func expectOneOfTags(tags []string) Expectation {
	return Expectation{Kind: ExpectOneOfTags, Tags: tags}
}
func expectUnicodeHex(got uint32) Expectation {
	return Expectation{Kind: ExpectUnicodeHexSequence, Got: got}
}
func expectOneOf(nested ...Expectation) Expectation {
	return Expectation{Kind: ExpectOneOfExpectations, Nested: nested}
}

var (
	expectAlpha           = Expectation{Kind: ExpectAlpha}
	expectDigit           = Expectation{Kind: ExpectDigit}
	expectHexDigit        = Expectation{Kind: ExpectHexDigit}
	expectMultispace      = Expectation{Kind: ExpectMultispace}
	expectBlockCommentEnd = Expectation{Kind: ExpectBlockCommentEnd}
	expectSomething       = Expectation{Kind: ExpectSomething}
	expectEof             = Expectation{Kind: ExpectEof}
)

func (e Expectation) String() string {
	switch e.Kind {
	case ExpectChar:
		return fmt.Sprintf("character %q", e.Char)
	case ExpectTag:
		return fmt.Sprintf("%q", e.Tag)
	case ExpectOneOfChars:
		return fmt.Sprintf("one of %q", e.Chars)
	case ExpectOneOfTags:
		return fmt.Sprintf("one of %s", strings.Join(e.Tags, ", "))
	case ExpectAlpha:
		return "an alphabetic character"
	case ExpectDigit:
		return "a digit"
	case ExpectHexDigit:
		return "a hex digit"
	case ExpectMultispace:
		return "whitespace"
	case ExpectBlockCommentEnd:
		return "the end of a block comment (*/)"
	case ExpectUnicodeHexSequence:
		return fmt.Sprintf("a valid unicode scalar value (got U+%X)", e.Got)
	case ExpectSomething:
		return "at least one character"
	case ExpectEof:
		return "end of input"
	case ExpectOneOfExpectations:
		parts := make([]string, len(e.Nested))
		for i, n := range e.Nested {
			parts[i] = n.String()
		}
		return "one of: " + strings.Join(parts, ", ")
	default:
		return "something else"
	}
}

// Severity distinguishes recoverable failures (which a choice combinator
// may paper over by trying an alternative) from fatal ones (which abort the
// whole parse).
type Severity int

const (
	Recoverable Severity = iota
	Fatal
)

func (s Severity) String() string {
	if s == Fatal {
		return "fatal"
	}
	return "recoverable"
}

// errTreeKind discriminates the three ErrorTree shapes.
type errTreeKind int

const (
	errBase errTreeKind = iota
	errStack
	errAlt
)

// contextFrame is a single (location, label) entry added by the context
// combinator.
type contextFrame struct {
	Loc   Input
	Label string
}

// ErrorTree is the structured error algebra: a tree of base failures,
// context-labeled stacks, and exhausted alternatives. It implements the
// standard error interface so it can be returned (wrapped in InputParseErr)
// from any parser, but downstream presentation layers are expected to walk
// its structure directly rather than parse Error()'s text.
type ErrorTree struct {
	kind errTreeKind

	// errBase
	loc      Input
	expected *Expectation
	external error

	// errStack
	base     *ErrorTree
	contexts []contextFrame

	// errAlt
	alts []ErrorTree
}

// ExpectedErr builds a Base ErrorTree for an unmet Expectation.
func ExpectedErr(loc Input, exp Expectation) ErrorTree {
	e := exp
	return ErrorTree{kind: errBase, loc: loc, expected: &e}
}

// ExternalErr builds a Base ErrorTree wrapping an external (e.g. stdlib
// strconv) error, such as integer overflow.
func ExternalErr(loc Input, err error) ErrorTree {
	return ErrorTree{kind: errBase, loc: loc, external: err}
}

// WithContext wraps an ErrorTree in a Stack frame labeled with the
// production that was being parsed.
func WithContext(loc Input, label string, child ErrorTree) ErrorTree {
	if child.kind == errStack {
		// Fold nested context() calls into one Stack, outermost label last,
		// matching the Rust original's ordered list of (location, label).
		frames := make([]contextFrame, 0, len(child.contexts)+1)
		frames = append(frames, child.contexts...)
		frames = append(frames, contextFrame{Loc: loc, Label: label})
		return ErrorTree{kind: errStack, base: child.base, contexts: frames}
	}
	c := child
	return ErrorTree{kind: errStack, base: &c, contexts: []contextFrame{{Loc: loc, Label: label}}}
}

// AltOf combines the errors of every alternative a choice combinator tried
// and failed.
func AltOf(trees ...ErrorTree) ErrorTree {
	flat := make([]ErrorTree, 0, len(trees))
	for _, t := range trees {
		if t.kind == errAlt {
			flat = append(flat, t.alts...)
		} else {
			flat = append(flat, t)
		}
	}
	return ErrorTree{kind: errAlt, alts: flat}
}

// Location returns the position most relevant to this error: the base
// location for Base/Stack trees, or the first alternative's location for
// Alt trees.
func (e ErrorTree) Location() Input {
	switch e.kind {
	case errBase:
		return e.loc
	case errStack:
		return e.base.Location()
	case errAlt:
		if len(e.alts) > 0 {
			return e.alts[0].Location()
		}
	}
	return Input{}
}

// Unwrap exposes the wrapped external error, if any, so callers can use
// errors.As/errors.Is against it (e.g. to detect strconv.ErrRange).
func (e ErrorTree) Unwrap() error {
	switch e.kind {
	case errBase:
		return e.external
	case errStack:
		return e.base
	}
	return nil
}

func (e ErrorTree) Error() string {
	switch e.kind {
	case errBase:
		line, col := e.loc.Location()
		if e.external != nil {
			return fmt.Sprintf("line %d col %d: %s", line, col, e.external.Error())
		}
		return fmt.Sprintf("line %d col %d: expected %s", line, col, e.expected.String())
	case errStack:
		var b strings.Builder
		b.WriteString(e.base.Error())
		for _, f := range e.contexts {
			line, col := f.Loc.Location()
			fmt.Fprintf(&b, "\n  while parsing %s at line %d col %d", f.Label, line, col)
		}
		return b.String()
	case errAlt:
		parts := make([]string, len(e.alts))
		for i, a := range e.alts {
			parts[i] = a.Error()
		}
		return "no alternative matched:\n  " + strings.Join(parts, "\n  ")
	default:
		return "unknown parse error"
	}
}

// InputParseErr pairs an ErrorTree with the Severity it failed at. Every
// combinator in this package returns this type (or nil) as its error, never
// a bare ErrorTree, so severity is never accidentally dropped.
type InputParseErr struct {
	Severity Severity
	Tree     ErrorTree
}

func recoverableErr(tree ErrorTree) *InputParseErr {
	return &InputParseErr{Severity: Recoverable, Tree: tree}
}

func fatalErr(tree ErrorTree) *InputParseErr {
	return &InputParseErr{Severity: Fatal, Tree: tree}
}

func (e *InputParseErr) Error() string {
	return fmt.Sprintf("%s: %s", e.Severity, e.Tree.Error())
}

func (e *InputParseErr) Unwrap() error {
	return e.Tree
}

var _ error = (*InputParseErr)(nil)
var _ error = ErrorTree{}
