package ron

// This file is the notation's data model. Every node is immutable after
// construction; Span fields (carried via Spanned) are excluded from
// structural equality by convention. Callers comparing ASTs (in tests, or
// in a downstream deserializer) should ignore Span the way document_test.go's
// cmpopts.IgnoreTypes(Span{}) does.
//
// Variants of what would be a sum type in a language with them (Attribute,
// Integer, Expr) are represented as a Kind discriminant plus the
// payload fields for each variant, the same tagged-struct shape already
// used for ErrorTree and Expectation in errtree.go.

// Document is the result of a successful parse: zero or more attributes
// followed by exactly one expression.
type Document struct {
	Attributes []Spanned[Attribute]
	Expr       Spanned[Expr]
}

// AttributeKind discriminates Attribute's variants. Only Enable exists
// today; other attribute names are a currently-fatal future extension
// point, not a second variant.
type AttributeKind int

const (
	AttributeEnable AttributeKind = iota
)

// Attribute is a document-level directive. #![enable(ext, ...)] is the only
// form the grammar accepts.
type Attribute struct {
	Kind   AttributeKind
	Enable Spanned[[]Spanned[Extension]]
}

// Extension is one of the two parser-level extensions a document may
// enable.
type Extension int

const (
	ExtensionUnwrapNewtypes Extension = iota
	ExtensionImplicitSome
)

func (e Extension) String() string {
	switch e {
	case ExtensionUnwrapNewtypes:
		return "unwrap_newtypes"
	case ExtensionImplicitSome:
		return "implicit_some"
	default:
		return "unknown"
	}
}

// Ident is an identifier, borrowing its text directly from the source
// buffer (a Go string slice shares its backing array with the buffer it
// was sliced from, so this is already zero-copy).
type Ident string

// Sign is the explicit +/- prefix a signed integer always carries, and a
// decimal or a decimal's exponent may carry.
type Sign int

const (
	SignPositive Sign = iota
	SignNegative
)

// UnsignedInteger is a bare non-negative numeral's 64-bit magnitude.
type UnsignedInteger struct {
	Number uint64
}

// SignedInteger is a numeral with an explicit leading sign. The sign is
// always present; the magnitude is stored unsigned regardless of sign.
type SignedInteger struct {
	Sign   Sign
	Number uint64
}

// IntegerKind discriminates Integer's two variants.
type IntegerKind int

const (
	IntegerUnsigned IntegerKind = iota
	IntegerSigned
)

// Integer is either a SignedInteger or an UnsignedInteger. A bare numeral
// with no leading sign is always Unsigned, never Signed(Positive, ...).
type Integer struct {
	Kind     IntegerKind
	Unsigned UnsignedInteger
	Signed   SignedInteger
}

// DecimalExponent is a decimal's optional `[eE] sign? digits` suffix.
type DecimalExponent struct {
	Sign      *Sign
	Magnitude uint16
}

// Decimal represents a floating-point literal. Whole is nil only when no
// digits precede the `.` (e.g. ".5" or "-.5"); Fractional is 0 (not nil) when no
// fractional digits were written (e.g. "1." or "1e3"), since a decimal
// must have either a whole part or a fractional part, never neither.
type Decimal struct {
	Sign       *Sign
	Whole      *uint64
	Fractional uint64
	Exponent   *DecimalExponent
}

// KeyValue is one key/value pair of a Struct (K = Ident) or Map (K = Expr).
type KeyValue[K any] struct {
	Key   Spanned[K]
	Value Spanned[Expr]
}

// SpannedKvs is a spanned, ordered list of spanned key/value pairs, the
// shape shared by both Struct.Fields and Map.Entries.
type SpannedKvs[K any] = Spanned[[]Spanned[KeyValue[K]]]

// Struct is a named (`Name(...)`) or anonymous (`(...)`) struct literal.
// Ident is nil for an anonymous struct.
type Struct struct {
	Ident  *Spanned[Ident]
	Fields SpannedKvs[Ident]
}

// Map is a `{ key: value, ... }` literal; entries preserve source order.
type Map struct {
	Entries SpannedKvs[Expr]
}

// List is the element list shared by both list (`[...]`) and tuple
// (`(...)`) literals.
type List struct {
	Elements []Spanned[Expr]
}

// ExprKind discriminates Expr's variants.
type ExprKind int

const (
	// ExprUnit is never produced by parsing: "()" parses as an empty
	// anonymous Struct, matching Go's own zero value for Expr.
	ExprUnit ExprKind = iota
	ExprBool
	ExprTuple
	ExprList
	ExprMap
	ExprStruct
	ExprInteger
	ExprStr
	ExprString
	ExprDecimal
)

// Expr is any value expressible in the notation. Str is populated only for
// string literals with no escape sequences (a zero-copy slice of the
// source buffer); String is populated for escape-bearing strings (freshly
// built, owning its bytes). Exactly one of the Kind-matching fields is
// meaningful at a time; the rest are zero values.
type Expr struct {
	Kind    ExprKind
	Bool    bool
	Tuple   List
	List    List
	Map     Map
	Struct  Struct
	Integer Integer
	Str     string
	String  string
	Decimal Decimal
}
