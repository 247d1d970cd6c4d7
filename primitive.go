package ron

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// identCore recognizes the identifier grammar: a leading alphabetic/`_`
// character followed by any run of alphanumeric/`_` characters.
var identCore = recognize(seqPair(
	take1If(isIdentFirstChar, expectOneOf(expectAlpha, expectChar('_'))),
	takeWhile(isIdentOtherChar),
))

func identParser(in Input) (Input, Ident, *InputParseErr) {
	return mapVal(identCore, func(i Input) Ident { return Ident(i.Fragment()) })(in)
}

func boolParser(in Input) (Input, bool, *InputParseErr) {
	return oneOfTags([]string{"true", "false"}, []bool{true, false})(in)
}

// notFollowedByDecimalContinuation reports whether rest does NOT begin with
// a character that would extend a bare numeral into a decimal (`.`, `e`,
// `E`). Both unsignedInteger and signedInteger use this to recoverably
// fail when the digits they just matched are actually the lead-in to a
// decimal, so the containing alt2 falls through to decimal().
func notFollowedByDecimalContinuation(rest Input) bool {
	r, _, ok := rest.FirstRune()
	if !ok {
		return true
	}
	return r != '.' && r != 'e' && r != 'E'
}

func unsignedInteger(in Input) (Input, UnsignedInteger, *InputParseErr) {
	rest, digits, err := takeWhile1(isDigit, expectDigit)(in)
	if err != nil {
		return in, UnsignedInteger{}, err
	}
	if !notFollowedByDecimalContinuation(rest) {
		return in, UnsignedInteger{}, recoverableErr(ExpectedErr(in, expectOneOfChars(".eE")))
	}
	n, perr := strconv.ParseUint(digits.Fragment(), 10, 64)
	if perr != nil {
		return in, UnsignedInteger{}, fatalErr(ExternalErr(in, perr))
	}
	return rest, UnsignedInteger{Number: n}, nil
}

func signedInteger(in Input) (Input, SignedInteger, *InputParseErr) {
	rest, sign, err := oneOfChars("+-", []Sign{SignPositive, SignNegative})(in)
	if err != nil {
		return in, SignedInteger{}, err
	}
	rest2, digits, err := takeWhile1(isDigit, expectDigit)(rest)
	if err != nil {
		return in, SignedInteger{}, err
	}
	if !notFollowedByDecimalContinuation(rest2) {
		return in, SignedInteger{}, recoverableErr(ExpectedErr(in, expectOneOfChars(".eE")))
	}
	n, perr := strconv.ParseUint(digits.Fragment(), 10, 64)
	if perr != nil {
		return in, SignedInteger{}, fatalErr(ExternalErr(in, perr))
	}
	return rest2, SignedInteger{Sign: sign, Number: n}, nil
}

// signParser reads a lone `+` or `-`, demoted to recoverable so opt() can
// treat its absence as "no sign" rather than a hard failure.
var signParser = lookahead(oneOfChars("+-", []Sign{SignPositive, SignNegative}))

// decimal implements the notation's four numeral forms: signed/unsigned,
// with or without a leading sign, a fractional part, and an exponent. It
// always handles its own optional leading sign, so it can be called
// uniformly whether the dispatcher saw `+`/`-`, `.`, or a bare digit first.
func decimal(in Input) (Input, Decimal, *InputParseErr) {
	cur, sign, _ := opt(signParser)(in)

	var whole *uint64
	if n := scanWhile(cur, isDigit); n > 0 {
		val, perr := strconv.ParseUint(cur.Fragment()[:n], 10, 64)
		if perr != nil {
			return in, Decimal{}, fatalErr(ExternalErr(cur, perr))
		}
		whole = &val
		cur = cur.Slice(n)
	}

	var fractional uint64
	hasFractional := false
	hasDot := cur.StartsWith(".")
	if hasDot {
		cur = cur.Slice(1)
		if n := scanWhile(cur, isDigit); n > 0 {
			val, perr := strconv.ParseUint(cur.Fragment()[:n], 10, 64)
			if perr != nil {
				return in, Decimal{}, fatalErr(ExternalErr(cur, perr))
			}
			fractional = val
			hasFractional = true
			cur = cur.Slice(n)
		}
	}

	if whole == nil && !hasFractional {
		return in, Decimal{}, recoverableErr(ExpectedErr(in, expectDigit))
	}

	exponent, cur2, eerr := decimalExponent(cur)
	if eerr != nil {
		return in, Decimal{}, eerr
	}
	if exponent == nil && !hasDot {
		// Bare digits with neither a `.` nor an exponent are a plain
		// integer, not a decimal; let the caller's alt2 try unsigned/signed
		// integer instead.
		return in, Decimal{}, recoverableErr(ExpectedErr(cur, expectOneOfChars(".eE")))
	}
	cur = cur2

	return cur, Decimal{Sign: sign, Whole: whole, Fractional: fractional, Exponent: exponent}, nil
}

func signOf(r rune) Sign {
	if r == '-' {
		return SignNegative
	}
	return SignPositive
}

// decimalExponent parses an optional `[eE] sign? digits` suffix. A nil,
// non-error result means no exponent marker was present at all.
func decimalExponent(cur Input) (*DecimalExponent, Input, *InputParseErr) {
	r, size, ok := cur.FirstRune()
	if !ok || (r != 'e' && r != 'E') {
		return nil, cur, nil
	}
	afterE := cur.Slice(size)

	var expSign *Sign
	if r2, size2, ok2 := afterE.FirstRune(); ok2 && (r2 == '+' || r2 == '-') {
		s := signOf(r2)
		expSign = &s
		afterE = afterE.Slice(size2)
	}

	n := scanWhile(afterE, isDigit)
	if n == 0 {
		return nil, cur, fatalErr(ExpectedErr(afterE, expectDigit))
	}
	magnitude, perr := strconv.ParseUint(afterE.Fragment()[:n], 10, 16)
	if perr != nil {
		return nil, cur, fatalErr(ExternalErr(afterE, perr))
	}
	return &DecimalExponent{Sign: expSign, Magnitude: uint16(magnitude)}, afterE.Slice(n), nil
}

// unescapedStr matches a `"`-delimited literal containing no `"` or `\`.
// Callers use lookahead(unescapedStr) so that any escape sequence inside
// the quotes (which this parser can't handle) falls through recoverably to
// escapedString.
func unescapedStr(in Input) (Input, string, *InputParseErr) {
	return mapVal(
		delimited(oneChar('"'), takeWhile(func(r rune) bool { return r != '"' && r != '\\' }), oneChar('"')),
		func(i Input) string { return i.Fragment() },
	)(in)
}

func parseUnicodeEscape(in Input) (Input, rune, *InputParseErr) {
	hex := takeWhileMN(1, 6, isHexDigit, expectHexDigit)
	body := preceded(oneChar('u'), cut(delimited(oneChar('{'), hex, oneChar('}'))))
	return mapRes(body, func(orig Input, hexInput Input) (rune, *InputParseErr) {
		val, perr := strconv.ParseUint(hexInput.Fragment(), 16, 32)
		if perr != nil {
			return 0, fatalErr(ExternalErr(orig, perr))
		}
		if val > utf8.MaxRune || !utf8.ValidRune(rune(val)) {
			return 0, fatalErr(ExpectedErr(orig, expectUnicodeHex(uint32(val))))
		}
		return rune(val), nil
	})(in)
}

var escapedCharMapping = []rune{'\n', '\r', '\t', '\b', '\f', '\\', '/', '"'}

func parseEscapedChar(in Input) (Input, rune, *InputParseErr) {
	return preceded(
		oneChar('\\'),
		alt2(lookahead(parseUnicodeEscape), oneOfChars("nrtbf\\/\"", escapedCharMapping)),
	)(in)
}

func parseEscapedWhitespace(in Input) (Input, Input, *InputParseErr) {
	return preceded(oneChar('\\'), multispace1)(in)
}

func parseLiteralFragment(in Input) (Input, Input, *InputParseErr) {
	return mapRes(
		takeWhile(func(r rune) bool { return r != '"' && r != '\\' }),
		func(orig Input, i Input) (Input, *InputParseErr) {
			if i.IsEmpty() {
				return Input{}, recoverableErr(ExpectedErr(orig, expectSomething))
			}
			return i, nil
		},
	)(in)
}

type stringFragmentKind int

const (
	fragLiteral stringFragmentKind = iota
	fragEscapedChar
	fragEscapedWS
)

type stringFragment struct {
	kind    stringFragmentKind
	literal string
	char    rune
}

func parseFragment(in Input) (Input, stringFragment, *InputParseErr) {
	return altN(
		mapVal(lookahead(parseLiteralFragment), func(i Input) stringFragment {
			return stringFragment{kind: fragLiteral, literal: i.Fragment()}
		}),
		mapVal(lookahead(parseEscapedChar), func(r rune) stringFragment {
			return stringFragment{kind: fragEscapedChar, char: r}
		}),
		mapVal(lookahead(parseEscapedWhitespace), func(Input) stringFragment {
			return stringFragment{kind: fragEscapedWS}
		}),
	)(in)
}

func innerString(in Input) (Input, string, *InputParseErr) {
	return mapVal(
		foldMany0(lookahead(parseFragment), func() *strings.Builder { return &strings.Builder{} },
			func(b *strings.Builder, f stringFragment) *strings.Builder {
				switch f.kind {
				case fragLiteral:
					b.WriteString(f.literal)
				case fragEscapedChar:
					b.WriteRune(f.char)
				case fragEscapedWS:
					// discarded
				}
				return b
			}),
		func(b *strings.Builder) string { return b.String() },
	)(in)
}

// escapedString parses a full double-quoted string literal, expanding all
// escape sequences.
func escapedString(in Input) (Input, string, *InputParseErr) {
	return context("string", delimited(oneChar('"'), innerString, oneChar('"')))(in)
}
