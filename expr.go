package ron

// exprClass classifies the next expression by its first character, mirroring
// the notation's one_of_chars dispatch table. Classification is a zero-width
// peek; the actual parse always starts back at the original position.
type exprClass int

const (
	exprClassStructTuple exprClass = iota
	exprClassMap
	exprClassStr
	exprClassList
	exprClassBoolTrue
	exprClassBoolFalse
	exprClassSigned
	exprClassDec
	exprClassUnsignedDec
	exprClassLeadingIdent
)

var exprClassTable = map[rune]exprClass{
	'(': exprClassStructTuple,
	'{': exprClassMap,
	'"': exprClassStr,
	'[': exprClassList,
	't': exprClassBoolTrue,
	'f': exprClassBoolFalse,
	'+': exprClassSigned,
	'-': exprClassSigned,
	'.': exprClassDec,
}

// classifyExpr peeks at in's first rune and returns the dispatch class to
// use. A rune outside the table falls back to exprClassLeadingIdent whenever
// it could start an identifier; otherwise classification fails recoverably
// with an ExpectSomething expectation.
func classifyExpr(in Input) (exprClass, *InputParseErr) {
	r, _, ok := in.FirstRune()
	if !ok {
		return 0, recoverableErr(ExpectedErr(in, expectSomething))
	}
	if isDigitFirst(r) {
		return exprClassUnsignedDec, nil
	}
	if class, known := exprClassTable[r]; known {
		return class, nil
	}
	if isIdentFirstChar(r) {
		return exprClassLeadingIdent, nil
	}
	return 0, recoverableErr(ExpectedErr(in, expectSomething))
}

// exprBody returns the parser for a single dispatch class. classifyExpr has
// already peeked the next rune recoverably by the time this runs, so once
// the caller commits to one of these, any further failure is promoted to
// fatal via cut in exprInner.
func exprBody(class exprClass) parser[Expr] {
	switch class {
	case exprClassStructTuple:
		// "()" parses as an empty anonymous struct, not Unit: alt2 tries
		// anonStruct first, and an empty body always succeeds there, so
		// tupleParser is never reached for it.
		return mapVal(alt2(
			mapVal(anonStruct, func(s Struct) any { return s }),
			mapVal(tupleParser, func(l List) any { return l }),
		), func(v any) Expr {
			switch x := v.(type) {
			case Struct:
				return Expr{Kind: ExprStruct, Struct: x}
			case List:
				return Expr{Kind: ExprTuple, Tuple: x}
			default:
				panic("ron: unreachable exprClassStructTuple result")
			}
		})

	case exprClassMap:
		return mapVal(mapParser, func(m Map) Expr { return Expr{Kind: ExprMap, Map: m} })

	case exprClassStr:
		// unescapedStr is tried first under lookahead, since its own
		// closing-quote match is fatal-by-default (oneChar) and would
		// otherwise block falling through to escapedString the moment an
		// escape sequence appears. The two are kept as distinct Expr.Kinds
		// (Str vs String) rather than unified, since only the escape-free
		// form is a zero-copy slice of the source.
		return alt2(
			mapVal(lookahead(unescapedStr), func(s string) Expr { return Expr{Kind: ExprStr, Str: s} }),
			mapVal(escapedString, func(s string) Expr { return Expr{Kind: ExprString, String: s} }),
		)

	case exprClassList:
		return mapVal(listParser, func(l List) Expr { return Expr{Kind: ExprList, List: l} })

	case exprClassBoolTrue, exprClassBoolFalse:
		return mapVal(boolParser, func(b bool) Expr { return Expr{Kind: ExprBool, Bool: b} })

	case exprClassSigned:
		return mapVal(
			alt2(mapVal(signedInteger, func(s SignedInteger) any { return s }), mapVal(decimal, func(d Decimal) any { return d })),
			func(v any) Expr {
				switch x := v.(type) {
				case SignedInteger:
					return Expr{Kind: ExprInteger, Integer: Integer{Kind: IntegerSigned, Signed: x}}
				case Decimal:
					return Expr{Kind: ExprDecimal, Decimal: x}
				default:
					panic("ron: unreachable exprClassSigned result")
				}
			},
		)

	case exprClassDec:
		return mapVal(decimal, func(d Decimal) Expr { return Expr{Kind: ExprDecimal, Decimal: d} })

	case exprClassUnsignedDec:
		return mapVal(
			alt2(mapVal(unsignedInteger, func(u UnsignedInteger) any { return u }), mapVal(decimal, func(d Decimal) any { return d })),
			func(v any) Expr {
				switch x := v.(type) {
				case UnsignedInteger:
					return Expr{Kind: ExprInteger, Integer: Integer{Kind: IntegerUnsigned, Unsigned: x}}
				case Decimal:
					return Expr{Kind: ExprDecimal, Decimal: x}
				default:
					panic("ron: unreachable exprClassUnsignedDec result")
				}
			},
		)

	case exprClassLeadingIdent:
		return mapVal(namedStruct, func(s Struct) Expr { return Expr{Kind: ExprStruct, Struct: s} })

	default:
		panic("ron: unreachable exprClass")
	}
}

// exprInner classifies the next token, then commits to it. Classification
// itself stays recoverable, since a container calls exprParser to probe
// whether the next token is an element at all (as opposed to the closing
// delimiter) and needs a clean Recoverable answer when it isn't.
func exprInner(in Input) (Input, Expr, *InputParseErr) {
	class, cerr := classifyExpr(in)
	if cerr != nil {
		return in, Expr{}, cerr
	}
	return cut(exprBody(class))(in)
}

// exprParser is the full expression production, labeled for error messages.
func exprParser(in Input) (Input, Expr, *InputParseErr) {
	return context("expression", exprInner)(in)
}
