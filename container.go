package ron

// Container parsers: tuples, lists, maps, and named/anonymous structs. All
// of them permit arbitrary whitespace and comments between tokens via ws().

func tupleParser(in Input) (Input, List, *InputParseErr) {
	return mapVal(
		delimited(tag("("), commaList0(spanned(exprParser)), ws(tag(")"))),
		func(elems []Spanned[Expr]) List { return List{Elements: elems} },
	)(in)
}

func listParser(in Input) (Input, List, *InputParseErr) {
	return mapVal(
		delimited(tag("["), commaList0(spanned(exprParser)), ws(tag("]"))),
		func(elems []Spanned[Expr]) List { return List{Elements: elems} },
	)(in)
}

func mapKeyValue(in Input) (Input, KeyValue[Expr], *InputParseErr) {
	return mapVal(
		seqPair(spanned(exprParser), preceded(ws(oneChar(':')), ws(spanned(exprParser)))),
		func(p pair[Spanned[Expr], Spanned[Expr]]) KeyValue[Expr] {
			return KeyValue[Expr]{Key: p.First, Value: p.Second}
		},
	)(in)
}

func mapParser(in Input) (Input, Map, *InputParseErr) {
	return mapVal(
		delimited(tag("{"), spanned(commaList0(spanned(mapKeyValue))), ws(tag("}"))),
		func(entries SpannedKvs[Expr]) Map { return Map{Entries: entries} },
	)(in)
}

// structFieldKV parses one `ident : expr` field. Once an identifier has
// been seen, the following `:` is required via the fatal-by-default
// oneChar (not tag); this is what makes "(a 1)" a fatal error rather than
// a silent fallback to parsing "(" as a tuple.
func structFieldKV(in Input) (Input, KeyValue[Ident], *InputParseErr) {
	return mapVal(
		seqPair(spanned(identParser), preceded(ws(oneChar(':')), ws(spanned(exprParser)))),
		func(p pair[Spanned[Ident], Spanned[Expr]]) KeyValue[Ident] {
			return KeyValue[Ident]{Key: p.First, Value: p.Second}
		},
	)(in)
}

func structBody(in Input) (Input, SpannedKvs[Ident], *InputParseErr) {
	return delimited(tag("("), spanned(commaList0(spanned(structFieldKV))), ws(tag(")")))(in)
}

// anonStruct parses `(fields)` with no leading identifier. It fails
// recoverably when the body does not begin with an identifier (e.g.
// `(1, 2, 3)`), so that the dispatcher's alt2(struct, tuple) can fall
// through to tupleParser. Once a leading identifier has been read, a
// missing `:` is fatal (see structFieldKV) and tupleParser is not tried.
// An empty body (`()`) succeeds here and is never offered to tupleParser.
func anonStruct(in Input) (Input, Struct, *InputParseErr) {
	return mapVal(structBody, func(f SpannedKvs[Ident]) Struct {
		return Struct{Ident: nil, Fields: f}
	})(in)
}

// namedStruct parses `Ident(fields)`.
func namedStruct(in Input) (Input, Struct, *InputParseErr) {
	return mapVal(
		seqPair(spanned(identParser), ws(structBody)),
		func(p pair[Spanned[Ident], SpannedKvs[Ident]]) Struct {
			id := p.First
			return Struct{Ident: &id, Fields: p.Second}
		},
	)(in)
}
