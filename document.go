package ron

// Attribute and top-level document parsing. The grammar is:
//
//	document  := attribute* expr
//	attribute := "#!" "[" "enable" "(" ext ("," ext)* ","? ")" "]"
//	ext       := "unwrap_newtypes" | "implicit_some"

func extensionName(in Input) (Input, Extension, *InputParseErr) {
	return oneOfTags(
		[]string{"unwrap_newtypes", "implicit_some"},
		[]Extension{ExtensionUnwrapNewtypes, ExtensionImplicitSome},
	)(in)
}

// attributeEnable parses the `enable(ext, ...)` body. The attribute name is
// cut as soon as it's attempted: by the time we're parsing the body of
// "#![...]", any name other than "enable" is a currently-fatal extension
// point, not a recoverable mismatch.
func attributeEnable(in Input) (Input, Attribute, *InputParseErr) {
	start := preceded(cut(tag("enable")), ws(oneChar('(')))
	end := ws(oneChar(')'))
	return mapVal(
		delimited(start, spanned(commaList1(spanned(extensionName))), end),
		func(exts Spanned[[]Spanned[Extension]]) Attribute {
			return Attribute{Kind: AttributeEnable, Enable: exts}
		},
	)(in)
}

// attribute parses one `#![...]` directive. The leading `#` is probed under
// lookahead so many0 in ronInner can stop cleanly once attributes run out;
// everything after it is fatal-by-default (`!` and `[` via oneChar), since
// "#" only ever introduces an attribute in this grammar.
func attribute(in Input) (Input, Attribute, *InputParseErr) {
	start := preceded(preceded(lookahead(oneChar('#')), ws(oneChar('!'))), ws(oneChar('[')))
	end := ws(oneChar(']'))
	return context("attribute", delimited(start, ws(attributeEnable), end))(in)
}

// ronInner wraps both the attribute loop and the expression in ws, so
// whitespace and comments preceding each (including before the very first
// attribute, and between the last attribute/no attribute and the
// expression) are tolerated the same way container elements tolerate them.
func ronInner(in Input) (Input, Document, *InputParseErr) {
	return mapVal(
		seqPair(many0(ws(spanned(attribute))), ws(spanned(exprParser))),
		func(p pair[[]Spanned[Attribute], Spanned[Expr]]) Document {
			return Document{Attributes: p.First, Expr: p.Second}
		},
	)(in)
}

// Parse is the library's single entry point: it reads zero or more
// attributes followed by exactly one expression, then demands end of input.
// The returned error is the plain ErrorTree: by the time parsing has
// finished, Recoverable vs Fatal no longer matters to a caller.
func Parse(source string) (*Document, *ErrorTree) {
	in := NewInput(source)
	rest, doc, err := ronInner(in)
	if err != nil {
		return nil, &err.Tree
	}
	rest, _, _ = wsAndComments(rest)
	if !rest.IsEmpty() {
		tree := ExpectedErr(rest, expectEof)
		return nil, &tree
	}
	return &doc, nil
}
