package ron

import "strings"

// nothing succeeds without consuming any input.
func nothing(in Input) (Input, Input, *InputParseErr) {
	rest, consumed := in.TakeSplit(0)
	return rest, consumed, nil
}

// multispace0 consumes a (possibly empty) run of whitespace.
func multispace0(in Input) (Input, Input, *InputParseErr) {
	return takeWhile(isWS)(in)
}

// multispace1 consumes a non-empty run of whitespace.
func multispace1(in Input) (Input, Input, *InputParseErr) {
	return takeWhile1(isWS, expectMultispace)(in)
}

// eolComment matches `//` through (not including) the next LF/CR or EOF.
func eolComment(in Input) (Input, Input, *InputParseErr) {
	return recognize(seqPair(lookahead(tag("//")), takeWhile(func(r rune) bool {
		return r != '\n' && r != '\r'
	})))(in)
}

// blockComment matches a `/* ... */` block comment, with nesting: a `/*`
// that appears before the matching `*/` opens a deeper level, which must
// itself be closed before the outer comment is. Implemented with an
// explicit depth counter rather than recursion, to avoid stack exhaustion
// on adversarially nested input.
func blockComment(in Input) (Input, Input, *InputParseErr) {
	rest, _, err := lookahead(tag("/*"))(in)
	if err != nil {
		return in, Input{}, err
	}

	cur := rest
	depth := 1
	for depth > 0 {
		endIdx := strings.Index(cur.Fragment(), "*/")
		if endIdx == -1 {
			atEnd := cur.Slice(cur.Len())
			return in, Input{}, fatalErr(ExpectedErr(atEnd, expectBlockCommentEnd))
		}
		startIdx := strings.Index(cur.Fragment(), "/*")
		if startIdx != -1 && startIdx < endIdx {
			cur = cur.Slice(startIdx + 2)
			depth++
			continue
		}
		cur = cur.Slice(endIdx + 2)
		depth--
	}

	_, consumed := in.TakeSplit(cur.Offset() - in.Offset())
	return cur, consumed, nil
}

// tag matches a fixed literal. Recoverable on mismatch.
func tag(s string) parser[Input] {
	return func(in Input) (Input, Input, *InputParseErr) {
		if !in.StartsWith(s) {
			return in, Input{}, recoverableErr(ExpectedErr(in, expectTag(s)))
		}
		rest, consumed := in.TakeSplit(len(s))
		return rest, consumed, nil
	}
}

// oneChar matches exactly one character. Fatal on mismatch; callers wrap
// with lookahead when they want recoverability instead. This asymmetry with
// tag is intentional: oneChar is used once a production has already
// committed to a shape, where tag is used to probe one.
func oneChar(c rune) parser[rune] {
	return func(in Input) (Input, rune, *InputParseErr) {
		r, size, ok := in.FirstRune()
		if !ok || r != c {
			return in, 0, fatalErr(ExpectedErr(in, expectChar(c)))
		}
		return in.Slice(size), r, nil
	}
}

// oneOfChars returns the mapping entry for the first rune of input if it
// appears in chars; otherwise fatal. len(chars) entries in runes must equal
// len(mapping).
func oneOfChars[O any](chars string, mapping []O) parser[O] {
	runes := []rune(chars)
	if len(runes) != len(mapping) {
		panic("ron: oneOfChars: mismatched chars/mapping lengths")
	}
	return func(in Input) (Input, O, *InputParseErr) {
		r, size, ok := in.FirstRune()
		if ok {
			for i, c := range runes {
				if c == r {
					return in.Slice(size), mapping[i], nil
				}
			}
		}
		var zero O
		return in, zero, fatalErr(ExpectedErr(in, expectOneOfChars(chars)))
	}
}

// oneOfTags is oneOfChars for string tags scanned in order.
func oneOfTags[O any](tags []string, mapping []O) parser[O] {
	if len(tags) != len(mapping) {
		panic("ron: oneOfTags: mismatched tags/mapping lengths")
	}
	return func(in Input) (Input, O, *InputParseErr) {
		for i, t := range tags {
			if in.StartsWith(t) {
				rest, _ := in.TakeSplit(len(t))
				return rest, mapping[i], nil
			}
		}
		var zero O
		return in, zero, fatalErr(ExpectedErr(in, expectOneOfTags(tags)))
	}
}
