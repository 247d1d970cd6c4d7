package ron

// parser is the common shape of every combinator in this file: given an
// Input, it either advances past some of the input and returns a value, or
// returns a severity-tagged ErrorTree and leaves the caller to decide what
// to do next. Unlike psec's boxed Parser interface over interface{} values,
// this kernel uses a generic function type so each combinator's output type
// is checked at compile time.
type parser[T any] func(Input) (Input, T, *InputParseErr)

// pair is a struct, not a tuple, for the paired results of seqPair().
type pair[A, B any] struct {
	First  A
	Second B
}

func seqPair[A, B any](a parser[A], b parser[B]) parser[pair[A, B]] {
	return func(in Input) (Input, pair[A, B], *InputParseErr) {
		rest, av, err := a(in)
		if err != nil {
			return in, pair[A, B]{}, err
		}
		rest, bv, err := b(rest)
		if err != nil {
			return in, pair[A, B]{}, err
		}
		return rest, pair[A, B]{First: av, Second: bv}, nil
	}
}

func preceded[A, B any](a parser[A], b parser[B]) parser[B] {
	return func(in Input) (Input, B, *InputParseErr) {
		rest, _, err := a(in)
		if err != nil {
			var zero B
			return in, zero, err
		}
		rest, bv, err := b(rest)
		if err != nil {
			var zero B
			return in, zero, err
		}
		return rest, bv, nil
	}
}

func terminated[A, B any](a parser[A], b parser[B]) parser[A] {
	return func(in Input) (Input, A, *InputParseErr) {
		rest, av, err := a(in)
		if err != nil {
			var zero A
			return in, zero, err
		}
		rest, _, err = b(rest)
		if err != nil {
			var zero A
			return in, zero, err
		}
		return rest, av, nil
	}
}

func delimited[O, A, C any](open parser[O], body parser[A], close parser[C]) parser[A] {
	return func(in Input) (Input, A, *InputParseErr) {
		rest, _, err := open(in)
		if err != nil {
			var zero A
			return in, zero, err
		}
		rest, av, err := body(rest)
		if err != nil {
			var zero A
			return in, zero, err
		}
		rest, _, err = close(rest)
		if err != nil {
			var zero A
			return in, zero, err
		}
		return rest, av, nil
	}
}

// alt2 tries a; if a fails recoverably it tries b on the original input. If a
// fails fatally, b is never attempted. This severity distinction is the
// whole point of the combinator.
func alt2[T any](a, b parser[T]) parser[T] {
	return func(in Input) (Input, T, *InputParseErr) {
		rest, v, err := a(in)
		if err == nil {
			return rest, v, nil
		}
		if err.Severity == Fatal {
			var zero T
			return in, zero, err
		}
		rest, v, err2 := b(in)
		if err2 == nil {
			return rest, v, nil
		}
		var zero T
		return in, zero, &InputParseErr{Severity: err2.Severity, Tree: AltOf(err.Tree, err2.Tree)}
	}
}

// altN is alt2 generalized to any number of alternatives, used where the
// grammar offers more than two (e.g. a dispatch table that degrades to a
// linear scan). Built directly on alt2's severity rule rather than
// duplicating it, per the teacher's own preference for composing Alt out of
// simpler parts (psec's pAlt collects every branch's error up front instead,
// but here the early-fatal-exit behavior must be preserved).
func altN[T any](ps ...parser[T]) parser[T] {
	if len(ps) == 0 {
		panic("ron: altN called with no alternatives")
	}
	out := ps[0]
	for _, p := range ps[1:] {
		out = alt2(out, p)
	}
	return out
}

// opt converts a recoverable failure of p into a successful nil result; a
// fatal failure of p still propagates.
func opt[T any](p parser[T]) parser[*T] {
	return func(in Input) (Input, *T, *InputParseErr) {
		rest, v, err := p(in)
		if err == nil {
			return rest, &v, nil
		}
		if err.Severity == Fatal {
			return in, nil, err
		}
		return in, nil, nil
	}
}

func mapVal[T, U any](p parser[T], f func(T) U) parser[U] {
	return func(in Input) (Input, U, *InputParseErr) {
		rest, v, err := p(in)
		if err != nil {
			var zero U
			return in, zero, err
		}
		return rest, f(v), nil
	}
}

// mapRes is map's fallible sibling: f receives the Input position the
// mapped parser started at (so it can build an error at the right
// location) and may itself return a severity-tagged error, conventionally
// fatal, since map_res is used to reject things like numeric overflow or
// an invalid Unicode scalar after an unambiguous prefix has already
// matched.
func mapRes[T, U any](p parser[T], f func(Input, T) (U, *InputParseErr)) parser[U] {
	return func(in Input) (Input, U, *InputParseErr) {
		rest, v, err := p(in)
		if err != nil {
			var zero U
			return in, zero, err
		}
		u, ferr := f(in, v)
		if ferr != nil {
			var zero U
			return in, zero, ferr
		}
		return rest, u, nil
	}
}

// many0 stops at the first recoverable failure of p and returns whatever it
// accumulated. A fatal failure aborts the whole parse.
func many0[T any](p parser[T]) parser[[]T] {
	return func(in Input) (Input, []T, *InputParseErr) {
		results := make([]T, 0)
		cur := in
		for {
			rest, v, err := p(cur)
			if err != nil {
				if err.Severity == Fatal {
					return in, nil, err
				}
				break
			}
			results = append(results, v)
			cur = rest
		}
		return cur, results, nil
	}
}

// foldMany0 is many0 with a caller-supplied accumulator instead of a slice.
func foldMany0[T, Acc any](p parser[T], init func() Acc, step func(Acc, T) Acc) parser[Acc] {
	return func(in Input) (Input, Acc, *InputParseErr) {
		acc := init()
		cur := in
		for {
			rest, v, err := p(cur)
			if err != nil {
				if err.Severity == Fatal {
					var zero Acc
					return in, zero, err
				}
				break
			}
			acc = step(acc, v)
			cur = rest
		}
		return cur, acc, nil
	}
}

// recognize runs p for its side effect on position and returns the consumed
// slice as an Input, discarding p's own value.
func recognize[T any](p parser[T]) parser[Input] {
	return func(in Input) (Input, Input, *InputParseErr) {
		rest, _, err := p(in)
		if err != nil {
			return in, Input{}, err
		}
		_, consumed := in.TakeSplit(rest.Offset() - in.Offset())
		return rest, consumed, nil
	}
}

// lookahead demotes any failure of p to Recoverable, regardless of how p
// itself classified it. Used to turn an inherently fatal terminal (like
// one_char) back into something a choice combinator may safely probe.
func lookahead[T any](p parser[T]) parser[T] {
	return func(in Input) (Input, T, *InputParseErr) {
		rest, v, err := p(in)
		if err != nil {
			return in, v, recoverableErr(err.Tree)
		}
		return rest, v, nil
	}
}

// cut forces any failure of p to Fatal. Used once a token has committed the
// grammar to an unambiguous production.
func cut[T any](p parser[T]) parser[T] {
	return func(in Input) (Input, T, *InputParseErr) {
		rest, v, err := p(in)
		if err != nil {
			return in, v, fatalErr(err.Tree)
		}
		return rest, v, nil
	}
}

// context labels a failure of p with the production being parsed, appending
// a (location, label) frame to the ErrorTree's Stack. Severity is
// preserved.
func context[T any](label string, p parser[T]) parser[T] {
	return func(in Input) (Input, T, *InputParseErr) {
		rest, v, err := p(in)
		if err != nil {
			return in, v, &InputParseErr{Severity: err.Severity, Tree: WithContext(in, label, err.Tree)}
		}
		return rest, v, nil
	}
}

// spanned runs p and wraps its output in a Spanned using the input
// positions before and after.
func spanned[T any](p parser[T]) parser[Spanned[T]] {
	return func(in Input) (Input, Spanned[T], *InputParseErr) {
		rest, v, err := p(in)
		if err != nil {
			return in, Spanned[T]{}, err
		}
		return rest, Spanned[T]{Span: spanBetween(in, rest), Value: v}, nil
	}
}

// ws accepts optional preceding whitespace and comments, then runs p.
func ws[T any](p parser[T]) parser[T] {
	return preceded(wsAndComments, p)
}

// wsAndComments consumes runs of whitespace interleaved with line and block
// comments, in any order, any number of times. It only fails when a block
// comment it started is unterminated, and then fatally: there is no
// recoverable way to back out of a comment that never closes.
var wsAndComments = mapVal(
	many0(altN(multispace1, eolComment, blockComment)),
	func([]Input) Input { return Input{} },
)

// commaList1 parses one or more items separated by commas, with an optional
// trailing comma, consuming surrounding whitespace/comments around both
// items and commas: item ("," item)* ","?.
//
// The first item is mandatory: a recoverable or fatal failure there is
// returned to the caller unchanged (a recoverable failure there is what lets
// commaList0 below recognize zero items). Every later item is tried under
// lookahead immediately after its comma, so a comma that isn't followed by
// another item is never consumed by the repetition; it's left for the
// trailing-comma terminated() step instead, rather than aborting the list.
func commaList1[T any](item parser[T]) parser[[]T] {
	items := func(in Input) (Input, []T, *InputParseErr) {
		cur, v, err := ws(item)(in)
		if err != nil {
			return in, nil, err
		}
		results := []T{v}
		nextItem := lookahead(preceded(ws(tag(",")), ws(item)))
		for {
			rest, v2, err := nextItem(cur)
			if err != nil {
				break
			}
			results = append(results, v2)
			cur = rest
		}
		return cur, results, nil
	}
	return terminated(items, opt(ws(tag(","))))
}

// commaList0 is commaList1 but tolerant of zero items: a recoverable failure
// to find even the first item (e.g. the next token is the closing
// delimiter) falls through to nothing, producing an empty list rather than
// propagating an error.
func commaList0[T any](item parser[T]) parser[[]T] {
	return alt2(commaList1(item), mapVal(nothing, func(Input) []T { return []T{} }))
}

// takeWhile consumes a (possibly empty) run of runes matching pred.
func takeWhile(pred func(rune) bool) parser[Input] {
	return func(in Input) (Input, Input, *InputParseErr) {
		n := scanWhile(in, pred)
		rest, consumed := in.TakeSplit(n)
		return rest, consumed, nil
	}
}

// takeWhile1 is takeWhile demanding at least one matching rune.
func takeWhile1(pred func(rune) bool, exp Expectation) parser[Input] {
	return func(in Input) (Input, Input, *InputParseErr) {
		n := scanWhile(in, pred)
		if n == 0 {
			return in, Input{}, recoverableErr(ExpectedErr(in, exp))
		}
		rest, consumed := in.TakeSplit(n)
		return rest, consumed, nil
	}
}

// takeWhileMN consumes between m and n (inclusive) matching runes.
func takeWhileMN(m, n int, pred func(rune) bool, exp Expectation) parser[Input] {
	return func(in Input) (Input, Input, *InputParseErr) {
		cur := in
		count := 0
		for count < n {
			r, size, ok := cur.FirstRune()
			if !ok || !pred(r) {
				break
			}
			cur = cur.Slice(size)
			count++
		}
		if count < m {
			return in, Input{}, recoverableErr(ExpectedErr(in, exp))
		}
		_, consumed := in.TakeSplit(cur.Offset() - in.Offset())
		return cur, consumed, nil
	}
}

// take1If consumes exactly one rune matching pred.
func take1If(pred func(rune) bool, exp Expectation) parser[rune] {
	return func(in Input) (Input, rune, *InputParseErr) {
		r, size, ok := in.FirstRune()
		if !ok || !pred(r) {
			return in, 0, recoverableErr(ExpectedErr(in, exp))
		}
		return in.Slice(size), r, nil
	}
}

func scanWhile(in Input, pred func(rune) bool) int {
	cur := in
	for {
		r, size, ok := cur.FirstRune()
		if !ok || !pred(r) {
			break
		}
		cur = cur.Slice(size)
	}
	return cur.Offset() - in.Offset()
}
