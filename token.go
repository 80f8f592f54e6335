package parsec

// TokenPrimitive and Tokens are the only combinators in the engine that
// touch the Stream directly; everything else is built from them plus the
// composition combinators in parser.go.

// TokenPrimitive consumes a single token if match accepts it.
//
//   - describe renders a token for an error message ("'x'", "EOF").
//   - advance computes the position after consuming one token; callers
//     supply this because only they know how a token maps to columns and
//     lines (a tab, a multi-byte rune, a pre-lexed token with its own
//     width are all different).
//   - match inspects the token and either accepts it (returning its result
//     and true) or rejects it (false); TokenPrimitive never looks inside T
//     itself.
func TokenPrimitive[T any, U any, R any](
	describe func(T) string,
	advance func(SourcePosition, T) SourcePosition,
	match func(T) (R, bool),
) Parser[T, U, R] {
	return func(s State[T, U]) Consumed[T, U, R] {
		tok, rest, ok := s.Input.Pop()
		if !ok {
			return EmptyReply[T, U, R](Err[T, U, R](UnexpectedError(s.Position, "")))
		}

		val, matched := match(tok)
		if !matched {
			return EmptyReply[T, U, R](Err[T, U, R](UnexpectedError(s.Position, describe(tok))))
		}

		newPos := advance(s.Position, tok)
		newState := State[T, U]{Input: rest, Position: newPos, User: s.User}
		return ConsumedReply[T, U, R](Ok[T, U, R](val, newState, UnknownError(newPos)))
	}
}

// Satisfy is TokenPrimitive specialized to a boolean predicate, returning
// the token itself on a match.
func Satisfy[T any, U any](
	describe func(T) string,
	advance func(SourcePosition, T) SourcePosition,
	pred func(T) bool,
) Parser[T, U, T] {
	return TokenPrimitive[T, U, T](describe, advance, func(tok T) (T, bool) {
		if pred(tok) {
			return tok, true
		}
		var zero T
		return zero, false
	})
}

// Tokens matches a literal sequence of tokens exactly, in order.
//
//   - describeSeq renders the whole expected sequence for an "expecting"
//     message.
//   - describeOne renders a single mismatched token for an "unexpected"
//     message.
//   - advance is the same per-token position contract as TokenPrimitive;
//     the position after a full match is the fold of advance over every
//     matched token starting from the position before the first one.
//
// An empty toks sequence always succeeds without consuming input.
func Tokens[T comparable, U any](
	describeSeq func([]T) string,
	describeOne func(T) string,
	advance func(SourcePosition, T) SourcePosition,
	toks []T,
) Parser[T, U, []T] {
	return func(s State[T, U]) Consumed[T, U, []T] {
		if len(toks) == 0 {
			return EmptyReply[T, U, []T](Ok[T, U, []T](nil, s, UnknownError(s.Position)))
		}

		pos := s.Position
		cur := s.Input

		for i, want := range toks {
			got, rest, ok := cur.Pop()
			if !ok {
				err := ParseError{position: pos, messages: []Message{
					systemUnexpected(""),
					expectedMessage(describeSeq(toks)),
				}}
				return wrapReply[T, U, []T](i > 0, Err[T, U, []T](err))
			}
			if got != want {
				err := ParseError{position: pos, messages: []Message{
					systemUnexpected(describeOne(got)),
					expectedMessage(describeSeq(toks)),
				}}
				return wrapReply[T, U, []T](i > 0, Err[T, U, []T](err))
			}
			pos = advance(pos, got)
			cur = rest
		}

		newState := State[T, U]{Input: cur, Position: pos, User: s.User}
		return ConsumedReply[T, U, []T](Ok[T, U, []T](toks, newState, UnknownError(pos)))
	}
}
