package parsec

// Parser is a function ParserState -> Consumed<Reply>, the one executable
// value in the engine. Parsers carry no state of their own; running one
// constructs an initial State, invokes the function, and combinators only
// ever compose functions, never execute them, until Run is called.
type Parser[T any, U any, R any] func(State[T, U]) Consumed[T, U, R]

// Pure always succeeds without consuming input.
func Pure[T any, U any, R any](value R) Parser[T, U, R] {
	return func(s State[T, U]) Consumed[T, U, R] {
		return EmptyReply[T, U, R](Ok[T, U, R](value, s, UnknownError(s.Position)))
	}
}

// Empty always fails without consuming input, with no message (an unknown
// parse error).
func Empty[T any, U any, R any]() Parser[T, U, R] {
	return func(s State[T, U]) Consumed[T, U, R] {
		return EmptyReply[T, U, R](Err[T, U, R](UnknownError(s.Position)))
	}
}

// Fail always fails without consuming input, with a Generic message.
func Fail[T any, U any, R any](msg string) Parser[T, U, R] {
	return func(s State[T, U]) Consumed[T, U, R] {
		return EmptyReply[T, U, R](Err[T, U, R](ParseError{position: s.Position, messages: []Message{genericMessage(msg)}}))
	}
}

// Unexpected always fails without consuming input, with a SystemUnexpected
// message. Use this for user code that wants the "unexpected X" phrasing
// without going through token_primitive.
func Unexpected[T any, U any, R any](msg string) Parser[T, U, R] {
	return func(s State[T, U]) Consumed[T, U, R] {
		return EmptyReply[T, U, R](Err[T, U, R](UnexpectedError(s.Position, msg)))
	}
}

// Map transforms a successful result; consumption and error are untouched.
func Map[T any, U any, A any, B any](p Parser[T, U, A], f func(A) B) Parser[T, U, B] {
	return func(s State[T, U]) Consumed[T, U, B] {
		c := p(s)
		rep := c.Reply()
		if !rep.IsOk() {
			return wrapReply[T, U, B](c.IsConsumed(), Err[T, U, B](rep.Error()))
		}
		return wrapReply[T, U, B](c.IsConsumed(), Ok[T, U, B](f(rep.Value()), rep.State(), rep.Error()))
	}
}

func wrapReply[T any, U any, R any](consumed bool, r Reply[T, U, R]) Consumed[T, U, R] {
	if consumed {
		return ConsumedReply[T, U, R](r)
	}
	return EmptyReply[T, U, R](r)
}

// Bind is the universal sequencer: run p, feed its result to k, and run the
// parser k produces. Every other sequencing combinator is a specialization
// of Bind.
//
// The Consumed/Empty bookkeeping is the delicate part: once p has consumed
// input, the whole composition has consumed input, so even a k(r) that
// itself reports Empty gets promoted to Consumed. Errors merge at every
// step so a later failure still remembers what an earlier step's residual
// error said could have matched here.
func Bind[T any, U any, A any, B any](p Parser[T, U, A], k func(A) Parser[T, U, B]) Parser[T, U, B] {
	return func(s State[T, U]) Consumed[T, U, B] {
		c := p(s)
		rep := c.Reply()

		if c.IsConsumed() {
			if !rep.IsOk() {
				return ConsumedReply[T, U, B](Err[T, U, B](rep.Error()))
			}
			inner := k(rep.Value())(rep.State())
			innerRep := inner.Reply()
			merged := rep.Error().Merge(innerRep.Error())
			if innerRep.IsOk() {
				return ConsumedReply[T, U, B](Ok[T, U, B](innerRep.Value(), innerRep.State(), merged))
			}
			return ConsumedReply[T, U, B](Err[T, U, B](merged))
		}

		if !rep.IsOk() {
			return EmptyReply[T, U, B](Err[T, U, B](rep.Error()))
		}
		inner := k(rep.Value())(rep.State())
		innerRep := inner.Reply()
		merged := rep.Error().Merge(innerRep.Error())
		if innerRep.IsOk() {
			return wrapReply[T, U, B](inner.IsConsumed(), Ok[T, U, B](innerRep.Value(), innerRep.State(), merged))
		}
		return wrapReply[T, U, B](inner.IsConsumed(), Err[T, U, B](merged))
	}
}

// Alt is predictive choice: if p commits (Consumed), its result is final,
// committed or not, and q is never tried. Only an Empty failure of p gives q
// a chance, and then only on the original, unconsumed state.
func Alt[T any, U any, R any](p, q Parser[T, U, R]) Parser[T, U, R] {
	return func(s State[T, U]) Consumed[T, U, R] {
		c := p(s)
		if c.IsConsumed() {
			return c
		}
		rep := c.Reply()
		if rep.IsOk() {
			return c
		}

		cq := q(s)
		if cq.IsConsumed() {
			return cq
		}
		repq := cq.Reply()
		merged := repq.Error().Merge(rep.Error())
		if repq.IsOk() {
			return EmptyReply[T, U, R](Ok[T, U, R](repq.Value(), repq.State(), merged))
		}
		return EmptyReply[T, U, R](Err[T, U, R](merged))
	}
}

// AltMany chains Alt left to right over two or more alternatives.
func AltMany[T any, U any, R any](first Parser[T, U, R], rest ...Parser[T, U, R]) Parser[T, U, R] {
	p := first
	for _, q := range rest {
		p = Alt(p, q)
	}
	return p
}

// Attempt pretends p consumed nothing when it fails, even if it had already
// moved the cursor. This is the only way to get unbounded lookahead past a
// commit point: wrap the committing branch in Attempt before handing it to
// Alt.
func Attempt[T any, U any, R any](p Parser[T, U, R]) Parser[T, U, R] {
	return func(s State[T, U]) Consumed[T, U, R] {
		c := p(s)
		if c.IsConsumed() && !c.Reply().IsOk() {
			return EmptyReply[T, U, R](c.Reply())
		}
		return c
	}
}

// LookAhead runs p; on success, the state reverts to the state before p ran
// (no input is consumed, regardless of how much p itself consumed). On
// failure the result is unchanged, so a failing lookahead can still commit.
func LookAhead[T any, U any, R any](p Parser[T, U, R]) Parser[T, U, R] {
	return func(s State[T, U]) Consumed[T, U, R] {
		c := p(s)
		rep := c.Reply()
		if rep.IsOk() {
			return EmptyReply[T, U, R](Ok[T, U, R](rep.Value(), s, UnknownError(s.Position)))
		}
		return c
	}
}

// Labels replaces the Expected messages of p's residual error with one
// message per label, but only when p did not commit. Once a parser has
// consumed input, its error already describes the real mismatch and a
// higher-level label must not paper over it.
func Labels[T any, U any, R any](p Parser[T, U, R], labels ...string) Parser[T, U, R] {
	return func(s State[T, U]) Consumed[T, U, R] {
		c := p(s)
		if c.IsConsumed() {
			return c
		}
		rep := c.Reply()
		newErr := rep.Error().SetExpectedLabels(labels)
		if rep.IsOk() {
			return EmptyReply[T, U, R](Ok[T, U, R](rep.Value(), rep.State(), newErr))
		}
		return EmptyReply[T, U, R](Err[T, U, R](newErr))
	}
}

// Label is Labels with a single expectation, the common case written "p <?>
// msg" in Parsec itself.
func Label[T any, U any, R any](p Parser[T, U, R], msg string) Parser[T, U, R] {
	return Labels(p, msg)
}

// DiscardLeft runs p then q, keeping q's result.
func DiscardLeft[T any, U any, A any, B any](p Parser[T, U, A], q Parser[T, U, B]) Parser[T, U, B] {
	return Bind(p, func(A) Parser[T, U, B] { return q })
}

// DiscardRight runs p then q, keeping p's result.
func DiscardRight[T any, U any, A any, B any](p Parser[T, U, A], q Parser[T, U, B]) Parser[T, U, A] {
	return Bind(p, func(a A) Parser[T, U, A] {
		return Bind(q, func(B) Parser[T, U, A] { return Pure[T, U, A](a) })
	})
}

// Between runs open, p, close in order and keeps p's result. A thin
// composition of DiscardLeft/DiscardRight, useful for bracketed grammars.
func Between[T any, U any, O any, R any, C any](open Parser[T, U, O], p Parser[T, U, R], close Parser[T, U, C]) Parser[T, U, R] {
	return DiscardRight(DiscardLeft(open, p), close)
}

// Lift2 applies f to the results of pa then pb, run in sequence.
func Lift2[T any, U any, A any, B any, R any](f func(A, B) R, pa Parser[T, U, A], pb Parser[T, U, B]) Parser[T, U, R] {
	return Bind(pa, func(a A) Parser[T, U, R] {
		return Bind(pb, func(b B) Parser[T, U, R] { return Pure[T, U, R](f(a, b)) })
	})
}

// Lift3 applies f to the results of pa, pb, pc, run in sequence.
func Lift3[T any, U any, A any, B any, C any, R any](f func(A, B, C) R, pa Parser[T, U, A], pb Parser[T, U, B], pc Parser[T, U, C]) Parser[T, U, R] {
	return Bind(pa, func(a A) Parser[T, U, R] {
		return Bind(pb, func(b B) Parser[T, U, R] {
			return Bind(pc, func(c C) Parser[T, U, R] { return Pure[T, U, R](f(a, b, c)) })
		})
	})
}

// Lift4 applies f to the results of pa..pd, run in sequence.
func Lift4[T any, U any, A any, B any, C any, D any, R any](f func(A, B, C, D) R, pa Parser[T, U, A], pb Parser[T, U, B], pc Parser[T, U, C], pd Parser[T, U, D]) Parser[T, U, R] {
	return Bind(pa, func(a A) Parser[T, U, R] {
		return Bind(pb, func(b B) Parser[T, U, R] {
			return Bind(pc, func(c C) Parser[T, U, R] {
				return Bind(pd, func(d D) Parser[T, U, R] { return Pure[T, U, R](f(a, b, c, d)) })
			})
		})
	})
}

// Lift5 applies f to the results of pa..pe, run in sequence.
func Lift5[T any, U any, A any, B any, C any, D any, E any, R any](f func(A, B, C, D, E) R, pa Parser[T, U, A], pb Parser[T, U, B], pc Parser[T, U, C], pd Parser[T, U, D], pe Parser[T, U, E]) Parser[T, U, R] {
	return Bind(pa, func(a A) Parser[T, U, R] {
		return Bind(pb, func(b B) Parser[T, U, R] {
			return Bind(pc, func(c C) Parser[T, U, R] {
				return Bind(pd, func(d D) Parser[T, U, R] {
					return Bind(pe, func(e E) Parser[T, U, R] { return Pure[T, U, R](f(a, b, c, d, e)) })
				})
			})
		})
	})
}

// Apply is the applicative <*>: run pf for a function, pa for its argument,
// in sequence, and apply one to the other.
func Apply[T any, U any, A any, R any](pf Parser[T, U, func(A) R], pa Parser[T, U, A]) Parser[T, U, R] {
	return Bind(pf, func(f func(A) R) Parser[T, U, R] {
		return Bind(pa, func(a A) Parser[T, U, R] { return Pure[T, U, R](f(a)) })
	})
}
