package parsec

import "github.com/pkg/errors"

// ManyAccumulator iterates p until it fails without consuming input, folding
// each consumed success into an accumulator seeded with seed.
//
// A p that succeeds without consuming is a programmer error: a loop around
// it would never terminate. ManyAccumulator detects this and panics rather
// than spinning forever, the same way the rest of the engine treats
// violated invariants as bugs in the caller's grammar, not bad input.
func ManyAccumulator[T any, U any, R any, Acc any](p Parser[T, U, R], seed Acc, fold func(Acc, R) Acc) Parser[T, U, Acc] {
	return func(s State[T, U]) Consumed[T, U, Acc] {
		acc := seed
		consumedAny := false
		cur := s
		residual := UnknownError(s.Position)

		for {
			c := p(cur)
			rep := c.Reply()

			if c.IsConsumed() {
				if !rep.IsOk() {
					return ConsumedReply[T, U, Acc](Err[T, U, Acc](rep.Error()))
				}
				acc = fold(acc, rep.Value())
				cur = rep.State()
				residual = rep.Error()
				consumedAny = true
				continue
			}

			if rep.IsOk() {
				panic(errors.New("parsec: many_accumulator applied to a parser that succeeds without consuming input"))
			}
			residual = rep.Error()
			break
		}

		return wrapReply[T, U, Acc](consumedAny, Ok[T, U, Acc](acc, cur, residual))
	}
}

// Many parses zero or more copies of p, collecting the results.
func Many[T any, U any, R any](p Parser[T, U, R]) Parser[T, U, []R] {
	return ManyAccumulator(p, []R(nil), func(acc []R, r R) []R { return append(acc, r) })
}

// Many1 parses one or more copies of p.
func Many1[T any, U any, R any](p Parser[T, U, R]) Parser[T, U, []R] {
	return Bind(p, func(first R) Parser[T, U, []R] {
		return Bind(Many(p), func(rest []R) Parser[T, U, []R] {
			return Pure[T, U, []R](append([]R{first}, rest...))
		})
	})
}

// SkipMany parses zero or more copies of p, discarding the results.
func SkipMany[T any, U any, R any](p Parser[T, U, R]) Parser[T, U, struct{}] {
	return ManyAccumulator(p, struct{}{}, func(acc struct{}, _ R) struct{} { return acc })
}

// SkipMany1 parses one or more copies of p, discarding the results.
func SkipMany1[T any, U any, R any](p Parser[T, U, R]) Parser[T, U, struct{}] {
	return DiscardLeft(p, SkipMany(p))
}

// SepBy1 parses one or more copies of p separated by sep. A separator that
// matches but is not followed by another p is a consumed failure, not a
// graceful stop.
func SepBy1[T any, U any, R any, S any](p Parser[T, U, R], sep Parser[T, U, S]) Parser[T, U, []R] {
	return Bind(p, func(first R) Parser[T, U, []R] {
		return Bind(Many(DiscardLeft(sep, p)), func(rest []R) Parser[T, U, []R] {
			return Pure[T, U, []R](append([]R{first}, rest...))
		})
	})
}

// SepBy parses zero or more copies of p separated by sep.
func SepBy[T any, U any, R any, S any](p Parser[T, U, R], sep Parser[T, U, S]) Parser[T, U, []R] {
	return Alt(SepBy1(p, sep), Pure[T, U, []R](nil))
}

// EndBy1 parses one or more copies of p, each one followed by sep.
func EndBy1[T any, U any, R any, S any](p Parser[T, U, R], sep Parser[T, U, S]) Parser[T, U, []R] {
	return Many1(DiscardRight(p, sep))
}

// EndBy parses zero or more copies of p, each one followed by sep.
func EndBy[T any, U any, R any, S any](p Parser[T, U, R], sep Parser[T, U, S]) Parser[T, U, []R] {
	return Many(DiscardRight(p, sep))
}

// ManyTill parses zero or more copies of inner, non-greedily, stopping as
// soon as terminator matches. Only when terminator fails does ManyTill try
// inner, so a terminator that looks like a valid inner token still ends the
// loop.
func ManyTill[T any, U any, R any, E any](inner Parser[T, U, R], terminator Parser[T, U, E]) Parser[T, U, []R] {
	var self Parser[T, U, []R]
	self = Alt(
		Map(terminator, func(E) []R { return nil }),
		Bind(inner, func(x R) Parser[T, U, []R] {
			return Map(Lazy(func() Parser[T, U, []R] { return self }), func(xs []R) []R {
				return append([]R{x}, xs...)
			})
		}),
	)
	return self
}

// UpdateUserState applies f to the current user state and succeeds with no
// result and no consumption.
func UpdateUserState[T any, U any](f func(U) U) Parser[T, U, struct{}] {
	return func(s State[T, U]) Consumed[T, U, struct{}] {
		ns := s.WithUser(f(s.User))
		return EmptyReply[T, U, struct{}](Ok[T, U, struct{}](struct{}{}, ns, UnknownError(ns.Position)))
	}
}

// UserState returns the current user state without consuming input.
func UserState[T any, U any]() Parser[T, U, U] {
	return func(s State[T, U]) Consumed[T, U, U] {
		return EmptyReply[T, U, U](Ok[T, U, U](s.User, s, UnknownError(s.Position)))
	}
}
