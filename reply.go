package parsec

// Reply is the Ok/Err half of the four-way result algebra.
//
// An Ok reply carries the parsed value, the state after the parse, and a
// residual error: what else could have matched here, kept around so a
// subsequent combinator can merge it into whatever it produces next. An Err
// reply carries only the failure.
type Reply[T any, U any, R any] struct {
	ok    bool
	value R
	state State[T, U]
	err   ParseError
}

// Ok builds a successful Reply.
func Ok[T any, U any, R any](value R, state State[T, U], residual ParseError) Reply[T, U, R] {
	return Reply[T, U, R]{ok: true, value: value, state: state, err: residual}
}

// Err builds a failed Reply.
func Err[T any, U any, R any](err ParseError) Reply[T, U, R] {
	return Reply[T, U, R]{err: err}
}

// IsOk reports whether the reply succeeded.
func (r Reply[T, U, R]) IsOk() bool { return r.ok }

// Value returns the parsed value. Only meaningful when IsOk is true.
func (r Reply[T, U, R]) Value() R { return r.value }

// State returns the state after the parse. Only meaningful when IsOk is
// true.
func (r Reply[T, U, R]) State() State[T, U] { return r.state }

// Error returns the failure, or the residual error of a success.
func (r Reply[T, U, R]) Error() ParseError { return r.err }

// Consumed is the Empty/Consumed half of the four-way result algebra: did
// the parser move the input cursor at all, independent of whether it
// succeeded. alternative, attempt, labels and bind all case-analyze on both
// axes at once, so the two are kept as a single type rather than collapsed.
type Consumed[T any, U any, R any] struct {
	consumed bool
	reply    Reply[T, U, R]
}

// ConsumedReply wraps a reply as having moved the input cursor.
func ConsumedReply[T any, U any, R any](r Reply[T, U, R]) Consumed[T, U, R] {
	return Consumed[T, U, R]{consumed: true, reply: r}
}

// EmptyReply wraps a reply as not having moved the input cursor.
func EmptyReply[T any, U any, R any](r Reply[T, U, R]) Consumed[T, U, R] {
	return Consumed[T, U, R]{reply: r}
}

// IsConsumed reports whether the input cursor advanced.
func (c Consumed[T, U, R]) IsConsumed() bool { return c.consumed }

// Reply returns the wrapped Ok/Err result.
func (c Consumed[T, U, R]) Reply() Reply[T, U, R] { return c.reply }
