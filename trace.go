package parsec

import "github.com/hashicorp/go-hclog"

// Trace wraps p with structured entry/exit logging under a named child of
// logger, in the style of this corpus's subsystem loggers. It changes
// nothing about p's Consumed/Ok/Err result; it only observes it. Tracing is
// opt-in: a Parser value built without Trace never touches a logger, so
// reusing it concurrently across goroutines with independent inputs stays
// free of any shared, mutable logging state.
func Trace[T any, U any, R any](logger hclog.Logger, name string, p Parser[T, U, R]) Parser[T, U, R] {
	named := logger.Named(name)
	return func(s State[T, U]) Consumed[T, U, R] {
		named.Debug("enter", "position", s.Position.String())
		c := p(s)
		rep := c.Reply()
		if rep.IsOk() {
			named.Debug("ok", "consumed", c.IsConsumed(), "position", rep.State().Position.String())
		} else {
			named.Debug("err", "consumed", c.IsConsumed(), "position", rep.Error().Position().String(), "error", rep.Error().Error())
		}
		return c
	}
}
