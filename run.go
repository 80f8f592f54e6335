package parsec

// Run is the entry point: it builds the initial state, invokes p, and
// interprets the terminal Reply. The Consumed/Empty tag only matters during
// composition; at the outermost level only Ok/Err is visible.
func Run[T any, U any, R any](p Parser[T, U, R], userState U, sourceName string, input Stream[T]) (R, U, error) {
	s := State[T, U]{Input: input, Position: NewSourcePosition(sourceName), User: userState}
	c := p(s)
	rep := c.Reply()

	if rep.IsOk() {
		return rep.Value(), rep.State().User, nil
	}

	var zero R
	return zero, userState, rep.Error()
}

// RunUnit is Run specialized to a parser with no user state, the common
// case for grammars that don't need one threaded through.
func RunUnit[T any, R any](p Parser[T, struct{}, R], sourceName string, input Stream[T]) (R, error) {
	value, _, err := Run[T, struct{}, R](p, struct{}{}, sourceName, input)
	return value, err
}
