package parsec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func runRuneState(input string) State[rune, struct{}] {
	return State[rune, struct{}]{Input: NewRuneStream(input), Position: NewSourcePosition("law")}
}

func outcomeOf[R comparable](t *testing.T, c Consumed[rune, struct{}, R]) (bool, bool, R, SourcePosition) {
	t.Helper()
	rep := c.Reply()
	if !rep.IsOk() {
		var zero R
		return c.IsConsumed(), false, zero, rep.Error().Position()
	}
	return c.IsConsumed(), true, rep.Value(), rep.State().Position
}

func TestBindLeftIdentity(t *testing.T) {
	k := func(r rune) Parser[rune, struct{}, rune] { return Map(char[struct{}](r), func(rune) rune { return r }) }
	lhs := Bind(Pure[rune, struct{}, rune]('a'), k)
	rhs := k('a')

	s := runRuneState("abc")
	lc, lok, lv, lpos := outcomeOf[rune](t, lhs(s))
	rc, rok, rv, rpos := outcomeOf[rune](t, rhs(s))
	require.Equal(t, lc, rc)
	require.Equal(t, lok, rok)
	require.Equal(t, lv, rv)
	require.Equal(t, lpos, rpos)
}

func TestBindRightIdentity(t *testing.T) {
	p := char[struct{}]('a')
	lhs := Bind(p, func(r rune) Parser[rune, struct{}, rune] { return Pure[rune, struct{}, rune](r) })

	s := runRuneState("abc")
	lc, lok, lv, lpos := outcomeOf[rune](t, lhs(s))
	rc, rok, rv, rpos := outcomeOf[rune](t, p(s))
	require.Equal(t, lc, rc)
	require.Equal(t, lok, rok)
	require.Equal(t, lv, rv)
	require.Equal(t, lpos, rpos)
}

func TestBindAssociativity(t *testing.T) {
	p := char[struct{}]('a')
	q := func(r rune) Parser[rune, struct{}, rune] { return char[struct{}]('b') }
	r := func(r rune) Parser[rune, struct{}, rune] { return char[struct{}]('c') }

	lhs := Bind(Bind(p, q), r)
	rhs := Bind(p, func(x rune) Parser[rune, struct{}, rune] { return Bind(q(x), r) })

	s := runRuneState("abc")
	lc, lok, lv, lpos := outcomeOf[rune](t, lhs(s))
	rc, rok, rv, rpos := outcomeOf[rune](t, rhs(s))
	require.Equal(t, lc, rc)
	require.Equal(t, lok, rok)
	require.Equal(t, lv, rv)
	require.Equal(t, lpos, rpos)
}

func TestAltWithEmptyLeftIdentity(t *testing.T) {
	p := char[struct{}]('a')
	composed := Alt(Empty[rune, struct{}, rune](), p)

	s := runRuneState("abc")
	pc, pok, pv, ppos := outcomeOf[rune](t, p(s))
	cc, cok, cv, cpos := outcomeOf[rune](t, composed(s))
	require.Equal(t, pc, cc)
	require.Equal(t, pok, cok)
	require.Equal(t, pv, cv)
	require.Equal(t, ppos, cpos)
}

func TestAltWithEmptyRightIdentity(t *testing.T) {
	p := char[struct{}]('a')
	composed := Alt(p, Empty[rune, struct{}, rune]())

	s := runRuneState("abc")
	pc, pok, pv, ppos := outcomeOf[rune](t, p(s))
	cc, cok, cv, cpos := outcomeOf[rune](t, composed(s))
	require.Equal(t, pc, cc)
	require.Equal(t, pok, cok)
	require.Equal(t, pv, cv)
	require.Equal(t, ppos, cpos)
}

func TestAttemptAllowsAlternativeAfterConsumedFailure(t *testing.T) {
	p := Alt(Attempt(literal[struct{}]("let")), Map(char[struct{}]('l'), func(rune) []rune { return []rune("fallback") }))
	s := runRuneState("lexical")
	c := p(s)
	rep := c.Reply()
	require.True(t, rep.IsOk())
	require.Equal(t, "fallback", string(rep.Value()))
}

func TestWithoutAttemptConsumedFailureCommits(t *testing.T) {
	p := Alt(literal[struct{}]("let"), Map(char[struct{}]('l'), func(rune) []rune { return []rune("fallback") }))
	s := runRuneState("lexical")
	c := p(s)
	require.True(t, c.IsConsumed())
	require.False(t, c.Reply().IsOk())
}

func TestLookAheadLeavesStateUnchangedOnSuccess(t *testing.T) {
	p := LookAhead(literal[struct{}]("let"))
	s := runRuneState("let x")
	c := p(s)
	require.False(t, c.IsConsumed())
	rep := c.Reply()
	require.True(t, rep.IsOk())
	require.Equal(t, s.Position, rep.State().Position)
	rs := rep.State().Input.(RuneStream)
	require.Equal(t, "let x", rs.Remaining())
}

func TestManyAccumulatorPanicsOnEmptySuccess(t *testing.T) {
	alwaysEmptyOk := Pure[rune, struct{}, rune]('x')
	p := Many(alwaysEmptyOk)
	s := runRuneState("abc")
	require.Panics(t, func() { p(s) })
}

func TestMergeMonotonicity(t *testing.T) {
	posA := SourcePosition{Name: "m", Line: 1, Column: 1}
	posB := SourcePosition{Name: "m", Line: 1, Column: 5}
	e1 := ParseError{position: posA, messages: []Message{expectedMessage("a")}}
	e2 := ParseError{position: posB, messages: []Message{expectedMessage("b")}}

	merged := e1.Merge(e2)
	require.Equal(t, posB, merged.Position())
	require.Equal(t, e2.Messages(), merged.Messages())
}

func TestLabelRewriteOnEmptyFailure(t *testing.T) {
	p := Labels(Alt(char[struct{}]('a'), char[struct{}]('b')), "L")
	s := runRuneState("c")
	c := p(s)
	rep := c.Reply()
	require.False(t, rep.IsOk())
	msgs := rep.Error().Messages()
	require.True(t, hasMessage(msgs, Expected, "L"))
}
