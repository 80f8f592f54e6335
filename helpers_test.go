package parsec

import (
	"fmt"
	"unicode"
)

// Character-level combinators are explicitly out of this core's scope (they
// belong to a client lexer), so they live only in the test helpers that
// need a concrete grammar to exercise the engine against.

func describeRune(r rune) string {
	return fmt.Sprintf("%q", string(r))
}

func describeRunes(rs []rune) string {
	return fmt.Sprintf("%q", string(rs))
}

func char[U any](want rune) Parser[rune, U, rune] {
	return Satisfy[rune, U](describeRune, AdvanceRune, func(r rune) bool { return r == want })
}

func letter[U any]() Parser[rune, U, rune] {
	return Satisfy[rune, U](describeRune, AdvanceRune, unicode.IsLetter)
}

func digit[U any]() Parser[rune, U, rune] {
	return Satisfy[rune, U](describeRune, AdvanceRune, unicode.IsDigit)
}

func literal[U any](s string) Parser[rune, U, []rune] {
	return Tokens[rune, U](describeRunes, describeRune, AdvanceRune, []rune(s))
}

func runesToString(rs []rune) string { return string(rs) }
