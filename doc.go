// Package parsec is a monadic parser combinator library in the Parsec
// tradition: parsers are values, combinators build bigger parsers out of
// smaller ones, and every result carries both whether input was consumed
// and whether the parse succeeded, so alternation and error reporting can
// be decided without backtracking by default.
//
// A Parser[T, U, R] consumes a Stream[T], threads a U of caller-chosen user
// state, and produces an R. Build one from the primitives in token.go, glue
// parsers together with Bind/Map/Alt/Attempt and the many.go family, and
// drive the whole thing with Run or RunUnit. Grammar (grammar.go) adds named,
// mutually-recursive rules on top, and Lazy (lazy.go) is the one-time-build
// primitive that makes recursive grammars possible without an initialization
// cycle.
//
// Parser values carry no mutable state and are safe to run concurrently from
// multiple goroutines, as long as each run gets its own Stream.
package parsec
