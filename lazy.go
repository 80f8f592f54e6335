package parsec

import "sync"

// Lazy defers construction of a parser until it is first invoked, and
// builds it exactly once. This is how recursive grammars are wired: a rule
// that refers to itself (directly or through other rules) captures a Lazy
// cell instead of the parser it would otherwise need before it exists.
//
// Built with sync.Once rather than a plain memoized closure because a
// Parser value is safe to invoke concurrently from multiple goroutines over
// independent inputs (see the package's concurrency note), and the first
// call from each goroutine would otherwise race on the cached parser.
func Lazy[T any, U any, R any](build func() Parser[T, U, R]) Parser[T, U, R] {
	var once sync.Once
	var cached Parser[T, U, R]
	return func(s State[T, U]) Consumed[T, U, R] {
		once.Do(func() { cached = build() })
		return cached(s)
	}
}
