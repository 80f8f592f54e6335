package parsec

import (
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Grammar is a registry of named rules: a symbol table letting a rule refer
// to another rule, including itself, by name rather than by value. Rules
// are boxed to any because, like a real grammar, different symbols in the
// same grammar produce different result types; Ref callers type-assert the
// result to whatever type that symbol actually produces.
type Grammar[T any, U any] struct {
	mu         sync.Mutex
	symbols    map[string]Parser[T, U, any]
	referenced map[string]bool
}

// NewGrammar builds an empty grammar.
func NewGrammar[T any, U any]() *Grammar[T, U] {
	return &Grammar[T, U]{
		symbols:    make(map[string]Parser[T, U, any]),
		referenced: make(map[string]bool),
	}
}

// Define adds or overwrites a named rule.
func (g *Grammar[T, U]) Define(name string, p Parser[T, U, any]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.symbols[name] = p
}

// Ref returns a parser that looks up name in the grammar at parse time. This
// is how a rule refers to another rule (including itself) before that rule
// has necessarily been Defined — Ref only resolves the name when it is
// actually run, exactly like Lazy defers construction.
//
// Parsing a name that was never Defined panics: that is a grammar-wiring
// bug, not something a caller should recover from mid-parse.
func (g *Grammar[T, U]) Ref(name string) Parser[T, U, any] {
	g.mu.Lock()
	g.referenced[name] = true
	g.mu.Unlock()

	return func(s State[T, U]) Consumed[T, U, any] {
		g.mu.Lock()
		p, ok := g.symbols[name]
		g.mu.Unlock()
		if !ok {
			panic(errors.Errorf("parsec: no symbol named %q in grammar", name))
		}
		return p(s)
	}
}

// Check validates that every name ever passed to Ref has a matching Define,
// collecting every dangling reference into a single error instead of
// stopping at the first one. Call it once a grammar is fully wired and
// before running it over real input, so a typo'd rule name surfaces as a
// build-time error rather than a panic mid-parse.
func (g *Grammar[T, U]) Check() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var result *multierror.Error
	for name := range g.referenced {
		if _, ok := g.symbols[name]; !ok {
			result = multierror.Append(result, errors.Errorf("parsec: grammar references undefined symbol %q", name))
		}
	}
	return result.ErrorOrNil()
}

// Parse runs the rule named start over input, the grammar-level analogue of
// Run for a single free-standing Parser.
func (g *Grammar[T, U]) Parse(userState U, sourceName string, input Stream[T], start string) (any, U, error) {
	return Run[T, U, any](g.Ref(start), userState, sourceName, input)
}
