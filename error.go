package parsec

import (
	"sort"
	"strings"
)

// ParseError is the single error type the engine produces. The taxonomy
// lives inside it as Message variants; there is no hierarchy of error types
// beyond this one.
type ParseError struct {
	position SourcePosition
	messages []Message
}

// UnknownError builds an empty ParseError at pos. Unknown() on the result
// reports true.
func UnknownError(pos SourcePosition) ParseError {
	return ParseError{position: pos}
}

// UnexpectedError builds a ParseError carrying a single SystemUnexpected
// message, as produced by token_primitive on a mismatch.
func UnexpectedError(pos SourcePosition, text string) ParseError {
	return ParseError{position: pos, messages: []Message{systemUnexpected(text)}}
}

// Position returns the position this error was recorded at.
func (e ParseError) Position() SourcePosition { return e.position }

// Unknown reports whether e carries no messages at all.
func (e ParseError) Unknown() bool { return len(e.messages) == 0 }

// Messages returns a copy of e's messages sorted by Kind, the display order.
// Sort is stable so messages of equal kind keep the order Insert produced.
func (e ParseError) Messages() []Message {
	out := make([]Message, len(e.messages))
	copy(out, e.messages)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// Insert removes every existing message of msg's Kind, then prepends msg.
// Because Messages() always returns a sorted view, this is observationally
// "replace the representative of that kind" regardless of where the new
// message physically lands in the backing slice.
func (e ParseError) Insert(msg Message) ParseError {
	kept := make([]Message, 0, len(e.messages)+1)
	kept = append(kept, msg)
	for _, m := range e.messages {
		if m.Kind != msg.Kind {
			kept = append(kept, m)
		}
	}
	return ParseError{position: e.position, messages: kept}
}

// SetExpectedLabels replaces every Expected message with one Expected
// message per label. An empty label list still produces a single empty
// Expected message, matching labels("") clearing expectations entirely.
func (e ParseError) SetExpectedLabels(labels []string) ParseError {
	kept := make([]Message, 0, len(e.messages)+len(labels))
	for _, m := range e.messages {
		if m.Kind != Expected {
			kept = append(kept, m)
		}
	}
	if len(labels) == 0 {
		kept = append(kept, expectedMessage(""))
	} else {
		for _, l := range labels {
			kept = append(kept, expectedMessage(l))
		}
	}
	return ParseError{position: e.position, messages: kept}
}

// Merge combines e with other under the longest-match rule: the error at the
// furthest position wins outright; at equal positions, messages concatenate.
func (e ParseError) Merge(other ParseError) ParseError {
	if e.Unknown() && !other.Unknown() {
		return other
	}
	if other.Unknown() {
		return e
	}
	if e.position.Less(other.position) {
		return other
	}
	if other.position.Less(e.position) {
		return e
	}
	merged := make([]Message, 0, len(e.messages)+len(other.messages))
	merged = append(merged, e.messages...)
	merged = append(merged, other.messages...)
	return ParseError{position: e.position, messages: merged}
}

// Error renders the error in the canonical multi-line form: a position
// header followed by one "unexpected" line (Unexpected messages, or else
// SystemUnexpected ones), one "expecting" line and one line of Generic
// messages, each present only when non-empty, with empty-text and duplicate
// messages elided.
func (e ParseError) Error() string {
	msgs := e.Messages()
	if len(msgs) == 0 {
		return e.position.String() + ":\nunknown parse error"
	}

	var sysUnexpected, unexpected, expected, generic []string
	sawEOF := false
	seen := map[MessageKind]map[string]bool{
		SystemUnexpected: {},
		Unexpected:       {},
		Expected:         {},
		Generic:          {},
	}
	add := func(dst *[]string, kind MessageKind, text string) {
		if text == "" {
			return
		}
		if seen[kind][text] {
			return
		}
		seen[kind][text] = true
		*dst = append(*dst, text)
	}

	for _, m := range msgs {
		switch m.Kind {
		case SystemUnexpected:
			if m.Text == "" {
				sawEOF = true
				continue
			}
			add(&sysUnexpected, SystemUnexpected, m.Text)
		case Unexpected:
			add(&unexpected, Unexpected, m.Text)
		case Expected:
			add(&expected, Expected, m.Text)
		case Generic:
			add(&generic, Generic, m.Text)
		}
	}

	var lines []string
	switch {
	case len(unexpected) > 0:
		lines = append(lines, "unexpected "+joinWithOr(unexpected))
	case len(sysUnexpected) > 0:
		lines = append(lines, "unexpected "+joinWithOr(sysUnexpected))
	case sawEOF:
		lines = append(lines, "unexpected end of input")
	}
	if len(expected) > 0 {
		lines = append(lines, "expecting "+joinWithOr(expected))
	}
	if len(generic) > 0 {
		lines = append(lines, joinWithOr(generic))
	}

	if len(lines) == 0 {
		return e.position.String() + ":\nunknown parse error"
	}
	return e.position.String() + ":\n" + strings.Join(lines, "\n")
}

// joinWithOr renders a,b,c as "a, b or c" (Oxford-less, "or" before the
// last item), as used by every line of Error's output.
func joinWithOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}
