package codeblock

import (
	"fmt"
	"strings"
)

// InputError reports a codeblock that is empty or whitespace-only. It is
// raised before any parsing takes place.
type InputError struct{}

func (e *InputError) Error() string {
	return "codeblock: input is empty or whitespace-only"
}

// SyntaxError reports malformed codeblock input: text before the first
// property declaration, or an unclosed fence at end of input. Line is
// 1-based; it is zero when the error concerns end of input.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("codeblock: line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("codeblock: %s", e.Message)
}

// DuplicateKeyError reports every property key declared more than once, in
// first-seen order.
type DuplicateKeyError struct {
	Keys []string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("codeblock: duplicate property keys: %s", strings.Join(e.Keys, ", "))
}

// TransitionError reports a line category with no transition from the
// current parser state. The text fallback makes this unreachable for user
// input; seeing one indicates a parser bug rather than a syntax error, which
// is why it is distinct from SyntaxError.
type TransitionError struct {
	Line     int
	State    string
	Category string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("codeblock: line %d: no transition from state %s on %s", e.Line, e.State, e.Category)
}
