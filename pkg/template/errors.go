package template

import (
	"fmt"
	"strings"
)

// ConflictError reports a placeholder name reused with incompatible forms
// inside one template, e.g. `{{ title }}` alongside `{{ title? }}`.
type ConflictError struct {
	Name   string
	First  TokenKind
	Second TokenKind
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("template: placeholder %q declared as both %s and %s", e.Name, e.First, e.Second)
}

// MissingRequiredError names every required placeholder left unresolved by
// the property set, in document order.
type MissingRequiredError struct {
	Names []string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("template: missing required placeholders: %s", strings.Join(e.Names, ", "))
}
