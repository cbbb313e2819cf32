package template

import "github.com/goliatone/go-blockgen/pkg/codeblock"

// Compiler resolves every token against a property set and concatenates the
// results. Emitted text is never re-scanned for placeholders, and properties
// without a matching placeholder are silently ignored.
type Compiler interface {
	Compile(tokens []Token, properties []codeblock.Property) (string, error)
}
