package engine

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-blockgen/pkg/codeblock"
	pkgtemplate "github.com/goliatone/go-blockgen/pkg/template"
)

// Compiler implements pkgtemplate.Compiler.
type Compiler struct{}

// Ensure the implementation satisfies the public interface.
var _ pkgtemplate.Compiler = (*Compiler)(nil)

// NewCompiler constructs a Compiler.
func NewCompiler() pkgtemplate.Compiler {
	return &Compiler{}
}

// Compile resolves tokens in order against the property set. Every
// occurrence of a placeholder resolves independently, so a repeated fallback
// name keeps the default written at that position. All unresolved required
// names are collected and reported together, in document order.
func (c *Compiler) Compile(tokens []pkgtemplate.Token, properties []codeblock.Property) (string, error) {
	values := codeblock.Lookup(properties)

	var out strings.Builder
	var missing []string
	reported := make(map[string]struct{})

	for _, token := range tokens {
		switch token.Kind {
		case pkgtemplate.KindText:
			out.WriteString(token.Content)
		case pkgtemplate.KindRequired:
			value, ok := values[token.Name]
			if !ok {
				if _, done := reported[token.Name]; !done {
					reported[token.Name] = struct{}{}
					missing = append(missing, token.Name)
				}
				continue
			}
			out.WriteString(value)
		case pkgtemplate.KindOptional:
			out.WriteString(values[token.Name])
		case pkgtemplate.KindFallback:
			value, ok := values[token.Name]
			if !ok {
				value = token.Default
			}
			out.WriteString(value)
		default:
			return "", fmt.Errorf("template: unknown token kind %d", token.Kind)
		}
	}

	if len(missing) > 0 {
		return "", &pkgtemplate.MissingRequiredError{Names: missing}
	}
	return out.String(), nil
}
