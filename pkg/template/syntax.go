package template

import (
	"fmt"
	"regexp"
	"strings"
)

// Syntax couples a placeholder kind with the expression that recognizes it.
// Expr must capture the placeholder name in group 1; KindFallback
// expressions additionally capture the raw default in group 2.
type Syntax struct {
	Kind TokenKind
	Expr string
}

// DefaultSyntaxes returns the built-in placeholder forms in priority order:
// required first, optional second, fallback third. Earlier entries win when
// two forms could match the same span.
func DefaultSyntaxes() []Syntax {
	return []Syntax{
		{Kind: KindRequired, Expr: `\{\{\s*([A-Za-z-]+)\s*\}\}`},
		{Kind: KindOptional, Expr: `\{\{\s*([A-Za-z-]+)\s*\?\s*\}\}`},
		{Kind: KindFallback, Expr: `\{\{\s*([A-Za-z-]+)\s*\|([^}]*)\}\}`},
	}
}

// Registry is an immutable ordered set of placeholder syntaxes plus the
// combined scan pattern compiled from them. Conflicts are rejected once, at
// construction, so tokenization never revalidates the syntax set.
type Registry struct {
	syntaxes []Syntax
	compiled []*regexp.Regexp
	combined *regexp.Regexp
}

// NewRegistry validates and compiles an ordered syntax list. Every entry
// must carry a placeholder kind, a compilable expression, and a kind not
// already registered.
func NewRegistry(syntaxes ...Syntax) (*Registry, error) {
	if len(syntaxes) == 0 {
		return nil, fmt.Errorf("template: registry requires at least one syntax")
	}

	registry := &Registry{
		syntaxes: make([]Syntax, 0, len(syntaxes)),
		compiled: make([]*regexp.Regexp, 0, len(syntaxes)),
	}
	seen := make(map[TokenKind]struct{}, len(syntaxes))
	alternatives := make([]string, 0, len(syntaxes))

	for _, syntax := range syntaxes {
		if syntax.Kind == KindText {
			return nil, fmt.Errorf("template: syntax kind %q is not a placeholder", syntax.Kind)
		}
		if _, exists := seen[syntax.Kind]; exists {
			return nil, fmt.Errorf("template: syntax kind %q registered twice", syntax.Kind)
		}
		anchored, err := regexp.Compile(`\A(?:` + syntax.Expr + `)\z`)
		if err != nil {
			return nil, fmt.Errorf("template: compile %q syntax: %w", syntax.Kind, err)
		}

		seen[syntax.Kind] = struct{}{}
		registry.syntaxes = append(registry.syntaxes, syntax)
		registry.compiled = append(registry.compiled, anchored)
		alternatives = append(alternatives, "(?:"+syntax.Expr+")")
	}

	combined, err := regexp.Compile(strings.Join(alternatives, "|"))
	if err != nil {
		return nil, fmt.Errorf("template: compile combined pattern: %w", err)
	}
	registry.combined = combined
	return registry, nil
}

// MustRegistry panics on registry construction failure. Useful for wiring
// the defaults at package init.
func MustRegistry(syntaxes ...Syntax) *Registry {
	registry, err := NewRegistry(syntaxes...)
	if err != nil {
		panic(err)
	}
	return registry
}

// Pattern exposes the combined scan expression. Alternation order follows
// registration order, so the scanner inherits the registry's priorities.
func (r *Registry) Pattern() *regexp.Regexp {
	return r.combined
}

// Extract converts a span matched by Pattern into a placeholder token by
// retrying each syntax in priority order against the full span.
func (r *Registry) Extract(span string) (Token, bool) {
	for i, pattern := range r.compiled {
		groups := pattern.FindStringSubmatch(span)
		if groups == nil {
			continue
		}
		switch r.syntaxes[i].Kind {
		case KindRequired:
			return RequiredToken(groups[1]), true
		case KindOptional:
			return OptionalToken(groups[1]), true
		case KindFallback:
			return FallbackToken(groups[1], groups[2]), true
		}
	}
	return Token{}, false
}
