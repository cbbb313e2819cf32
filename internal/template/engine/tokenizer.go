package engine

import (
	"strings"

	pkgtemplate "github.com/goliatone/go-blockgen/pkg/template"
)

// Tokenizer implements pkgtemplate.Tokenizer with a single combined pattern
// built from the registry's syntaxes.
type Tokenizer struct {
	options pkgtemplate.TokenizerOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgtemplate.Tokenizer = (*Tokenizer)(nil)

// NewTokenizer constructs a Tokenizer; a nil registry falls back to the
// built-in required/optional/fallback syntaxes.
func NewTokenizer(options pkgtemplate.TokenizerOptions) pkgtemplate.Tokenizer {
	if options.Registry == nil {
		options.Registry = pkgtemplate.MustRegistry(pkgtemplate.DefaultSyntaxes()...)
	}
	return &Tokenizer{options: options}
}

// Tokenize scans the trimmed template for placeholder spans, emitting a text
// token for each literal run between them. Spans that resemble a placeholder
// but match none of the registered syntaxes stay literal text: the engine is
// lenient because `{{` has no meaning in the surrounding document.
func (t *Tokenizer) Tokenize(text string) ([]pkgtemplate.Token, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	registry := t.options.Registry
	pattern := registry.Pattern()

	var tokens []pkgtemplate.Token
	declared := make(map[string]pkgtemplate.Token)

	pos := 0
	for pos < len(trimmed) {
		loc := pattern.FindStringIndex(trimmed[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		if start > pos {
			tokens = append(tokens, pkgtemplate.TextToken(trimmed[pos:start]))
		}

		token, ok := registry.Extract(trimmed[start:end])
		if !ok {
			// The combined pattern matched, so one syntax must re-match.
			tokens = append(tokens, pkgtemplate.TextToken(trimmed[start:end]))
			pos = end
			continue
		}

		if previous, exists := declared[token.Name]; exists {
			if previous.ConflictsWith(token) {
				return nil, &pkgtemplate.ConflictError{
					Name:   token.Name,
					First:  previous.Kind,
					Second: token.Kind,
				}
			}
		} else {
			declared[token.Name] = token
		}

		tokens = append(tokens, token)
		pos = end
	}

	if pos < len(trimmed) {
		tokens = append(tokens, pkgtemplate.TextToken(trimmed[pos:]))
	}
	return tokens, nil
}
