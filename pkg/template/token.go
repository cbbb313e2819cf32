package template

import "strings"

// TokenKind tags the variants of Token. Placeholder kinds double as the
// resolution policy the compiler applies when no property matches.
type TokenKind int

const (
	// KindText is a literal template segment emitted verbatim.
	KindText TokenKind = iota
	// KindRequired fails compilation when unresolved.
	KindRequired
	// KindOptional resolves to the empty string when unresolved.
	KindOptional
	// KindFallback resolves to its own Default when unresolved.
	KindFallback
)

func (k TokenKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindRequired:
		return "required"
	case KindOptional:
		return "optional"
	case KindFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Token is one unit of a tokenized template: either literal text or a typed
// placeholder. Tokens are immutable once produced.
type Token struct {
	Kind TokenKind

	// Content holds the literal segment for KindText tokens.
	Content string

	// Name is the trimmed placeholder identifier for the placeholder kinds.
	Name string

	// Default is the trimmed fallback literal, set only for KindFallback.
	// Each occurrence keeps its own default: the same name may repeat with a
	// different default at a different position.
	Default string
}

// Placeholder reports whether the token resolves against the property set.
func (t Token) Placeholder() bool {
	return t.Kind != KindText
}

// ConflictsWith reports whether two placeholder tokens for the same name use
// incompatible forms. Mixing forms (say `{{ x }}` and `{{ x? }}`) is a
// template authoring error; repeated fallbacks are fine since defaults are
// position-local.
func (t Token) ConflictsWith(other Token) bool {
	if !t.Placeholder() || !other.Placeholder() {
		return false
	}
	if t.Name != other.Name {
		return false
	}
	return t.Kind != other.Kind
}

// TextToken builds a literal segment token.
func TextToken(content string) Token {
	return Token{Kind: KindText, Content: content}
}

// RequiredToken builds a required placeholder token.
func RequiredToken(name string) Token {
	return Token{Kind: KindRequired, Name: strings.TrimSpace(name)}
}

// OptionalToken builds an optional placeholder token.
func OptionalToken(name string) Token {
	return Token{Kind: KindOptional, Name: strings.TrimSpace(name)}
}

// FallbackToken builds a fallback placeholder token with its literal default.
func FallbackToken(name, fallback string) Token {
	return Token{Kind: KindFallback, Name: strings.TrimSpace(name), Default: strings.TrimSpace(fallback)}
}
