package template

// Tokenizer splits a template string into an ordered token sequence: literal
// text interleaved with typed placeholders, in source appearance order.
// Implementations live under internal/template but satisfy this contract.
type Tokenizer interface {
	Tokenize(text string) ([]Token, error)
}

// TokenizerOptions configures tokenization.
type TokenizerOptions struct {
	// Registry supplies the placeholder syntaxes. Nil means the built-in
	// required/optional/fallback set.
	Registry *Registry
}

// TokenizerOption mutates TokenizerOptions during construction.
type TokenizerOption func(*TokenizerOptions)

// WithRegistry injects a custom syntax registry.
func WithRegistry(registry *Registry) TokenizerOption {
	return func(opts *TokenizerOptions) {
		opts.Registry = registry
	}
}

// NewTokenizerOptions applies TokenizerOption functions and returns the
// resulting configuration.
func NewTokenizerOptions(options ...TokenizerOption) TokenizerOptions {
	cfg := TokenizerOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
