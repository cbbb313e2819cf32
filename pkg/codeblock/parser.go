package codeblock

// Parser consumes the full text of a codeblock and produces the declared
// properties in source order. Implementations live under internal/codeblock
// but satisfy this contract.
type Parser interface {
	Parse(text string) ([]Property, error)
}

// ParserOptions collects parser toggles.
type ParserOptions struct {
	// DeferValidation skips the duplicate-key scan that normally runs as the
	// final parse step. Callers that opt in receive the raw property list and
	// must call ValidateKeys themselves before trusting key uniqueness.
	DeferValidation bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithDeferredValidation disables the mandatory duplicate-key scan.
func WithDeferredValidation(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.DeferValidation = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration. Implementations under internal/codeblock call this helper
// to remain consistent.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// ValidateKeys scans a finalized property list for duplicate keys. Every
// duplicated key is reported, in first-seen order, through a single
// DuplicateKeyError.
func ValidateKeys(properties []Property) error {
	seen := make(map[string]int, len(properties))
	var duplicates []string
	for _, property := range properties {
		seen[property.Key]++
		if seen[property.Key] == 2 {
			duplicates = append(duplicates, property.Key)
		}
	}
	if len(duplicates) > 0 {
		return &DuplicateKeyError{Keys: duplicates}
	}
	return nil
}
