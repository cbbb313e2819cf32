package parser

import (
	"strings"

	pkgcodeblock "github.com/goliatone/go-blockgen/pkg/codeblock"
)

// Parser implements pkgcodeblock.Parser with a line-oriented state machine.
type Parser struct {
	options pkgcodeblock.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgcodeblock.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgcodeblock.ParserOptions) pkgcodeblock.Parser {
	return &Parser{options: options}
}

// Parse walks the codeblock line by line, finalizing a property every time a
// new declaration appears and folding continuation and fenced lines into the
// value of the property being built. Fence delimiter lines are data: they
// are appended to the value like any other line, because within a codeblock
// the fence only marks where property detection is suspended.
func (p *Parser) Parse(text string) ([]pkgcodeblock.Property, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &pkgcodeblock.InputError{}
	}

	matcher := &lineMatcher{}
	current := stateStart

	var properties []pkgcodeblock.Property
	var buffered *pkgcodeblock.Property

	for i, raw := range strings.Split(trimmed, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		match := matcher.match(line)

		next, ok := transitions[current][match.category]
		if !ok {
			if current == stateStart {
				return nil, &pkgcodeblock.SyntaxError{
					Line:    lineNo,
					Message: "codeblock must start with a property declaration",
				}
			}
			return nil, &pkgcodeblock.TransitionError{
				Line:     lineNo,
				State:    current.String(),
				Category: match.category.String(),
			}
		}

		switch next {
		case statePropertyDeclared:
			if buffered != nil {
				properties = append(properties, *buffered)
			}
			buffered = &pkgcodeblock.Property{Key: match.key, Value: match.rest}
		case stateFenceOpen:
			buffered.Value += "\n" + line
			matcher.openFence(match.fence)
		case stateFenceClose:
			buffered.Value += "\n" + line
			matcher.closeFence()
		case statePropertyText, stateFenceText:
			buffered.Value += "\n" + line
		}
		current = next
	}

	if !current.accepting() {
		return nil, &pkgcodeblock.SyntaxError{Message: "unexpected end of input: unclosed code fence"}
	}
	if buffered != nil {
		properties = append(properties, *buffered)
	}

	if !p.options.DeferValidation {
		if err := pkgcodeblock.ValidateKeys(properties); err != nil {
			return nil, err
		}
	}
	return properties, nil
}
