// Package markdown provides the value-rendering collaborator: a function
// from a raw property value to display markup. The orchestrator applies it
// to selected property values before compilation.
package markdown

// Renderer turns a raw text value into rendered markup.
type Renderer interface {
	Render(value string) string
}

// Func adapts a plain function to the Renderer interface.
type Func func(value string) string

// Render calls the wrapped function.
func (f Func) Render(value string) string {
	return f(value)
}
