package markdown

import (
	"strings"

	"gitlab.com/golang-commonmark/markdown"
)

var commonmark = markdown.New(markdown.HTML(true), markdown.Linkify(true), markdown.Typographer(true), markdown.MaxNesting(10))

// CommonMark renders property values as CommonMark Markdown.
type CommonMark struct{}

// Ensure the implementation satisfies the interface.
var _ Renderer = CommonMark{}

// NewCommonMark returns the default Markdown renderer.
func NewCommonMark() Renderer {
	return CommonMark{}
}

// Render converts the value to HTML. The trailing newline the renderer adds
// after block elements is dropped so values substitute cleanly into inline
// template positions.
func (CommonMark) Render(value string) string {
	return strings.TrimSuffix(commonmark.RenderToString([]byte(value)), "\n")
}
