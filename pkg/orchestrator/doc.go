// Package orchestrator coordinates the full pipeline from codeblock text to
// rendered output: parse the block into properties, resolve the template
// (inline text, named via the content loader, or a manifest widget), render
// selected property values as markdown, tokenize, and compile.
package orchestrator
