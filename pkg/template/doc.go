// Package template defines the token model, placeholder syntax registry,
// and the tokenizer/compiler contracts for filling HTML templates with
// codeblock properties.
//
// Three placeholder forms are built in: `{{ name }}` (required),
// `{{ name? }}` (optional, resolves to the empty string when absent), and
// `{{ name | default }}` (resolves to the trimmed default when absent).
// Concrete implementations live under internal/template/engine; construct
// them through the root blockgen package.
package template
