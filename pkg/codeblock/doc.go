// Package codeblock defines the public contracts for turning a widget
// codeblock — a small line-oriented block of `key: value` declarations with
// optional embedded code fences — into an ordered list of properties.
//
// The concrete parser lives under internal/codeblock/parser; construct one
// through the root blockgen package to keep the implementation type hidden.
package codeblock
