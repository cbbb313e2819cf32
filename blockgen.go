// Package blockgen turns widget codeblocks — line-oriented `key: value`
// declarations with optional embedded code fences — into markup by filling
// HTML templates whose `{{ name }}`, `{{ name? }}`, and
// `{{ name | default }}` placeholders resolve against the parsed properties.
package blockgen

import (
	internalParser "github.com/goliatone/go-blockgen/internal/codeblock/parser"
	internalLoader "github.com/goliatone/go-blockgen/internal/content/loader"
	"github.com/goliatone/go-blockgen/internal/template/engine"
	"github.com/goliatone/go-blockgen/pkg/codeblock"
	pkgcontent "github.com/goliatone/go-blockgen/pkg/content"
	pkgtemplate "github.com/goliatone/go-blockgen/pkg/template"
)

// NewParser constructs a codeblock parser using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewParser(options ...codeblock.ParserOption) codeblock.Parser {
	cfg := codeblock.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// NewTokenizer constructs a template tokenizer backed by the internal
// implementation.
func NewTokenizer(options ...pkgtemplate.TokenizerOption) pkgtemplate.Tokenizer {
	cfg := pkgtemplate.NewTokenizerOptions(options...)
	return engine.NewTokenizer(cfg)
}

// NewCompiler constructs a template compiler.
func NewCompiler() pkgtemplate.Compiler {
	return engine.NewCompiler()
}

// NewContentLoader constructs a filesystem-backed template loader.
func NewContentLoader(options ...pkgcontent.LoaderOption) pkgcontent.Loader {
	cfg := pkgcontent.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
