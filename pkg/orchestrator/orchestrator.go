package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	internalParser "github.com/goliatone/go-blockgen/internal/codeblock/parser"
	internalLoader "github.com/goliatone/go-blockgen/internal/content/loader"
	"github.com/goliatone/go-blockgen/internal/template/engine"
	"github.com/goliatone/go-blockgen/pkg/codeblock"
	pkgcontent "github.com/goliatone/go-blockgen/pkg/content"
	"github.com/goliatone/go-blockgen/pkg/manifest"
	"github.com/goliatone/go-blockgen/pkg/markdown"
	pkgtemplate "github.com/goliatone/go-blockgen/pkg/template"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithParser injects a custom codeblock parser.
func WithParser(parser codeblock.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithTokenizer injects a custom template tokenizer.
func WithTokenizer(tokenizer pkgtemplate.Tokenizer) Option {
	return func(o *Orchestrator) {
		o.tokenizer = tokenizer
	}
}

// WithCompiler injects a custom template compiler.
func WithCompiler(compiler pkgtemplate.Compiler) Option {
	return func(o *Orchestrator) {
		o.compiler = compiler
	}
}

// WithContentLoader injects the loader used to resolve named templates.
func WithContentLoader(loader pkgcontent.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithTemplateFS is shorthand for a filesystem-backed content loader.
func WithTemplateFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.loader = internalLoader.New(pkgcontent.NewLoaderOptions(pkgcontent.WithFileSystem(fsys)))
	}
}

// WithMarkdownRenderer injects the renderer applied to markdown-flagged
// property values. Nil disables markdown rendering.
func WithMarkdownRenderer(renderer markdown.Renderer) Option {
	return func(o *Orchestrator) {
		o.renderer = renderer
	}
}

// WithManifest injects a pre-loaded widget manifest store.
func WithManifest(store *manifest.Store) Option {
	return func(o *Orchestrator) {
		o.manifest = store
	}
}

// WithManifestFS supplies an fs.FS holding widget manifest documents, parsed
// during construction.
func WithManifestFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.manifestFS = fsys
	}
}

// Orchestrator coordinates the pipeline from codeblock text to rendered
// output. It applies sensible defaults (built-in parser, tokenizer, and
// compiler) while remaining open to dependency injection.
type Orchestrator struct {
	parser        codeblock.Parser
	tokenizer     pkgtemplate.Tokenizer
	compiler      pkgtemplate.Compiler
	loader        pkgcontent.Loader
	renderer      markdown.Renderer
	manifest      *manifest.Store
	manifestFS    fs.FS
	initialiseErr error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.parser == nil {
		o.parser = internalParser.New(codeblock.NewParserOptions())
	}
	if o.tokenizer == nil {
		o.tokenizer = engine.NewTokenizer(pkgtemplate.NewTokenizerOptions())
	}
	if o.compiler == nil {
		o.compiler = engine.NewCompiler()
	}
	if o.manifest == nil && o.manifestFS != nil {
		store, err := manifest.LoadFS(o.manifestFS)
		if err != nil {
			o.initialiseErr = err
			return
		}
		o.manifest = store
	}
}

// Request describes the inputs required to render a widget from a codeblock.
type Request struct {
	// Block is the raw codeblock text.
	Block string

	// Template supplies the template text inline. When set it wins over
	// TemplateName and Widget.
	Template string

	// TemplateName resolves template text through the content loader.
	TemplateName string

	// Widget resolves the template and markdown configuration through the
	// manifest store.
	Widget string

	// MarkdownKeys names property keys whose values are rendered as
	// markdown before compilation, in addition to any keys the widget's
	// manifest entry lists.
	MarkdownKeys []string
}

// Generate runs the pipeline and returns the final markup.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if o.initialiseErr != nil {
		return nil, fmt.Errorf("orchestrator: initialise: %w", o.initialiseErr)
	}
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}

	properties, err := o.parser.Parse(req.Block)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse codeblock: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	templateText, markdownKeys, err := o.resolveTemplate(ctx, req)
	if err != nil {
		return nil, err
	}

	properties = o.renderValues(properties, markdownKeys)

	tokens, err := o.tokenizer.Tokenize(templateText)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: tokenize template: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	output, err := o.compiler.Compile(tokens, properties)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: compile: %w", err)
	}
	return []byte(output), nil
}

func (o *Orchestrator) resolveTemplate(ctx context.Context, req Request) (string, []string, error) {
	markdownKeys := append([]string(nil), req.MarkdownKeys...)

	if req.Template != "" {
		return req.Template, markdownKeys, nil
	}

	name := strings.TrimSpace(req.TemplateName)
	if widgetName := strings.TrimSpace(req.Widget); widgetName != "" {
		widget, ok := o.manifest.Widget(widgetName)
		if !ok {
			return "", nil, fmt.Errorf("orchestrator: widget %q not in manifest", widgetName)
		}
		name = widget.Template
		markdownKeys = append(markdownKeys, widget.Markdown...)
	}

	if name == "" {
		return "", nil, errors.New("orchestrator: request needs Template, TemplateName, or Widget")
	}
	if o.loader == nil {
		return "", nil, errors.New("orchestrator: no content loader configured for named templates")
	}

	text, err := o.loader.Load(ctx, name)
	if err != nil {
		return "", nil, fmt.Errorf("orchestrator: load template %q: %w", name, err)
	}
	return text, markdownKeys, nil
}

// renderValues passes the values of the listed keys through the markdown
// renderer, leaving everything else untouched. Property order is preserved.
func (o *Orchestrator) renderValues(properties []codeblock.Property, keys []string) []codeblock.Property {
	if o.renderer == nil || len(keys) == 0 {
		return properties
	}

	wanted := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		wanted[strings.TrimSpace(key)] = struct{}{}
	}

	out := make([]codeblock.Property, len(properties))
	for i, property := range properties {
		if _, ok := wanted[property.Key]; ok {
			property.Value = o.renderer.Render(property.Value)
		}
		out[i] = property
	}
	return out
}
