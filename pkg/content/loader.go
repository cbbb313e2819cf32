// Package content defines the template-text loader contract: given a
// template name, return its raw text. The default implementation reads from
// an fs.FS; hosts with their own storage supply a custom Loader.
package content

import (
	"context"
	"fmt"
	"io/fs"
)

// Loader fetches template text by name. Implementations live under
// internal/content but satisfy this contract.
type Loader interface {
	Load(ctx context.Context, name string) (string, error)
}

// NotFoundError reports a template name with no backing content.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("content: template %q not found", e.Name)
}

// LoaderOptions configures the filesystem loader.
type LoaderOptions struct {
	// FileSystem supplies template files. Required for the built-in loader;
	// there is no operating-system default so hosts stay in control of what
	// is reachable.
	FileSystem fs.FS

	// Extension is appended to names that carry no extension. Defaults to
	// ".html".
	Extension string
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects the fs.FS templates are read from.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithExtension overrides the extension appended to bare template names.
func WithExtension(ext string) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Extension = ext
	}
}

// NewLoaderOptions applies LoaderOption functions and returns the resulting
// configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{Extension: ".html"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
