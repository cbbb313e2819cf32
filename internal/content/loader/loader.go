package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	pkgcontent "github.com/goliatone/go-blockgen/pkg/content"
)

// Loader implements pkgcontent.Loader on top of an fs.FS.
type Loader struct {
	options pkgcontent.LoaderOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgcontent.Loader = (*Loader)(nil)

// New constructs a Loader with the given options.
func New(options pkgcontent.LoaderOptions) pkgcontent.Loader {
	return &Loader{options: options}
}

// Load reads the named template from the configured filesystem, appending
// the default extension to bare names. A missing file maps to
// content.NotFoundError so callers can branch on it.
func (l *Loader) Load(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if l.options.FileSystem == nil {
		return "", errors.New("content: loader has no filesystem configured")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", errors.New("content: template name is required")
	}
	if path.Ext(trimmed) == "" && l.options.Extension != "" {
		trimmed += l.options.Extension
	}

	data, err := fs.ReadFile(l.options.FileSystem, trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &pkgcontent.NotFoundError{Name: name}
		}
		return "", fmt.Errorf("content: read %s: %w", trimmed, err)
	}
	return string(data), nil
}
