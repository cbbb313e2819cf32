package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type document struct {
	Widgets map[string]Widget `yaml:"widgets" json:"widgets"`
}

// LoadFS walks the provided filesystem and parses JSON/YAML manifest files.
// When fsys is nil or no manifest files are present, the returned store is
// empty. A widget name defined by two files is a configuration error.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{widgets: make(map[string]Widget)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isManifestFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("manifest: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, widget := range doc.Widgets {
			id := strings.TrimSpace(name)
			if id == "" {
				return fmt.Errorf("manifest: file %s defines an empty widget name", path)
			}
			if _, exists := store.widgets[id]; exists {
				return fmt.Errorf("manifest: duplicate widget %q (file %s)", id, path)
			}
			if strings.TrimSpace(widget.Template) == "" {
				return fmt.Errorf("manifest: widget %q (file %s) has no template", id, path)
			}
			store.widgets[id] = widget
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func parseDocument(data []byte, path string) (document, error) {
	var doc document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("manifest: parse %s: %w", path, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	return doc, nil
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
