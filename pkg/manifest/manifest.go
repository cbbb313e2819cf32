// Package manifest maps widget names to the template and rendering
// configuration the orchestrator uses when a request addresses a widget
// instead of a template directly. Manifests are small YAML or JSON files
// discovered by walking an fs.FS.
package manifest

// Widget describes one widget entry.
type Widget struct {
	// Template names the template file the widget renders with, resolved
	// through the content loader.
	Template string `yaml:"template" json:"template"`

	// Markdown lists the property keys whose values are passed through the
	// markdown renderer before compilation.
	Markdown []string `yaml:"markdown" json:"markdown"`
}

// Store holds the widgets collected from every manifest file.
type Store struct {
	widgets map[string]Widget
}

// Widget returns the configuration for the supplied widget name.
func (s *Store) Widget(name string) (Widget, bool) {
	if s == nil {
		return Widget{}, false
	}
	widget, ok := s.widgets[name]
	return widget, ok
}

// Len reports how many widgets the store holds.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.widgets)
}
