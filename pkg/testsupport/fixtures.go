package testsupport

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-blockgen/pkg/codeblock"
	pkgtemplate "github.com/goliatone/go-blockgen/pkg/template"
)

// LoadFixture reads a test fixture and fails the test on error.
func LoadFixture(t *testing.T, path string) string {
	t.Helper()

	data, err := LoadFixtureFromPath(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return data
}

// LoadFixtureFromPath returns fixture content without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadFixtureFromPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("testsupport: fixture path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("testsupport: read fixture: %w", err)
	}
	return string(data), nil
}

// DiffProperties fails the test with a structural diff when the parsed
// property lists differ.
func DiffProperties(t *testing.T, want, got []codeblock.Property) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("properties mismatch (-want +got):\n%s", diff)
	}
}

// DiffTokens fails the test with a structural diff when the token sequences
// differ.
func DiffTokens(t *testing.T, want, got []pkgtemplate.Token) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}
