package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-blockgen/pkg/codeblock"
	pkgtemplate "github.com/goliatone/go-blockgen/pkg/template"
)

func compileTemplate(t *testing.T, text string, properties []codeblock.Property) (string, error) {
	t.Helper()

	tokens, err := newTokenizer(t).Tokenize(text)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	return NewCompiler().Compile(tokens, properties)
}

func TestCompileSubstitutesEveryPlaceholder(t *testing.T) {
	t.Parallel()

	properties := []codeblock.Property{
		{Key: "title", Value: "Hello"},
		{Key: "content", Value: "World"},
	}

	got, err := compileTemplate(t, "<h1>{{ title }}</h1><p>{{ content | nothing }}</p>", properties)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if want := "<h1>Hello</h1><p>World</p>"; got != want {
		t.Fatalf("compile = %q, want %q", got, want)
	}
}

func TestCompileFallbackUsedWhenPropertyMissing(t *testing.T) {
	t.Parallel()

	properties := []codeblock.Property{{Key: "title", Value: "Hello"}}

	got, err := compileTemplate(t, "<h1>{{ title }}</h1><p>{{ content | nothing }}</p>", properties)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if want := "<h1>Hello</h1><p>nothing</p>"; got != want {
		t.Fatalf("compile = %q, want %q", got, want)
	}
}

func TestCompileOptionalMissingIsEmpty(t *testing.T) {
	t.Parallel()

	got, err := compileTemplate(t, "a{{ gone? }}b", nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if want := "ab"; got != want {
		t.Fatalf("compile = %q, want %q", got, want)
	}
}

func TestCompileRepeatedFallbackKeepsPositionalDefaults(t *testing.T) {
	t.Parallel()

	got, err := compileTemplate(t, "{{ loc | en }}/{{ loc | de }}", nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if want := "en/de"; got != want {
		t.Fatalf("compile = %q, want %q", got, want)
	}

	// With the property present both occurrences resolve to the same value.
	got, err = compileTemplate(t, "{{ loc | en }}/{{ loc | de }}", []codeblock.Property{{Key: "loc", Value: "fr"}})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if want := "fr/fr"; got != want {
		t.Fatalf("compile = %q, want %q", got, want)
	}
}

func TestCompileCollectsEveryMissingRequiredName(t *testing.T) {
	t.Parallel()

	_, err := compileTemplate(t, "{{ a }} {{ b }} {{ a }} {{ c? }}", []codeblock.Property{{Key: "c", Value: "x"}})

	var missing *pkgtemplate.MissingRequiredError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingRequiredError, got %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, missing.Names); diff != "" {
		t.Fatalf("missing names mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileIgnoresExtraProperties(t *testing.T) {
	t.Parallel()

	properties := []codeblock.Property{
		{Key: "used", Value: "yes"},
		{Key: "unused", Value: "never seen"},
	}

	got, err := compileTemplate(t, "[{{ used }}]", properties)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if want := "[yes]"; got != want {
		t.Fatalf("compile = %q, want %q", got, want)
	}
}

func TestCompileNoResidualBraces(t *testing.T) {
	t.Parallel()

	properties := []codeblock.Property{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
		{Key: "c", Value: "3"},
	}

	got, err := compileTemplate(t, "{{ a }}-{{ b? }}-{{ c | x }}", properties)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if want := "1-2-3"; got != want {
		t.Fatalf("compile = %q, want %q", got, want)
	}
}

func TestCompileDoesNotReExpandEmittedText(t *testing.T) {
	t.Parallel()

	properties := []codeblock.Property{
		{Key: "outer", Value: "{{ inner }}"},
		{Key: "inner", Value: "should never appear"},
	}

	got, err := compileTemplate(t, "<p>{{ outer }}</p>", properties)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if want := "<p>{{ inner }}</p>"; got != want {
		t.Fatalf("compile = %q, want %q", got, want)
	}
}

func TestCompilePlainTokens(t *testing.T) {
	t.Parallel()

	tokens := []pkgtemplate.Token{
		pkgtemplate.TextToken("x="),
		pkgtemplate.RequiredToken("x"),
	}
	got, err := NewCompiler().Compile(tokens, []codeblock.Property{{Key: "x", Value: "42"}})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if want := "x=42"; got != want {
		t.Fatalf("compile = %q, want %q", got, want)
	}
}
