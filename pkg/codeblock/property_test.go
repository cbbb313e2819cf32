package codeblock

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookupFirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	properties := []Property{
		{Key: "a", Value: "first"},
		{Key: "b", Value: "only"},
		{Key: "a", Value: "second"},
	}

	got := Lookup(properties)
	want := map[string]string{"a": "first", "b": "only"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lookup mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	properties := []Property{
		{Key: "title", Value: "Hello"},
		{Key: "body", Value: "line one\nline two"},
		{Key: "empty", Value: ""},
	}

	want := "title: Hello\nbody: line one\nline two\nempty: "
	if got := Format(properties); got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestValidateKeys(t *testing.T) {
	t.Parallel()

	unique := []Property{{Key: "a"}, {Key: "b"}}
	if err := ValidateKeys(unique); err != nil {
		t.Fatalf("unique keys: %v", err)
	}

	duplicated := []Property{{Key: "a"}, {Key: "b"}, {Key: "a"}, {Key: "b"}, {Key: "a"}}
	err := ValidateKeys(duplicated)

	var dupErr *DuplicateKeyError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateKeyError, got %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, dupErr.Keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}
