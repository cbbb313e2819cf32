package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-blockgen/pkg/codeblock"
)

type scriptedDriver struct {
	answers map[string]string
	err     error
}

func (d *scriptedDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	for name, answer := range d.answers {
		if cfg.Message == `Value for "`+name+`":` {
			return answer, nil
		}
	}
	return "", errors.New("unexpected prompt: " + cfg.Message)
}

func TestFillMissingAppendsAnswers(t *testing.T) {
	t.Parallel()

	driver := &scriptedDriver{answers: map[string]string{
		"content": "World",
		"author":  "nobody",
	}}

	properties := []codeblock.Property{{Key: "title", Value: "Hello"}}
	got, err := FillMissing(context.Background(), driver, properties, []string{"content", "author"})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := []codeblock.Property{
		{Key: "title", Value: "Hello"},
		{Key: "content", Value: "World"},
		{Key: "author", Value: "nobody"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("properties mismatch (-want +got):\n%s", diff)
	}
}

func TestFillMissingDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	driver := &scriptedDriver{answers: map[string]string{"b": "2"}}
	original := []codeblock.Property{{Key: "a", Value: "1"}}

	if _, err := FillMissing(context.Background(), driver, original, []string{"b"}); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if len(original) != 1 {
		t.Fatalf("input slice mutated: %v", original)
	}
}

func TestFillMissingPropagatesDriverErrors(t *testing.T) {
	t.Parallel()

	driver := &scriptedDriver{err: ErrAborted}
	_, err := FillMissing(context.Background(), driver, nil, []string{"x"})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
