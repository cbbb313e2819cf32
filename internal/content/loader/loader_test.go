package loader

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	pkgcontent "github.com/goliatone/go-blockgen/pkg/content"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"quote-card.html":   {Data: []byte("<blockquote>{{ quote }}</blockquote>")},
		"partials/nav.tmpl": {Data: []byte("<nav></nav>")},
	}
}

func TestLoadByBareName(t *testing.T) {
	t.Parallel()

	ldr := New(pkgcontent.NewLoaderOptions(pkgcontent.WithFileSystem(testFS())))
	got, err := ldr.Load(context.Background(), "quote-card")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if want := "<blockquote>{{ quote }}</blockquote>"; got != want {
		t.Fatalf("load = %q, want %q", got, want)
	}
}

func TestLoadExplicitExtensionSkipsDefault(t *testing.T) {
	t.Parallel()

	ldr := New(pkgcontent.NewLoaderOptions(pkgcontent.WithFileSystem(testFS())))
	got, err := ldr.Load(context.Background(), "partials/nav.tmpl")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if want := "<nav></nav>"; got != want {
		t.Fatalf("load = %q, want %q", got, want)
	}
}

func TestLoadMissingTemplate(t *testing.T) {
	t.Parallel()

	ldr := New(pkgcontent.NewLoaderOptions(pkgcontent.WithFileSystem(testFS())))
	_, err := ldr.Load(context.Background(), "nope")

	var notFound *pkgcontent.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Name != "nope" {
		t.Fatalf("name = %q, want %q", notFound.Name, "nope")
	}
}

func TestLoadRequiresFilesystemAndName(t *testing.T) {
	t.Parallel()

	ldr := New(pkgcontent.NewLoaderOptions())
	if _, err := ldr.Load(context.Background(), "anything"); err == nil {
		t.Fatalf("expected error without a filesystem")
	}

	ldr = New(pkgcontent.NewLoaderOptions(pkgcontent.WithFileSystem(testFS())))
	if _, err := ldr.Load(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for a blank name")
	}
}

func TestLoadHonoursContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ldr := New(pkgcontent.NewLoaderOptions(pkgcontent.WithFileSystem(testFS())))
	if _, err := ldr.Load(ctx, "quote-card"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
