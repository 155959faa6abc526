package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInternSharesBackingString(t *testing.T) {
	doc := New()
	a := doc.Intern("foo.cfg")
	b := doc.Intern("foo.cfg")
	if a != b {
		t.Fatalf("Intern returned different strings for the same file")
	}
}

func TestClearResetsTreeButKeepsOptions(t *testing.T) {
	doc := New(WithOptions(AutoConvert))
	doc.Root().Add("x", KindInt)

	doc.Clear()

	if doc.Root().Length() != 0 {
		t.Fatal("expected empty root after Clear")
	}
	if !doc.Options().Has(AutoConvert) {
		t.Fatal("Clear should not reset options")
	}
}

func TestReadFileSeedsIncludeDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cfg")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	doc := New()
	err := doc.ReadFile(path, func(d *Document, data []byte, file string) error {
		d.Root().Add("x", KindInt)
		return nil
	})
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if doc.IncludeDir() != dir {
		t.Fatalf("IncludeDir() = %q, want %q", doc.IncludeDir(), dir)
	}
}

func TestReadFileMissingSetsLastError(t *testing.T) {
	doc := New()
	err := doc.ReadFile("/nonexistent/path.cfg", func(d *Document, data []byte, file string) error {
		return nil
	})
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if doc.LastErrorKind() != ErrFileIO {
		t.Fatalf("LastErrorKind() = %v, want ErrFileIO", doc.LastErrorKind())
	}
}

func TestWriteFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.cfg")

	doc := New()
	err := doc.WriteFile(path, func(d *Document) ([]byte, error) {
		return []byte("hello"), nil
	})
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Fatalf("file contents = %q, want %q", data, "hello")
	}
}
