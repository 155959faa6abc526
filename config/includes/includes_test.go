package includes_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SysMan-One/libconfig/config"
	"github.com/SysMan-One/libconfig/config/includes"
)

func TestGlobMatchesSortedFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.cfg", "a.cfg", "c.cfg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x = 1;\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	doc := config.New()
	matches, err := includes.Glob(doc, dir, "*.cfg")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("matches = %v, want 3 entries", matches)
	}
	want := []string{
		filepath.Join(dir, "a.cfg"),
		filepath.Join(dir, "b.cfg"),
		filepath.Join(dir, "c.cfg"),
	}
	for i, w := range want {
		if matches[i] != w {
			t.Fatalf("matches[%d] = %q, want %q", i, matches[i], w)
		}
	}
}

func TestGlobNoMatchIsError(t *testing.T) {
	dir := t.TempDir()
	doc := config.New()
	if _, err := includes.Glob(doc, dir, "*.missing"); err == nil {
		t.Fatal("expected an error when a glob pattern matches nothing")
	}
}

func TestDefaultJoinsRelativePath(t *testing.T) {
	doc := config.New()
	matches, err := includes.Default(doc, "/etc/app", "extra.cfg")
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if len(matches) != 1 || matches[0] != "/etc/app/extra.cfg" {
		t.Fatalf("matches = %v, want [/etc/app/extra.cfg]", matches)
	}
}
