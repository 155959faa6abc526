package path_test

import (
	"testing"

	"github.com/SysMan-One/libconfig/config"
	cpath "github.com/SysMan-One/libconfig/config/path"
	"github.com/SysMan-One/libconfig/config/parser"
)

func buildDoc(t *testing.T) *config.Document {
	t.Helper()
	doc := config.New()
	src := `
server = {
  host = "localhost";
  ports = [ 80, 443, 8080 ];
};
`
	if err := parser.Parse(doc, []byte(src), "t.cfg"); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestResolveDottedAndBracketed(t *testing.T) {
	doc := buildDoc(t)
	s := cpath.Resolve(doc.Root(), "server.ports[1]")
	if s == nil {
		t.Fatal("expected to resolve server.ports[1]")
	}
	v, ok := s.Int()
	if !ok || v != 443 {
		t.Fatalf("value = %d, %v, want 443, true", v, ok)
	}
}

func TestResolveLeadingDotOptional(t *testing.T) {
	doc := buildDoc(t)
	a := cpath.Resolve(doc.Root(), "server.host")
	b := cpath.Resolve(doc.Root(), ".server.host")
	if a == nil || b == nil || a != b {
		t.Fatal("expected .server.host and server.host to resolve identically")
	}
}

func TestResolveMissingPathReturnsNil(t *testing.T) {
	doc := buildDoc(t)
	if cpath.Resolve(doc.Root(), "server.missing") != nil {
		t.Fatal("expected nil for a missing member")
	}
	if cpath.Resolve(doc.Root(), "server.ports[99]") != nil {
		t.Fatal("expected nil for an out-of-range index")
	}
}

func TestLookupStringHelper(t *testing.T) {
	doc := buildDoc(t)
	v, ok := cpath.LookupString(doc.Root(), "server.host")
	if !ok || v != "localhost" {
		t.Fatalf("LookupString = %q, %v, want localhost, true", v, ok)
	}
}

func TestLookupIntAutoConvert(t *testing.T) {
	doc := config.New(config.WithOptions(config.AutoConvert))
	f := doc.Root().Add("ratio", config.KindFloat)
	f.SetFloat(3.9)

	v, ok := cpath.LookupInt(doc.Root(), "ratio")
	if !ok || v != 3 {
		t.Fatalf("LookupInt = %d, %v, want 3, true (truncated)", v, ok)
	}
}
