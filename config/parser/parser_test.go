package parser

import (
	"os"
	"strings"
	"testing"

	"github.com/SysMan-One/libconfig/config"
)

func parseString(t *testing.T, src string, opts ...config.DocOption) *config.Document {
	t.Helper()
	doc := config.New(opts...)
	if err := Parse(doc, []byte(src), "test.cfg"); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestParseBasicScalars(t *testing.T) {
	doc := parseString(t, `
name = "app";
count = 3;
ratio = 1.5;
enabled = true;
big = 9223372036854775807L;
`)
	root := doc.Root()

	if v, ok := root.GetMember("name").String(); !ok || v != "app" {
		t.Fatalf("name = %q, %v", v, ok)
	}
	if v, ok := root.GetMember("count").Int(); !ok || v != 3 {
		t.Fatalf("count = %d, %v", v, ok)
	}
	if v, ok := root.GetMember("ratio").Float(); !ok || v != 1.5 {
		t.Fatalf("ratio = %v, %v", v, ok)
	}
	if v, ok := root.GetMember("enabled").Bool(); !ok || !v {
		t.Fatalf("enabled = %v, %v", v, ok)
	}
	if v, ok := root.GetMember("big").Int64(); !ok || v != 9223372036854775807 {
		t.Fatalf("big = %d, %v", v, ok)
	}
}

func TestParseHexRoundTripsFormat(t *testing.T) {
	doc := parseString(t, "n = 0x1A;\n")
	s := doc.Root().GetMember("n")
	if s.Format() != config.FormatHex {
		t.Fatalf("Format() = %v, want FormatHex", s.Format())
	}
	v, _ := s.Int()
	if v != 26 {
		t.Fatalf("value = %d, want 26", v)
	}
}

func TestParseArrayHomogeneityError(t *testing.T) {
	doc := config.New()
	err := Parse(doc, []byte(`a = [1, "two"];`), "t")
	if err == nil {
		t.Fatal("expected an error for a heterogeneous array")
	}
}

func TestParseListAllowsMixedKinds(t *testing.T) {
	doc := parseString(t, `l = (1, "two", true);`)
	l := doc.Root().GetMember("l")
	if l.Length() != 3 {
		t.Fatalf("Length() = %d, want 3", l.Length())
	}
}

func TestParseNestedGroup(t *testing.T) {
	doc := parseString(t, `
server = {
  host = "localhost";
  port = 8080;
};
`)
	server := doc.Root().GetMember("server")
	if server == nil || server.Kind() != config.KindGroup {
		t.Fatal("expected server to be a group")
	}
	if v, _ := server.GetMember("port").Int(); v != 8080 {
		t.Fatalf("port = %d, want 8080", v)
	}
}

func TestParseDuplicateNameIsError(t *testing.T) {
	doc := config.New()
	err := Parse(doc, []byte("a = 1;\na = 2;\n"), "t")
	if err == nil {
		t.Fatal("expected a duplicate-name error")
	}
}

func TestParseAllowOverridesReplacesEarlier(t *testing.T) {
	doc := parseString(t, "a = 1;\na = 2;\n", config.WithOptions(config.AllowOverrides))
	if v, _ := doc.Root().GetMember("a").Int(); v != 2 {
		t.Fatalf("a = %d, want 2 (last write wins)", v)
	}
}

func TestParseMissingSeparatorIsError(t *testing.T) {
	doc := config.New()
	err := Parse(doc, []byte("a = 1 b = 2"), "t")
	if err == nil {
		t.Fatal("expected a missing-separator error")
	}
}

func TestParseNewlineSatisfiesSeparator(t *testing.T) {
	doc := parseString(t, "a = 1\nb = 2\n")
	if root := doc.Root(); root.Length() != 2 {
		t.Fatalf("Length() = %d, want 2", root.Length())
	}
}

func TestParseSemicolonSeparatorsRequiresSemicolon(t *testing.T) {
	doc := config.New(config.WithOptions(config.SemicolonSeparators))
	err := Parse(doc, []byte("a = 1\nb = 2\n"), "t")
	if err == nil {
		t.Fatal("expected an error: newline alone should not satisfy SemicolonSeparators")
	}
}

func TestParseColonRejectedByDefault(t *testing.T) {
	doc := config.New()
	err := Parse(doc, []byte("a : 1;\n"), "t")
	if err == nil {
		t.Fatal("expected ':' assignment to be rejected without ColonAssignNonGroups")
	}
}

func TestParseColonAllowedWithOption(t *testing.T) {
	doc := parseString(t, "a : 1;\n", config.WithOptions(config.ColonAssignNonGroups))
	if v, _ := doc.Root().GetMember("a").Int(); v != 1 {
		t.Fatalf("a = %d, want 1", v)
	}
}

func TestParseScientificNotationRejectedByDefault(t *testing.T) {
	doc := config.New()
	err := Parse(doc, []byte("a = 1.5e10;\n"), "t")
	if err == nil {
		t.Fatal("expected scientific notation to be rejected without AllowSciNotation")
	}
}

func TestParseIgnoreCaseBoolLiteral(t *testing.T) {
	doc := parseString(t, "a = TRUE;\n", config.WithOptions(config.IgnoreCase))
	v, ok := doc.Root().GetMember("a").Bool()
	if !ok || !v {
		t.Fatalf("a = %v, %v, want true", v, ok)
	}
}

func TestParseBoolLikeNameIsOrdinaryIdentifier(t *testing.T) {
	doc := parseString(t, "true = 1;\n")
	if doc.Root().GetMember("true") == nil {
		t.Fatal("expected a setting literally named 'true'")
	}
}

func TestParseFailureClearsDocumentAndSetsLastError(t *testing.T) {
	doc := config.New()
	doc.Root().Add("stale", config.KindInt)

	err := Parse(doc, []byte("a = ;\n"), "bad.cfg")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if doc.Root().Length() != 0 {
		t.Fatal("expected the document to be cleared on parse failure")
	}
	if doc.LastErrorKind() != config.ErrParse {
		t.Fatalf("LastErrorKind() = %v, want ErrParse", doc.LastErrorKind())
	}
	if !strings.Contains(doc.LastErrorFile(), "bad.cfg") {
		t.Fatalf("LastErrorFile() = %q, want it to mention bad.cfg", doc.LastErrorFile())
	}
}

func TestParseIncludeSplicesTokens(t *testing.T) {
	dir := t.TempDir()
	mainPath := dir + "/main.cfg"
	includedPath := dir + "/extra.cfg"

	if err := writeFile(includedPath, "value = 42;\n"); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(mainPath, `@include "extra.cfg"`+"\n"); err != nil {
		t.Fatal(err)
	}

	doc := config.New(config.WithIncludeDir(dir))
	if err := Parse(doc, readFile(t, mainPath), mainPath); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v, ok := doc.Root().GetMember("value").Int(); !ok || v != 42 {
		t.Fatalf("value = %d, %v, want 42, true", v, ok)
	}
}

func TestParseIncludeCycleIsRejected(t *testing.T) {
	dir := t.TempDir()
	mainPath := dir + "/self.cfg"
	if err := writeFile(mainPath, `@include "self.cfg"`+"\n"); err != nil {
		t.Fatal(err)
	}

	doc := config.New(config.WithIncludeDir(dir))
	err := Parse(doc, readFile(t, mainPath), mainPath)
	if err == nil {
		t.Fatal("expected an include-cycle error")
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}
