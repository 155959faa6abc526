// Package path implements the dotted/bracketed path-expression resolver
// from spec §4.5 (`a.b[3].c`) as free functions over config.Document's and
// config.Setting's exported surface — it deliberately is not a method on
// either, so that config stays free of a dependency on this package.
//
// Grounded on pom/resolver.go's small self-contained grammar parsers
// (VersionRequirement/VersionRange): tokenize a compact expression by hand,
// walk it left to right against a target structure, fail soft by returning
// a zero value/false rather than panicking.
package path

import (
	"strings"

	"github.com/SysMan-One/libconfig/config"
)

// segment is one step of a parsed path: either a GROUP member name or a
// bracketed index into an ARRAY/LIST.
type segment struct {
	name    string
	isIndex bool
	index   int
}

// parse splits a path expression into segments. The leading segment may
// omit its leading dot (`a.b` and `.a.b` are equivalent); a path that is
// empty or malformed returns nil, matching Resolve's "fail soft" contract.
func parse(p string) []segment {
	p = strings.TrimPrefix(p, ".")
	if p == "" {
		return nil
	}
	var segs []segment
	for _, part := range strings.Split(p, ".") {
		if part == "" {
			return nil
		}
		name, indices, ok := splitIndices(part)
		if !ok {
			return nil
		}
		if name != "" {
			segs = append(segs, segment{name: name})
		}
		for _, idx := range indices {
			segs = append(segs, segment{isIndex: true, index: idx})
		}
	}
	return segs
}

// splitIndices splits "name[1][2]" into ("name", [1, 2], true), or
// "[3]" into ("", [3], true). It returns ok=false on malformed bracket
// syntax (unmatched bracket, non-numeric index).
func splitIndices(part string) (name string, indices []int, ok bool) {
	i := strings.IndexByte(part, '[')
	if i < 0 {
		return part, nil, true
	}
	name = part[:i]
	rest := part[i:]
	for len(rest) > 0 {
		if rest[0] != '[' {
			return "", nil, false
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", nil, false
		}
		digits := rest[1:end]
		n, ok := parseUint(digits)
		if !ok {
			return "", nil, false
		}
		indices = append(indices, n)
		rest = rest[end+1:]
	}
	return name, indices, true
}

func parseUint(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

// Resolve walks path starting at start (typically doc.Root()) and returns
// the setting it names, or nil if any segment fails to resolve — a
// non-fatal lookup per spec §4.5, never a contract error.
func Resolve(start *config.Setting, p string) *config.Setting {
	segs := parse(p)
	if segs == nil {
		return nil
	}
	cur := start
	for _, seg := range segs {
		if cur == nil {
			return nil
		}
		if seg.isIndex {
			cur = cur.GetElem(seg.index)
		} else {
			cur = cur.GetMember(seg.name)
		}
	}
	return cur
}

// LookupInt resolves path and returns its value as an INT, honoring
// AUTOCONVERT the same way Setting.Int does.
func LookupInt(start *config.Setting, p string) (int32, bool) {
	s := Resolve(start, p)
	if s == nil {
		return 0, false
	}
	return s.Int()
}

// LookupInt64 resolves path and returns its value as an INT64.
func LookupInt64(start *config.Setting, p string) (int64, bool) {
	s := Resolve(start, p)
	if s == nil {
		return 0, false
	}
	return s.Int64()
}

// LookupFloat resolves path and returns its value as a FLOAT.
func LookupFloat(start *config.Setting, p string) (float64, bool) {
	s := Resolve(start, p)
	if s == nil {
		return 0, false
	}
	return s.Float()
}

// LookupBool resolves path and returns its value as a BOOL.
func LookupBool(start *config.Setting, p string) (bool, bool) {
	s := Resolve(start, p)
	if s == nil {
		return false, false
	}
	return s.Bool()
}

// LookupString resolves path and returns its value as a STRING.
func LookupString(start *config.Setting, p string) (string, bool) {
	s := Resolve(start, p)
	if s == nil {
		return "", false
	}
	return s.String()
}
