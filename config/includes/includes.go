// Package includes provides concrete config/parser.IncludeResolver
// functions: the default join-if-relative policy and a glob-expanding
// resolver for directory trees of config fragments.
//
// Grounded on pom/fetcher.go's callback/fetch-by-path shape, adapted from
// HTTP-fetch-with-caching to filesystem glob resolution.
package includes

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/SysMan-One/libconfig/config"
	"github.com/SysMan-One/libconfig/config/parser"
)

// Default is parser.DefaultResolver, re-exported so callers that only
// need the ordinary join-if-relative behavior don't have to import
// config/parser directly.
var Default parser.IncludeResolver = parser.DefaultResolver

// Glob resolves requested as a doublestar glob pattern rooted at
// includeDir (or at requested itself, if it is already absolute),
// returning every match in sorted order. A pattern matching nothing is an
// error, matching spec §4.2's "a missing include is an error" rule.
func Glob(doc *config.Document, includeDir, requested string) ([]string, error) {
	pattern := requested
	base := includeDir
	if isAbsPattern(requested) {
		base = "/"
		pattern = requested[1:]
	}
	if base == "" {
		base = "."
	}

	matches, err := doublestar.Glob(os.DirFS(base), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob include pattern %q: %w", requested, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("include pattern %q matched no files", requested)
	}

	sort.Strings(matches)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = joinRooted(base, m)
	}
	return out, nil
}

func isAbsPattern(p string) bool {
	return len(p) > 0 && p[0] == '/'
}

func joinRooted(base, rel string) string {
	if base == "/" {
		return "/" + rel
	}
	return base + "/" + rel
}
