// Package parser implements the recursive-descent parser from spec §4.3.
// It drives package config/scanner to tokenize, transparently splices
// `@include` directives (package config/scanner's Include token) into the
// stream, and builds a *config.Setting tree directly — there is no
// separate generic-AST stage, unlike java/parser which hands a Node tree
// to a distinct format package.
//
// Grounded on java/parser/parser.go's Parser struct: tokenize-ahead, then
// peek/advance/expect/check/match combinator-style helpers over a token
// slice and position cursor.
package parser

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/SysMan-One/libconfig/config"
	"github.com/SysMan-One/libconfig/config/scanner"
)

// IncludeResolver resolves an `@include "path"` directive to an ordered
// sequence of absolute filenames to splice in (spec §4.2). Package
// config/includes provides concrete resolvers with this exact signature.
type IncludeResolver func(doc *config.Document, includeDir, requested string) ([]string, error)

// DefaultResolver joins requested against includeDir when requested is
// relative, otherwise uses it as-is, and returns that single filename
// (spec §4.2's "default resolver").
func DefaultResolver(doc *config.Document, includeDir, requested string) ([]string, error) {
	if requested == "" {
		return nil, fmt.Errorf("empty include path")
	}
	path := requested
	if !isAbs(path) && includeDir != "" {
		path = includeDir + "/" + path
	}
	return []string{path}, nil
}

func isAbs(p string) bool {
	return strings.HasPrefix(p, "/") || (len(p) > 1 && p[1] == ':')
}

// Parse reads data (attributed to file) into doc, replacing its tree on
// success. On failure doc is left cleared and its last-error fields are
// populated, matching spec §7. This is the function normally passed to
// (*config.Document).ReadFile.
func Parse(doc *config.Document, data []byte, file string) error {
	return ParseWithIncludes(doc, data, file, DefaultResolver)
}

// ParseWithIncludes is Parse with an explicit include resolver, used by
// callers that need glob expansion (config/includes.Glob) or a resolver
// that serves includes from somewhere other than the local filesystem.
func ParseWithIncludes(doc *config.Document, data []byte, file string, resolver IncludeResolver) error {
	doc.Clear()

	tz := &tokenizer{doc: doc, resolver: resolver, active: map[string]bool{}}
	if err := tz.expand(data, file); err != nil {
		return reportAndClear(doc, err)
	}
	tz.tokens = append(tz.tokens, scanner.Token{Kind: scanner.EOF})

	p := &parser{doc: doc, tokens: tz.tokens}
	if err := p.parseDocument(); err != nil {
		return reportAndClear(doc, err)
	}
	return nil
}

func reportAndClear(doc *config.Document, err error) error {
	doc.Clear()
	if pe, ok := err.(*config.ParseError); ok {
		doc.SetLastError(config.ErrParse, pe.Message, pe.File, pe.Line)
	} else if ie, ok := err.(*config.IOError); ok {
		doc.SetLastError(config.ErrFileIO, ie.Message, ie.File, 0)
	} else {
		doc.SetLastError(config.ErrParse, err.Error(), "", 0)
	}
	return err
}

// tokenizer assembles the flat token stream for one top-level parse,
// transparently splicing included files' tokens inline (spec §4.2) and
// tracking the active include stack to reject cycles (DESIGN.md's Open
// Question decision).
type tokenizer struct {
	doc      *config.Document
	resolver IncludeResolver
	active   map[string]bool
	tokens   []scanner.Token
}

func (t *tokenizer) expand(data []byte, file string) error {
	if t.active[file] {
		return &config.ParseError{Message: "include cycle detected: " + file + " is already being read", File: file, Line: 0}
	}
	t.active[file] = true
	defer delete(t.active, file)

	lex := scanner.New(data, file)
	for {
		tok := lex.NextToken()
		switch tok.Kind {
		case scanner.EOF:
			return nil
		case scanner.Error:
			return &config.ParseError{Message: tok.Literal, File: file, Line: tok.Pos.Line}
		case scanner.Include:
			if err := t.splice(tok, file); err != nil {
				return err
			}
		default:
			t.tokens = append(t.tokens, tok)
		}
	}
}

func (t *tokenizer) splice(tok scanner.Token, fromFile string) error {
	filenames, err := t.resolver(t.doc, t.doc.IncludeDir(), tok.IncludePath)
	if err != nil {
		return &config.IOError{Message: "resolve include " + tok.IncludePath, File: fromFile, Err: err}
	}
	for _, fn := range filenames {
		if t.active[fn] {
			return &config.ParseError{Message: "include cycle detected: " + fn + " is already being read", File: fromFile, Line: tok.Pos.Line}
		}
		data, err := os.ReadFile(fn)
		if err != nil {
			return &config.IOError{Message: "read include file", File: fn, Err: err}
		}
		if err := t.expand(data, fn); err != nil {
			return err
		}
	}
	return nil
}

// parser holds the flat token stream and cursor for the recursive-descent
// grammar (spec §4.3). Grounded on java/parser.Parser's peek/advance/
// expect/check helpers.
type parser struct {
	doc    *config.Document
	tokens []scanner.Token
	pos    int
}

func (p *parser) peek() scanner.Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() scanner.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) check(kind scanner.Kind) bool {
	return p.peek().Kind == kind
}

func (p *parser) expect(kind scanner.Kind) (scanner.Token, error) {
	if !p.check(kind) {
		tok := p.peek()
		return scanner.Token{}, p.errorf(tok, "expected %s, got %s", kind, tok.Kind)
	}
	return p.advance(), nil
}

func (p *parser) errorf(tok scanner.Token, format string, args ...any) *config.ParseError {
	return &config.ParseError{Message: fmt.Sprintf(format, args...), File: tok.Pos.File, Line: tok.Pos.Line}
}

// parseDocument implements `document := setting_list EOF`.
func (p *parser) parseDocument() error {
	return p.parseSettingList(p.doc.Root(), scanner.EOF)
}

// parseSettingList implements `setting_list := (setting separator?)*`,
// stopping when terminator is seen. It enforces the separator rule from
// spec §4.3: at least one of newline/';'/',' is required between two
// settings, and ';' is mandatory rather than merely permitted when
// SemicolonSeparators is set.
func (p *parser) parseSettingList(parent *config.Setting, terminator scanner.Kind) error {
	first := true
	for !p.check(terminator) && !p.check(scanner.EOF) {
		if !first {
			if err := p.consumeSeparator(); err != nil {
				return err
			}
		}
		if p.check(terminator) || p.check(scanner.EOF) {
			break
		}
		if err := p.parseSetting(parent); err != nil {
			return err
		}
		first = false
	}
	return nil
}

func (p *parser) consumeSeparator() error {
	tok := p.peek()
	sawSeparator := false
	if tok.Kind == scanner.Semicolon || tok.Kind == scanner.Comma {
		p.advance()
		sawSeparator = true
	}
	if p.doc.Options().Has(config.SemicolonSeparators) && tok.Kind != scanner.Semicolon {
		return p.errorf(tok, "expected ';' separator, got %s", tok.Kind)
	}
	if !sawSeparator && !tok.NewlineBefore {
		return p.errorf(tok, "expected a separator (newline, ';', or ',') before %s", tok.Kind)
	}
	return nil
}

// parseSetting implements `setting := name ("=" | ":") value`.
func (p *parser) parseSetting(parent *config.Setting) error {
	nameTok, err := p.expect(scanner.Ident)
	if err != nil {
		return err
	}
	name := nameTok.Literal

	isColon := false
	switch p.peek().Kind {
	case scanner.Assign:
		p.advance()
	case scanner.Colon:
		isColon = true
		p.advance()
	default:
		tok := p.peek()
		return p.errorf(tok, "expected '=' or ':' after setting name %q, got %s", name, tok.Kind)
	}

	existing := parent.GetMember(name)
	if existing != nil && !p.doc.Options().Has(config.AllowOverrides) {
		return p.errorf(nameTok, "duplicate setting name %q", name)
	}

	valueIsGroup := p.check(scanner.LBrace)
	if isColon {
		if valueIsGroup && !p.doc.Options().Has(config.ColonAssignGroups) {
			return p.errorf(nameTok, "':' assignment not permitted for group-valued setting %q", name)
		}
		if !valueIsGroup && !p.doc.Options().Has(config.ColonAssignNonGroups) {
			return p.errorf(nameTok, "':' assignment not permitted for setting %q", name)
		}
	}

	var target *config.Setting
	if existing != nil {
		parent.Remove(name)
	}
	target = parent.Add(name, config.KindNone)
	if target == nil {
		return p.errorf(nameTok, "invalid setting name %q", name)
	}
	target.SetSource(nameTok.Pos.File, nameTok.Pos.Line)

	return p.parseValue(target)
}

// parseValue implements `value := scalar | array | list | group`.
func (p *parser) parseValue(target *config.Setting) error {
	switch p.peek().Kind {
	case scanner.LBracket:
		return p.parseArray(target)
	case scanner.LParen:
		return p.parseList(target)
	case scanner.LBrace:
		return p.parseGroup(target)
	default:
		return p.parseScalarInto(target)
	}
}

// parseArray implements `array := "[" (scalar ("," scalar)*)? "]"`,
// enforcing element homogeneity (spec §4.3).
func (p *parser) parseArray(target *config.Setting) error {
	if _, err := p.expect(scanner.LBracket); err != nil {
		return err
	}
	target.SetContainerKind(config.KindArray)

	for !p.check(scanner.RBracket) {
		elem := target.Add("", config.KindNone)
		if elem == nil {
			return p.errorf(p.peek(), "internal error: could not add array element")
		}
		elemTok := p.peek()
		elem.SetSource(elemTok.Pos.File, elemTok.Pos.Line)
		if err := p.parseScalarInto(elem); err != nil {
			return err
		}
		if !elem.Kind().IsScalar() {
			return p.errorf(elemTok, "array elements must be scalar")
		}
		if p.check(scanner.Comma) {
			p.advance()
			continue
		}
		break
	}
	_, err := p.expect(scanner.RBracket)
	return err
}

// parseList implements `list := "(" (value ("," value)*)? ")"`.
func (p *parser) parseList(target *config.Setting) error {
	if _, err := p.expect(scanner.LParen); err != nil {
		return err
	}
	target.SetContainerKind(config.KindList)

	for !p.check(scanner.RParen) {
		elem := target.Add("", config.KindNone)
		if elem == nil {
			return p.errorf(p.peek(), "internal error: could not add list element")
		}
		elem.SetSource(p.peek().Pos.File, p.peek().Pos.Line)
		if err := p.parseValue(elem); err != nil {
			return err
		}
		if p.check(scanner.Comma) {
			p.advance()
			continue
		}
		break
	}
	_, err := p.expect(scanner.RParen)
	return err
}

// parseGroup implements `group := "{" setting_list "}"`.
func (p *parser) parseGroup(target *config.Setting) error {
	if _, err := p.expect(scanner.LBrace); err != nil {
		return err
	}
	target.SetContainerKind(config.KindGroup)
	if err := p.parseSettingList(target, scanner.RBrace); err != nil {
		return err
	}
	_, err := p.expect(scanner.RBrace)
	return err
}

// parseScalarInto implements `scalar := INT | INT64 | FLOAT | BOOL |
// STRING`, including adjacent-string-literal concatenation and the
// case-policy-aware BOOL keyword check (spec §4.1/§4.3).
func (p *parser) parseScalarInto(target *config.Setting) error {
	tok := p.peek()
	switch tok.Kind {
	case scanner.Int:
		p.advance()
		v, err := parseDecimalOrHex32(tok)
		if err != nil {
			return p.errorf(tok, "malformed integer literal %q: %v", tok.Literal, err)
		}
		if !target.SetInt(v) {
			return p.scalarAssignError(target, tok, config.KindInt)
		}
		target.SetFormat(formatOf(tok))
		return nil
	case scanner.Int64:
		p.advance()
		v, err := parseDecimalOrHex64(tok)
		if err != nil {
			return p.errorf(tok, "malformed integer literal %q: %v", tok.Literal, err)
		}
		if !target.SetInt64(v) {
			return p.scalarAssignError(target, tok, config.KindInt64)
		}
		target.SetFormat(formatOf(tok))
		return nil
	case scanner.Float:
		p.advance()
		if strings.ContainsAny(tok.Literal, "eE") && !p.doc.Options().Has(config.AllowSciNotation) {
			return p.errorf(tok, "scientific notation not permitted: %q", tok.Literal)
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSuffix(tok.Literal, "f"), "F"), 64)
		if err != nil {
			return p.errorf(tok, "malformed float literal %q: %v", tok.Literal, err)
		}
		if !target.SetFloat(v) {
			return p.scalarAssignError(target, tok, config.KindFloat)
		}
		return nil
	case scanner.String:
		p.advance()
		sb := strings.Builder{}
		sb.WriteString(tok.Literal)
		for p.check(scanner.String) {
			sb.WriteString(p.advance().Literal)
		}
		if !target.SetString(sb.String()) {
			return p.scalarAssignError(target, tok, config.KindString)
		}
		return nil
	case scanner.Ident:
		lit := tok.Literal
		if isBoolLiteral(lit, "true", p.doc.Options().Has(config.IgnoreCase)) {
			p.advance()
			if !target.SetBool(true) {
				return p.scalarAssignError(target, tok, config.KindBool)
			}
			return nil
		}
		if isBoolLiteral(lit, "false", p.doc.Options().Has(config.IgnoreCase)) {
			p.advance()
			if !target.SetBool(false) {
				return p.scalarAssignError(target, tok, config.KindBool)
			}
			return nil
		}
		return p.errorf(tok, "expected a scalar value, got identifier %q", lit)
	default:
		return p.errorf(tok, "expected a scalar value, got %s", tok.Kind)
	}
}

// scalarAssignError explains why a typed setter refused wantKind on target.
// The only way a fresh array element's setter fails is the array-homogeneity
// guard in config.Setting's setters, so that's the case worth naming
// precisely; anything else falls back to a generic kind-conflict message.
func (p *parser) scalarAssignError(target *config.Setting, tok scanner.Token, wantKind config.Kind) error {
	if parent := target.Parent(); parent != nil && parent.Kind() == config.KindArray && parent.Length() > 1 {
		return p.errorf(tok, "array is heterogeneous: element of kind %s does not match array kind %s", wantKind, parent.GetElem(0).Kind())
	}
	return p.errorf(tok, "cannot set value of kind %s: conflicts with existing setting kind %s", wantKind, target.Kind())
}

func isBoolLiteral(lit, want string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.EqualFold(lit, want)
	}
	return lit == want
}

func formatOf(tok scanner.Token) config.Format {
	if tok.IntFormat == scanner.Hex {
		return config.FormatHex
	}
	return config.FormatDefault
}

// parseIntLiteral parses tok's literal text as base 10, except hex
// literals (which already carry a "0x"/"0X" prefix and need base 0's
// auto-detection) — a plain base-10 parse keeps a leading-zero decimal
// literal like "007" from being misread as octal. Hex digits are read as
// an unsigned 64-bit bit pattern, so 0xFFFFFFFFFFFFFFFF (the form the
// serializer writes for -1) reads back as -1.
func parseIntLiteral(tok scanner.Token) (int64, error) {
	lit := stripLSuffix(tok.Literal)
	if tok.IntFormat == scanner.Hex {
		u, err := strconv.ParseUint(strings.TrimPrefix(lit, "-"), 0, 64)
		if err != nil {
			return 0, err
		}
		if strings.HasPrefix(lit, "-") {
			return -int64(u), nil
		}
		return int64(u), nil
	}
	return strconv.ParseInt(lit, 10, 64)
}

func parseDecimalOrHex32(tok scanner.Token) (int32, error) {
	v, err := parseIntLiteral(tok)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func parseDecimalOrHex64(tok scanner.Token) (int64, error) {
	return parseIntLiteral(tok)
}

func stripLSuffix(lit string) string {
	return strings.TrimSuffix(strings.TrimSuffix(lit, "L"), "l")
}
