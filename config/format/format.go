// Package format implements the canonical serializer from spec §4.6: a
// single-pass tree walk that writes a Document back out as text, honoring
// its brace-placement, separator, and numeric-format options.
//
// Grounded on format/java_pretty.go's JavaPrettyPrinter: an io.Writer
// wrapper tracking indent depth and atLineStart, with write/writeIndent/
// newline helpers. libconfig's printer has no comment-reattachment or
// line-wrapping pass (spec.md's Non-goals: "no attempt to preserve the
// original document's comments or formatting on write"), so it is the
// straight-line subset of that shape.
package format

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SysMan-One/libconfig/config"
)

// Write serializes doc's tree per its configured options and returns the
// resulting bytes. It is the function normally passed to
// (*config.Document).WriteFile. It fails if any FLOAT setting holds
// +Inf/-Inf/NaN, since spec §4.6's text format cannot represent them.
func Write(doc *config.Document) ([]byte, error) {
	var buf bytes.Buffer
	w := &writer{
		buf:       &buf,
		doc:       doc,
		indentStr: strings.Repeat(" ", clampTabWidth(doc.TabWidth())),
	}
	if err := w.writeGroupBody(doc.Root()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func clampTabWidth(n int) int {
	if n < 0 {
		return 0
	}
	if n > 15 {
		return 15
	}
	return n
}

type writer struct {
	buf         *bytes.Buffer
	doc         *config.Document
	indent      int
	indentStr   string
	atLineStart bool
}

func (w *writer) writeIndent() {
	if !w.atLineStart || w.indentStr == "" {
		return
	}
	for i := 0; i < w.indent; i++ {
		w.buf.WriteString(w.indentStr)
	}
}

func (w *writer) write(s string) {
	w.writeIndent()
	w.buf.WriteString(s)
	w.atLineStart = false
}

func (w *writer) newline() {
	w.buf.WriteByte('\n')
	w.atLineStart = true
}

// writeGroupBody writes the settings of a GROUP setting (or the document
// root) one per line, with no surrounding braces — used both for the root
// and, combined with brace writes, for nested groups.
func (w *writer) writeGroupBody(group *config.Setting) error {
	for i := 0; i < group.Length(); i++ {
		child := group.GetElem(i)
		if err := w.writeSetting(child); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) writeSetting(s *config.Setting) error {
	w.write(s.Name())
	w.writeAssignOp(s.Kind())
	if err := w.writeValue(s); err != nil {
		return err
	}
	w.writeSeparator()
	w.newline()
	return nil
}

func (w *writer) writeAssignOp(kind config.Kind) {
	opts := w.doc.Options()
	useColon := false
	if kind == config.KindGroup {
		useColon = opts.Has(config.ColonAssignGroups)
	} else {
		useColon = opts.Has(config.ColonAssignNonGroups)
	}
	if useColon {
		w.write(" : ")
	} else {
		w.write(" = ")
	}
}

func (w *writer) writeSeparator() {
	if w.doc.Options().Has(config.SemicolonSeparators) {
		w.write(";")
	}
}

func (w *writer) writeValue(s *config.Setting) error {
	switch s.Kind() {
	case config.KindInt:
		v, _ := s.Int()
		w.write(formatInt(int64(v), s.Format(), 32))
	case config.KindInt64:
		v, _ := s.Int64()
		w.write(formatInt(v, s.Format(), 64) + "L")
	case config.KindFloat:
		v, _ := s.Float()
		lit, err := w.formatFloat(v)
		if err != nil {
			return err
		}
		w.write(lit)
	case config.KindBool:
		v, _ := s.Bool()
		if v {
			w.write("true")
		} else {
			w.write("false")
		}
	case config.KindString:
		v, _ := s.String()
		w.write(quoteString(v))
	case config.KindArray:
		return w.writeArray(s)
	case config.KindList:
		return w.writeList(s)
	case config.KindGroup:
		return w.writeGroup(s)
	default:
		return fmt.Errorf("cannot serialize setting %q: untyped (kind NONE)", s.Path())
	}
	return nil
}

// formatInt renders v in decimal, or as uppercase hex of its two's-complement
// bit pattern (32 or 64 bits, per bits) when format is FormatHex. -1 prints
// as 0xFFFFFFFF (bits==32) or 0xFFFFFFFFFFFFFFFF (bits==64), not a
// sign-and-magnitude "-0x1".
func formatInt(v int64, format config.Format, bits int) string {
	if format == config.FormatHex {
		var u uint64
		if bits == 32 {
			u = uint64(uint32(v))
		} else {
			u = uint64(v)
		}
		return "0x" + strings.ToUpper(strconv.FormatUint(u, 16))
	}
	return strconv.FormatInt(v, 10)
}

func (w *writer) formatFloat(v float64) (string, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "", fmt.Errorf("cannot serialize non-finite float value %v", v)
	}
	prec := w.doc.FloatPrecision()
	if prec < 0 {
		prec = 0
	}
	if w.doc.Options().Has(config.AllowSciNotation) && needsScientific(v) {
		return strconv.FormatFloat(v, 'e', prec, 64), nil
	}
	return strconv.FormatFloat(v, 'f', prec, 64), nil
}

// needsScientific reports whether v's magnitude would make fixed notation
// unwieldy: at least 1e15 in magnitude, or nonzero and below 1e-4 (the
// same lower cutoff strconv's 'g' verb uses to switch from 'f' to 'e').
// Ordinary values like 1.5 stay in fixed notation even when
// AllowSciNotation is set; the option only permits scientific notation, it
// doesn't force it.
func needsScientific(v float64) bool {
	if v == 0 {
		return false
	}
	abs := math.Abs(v)
	return abs < 1e-4 || abs >= 1e15
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func (w *writer) writeArray(s *config.Setting) error {
	if s.Length() == 0 {
		w.write("[]")
		return nil
	}
	w.write("[ ")
	for i := 0; i < s.Length(); i++ {
		if i > 0 {
			w.write(", ")
		}
		if err := w.writeValue(s.GetElem(i)); err != nil {
			return err
		}
	}
	w.write(" ]")
	return nil
}

func (w *writer) writeList(s *config.Setting) error {
	if s.Length() == 0 {
		w.write("()")
		return nil
	}
	w.write("( ")
	for i := 0; i < s.Length(); i++ {
		if i > 0 {
			w.write(", ")
		}
		if err := w.writeValue(s.GetElem(i)); err != nil {
			return err
		}
	}
	w.write(" )")
	return nil
}

func (w *writer) writeGroup(s *config.Setting) error {
	if s.Length() == 0 {
		w.write("{ }")
		return nil
	}
	if w.doc.Options().Has(config.OpenBraceSepLine) {
		w.newline()
		w.write("{")
	} else {
		w.write("{")
	}
	w.newline()
	w.indent++
	if err := w.writeGroupBody(s); err != nil {
		return err
	}
	w.indent--
	w.write("}")
	return nil
}
