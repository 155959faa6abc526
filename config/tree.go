package config

import "regexp"

var nameRe = regexp.MustCompile(`^[A-Za-z*][-A-Za-z0-9_*]*$`)

// ValidName reports whether name matches spec §3's identifier grammar,
// [A-Za-z*][-A-Za-z0-9_*]*.
func ValidName(name string) bool {
	return nameRe.MatchString(name)
}

// Add creates a new child of kind under the container setting parent and
// returns it, or nil if the preconditions in spec §4.4 are violated:
// parent must be a container; name must be present iff parent is GROUP,
// and must be ValidName and unique within that group (honoring
// IgnoreCase); adding a scalar kind to an ARRAY is rejected unless the
// array is empty or already holds that same scalar kind; LIST and GROUP
// accept any kind (GROUP additionally requires containers to be added by
// name only, same as scalars).
func (parent *Setting) Add(name string, kind Kind) *Setting {
	if !parent.kind.IsContainer() {
		return nil
	}
	switch parent.kind {
	case KindGroup:
		if name == "" || !ValidName(name) {
			return nil
		}
		if parent.GetMember(name) != nil {
			return nil
		}
	case KindArray:
		if name != "" {
			return nil
		}
		if kind != KindNone {
			if !kind.IsScalar() {
				return nil
			}
			if ek := parent.elementKind(); ek != KindNone && ek != kind {
				return nil
			}
		}
	case KindList:
		if name != "" {
			return nil
		}
	}

	child := &Setting{
		kind:   kind,
		name:   name,
		parent: parent,
		doc:    parent.doc,
	}
	if kind == KindInt || kind == KindInt64 {
		child.format = parent.doc.defaultFormat
	}
	parent.children = append(parent.children, child)
	if parent.kind == KindGroup {
		parent.markIndexDirty()
	}
	return child
}

// SetContainerKind promotes a freshly created (KindNone) setting to ARRAY,
// LIST, or GROUP, so it can start accepting children via Add. It is used
// by config/parser once a setting name's value turns out to be an
// array/list/group literal rather than a scalar; it fails if s already
// has a kind.
func (s *Setting) SetContainerKind(kind Kind) bool {
	if s.kind != KindNone || !kind.IsContainer() {
		return false
	}
	s.kind = kind
	return true
}

// SetSource stamps the setting's source file and line, interning file via
// the owning document's filename table. It is normally called only by
// config/parser immediately after constructing a setting; settings
// created programmatically via Add keep file="" and line=0 per spec §3.
func (s *Setting) SetSource(file string, line int) {
	if s.doc != nil {
		file = s.doc.Intern(file)
	}
	s.file = file
	s.line = line
}

// Remove removes the named direct child of a GROUP setting, running the
// document's destructor over the removed subtree. It returns false if
// parent is not a GROUP or has no such member.
func (parent *Setting) Remove(name string) bool {
	if parent.kind != KindGroup {
		return false
	}
	for i, c := range parent.children {
		if c.name == name || (parent.doc != nil && parent.doc.options.Has(IgnoreCase) && toLower(c.name) == toLower(name)) {
			parent.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveElem removes the idx-th direct child of a container setting,
// running the document's destructor over the removed subtree. It returns
// false if parent is not a container or idx is out of range.
func (parent *Setting) RemoveElem(idx int) bool {
	if !parent.kind.IsContainer() || idx < 0 || idx >= len(parent.children) {
		return false
	}
	parent.removeAt(idx)
	return true
}

func (parent *Setting) removeAt(idx int) {
	removed := parent.children[idx]
	if parent.doc != nil {
		parent.doc.runDestructor(removed)
	}
	parent.children = append(parent.children[:idx], parent.children[idx+1:]...)
	if parent.kind == KindGroup {
		parent.markIndexDirty()
	}
}

// --- typed scalar setters ---
//
// Each setter succeeds iff s.Kind() already equals the target kind, or s
// is KindNone (freshly added) and takes on the target kind, or
// AutoConvert is set on the owning document and the conversion is a
// permitted numeric one (spec §4.4). Boolean and string settings never
// autoconvert. On success the setting's kind becomes the target kind and
// true is returned; on failure the setting is left unmodified and false
// is returned. A setter also fails if s is a direct element of an ARRAY
// whose other elements already hold a different scalar kind, so the
// homogeneity invariant Add enforces at creation time can't be broken
// later by reassigning one element through a setter.

// arraySiblingKind returns the scalar kind s's other siblings already hold
// if s is a direct element of an ARRAY, or KindNone if s has no ARRAY
// parent or no other siblings yet. Since Add and the typed setters
// together keep every ARRAY homogeneous, checking any one sibling's kind
// is sufficient.
func (s *Setting) arraySiblingKind() Kind {
	if s.parent == nil || s.parent.kind != KindArray {
		return KindNone
	}
	for _, c := range s.parent.children {
		if c != s {
			return c.kind
		}
	}
	return KindNone
}

func (s *Setting) canAssign(target Kind) bool {
	if sib := s.arraySiblingKind(); sib != KindNone && sib != target {
		return false
	}
	if s.kind == KindNone || s.kind == target {
		return true
	}
	return s.doc != nil && s.doc.options.Has(AutoConvert) && s.kind.IsNumeric() && target.IsNumeric()
}

// SetInt sets an INT value. Per the Open Question decision in DESIGN.md,
// with AutoConvert set, assigning to a previously INT64 (or FLOAT) setting
// narrows it to INT; v is an int32, so the assignment never fails on
// range. An INT64 value too large for 32 bits is refused on read instead
// (Int returns ok=false).
func (s *Setting) SetInt(v int32) bool {
	if !s.canAssign(KindInt) {
		return false
	}
	s.kind = KindInt
	s.ival = v
	return true
}

// SetInt64 sets an INT64 value.
func (s *Setting) SetInt64(v int64) bool {
	if !s.canAssign(KindInt64) {
		return false
	}
	s.kind = KindInt64
	s.i64val = v
	return true
}

// SetFloat sets a FLOAT value. If s currently holds an integer kind and
// AutoConvert is set, s becomes a FLOAT holding v.
func (s *Setting) SetFloat(v float64) bool {
	if !s.canAssign(KindFloat) {
		return false
	}
	s.kind = KindFloat
	s.fval = v
	return true
}

// SetBool sets a BOOL value. Booleans never autoconvert: this only
// succeeds if s is KindNone or already KindBool.
func (s *Setting) SetBool(v bool) bool {
	if sib := s.arraySiblingKind(); sib != KindNone && sib != KindBool {
		return false
	}
	if s.kind != KindNone && s.kind != KindBool {
		return false
	}
	s.kind = KindBool
	s.bval = v
	return true
}

// SetString sets a STRING value. Strings never autoconvert: this only
// succeeds if s is KindNone or already KindString.
func (s *Setting) SetString(v string) bool {
	if sib := s.arraySiblingKind(); sib != KindNone && sib != KindString {
		return false
	}
	if s.kind != KindNone && s.kind != KindString {
		return false
	}
	s.kind = KindString
	s.sval = v
	return true
}

// Int returns the setting's value as an INT, applying AutoConvert if set
// and the setting is numeric of a different kind. ok is false if the
// setting is not numeric, or is numeric but AutoConvert is unset and the
// kind does not already match, or the value does not fit in int32.
func (s *Setting) Int() (v int32, ok bool) {
	switch s.kind {
	case KindInt:
		return s.ival, true
	case KindInt64:
		if !s.autoConvertOK() {
			return 0, false
		}
		if s.i64val < -(1<<31) || s.i64val > (1<<31)-1 {
			return 0, false
		}
		return int32(s.i64val), true
	case KindFloat:
		if !s.autoConvertOK() {
			return 0, false
		}
		return int32(s.fval), true // truncates toward zero, per Go's float->int conversion
	}
	return 0, false
}

// Int64 returns the setting's value as an INT64, applying AutoConvert if
// set.
func (s *Setting) Int64() (v int64, ok bool) {
	switch s.kind {
	case KindInt64:
		return s.i64val, true
	case KindInt:
		if !s.autoConvertOK() {
			return 0, false
		}
		return int64(s.ival), true
	case KindFloat:
		if !s.autoConvertOK() {
			return 0, false
		}
		return int64(s.fval), true
	}
	return 0, false
}

// Float returns the setting's value as a FLOAT, applying AutoConvert if
// set.
func (s *Setting) Float() (v float64, ok bool) {
	switch s.kind {
	case KindFloat:
		return s.fval, true
	case KindInt:
		if !s.autoConvertOK() {
			return 0, false
		}
		return float64(s.ival), true
	case KindInt64:
		if !s.autoConvertOK() {
			return 0, false
		}
		return float64(s.i64val), true
	}
	return 0, false
}

// Bool returns the setting's value as a BOOL. Booleans never autoconvert.
func (s *Setting) Bool() (v bool, ok bool) {
	if s.kind != KindBool {
		return false, false
	}
	return s.bval, true
}

// String returns the setting's value as a STRING. Strings never
// autoconvert.
func (s *Setting) String() (v string, ok bool) {
	if s.kind != KindString {
		return "", false
	}
	return s.sval, true
}

func (s *Setting) autoConvertOK() bool {
	return s.doc != nil && s.doc.options.Has(AutoConvert)
}

// SetFormat sets the numeric format flag. It only applies to INT/INT64
// settings; format must be FormatDefault or FormatHex. Any other
// combination is rejected and the setting's format is left unchanged
// (non-integer settings silently retain FormatDefault, per spec §4.4).
func (s *Setting) SetFormat(format Format) bool {
	if s.kind != KindInt && s.kind != KindInt64 {
		return false
	}
	if format != FormatDefault && format != FormatHex {
		return false
	}
	s.format = format
	return true
}
