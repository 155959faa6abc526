package config

// Setting is the universal tree node described in spec §3. Exactly one of
// the scalar payload fields is meaningful, selected by kind; ARRAY, LIST,
// and GROUP instead hold children.
//
// Grounded on java/parser/node.go's Node: a tagged-kind struct with a
// parent-less children slice and an optional leaf payload, generalized
// here to carry the scalar union spec §3 requires and a parent back-link
// (the teacher's Node has no parent pointer; ours needs one so Setting can
// be mutated and re-parented-checked in place, per spec §4.4's contracts).
type Setting struct {
	kind   Kind
	name   string
	parent *Setting
	doc    *Document

	file string
	line int

	format Format
	hook   any

	ival   int32
	i64val int64
	fval   float64
	bval   bool
	sval   string

	children  []*Setting
	nameIndex map[string]int // GROUP only; rebuilt lazily, see rebuildIndex
	indexDirty bool
}

// Kind returns the setting's type.
func (s *Setting) Kind() Kind { return s.kind }

// Name returns the setting's name, or "" if its parent is not a GROUP.
func (s *Setting) Name() string { return s.name }

// Parent returns the setting's parent, or nil if s is the document root.
func (s *Setting) Parent() *Setting { return s.parent }

// Document returns the document that owns this setting.
func (s *Setting) Document() *Document { return s.doc }

// File returns the source file this setting was parsed from, or "" if it
// was created programmatically.
func (s *Setting) File() string { return s.file }

// Line returns the source line this setting was parsed from, or 0 if it
// was created programmatically.
func (s *Setting) Line() int { return s.line }

// Format returns the setting's numeric format flag. It is only meaningful
// for INT/INT64 settings.
func (s *Setting) Format() Format { return s.format }

// Hook returns the user-owned opaque pointer attached to this setting via
// SetHook, or nil.
func (s *Setting) Hook() any { return s.hook }

// SetHook attaches an opaque, user-owned value to this setting. If the
// document has a destructor registered (see Document.SetDestructor), it is
// invoked with this setting when the setting is destroyed.
func (s *Setting) SetHook(v any) { s.hook = v }

// IsRoot reports whether s is its document's root GROUP.
func (s *Setting) IsRoot() bool { return s.parent == nil }

// Index returns s's ordinal position within its parent's children, or 0
// for the root (spec §4.4, §8).
func (s *Setting) Index() int {
	if s.parent == nil {
		return 0
	}
	for i, c := range s.parent.children {
		if c == s {
			return i
		}
	}
	return 0
}

// Path returns the dotted/bracketed path from the document root to s,
// suitable for feeding back into the path resolver.
func (s *Setting) Path() string {
	if s.parent == nil {
		return ""
	}
	var seg string
	if s.parent.kind == KindGroup {
		seg = s.name
	} else {
		seg = "[" + itoa(s.Index()) + "]"
	}
	parentPath := s.parent.Path()
	if parentPath == "" {
		return seg
	}
	if s.parent.kind == KindGroup {
		return parentPath + "." + seg
	}
	return parentPath + seg
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// --- scalar accessors (unchecked; callers validate Kind() first, same as
// the reference C library's untyped union accessors) ---

func (s *Setting) rawInt() int32     { return s.ival }
func (s *Setting) rawInt64() int64   { return s.i64val }
func (s *Setting) rawFloat() float64 { return s.fval }
func (s *Setting) rawBool() bool     { return s.bval }
func (s *Setting) rawString() string { return s.sval }

// Length returns the number of direct children. It is 0 for scalar kinds.
func (s *Setting) Length() int {
	if !s.kind.IsContainer() {
		return 0
	}
	return len(s.children)
}

// GetElem returns the i-th child (0-based) of a container setting, or nil
// if idx is out of range or s is not a container. For GROUP, iteration
// order is insertion order.
func (s *Setting) GetElem(idx int) *Setting {
	if !s.kind.IsContainer() || idx < 0 || idx >= len(s.children) {
		return nil
	}
	return s.children[idx]
}

// GetMember returns the child of a GROUP setting with the given name,
// honoring the document's IgnoreCase option, or nil if s is not a GROUP or
// no such member exists.
func (s *Setting) GetMember(name string) *Setting {
	if s.kind != KindGroup {
		return nil
	}
	s.rebuildIndex()
	key := s.normalizeName(name)
	if i, ok := s.nameIndex[key]; ok {
		return s.children[i]
	}
	return nil
}

func (s *Setting) normalizeName(name string) string {
	if s.doc != nil && s.doc.options.Has(IgnoreCase) {
		return toLower(name)
	}
	return name
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func (s *Setting) rebuildIndex() {
	if !s.indexDirty && s.nameIndex != nil {
		return
	}
	s.nameIndex = make(map[string]int, len(s.children))
	for i, c := range s.children {
		s.nameIndex[s.normalizeName(c.name)] = i
	}
	s.indexDirty = false
}

func (s *Setting) markIndexDirty() {
	s.indexDirty = true
}

// elementKind returns the scalar kind required of ARRAY elements, or
// KindNone if the array is still empty and unconstrained.
func (s *Setting) elementKind() Kind {
	if s.kind != KindArray || len(s.children) == 0 {
		return KindNone
	}
	return s.children[0].kind
}
