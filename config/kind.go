package config

// Kind identifies the type of value a Setting holds.
type Kind int

const (
	// KindNone marks a freshly created, not-yet-typed Setting. It never
	// appears in a finished tree returned from a successful parse.
	KindNone Kind = iota
	KindInt
	KindInt64
	KindFloat
	KindBool
	KindString
	KindArray
	KindList
	KindGroup
)

var kindNames = map[Kind]string{
	KindNone:   "none",
	KindInt:    "int",
	KindInt64:  "int64",
	KindFloat:  "float",
	KindBool:   "bool",
	KindString: "string",
	KindArray:  "array",
	KindList:   "list",
	KindGroup:  "group",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsScalar reports whether the kind is one of the five scalar kinds.
func (k Kind) IsScalar() bool {
	switch k {
	case KindInt, KindInt64, KindFloat, KindBool, KindString:
		return true
	}
	return false
}

// IsNumeric reports whether the kind is one of the three numeric kinds.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindInt, KindInt64, KindFloat:
		return true
	}
	return false
}

// IsContainer reports whether the kind is ARRAY, LIST, or GROUP.
func (k Kind) IsContainer() bool {
	switch k {
	case KindArray, KindList, KindGroup:
		return true
	}
	return false
}

// Format selects how an integer-kind Setting is rendered by the serializer.
// It is meaningful only for INT and INT64 settings; non-integer settings
// silently retain FormatDefault.
type Format int

const (
	FormatDefault Format = iota
	FormatHex
)

func (f Format) String() string {
	if f == FormatHex {
		return "hex"
	}
	return "default"
}
