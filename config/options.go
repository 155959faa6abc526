package config

// Option is a bit in a Document's option set. The numeric values match
// spec §6's ABI table; library code tests them by name with Has
// (doc.Options().Has(AutoConvert)) rather than by raw bit values.
type Option uint32

const (
	AutoConvert           Option = 1 << iota // numeric autoconversion on get/set/lookup
	SemicolonSeparators                      // require/emit ';' between settings
	ColonAssignGroups                        // accept/emit ':' for group-valued settings
	ColonAssignNonGroups                     // accept/emit ':' for scalar/array/list settings
	OpenBraceSepLine                          // emit '{' on its own line
	AllowSciNotation                         // accept/emit floats with 'e'
	FSync                                    // flush to durable storage on write
	AllowOverrides                           // later duplicates in a group replace earlier
	IgnoreCase                               // case-insensitive identifier/keyword matching
)

// Has reports whether all bits in want are set in o.
func (o Option) Has(want Option) bool {
	return o&want == want
}

// With returns o with the given bits set.
func (o Option) With(bits Option) Option {
	return o | bits
}

// Without returns o with the given bits cleared.
func (o Option) Without(bits Option) Option {
	return o &^ bits
}

// DefaultOptions matches the reference implementation's historical
// defaults: a newline, ';', or ',' separates settings, '=' assignment everywhere, decimal
// integers, no autoconversion, duplicate names rejected, case-sensitive
// identifiers.
const DefaultOptions Option = 0
