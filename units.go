package runecut

// UTF-16 surrogate ranges. A high (leading) unit followed by a low (trailing)
// unit encodes one code point above U+FFFF.
const (
	surrHighMin = 0xd800 // First high surrogate
	surrHighMax = 0xdbff // Last high surrogate
	surrLowMin  = 0xdc00 // First low surrogate
	surrLowMax  = 0xdfff // Last low surrogate
)

// UnitKind classifies a single UTF-16 code unit.
type UnitKind uint8

// The kinds of code units. Ordinary comes first so the zero value describes
// a unit that needs no boundary handling.
const (
	Ordinary      UnitKind = iota // Any unit outside the surrogate ranges
	HighSurrogate                 // Leading half of a pair, U+D800..U+DBFF
	LowSurrogate                  // Trailing half of a pair, U+DC00..U+DFFF
)

// String returns a short name for the kind.
func (k UnitKind) String() string {
	switch k {
	case HighSurrogate:
		return "high"
	case LowSurrogate:
		return "low"
	default:
		return "ordinary"
	}
}

// Classify returns the kind of the code unit u.
func Classify(u uint16) UnitKind {
	switch {
	case IsHighSurrogate(u):
		return HighSurrogate
	case IsLowSurrogate(u):
		return LowSurrogate
	default:
		return Ordinary
	}
}

// IsHighSurrogate reports whether u is the leading unit of a surrogate pair.
func IsHighSurrogate(u uint16) bool {
	return surrHighMin <= u && u <= surrHighMax
}

// IsLowSurrogate reports whether u is the trailing unit of a surrogate pair.
func IsLowSurrogate(u uint16) bool {
	return surrLowMin <= u && u <= surrLowMax
}
