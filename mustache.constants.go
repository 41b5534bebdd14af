package mustache

// Delimiter constants - the canonical mustache double-brace syntax
const (
	DefaultOpenDelim  = "{{"
	DefaultCloseDelim = "}}"
)

// Partial resolution constants
const (
	// DefaultPartialExtension is appended to partial names that do not
	// resolve as given.
	DefaultPartialExtension = ".mustache"

	// DefaultMaxPartialDepth bounds nested partial inclusion.
	// Use 0 for unlimited depth.
	DefaultMaxPartialDepth = 16
)

// TagKind identifies the concrete type of a parsed tag.
type TagKind int

// Tag kind constants
const (
	TagKindLiteral TagKind = iota
	TagKindVariable
	TagKindSection
)

// Tag kind name constants (NO MAGIC STRINGS)
const (
	TagKindNameLiteral  = "literal"
	TagKindNameVariable = "variable"
	TagKindNameSection  = "section"
	TagKindNameUnknown  = "unknown"
)

// String returns the tag kind name
func (k TagKind) String() string {
	switch k {
	case TagKindLiteral:
		return TagKindNameLiteral
	case TagKindVariable:
		return TagKindNameVariable
	case TagKindSection:
		return TagKindNameSection
	default:
		return TagKindNameUnknown
	}
}

// Metadata key constants for error context (NO MAGIC STRINGS)
const (
	MetaKeyKind       = "kind"
	MetaKeyLine       = "line"
	MetaKeyColumn     = "column"
	MetaKeyOffset     = "offset"
	MetaKeyKey        = "key"
	MetaKeyExpected   = "expected"
	MetaKeyActual     = "actual"
	MetaKeyDelimiters = "delimiters"
	MetaKeyPartial    = "partial"
	MetaKeyPath       = "path"
	MetaKeyDepth      = "depth"
)
