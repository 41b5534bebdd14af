package internal

// NodeType identifies AST node types
type NodeType int

// Node type constants
const (
	NodeTypeRoot NodeType = iota
	NodeTypeText
	NodeTypeVariable
	NodeTypeSection
)

// Node type string names for debugging
const (
	NodeTypeNameRoot     = "ROOT"
	NodeTypeNameText     = "TEXT"
	NodeTypeNameVariable = "VARIABLE"
	NodeTypeNameSection  = "SECTION"
)

// String returns the string representation of the node type
func (n NodeType) String() string {
	switch n {
	case NodeTypeRoot:
		return NodeTypeNameRoot
	case NodeTypeText:
		return NodeTypeNameText
	case NodeTypeVariable:
		return NodeTypeNameVariable
	case NodeTypeSection:
		return NodeTypeNameSection
	default:
		return NodeTypeNameRoot
	}
}

// Sigil characters selecting a tag variant
const (
	SigilUnescaped byte = '&'
	SigilSection   byte = '#'
	SigilInverted  byte = '^'
	SigilDelims    byte = '='
	SigilComment   byte = '!'
	SigilClose     byte = '/'
	SigilPartial   byte = '>'
)

// Character constants
const (
	CharSpace   = ' '
	CharNewline = '\n'
	CharEquals  = '='
)

// String constants for delimiter matching
const (
	StrDefaultOpenDelim  = "{{"
	StrDefaultCloseDelim = "}}"
	StrTripleOpen        = "{" // extra brace after the open delimiter
	StrTripleClose       = "}" // brace preceding the close delimiter
	StrSpace             = " "
)

// StrPartialExt is appended to a partial name when the literal name
// does not resolve to a readable file (mirrors the public constant).
const StrPartialExt = ".mustache"

// StringValueEmpty is the empty string value
const StringValueEmpty = ""

// DefaultMaxPartialDepth bounds recursive partial inclusion
// (mirrors the public constant).
const DefaultMaxPartialDepth = 16

// Preview limits for node String() output
const (
	PreviewMaxLength = 40
	PreviewEllipsis  = "..."
)

// Log message constants
const (
	LogMsgScannerCreated  = "scanner created"
	LogMsgParserCreated   = "parser created"
	LogMsgParseStart      = "starting parse"
	LogMsgParseEnd        = "parse complete"
	LogMsgDelimsChanged   = "delimiters changed"
	LogMsgPartialResolved = "partial resolved"
)

// Log field names
const (
	LogFieldSource     = "source_length"
	LogFieldNodes      = "node_count"
	LogFieldOpenDelim  = "open_delim"
	LogFieldCloseDelim = "close_delim"
	LogFieldPartial    = "partial"
	LogFieldPath       = "path"
	LogFieldDepth      = "depth"
)

// Error format string constants (for Error() methods)
const (
	ErrFmtWithPosition = "%s at %s"
)
