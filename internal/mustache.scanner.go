package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Scanner is a byte cursor over template source with line and column
// tracking. It knows nothing about delimiters or grammar; the parser
// drives it by searching for delimiter occurrences and consuming
// ranges.
type Scanner struct {
	source string
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger
}

// NewScanner creates a scanner over the given source
func NewScanner(source string, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgScannerCreated, zap.Int(LogFieldSource, len(source)))
	return &Scanner{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Position returns the current position
func (s *Scanner) Position() Position {
	return Position{
		Offset: s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

// IsAtEnd returns true if the cursor has consumed the whole source
func (s *Scanner) IsAtEnd() bool {
	return s.pos >= len(s.source)
}

// HasPrefix returns true if the remaining source starts with p
func (s *Scanner) HasPrefix(p string) bool {
	return strings.HasPrefix(s.source[s.pos:], p)
}

// Index returns the absolute offset of the next occurrence of substr,
// or -1 if substr does not occur in the remaining source.
func (s *Scanner) Index(substr string) int {
	i := strings.Index(s.source[s.pos:], substr)
	if i < 0 {
		return -1
	}
	return s.pos + i
}

// AdvanceTo consumes source up to the absolute offset and returns the
// consumed text. Offsets at or behind the cursor yield an empty string.
func (s *Scanner) AdvanceTo(offset int) string {
	if offset > len(s.source) {
		offset = len(s.source)
	}
	if offset <= s.pos {
		return StringValueEmpty
	}
	text := s.source[s.pos:offset]
	for s.pos < offset {
		if s.source[s.pos] == CharNewline {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
		s.pos++
	}
	return text
}

// AdvanceToEnd consumes and returns the remaining source
func (s *Scanner) AdvanceToEnd() string {
	return s.AdvanceTo(len(s.source))
}

// Skip consumes n bytes without returning them
func (s *Scanner) Skip(n int) {
	s.AdvanceTo(s.pos + n)
}
