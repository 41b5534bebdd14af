package internal

import "fmt"

// Position represents a location in the template source
type Position struct {
	Offset int // Byte offset from start of input
	Line   int // Line number (1-indexed)
	Column int // Column number (1-indexed)
}

// String returns a human-readable representation of the position
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}
