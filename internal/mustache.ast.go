package internal

import (
	"fmt"
	"strings"
)

// Node is one element of a parsed template tree. The parser emits
// text, variable, and section nodes; RootNode carries the top level.
type Node interface {
	// Type discriminates the concrete node type.
	Type() NodeType

	// Pos reports where the node starts in the source.
	Pos() Position

	// String renders the node for logs and test output.
	String() string
}

// RootNode carries the ordered top-level nodes of one parse.
type RootNode struct {
	Children []Node
}

func (n *RootNode) Type() NodeType { return NodeTypeRoot }

// Pos of the root is the start of the source.
func (n *RootNode) Pos() Position {
	return Position{Offset: 0, Line: 1, Column: 1}
}

// String lists the children one per line.
func (n *RootNode) String() string {
	if len(n.Children) == 0 {
		return "Root{}"
	}
	var sb strings.Builder
	sb.WriteString("Root{")
	for _, child := range n.Children {
		sb.WriteString("\n  ")
		sb.WriteString(child.String())
	}
	sb.WriteString("\n}")
	return sb.String()
}

// preview shortens literal content for String output; template text
// runs can be pages long.
func preview(s string) string {
	if len(s) <= PreviewMaxLength {
		return s
	}
	return s[:PreviewMaxLength-len(PreviewEllipsis)] + PreviewEllipsis
}

// TextNode is a run of literal template text between tags.
type TextNode struct {
	pos     Position
	Content string
}

// NewTextNode builds a text node at pos.
func NewTextNode(content string, pos Position) *TextNode {
	return &TextNode{pos: pos, Content: content}
}

func (n *TextNode) Type() NodeType { return NodeTypeText }

func (n *TextNode) Pos() Position { return n.pos }

func (n *TextNode) String() string {
	return fmt.Sprintf("Text(%q) at %s", preview(n.Content), n.pos)
}

// VariableNode is a substitution point. Unescaped records the escape
// policy for a later renderer: false for {{key}}, true for {{{key}}}
// and {{&key}}.
type VariableNode struct {
	pos       Position
	Key       string
	Unescaped bool
}

// NewVariableNode builds a variable node at pos.
func NewVariableNode(key string, unescaped bool, pos Position) *VariableNode {
	return &VariableNode{pos: pos, Key: key, Unescaped: unescaped}
}

func (n *VariableNode) Type() NodeType { return NodeTypeVariable }

func (n *VariableNode) Pos() Position { return n.pos }

// String marks unescaped variables; escaping is the default.
func (n *VariableNode) String() string {
	if n.Unescaped {
		return fmt.Sprintf("Variable(%q, unescaped) at %s", n.Key, n.pos)
	}
	return fmt.Sprintf("Variable(%q) at %s", n.Key, n.pos)
}

// SectionNode wraps the nodes between {{#key}} (or {{^key}} when
// Inverted) and the matching {{/key}}, in source order.
type SectionNode struct {
	pos      Position
	Key      string
	Inverted bool
	Children []Node
}

// NewSectionNode builds a section node at pos.
func NewSectionNode(key string, inverted bool, children []Node, pos Position) *SectionNode {
	return &SectionNode{pos: pos, Key: key, Inverted: inverted, Children: children}
}

func (n *SectionNode) Type() NodeType { return NodeTypeSection }

func (n *SectionNode) Pos() Position { return n.pos }

// String shows the opening sigil with the child count.
func (n *SectionNode) String() string {
	sigil := SigilSection
	if n.Inverted {
		sigil = SigilInverted
	}
	return fmt.Sprintf("Section(%c%s, %d children) at %s", sigil, n.Key, len(n.Children), n.pos)
}
