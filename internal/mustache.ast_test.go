package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeTypes(t *testing.T) {
	pos := Position{}
	assert.Equal(t, NodeTypeText, NewTextNode("x", pos).Type())
	assert.Equal(t, NodeTypeVariable, NewVariableNode("k", false, pos).Type())
	assert.Equal(t, NodeTypeSection, NewSectionNode("k", false, nil, pos).Type())
	assert.Equal(t, NodeTypeRoot, (&RootNode{}).Type())
}

func TestNodeType_String(t *testing.T) {
	assert.Equal(t, "ROOT", NodeTypeRoot.String())
	assert.Equal(t, "TEXT", NodeTypeText.String())
	assert.Equal(t, "VARIABLE", NodeTypeVariable.String())
	assert.Equal(t, "SECTION", NodeTypeSection.String())
}

func TestTextNode_StringTruncation(t *testing.T) {
	long := strings.Repeat("a", 100)
	node := NewTextNode(long, Position{Line: 1, Column: 1})

	rendered := node.String()
	assert.Contains(t, rendered, PreviewEllipsis)
	assert.NotContains(t, rendered, strings.Repeat("a", PreviewMaxLength-len(PreviewEllipsis)+1))
}

func TestTextNode_StringShortContent(t *testing.T) {
	node := NewTextNode("short", Position{Line: 1, Column: 1})
	assert.Contains(t, node.String(), `"short"`)
	assert.NotContains(t, node.String(), PreviewEllipsis)
}

func TestNode_StringVariants(t *testing.T) {
	pos := Position{Line: 3, Column: 7}

	assert.Contains(t, NewVariableNode("k", true, pos).String(), "unescaped")
	assert.NotContains(t, NewVariableNode("k", false, pos).String(), "unescaped")
	assert.Contains(t, NewSectionNode("s", true, nil, pos).String(), "^")
	assert.Contains(t, NewSectionNode("s", false, nil, pos).String(), "#")
	assert.Contains(t, NewTextNode("x", pos).String(), "line 3, column 7")
}
