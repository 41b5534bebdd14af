package mustache

import (
	"github.com/itsatony/go-mustache/internal"
)

// Tag is one parsed element of a template. The concrete types are
// *LiteralTag, *VariableTag, and *SectionTag.
type Tag interface {
	// Kind identifies the concrete tag type.
	Kind() TagKind

	// sealed keeps the set of implementations closed.
	sealed()
}

// LiteralTag is raw template text between tags. A parsed template
// always ends with a LiteralTag, empty when the source ends on a tag.
type LiteralTag struct {
	Text string
}

// Kind returns TagKindLiteral
func (t *LiteralTag) Kind() TagKind { return TagKindLiteral }

func (t *LiteralTag) sealed() {}

// VariableTag substitutes a value for a key. Unescaped is true for the
// {{&key}} and {{{key}}} forms, false for plain {{key}}.
type VariableTag struct {
	Key       string
	Unescaped bool
}

// Kind returns TagKindVariable
func (t *VariableTag) Kind() TagKind { return TagKindVariable }

func (t *VariableTag) sealed() {}

// SectionTag wraps the tags between {{#key}} (or {{^key}} when
// Inverted) and the matching {{/key}}.
type SectionTag struct {
	Key      string
	Inverted bool
	Children []Tag
}

// Kind returns TagKindSection
func (t *SectionTag) Kind() TagKind { return TagKindSection }

func (t *SectionTag) sealed() {}

// tagsFromNodes converts the parser's node tree into the public tag
// representation. Children are always non-nil so parsed trees compare
// cleanly.
func tagsFromNodes(nodes []internal.Node) []Tag {
	tags := make([]Tag, 0, len(nodes))
	for _, node := range nodes {
		switch n := node.(type) {
		case *internal.TextNode:
			tags = append(tags, &LiteralTag{Text: n.Content})
		case *internal.VariableNode:
			tags = append(tags, &VariableTag{Key: n.Key, Unescaped: n.Unescaped})
		case *internal.SectionNode:
			tags = append(tags, &SectionTag{
				Key:      n.Key,
				Inverted: n.Inverted,
				Children: tagsFromNodes(n.Children),
			})
		}
	}
	return tags
}
