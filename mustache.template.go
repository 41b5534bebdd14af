package mustache

import (
	"sort"

	"github.com/itsatony/go-mustache/internal"
)

// Template is the parsed form of one mustache source. It is immutable
// and safe for unsynchronized concurrent reads.
type Template struct {
	source  string
	baseDir string
	tags    []Tag
}

// newTemplate wraps the parser output in the public representation.
func newTemplate(source, baseDir string, root *internal.RootNode) *Template {
	return &Template{
		source:  source,
		baseDir: baseDir,
		tags:    tagsFromNodes(root.Children),
	}
}

// Tags returns the top-level tag sequence in source order. The slice
// is shared; callers must treat it as read-only.
func (t *Template) Tags() []Tag {
	return t.tags
}

// Source returns the template source the tags were parsed from.
func (t *Template) Source() string {
	return t.source
}

// BaseDir returns the directory partials were resolved against.
func (t *Template) BaseDir() string {
	return t.baseDir
}

// Walk visits every tag depth-first in source order. Returning false
// from fn skips the children of the current tag; siblings are still
// visited.
func (t *Template) Walk(fn func(Tag) bool) {
	walkTags(t.tags, fn)
}

func walkTags(tags []Tag, fn func(Tag) bool) {
	for _, tag := range tags {
		descend := fn(tag)
		if section, ok := tag.(*SectionTag); ok && descend {
			walkTags(section.Children, fn)
		}
	}
}

// Variables returns the unique variable keys referenced anywhere in
// the template, sorted. Section keys are not included.
func (t *Template) Variables() []string {
	seen := make(map[string]struct{})
	t.Walk(func(tag Tag) bool {
		if variable, ok := tag.(*VariableTag); ok {
			seen[variable.Key] = struct{}{}
		}
		return true
	})
	return sortedKeys(seen)
}

// Sections returns the unique section keys in the template, sorted.
// Inverted and regular sections share the same namespace.
func (t *Template) Sections() []string {
	seen := make(map[string]struct{})
	t.Walk(func(tag Tag) bool {
		if section, ok := tag.(*SectionTag); ok {
			seen[section.Key] = struct{}{}
		}
		return true
	})
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// TemplateStats summarizes the shape of a parsed template.
type TemplateStats struct {
	Literals        int // literal tag count, nested included
	Variables       int // variable tag count, nested included
	Sections        int // section tag count, nested included
	MaxSectionDepth int // deepest section nesting, 0 without sections
	TextBytes       int // total bytes of literal text
}

// Stats computes tag counts and nesting depth in one pass.
func (t *Template) Stats() TemplateStats {
	var stats TemplateStats
	statTags(t.tags, 1, &stats)
	return stats
}

func statTags(tags []Tag, depth int, stats *TemplateStats) {
	for _, tag := range tags {
		switch tt := tag.(type) {
		case *LiteralTag:
			stats.Literals++
			stats.TextBytes += len(tt.Text)
		case *VariableTag:
			stats.Variables++
		case *SectionTag:
			stats.Sections++
			if depth > stats.MaxSectionDepth {
				stats.MaxSectionDepth = depth
			}
			statTags(tt.Children, depth+1, stats)
		}
	}
}
