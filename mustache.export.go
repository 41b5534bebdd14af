package mustache

import (
	json "github.com/goccy/go-json"
	"github.com/itsatony/go-cuserr"
)

// Export error messages
const (
	ErrMsgExportFailed = "template export failed"
)

// ErrCodeExport categorizes serialization failures
const (
	ErrCodeExport = "MUSTACHE_EXPORT"
)

// ExportJSON serializes the parsed tag tree to a stable JSON shape,
// an array of kind-discriminated tag objects. Intended for tooling
// and golden tests.
func (t *Template) ExportJSON() ([]byte, error) {
	data, err := json.Marshal(t.tags)
	if err != nil {
		return nil, cuserr.WrapStdError(err, ErrCodeExport, ErrMsgExportFailed)
	}
	return data, nil
}

// MarshalJSON encodes the literal as {"kind":"literal","text":...}.
func (t *LiteralTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}{
		Kind: TagKindNameLiteral,
		Text: t.Text,
	})
}

// MarshalJSON encodes the variable with its key and escape flag.
func (t *VariableTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind      string `json:"kind"`
		Key       string `json:"key"`
		Unescaped bool   `json:"unescaped"`
	}{
		Kind:      TagKindNameVariable,
		Key:       t.Key,
		Unescaped: t.Unescaped,
	})
}

// MarshalJSON encodes the section with its nested children.
func (t *SectionTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string `json:"kind"`
		Key      string `json:"key"`
		Inverted bool   `json:"inverted"`
		Children []Tag  `json:"children"`
	}{
		Kind:     TagKindNameSection,
		Key:      t.Key,
		Inverted: t.Inverted,
		Children: t.Children,
	})
}
