package mustache

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireMetadata(t *testing.T, err error, key string) string {
	t.Helper()
	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr), "expected *cuserr.CustomError, got %T", err)
	value, ok := customErr.GetMetadata(key)
	require.True(t, ok, "missing metadata %q", key)
	return value
}

func TestParseErrors_PositionMetadata(t *testing.T) {
	_, err := ParseString("ab\n{{x")
	require.Error(t, err)

	assert.Equal(t, ErrKindMalformedTemplate, requireMetadata(t, err, MetaKeyKind))
	assert.Equal(t, "2", requireMetadata(t, err, MetaKeyLine))
	assert.Equal(t, "1", requireMetadata(t, err, MetaKeyColumn))
	assert.Equal(t, "3", requireMetadata(t, err, MetaKeyOffset))
}

func TestParseErrors_SectionMetadata(t *testing.T) {
	t.Run("mismatched close carries expected and actual", func(t *testing.T) {
		_, err := ParseString("{{#a}}{{/b}}")
		require.Error(t, err)

		assert.Equal(t, "a", requireMetadata(t, err, MetaKeyExpected))
		assert.Equal(t, "b", requireMetadata(t, err, MetaKeyActual))
	})

	t.Run("unclosed section names the key", func(t *testing.T) {
		_, err := ParseString("{{#items}}")
		require.Error(t, err)

		assert.Equal(t, "items", requireMetadata(t, err, MetaKeyKey))
	})

	t.Run("close without open names the key", func(t *testing.T) {
		_, err := ParseString("{{/stray}}")
		require.Error(t, err)

		assert.Equal(t, "stray", requireMetadata(t, err, MetaKeyActual))
	})
}

func TestParseErrors_DirectiveMetadata(t *testing.T) {
	_, err := ParseString("{{=a b c=}}")
	require.Error(t, err)

	assert.True(t, IsMalformedTemplate(err))
	assert.Equal(t, "=a b c=", requireMetadata(t, err, MetaKeyDelimiters))
}

func TestFileErrors_Metadata(t *testing.T) {
	engine := MustNew(WithLoader(NewMapLoader(nil)))

	_, err := engine.ParseString("{{>missing}}")
	require.Error(t, err)

	assert.True(t, IsFileNotFound(err))
	assert.False(t, IsMalformedTemplate(err))
	assert.Equal(t, "missing", requireMetadata(t, err, MetaKeyPartial))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDepthErrors_Metadata(t *testing.T) {
	loader := NewMapLoader(map[string]string{
		"loop.mustache": "{{>loop}}",
	})
	engine := MustNew(WithLoader(loader), WithMaxPartialDepth(2))

	_, err := engine.ParseString("{{>loop}}")
	require.Error(t, err)

	assert.True(t, IsMalformedTemplate(err))
	assert.Equal(t, "loop", requireMetadata(t, err, MetaKeyPartial))
	assert.Equal(t, "2", requireMetadata(t, err, MetaKeyDepth))
}

func TestErrorClassifiers_ForeignErrors(t *testing.T) {
	assert.False(t, IsMalformedTemplate(nil))
	assert.False(t, IsFileNotFound(nil))

	plain := errors.New("plain failure")
	assert.False(t, IsMalformedTemplate(plain))
	assert.False(t, IsFileNotFound(plain))
}

func TestErrorMessages_AreReadable(t *testing.T) {
	_, err := ParseString("{{name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated tag")
}
