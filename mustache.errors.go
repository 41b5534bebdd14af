package mustache

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-mustache/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Parse errors
	ErrMsgParseFailed = "template parsing failed"

	// File errors
	ErrMsgFileReadFailed = "template file could not be read"

	// Configuration errors
	ErrMsgEmptyOpenDelim  = "open delimiter cannot be empty"
	ErrMsgEmptyCloseDelim = "close delimiter cannot be empty"
	ErrMsgNegativeDepth   = "max partial depth cannot be negative"
)

// Error code constants for categorization
const (
	ErrCodeParse  = "MUSTACHE_PARSE"
	ErrCodeFile   = "MUSTACHE_FILE"
	ErrCodeConfig = "MUSTACHE_CONFIG"
)

// Error kind metadata values, stored under MetaKeyKind
const (
	ErrKindMalformedTemplate = "malformed_template"
	ErrKindFileNotFound      = "file_not_found"
)

// IsMalformedTemplate reports whether err describes a template syntax
// failure: an unterminated tag, an unclosed or mismatched section, or a
// malformed delimiter directive.
func IsMalformedTemplate(err error) bool {
	return errKindIs(err, ErrKindMalformedTemplate)
}

// IsFileNotFound reports whether err describes a template or partial
// file that could not be loaded.
func IsFileNotFound(err error) bool {
	return errKindIs(err, ErrKindFileNotFound)
}

func errKindIs(err error, kind string) bool {
	var cerr *cuserr.CustomError
	if !errors.As(err, &cerr) {
		return false
	}
	got, ok := cerr.GetMetadata(MetaKeyKind)
	return ok && got == kind
}

// wrapParseError converts the parser's typed error into the public
// error surface, preserving position and context as metadata.
func wrapParseError(err error) error {
	if err == nil {
		return nil
	}

	var perr *internal.ParseError
	if !errors.As(err, &perr) {
		return cuserr.WrapStdError(err, ErrCodeParse, ErrMsgParseFailed).
			WithMetadata(MetaKeyKind, ErrKindMalformedTemplate)
	}

	var cerr *cuserr.CustomError
	switch perr.Kind {
	case internal.ParseErrorFileNotFound:
		if perr.Cause != nil {
			cerr = cuserr.WrapStdError(perr.Cause, ErrCodeFile, perr.Message)
		} else {
			cerr = cuserr.NewNotFoundError(MetaKeyPartial, perr.Message)
		}
		cerr = cerr.WithMetadata(MetaKeyKind, ErrKindFileNotFound)
	default:
		cerr = cuserr.NewValidationError(ErrCodeParse, perr.Message).
			WithMetadata(MetaKeyKind, ErrKindMalformedTemplate)
	}

	cerr = cerr.
		WithMetadata(MetaKeyLine, strconv.Itoa(perr.Position.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(perr.Position.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(perr.Position.Offset))

	if perr.Key != "" {
		cerr = cerr.WithMetadata(MetaKeyKey, perr.Key)
	}
	if perr.Expected != "" {
		cerr = cerr.WithMetadata(MetaKeyExpected, perr.Expected)
	}
	if perr.Actual != "" {
		cerr = cerr.WithMetadata(MetaKeyActual, perr.Actual)
	}
	if perr.Directive != "" {
		cerr = cerr.WithMetadata(MetaKeyDelimiters, perr.Directive)
	}
	if perr.Partial != "" {
		cerr = cerr.WithMetadata(MetaKeyPartial, perr.Partial)
	}
	if perr.Path != "" {
		cerr = cerr.WithMetadata(MetaKeyPath, perr.Path)
	}
	if perr.Depth > 0 {
		cerr = cerr.WithMetadata(MetaKeyDepth, strconv.Itoa(perr.Depth))
	}
	return cerr
}

// newFileReadError wraps a top-level template file read failure
func newFileReadError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeFile, ErrMsgFileReadFailed).
		WithMetadata(MetaKeyKind, ErrKindFileNotFound).
		WithMetadata(MetaKeyPath, path)
}

// newConfigError reports an invalid engine configuration
func newConfigError(msg string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg)
}
