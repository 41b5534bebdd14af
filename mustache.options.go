package mustache

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	openDelim  string
	closeDelim string
	baseDir    string
	loader     FileLoader
	maxDepth   int
	logger     *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		openDelim:  DefaultOpenDelim,
		closeDelim: DefaultCloseDelim,
		loader:     NewOSLoader(),
		maxDepth:   DefaultMaxPartialDepth,
		logger:     nil,
	}
}

// validate checks the assembled configuration.
func (c *engineConfig) validate() error {
	if c.openDelim == "" {
		return newConfigError(ErrMsgEmptyOpenDelim)
	}
	if c.closeDelim == "" {
		return newConfigError(ErrMsgEmptyCloseDelim)
	}
	if c.maxDepth < 0 {
		return newConfigError(ErrMsgNegativeDepth)
	}
	return nil
}

// WithDelimiters sets the starting delimiters for parsed templates.
// Templates can still switch delimiters mid-stream with a
// {{=<open> <close>=}} tag.
// Default: "{{" and "}}"
func WithDelimiters(open, close string) Option {
	return func(c *engineConfig) {
		c.openDelim = open
		c.closeDelim = close
	}
}

// WithLoader sets the file loader used for partials and ParseFile.
// A nil loader disables partial resolution; partial tags then fail
// with a file not found error.
// Default: NewOSLoader()
func WithLoader(loader FileLoader) Option {
	return func(c *engineConfig) {
		c.loader = loader
	}
}

// WithBaseDir sets the directory partial names are resolved against.
// Default: "" (partial names are used as given)
func WithBaseDir(dir string) Option {
	return func(c *engineConfig) {
		c.baseDir = dir
	}
}

// WithMaxPartialDepth sets the maximum partial inclusion depth.
// Use 0 for unlimited depth.
// Default: 16
func WithMaxPartialDepth(depth int) Option {
	return func(c *engineConfig) {
		c.maxDepth = depth
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
