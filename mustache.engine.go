package mustache

import (
	"os"
	"path/filepath"

	"github.com/itsatony/go-mustache/internal"
	"go.uber.org/zap"
)

// Engine is the entry point for parsing mustache templates. It carries
// the configuration shared across parses: initial delimiters, partial
// loading, depth limit, and logging. An Engine is immutable after New
// and safe for concurrent use.
type Engine struct {
	config *engineConfig
	logger *zap.Logger
}

// New creates a new mustache Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		config: config,
		logger: logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Parse parses template source and returns a Template.
// The returned Template is immutable and can be inspected concurrently.
func (e *Engine) Parse(src []byte) (*Template, error) {
	return e.parse(string(src), e.config.baseDir)
}

// ParseString parses a template from a string.
func (e *Engine) ParseString(src string) (*Template, error) {
	return e.parse(src, e.config.baseDir)
}

// ParseFile loads and parses the template file at path. Partials in
// the file resolve relative to the file's directory unless a base
// directory was configured. The configured loader reads the file; with
// a nil loader the file is read from disk directly.
func (e *Engine) ParseFile(path string) (*Template, error) {
	var (
		content []byte
		err     error
	)
	if e.config.loader != nil {
		content, err = e.config.loader.Load(path)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, newFileReadError(path, err)
	}

	baseDir := e.config.baseDir
	if baseDir == "" {
		baseDir = filepath.Dir(path)
	}
	return e.parse(string(content), baseDir)
}

// parse runs the internal parser under the engine configuration and
// wraps the result.
func (e *Engine) parse(source, baseDir string) (*Template, error) {
	config := internal.ParserConfig{
		OpenDelim:  e.config.openDelim,
		CloseDelim: e.config.closeDelim,
		BaseDir:    baseDir,
		Loader:     e.config.loader,
		MaxDepth:   e.config.maxDepth,
	}
	parser := internal.NewParserWithConfig(source, config, e.logger)
	root, err := parser.Parse()
	if err != nil {
		return nil, wrapParseError(err)
	}
	return newTemplate(source, baseDir, root), nil
}
