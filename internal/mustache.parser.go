package internal

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Loader supplies the byte content of partial template files.
// Implementations live outside this package; the parser only asks for
// the content at a path and treats any failure as fatal.
type Loader interface {
	Load(path string) ([]byte, error)
}

// ParserConfig holds parser configuration
type ParserConfig struct {
	OpenDelim  string // Opening delimiter (default: "{{")
	CloseDelim string // Closing delimiter (default: "}}")
	BaseDir    string // Base directory for partial resolution
	Loader     Loader // File loader for partials (nil disables partials)
	MaxDepth   int    // Maximum partial inclusion depth (0 = unlimited)
}

// DefaultParserConfig returns the default parser configuration
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		OpenDelim:  StrDefaultOpenDelim,
		CloseDelim: StrDefaultCloseDelim,
		MaxDepth:   DefaultMaxPartialDepth,
	}
}

// parseState carries the mutable scanning state through recursive
// calls. It is passed by value and returned updated: a delimiter
// directive changes the state for everything scanned after it,
// including text that follows a section close or a partial inclusion.
type parseState struct {
	openDelim  string
	closeDelim string
	baseDir    string
	depth      int
}

// seqResult is the outcome of scanning one tag sequence. A sequence
// ends either at end of input (closed=false) or at a section close tag
// (closed=true, key names the closed section). The caller decides
// which terminator is legal in its context.
type seqResult struct {
	nodes  []Node
	state  parseState
	closed bool
	key    string
	pos    Position
}

// Parser is a recursive-descent parser for mustache template source
type Parser struct {
	scanner *Scanner
	config  ParserConfig
	logger  *zap.Logger
}

// NewParser creates a parser with default configuration
func NewParser(source string, logger *zap.Logger) *Parser {
	return NewParserWithConfig(source, DefaultParserConfig(), logger)
}

// NewParserWithConfig creates a parser with custom configuration
func NewParserWithConfig(source string, config ParserConfig, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.OpenDelim == StringValueEmpty {
		config.OpenDelim = StrDefaultOpenDelim
	}
	if config.CloseDelim == StringValueEmpty {
		config.CloseDelim = StrDefaultCloseDelim
	}
	logger.Debug(LogMsgParserCreated, zap.Int(LogFieldSource, len(source)))
	return &Parser{
		scanner: NewScanner(source, logger),
		config:  config,
		logger:  logger,
	}
}

// Parse consumes the whole source and returns the AST root node
func (p *Parser) Parse() (*RootNode, error) {
	p.logger.Debug(LogMsgParseStart,
		zap.String(LogFieldOpenDelim, p.config.OpenDelim),
		zap.String(LogFieldCloseDelim, p.config.CloseDelim))

	state := parseState{
		openDelim:  p.config.OpenDelim,
		closeDelim: p.config.CloseDelim,
		baseDir:    p.config.BaseDir,
	}
	nodes, _, err := p.parseWithState(state)
	if err != nil {
		return nil, err
	}

	root := &RootNode{Children: nodes}
	p.logger.Debug(LogMsgParseEnd, zap.Int(LogFieldNodes, len(nodes)))
	return root, nil
}

// parseWithState runs the whole source under the given state and
// reports the final state back. Partial splicing uses the returned
// state to carry delimiter changes out of the partial.
func (p *Parser) parseWithState(state parseState) ([]Node, parseState, error) {
	res, err := p.parseSequence(state)
	if err != nil {
		return nil, state, err
	}
	if res.closed {
		return nil, state, newCloseWithoutOpenError(res.key, res.pos)
	}
	return res.nodes, res.state, nil
}

// parseSequence scans tags until end of input or a section close tag.
// The scanner cursor is shared across recursive calls; state is not.
func (p *Parser) parseSequence(state parseState) (seqResult, error) {
	var nodes []Node

	for {
		idx := p.scanner.Index(state.openDelim)
		if idx < 0 {
			// Terminal: the remainder becomes a trailing text node,
			// kept even when empty.
			pos := p.scanner.Position()
			rest := p.scanner.AdvanceToEnd()
			nodes = append(nodes, NewTextNode(rest, pos))
			return seqResult{nodes: nodes, state: state, pos: pos}, nil
		}

		textPos := p.scanner.Position()
		if text := p.scanner.AdvanceTo(idx); text != StringValueEmpty {
			nodes = append(nodes, NewTextNode(text, textPos))
		}

		tagPos := p.scanner.Position()
		p.scanner.Skip(len(state.openDelim))

		// An extra brace directly after the open delimiter switches to
		// the {{{key}}} unescaped form.
		if p.scanner.HasPrefix(StrTripleOpen) {
			p.scanner.Skip(len(StrTripleOpen))
			node, err := p.parseTriple(state, tagPos)
			if err != nil {
				return seqResult{}, err
			}
			nodes = append(nodes, node)
			continue
		}

		end := p.scanner.Index(state.closeDelim)
		if end < 0 {
			return seqResult{}, newUnterminatedTagError(tagPos)
		}
		inner := p.scanner.AdvanceTo(end)
		p.scanner.Skip(len(state.closeDelim))

		// The classifier inspects the first character after leading
		// spaces; the sigil selects the tag variant.
		content := TrimLeadingSpaces(inner)
		if content == StringValueEmpty {
			nodes = append(nodes, NewVariableNode(StringValueEmpty, false, tagPos))
			continue
		}

		switch content[0] {
		case SigilUnescaped:
			key := TrimSpaces(content[1:])
			nodes = append(nodes, NewVariableNode(key, true, tagPos))

		case SigilSection, SigilInverted:
			key := TrimSpaces(content[1:])
			inverted := content[0] == SigilInverted
			res, err := p.parseSequence(state)
			if err != nil {
				return seqResult{}, err
			}
			if !res.closed {
				return seqResult{}, newUnclosedSectionError(key, tagPos)
			}
			if res.key != key {
				return seqResult{}, newMismatchedCloseError(key, res.key, res.pos)
			}
			nodes = append(nodes, NewSectionNode(key, inverted, res.nodes, tagPos))
			// Delimiter changes made inside the section stay in effect.
			state = res.state

		case SigilDelims:
			next, err := p.applyDelimiterDirective(state, content, tagPos)
			if err != nil {
				return seqResult{}, err
			}
			state = next

		case SigilComment:
			// Comments vanish without a node.

		case SigilClose:
			key := TrimSpaces(content[1:])
			return seqResult{nodes: nodes, state: state, closed: true, key: key, pos: tagPos}, nil

		case SigilPartial:
			name := TrimSpaces(content[1:])
			spliced, next, err := p.splicePartial(state, name, tagPos)
			if err != nil {
				return seqResult{}, err
			}
			nodes = append(nodes, spliced...)
			state = next

		default:
			// Bare variable: leading spaces were consumed above, so
			// only the tail is trimmed here.
			key := TrimTrailingSpaces(content)
			nodes = append(nodes, NewVariableNode(key, false, tagPos))
		}
	}
}

// parseTriple scans the remainder of a {{{key}}} form. The opening
// delimiter and the extra brace are already consumed.
func (p *Parser) parseTriple(state parseState, tagPos Position) (Node, error) {
	terminator := StrTripleClose + state.closeDelim
	end := p.scanner.Index(terminator)
	if end < 0 {
		return nil, newUnterminatedTripleError(tagPos)
	}
	inner := p.scanner.AdvanceTo(end)
	p.scanner.Skip(len(terminator))
	return NewVariableNode(TrimSpaces(inner), true, tagPos), nil
}

// applyDelimiterDirective handles {{=<open> <close>=}}. The content
// argument is the head-trimmed tag innard, starting with '='.
func (p *Parser) applyDelimiterDirective(state parseState, content string, pos Position) (parseState, error) {
	body := TrimTrailingSpaces(content)
	if len(body) < 2 || body[len(body)-1] != CharEquals {
		return state, newBadDirectiveError(content, pos)
	}
	body = body[1 : len(body)-1]
	if strings.ContainsRune(body, CharEquals) {
		return state, newBadDirectiveError(content, pos)
	}

	var tokens []string
	for _, tok := range strings.Split(body, StrSpace) {
		if tok != StringValueEmpty {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) != 2 {
		return state, newBadDirectiveError(content, pos)
	}

	state.openDelim = tokens[0]
	state.closeDelim = tokens[1]
	p.logger.Debug(LogMsgDelimsChanged,
		zap.String(LogFieldOpenDelim, state.openDelim),
		zap.String(LogFieldCloseDelim, state.closeDelim))
	return state, nil
}

// splicePartial loads and parses a partial template, returning its
// tags for inline splicing together with the state the partial's parse
// ended with. The partial is parsed under the current state, so a
// delimiter directive inside it persists into the including template.
func (p *Parser) splicePartial(state parseState, name string, pos Position) ([]Node, parseState, error) {
	if p.config.Loader == nil {
		return nil, state, newPartialNotFoundError(name, name, pos, nil)
	}
	if p.config.MaxDepth > 0 && state.depth >= p.config.MaxDepth {
		return nil, state, newPartialDepthError(name, state.depth, pos)
	}

	content, path, err := p.loadPartial(state, name)
	if err != nil {
		return nil, state, newPartialNotFoundError(name, path, pos, err)
	}
	p.logger.Debug(LogMsgPartialResolved,
		zap.String(LogFieldPartial, name),
		zap.String(LogFieldPath, path),
		zap.Int(LogFieldDepth, state.depth))

	sub := &Parser{
		scanner: NewScanner(string(content), p.logger),
		config:  p.config,
		logger:  p.logger,
	}
	subState := state
	subState.depth = state.depth + 1
	nodes, endState, err := sub.parseWithState(subState)
	if err != nil {
		return nil, state, err
	}

	// Only the depth counter rolls back; delimiters carry forward.
	endState.depth = state.depth
	return nodes, endState, nil
}

// loadPartial resolves a partial name to file content: the literal
// name first, then with the .mustache suffix appended.
func (p *Parser) loadPartial(state parseState, name string) ([]byte, string, error) {
	path := name
	if state.baseDir != StringValueEmpty {
		path = filepath.Join(state.baseDir, name)
	}
	content, err := p.config.Loader.Load(path)
	if err == nil {
		return content, path, nil
	}
	if strings.HasSuffix(name, StrPartialExt) {
		return nil, path, err
	}
	extPath := path + StrPartialExt
	extContent, extErr := p.config.Loader.Load(extPath)
	if extErr != nil {
		return nil, path, err
	}
	return extContent, extPath, nil
}

// Error helpers

func newUnterminatedTagError(pos Position) error {
	return &ParseError{Kind: ParseErrorMalformed, Message: ErrMsgUnterminatedTag, Position: pos}
}

func newUnterminatedTripleError(pos Position) error {
	return &ParseError{Kind: ParseErrorMalformed, Message: ErrMsgUnterminatedTriple, Position: pos}
}

func newUnclosedSectionError(key string, pos Position) error {
	return &ParseError{Kind: ParseErrorMalformed, Message: ErrMsgUnclosedSection, Position: pos, Key: key, Expected: key}
}

func newMismatchedCloseError(expected, actual string, pos Position) error {
	return &ParseError{Kind: ParseErrorMalformed, Message: ErrMsgMismatchedClose, Position: pos, Expected: expected, Actual: actual}
}

func newCloseWithoutOpenError(key string, pos Position) error {
	return &ParseError{Kind: ParseErrorMalformed, Message: ErrMsgCloseWithoutOpen, Position: pos, Key: key, Actual: key}
}

func newBadDirectiveError(directive string, pos Position) error {
	return &ParseError{Kind: ParseErrorMalformed, Message: ErrMsgBadDelimDirective, Position: pos, Directive: directive}
}

func newPartialNotFoundError(name, path string, pos Position, cause error) error {
	return &ParseError{Kind: ParseErrorFileNotFound, Message: ErrMsgPartialNotFound, Position: pos, Partial: name, Path: path, Cause: cause}
}

func newPartialDepthError(name string, depth int, pos Position) error {
	return &ParseError{Kind: ParseErrorMalformed, Message: ErrMsgPartialDepth, Position: pos, Partial: name, Depth: depth}
}

// ParseErrorKind discriminates the two fatal failure families
type ParseErrorKind int

// Parse error kind constants
const (
	ParseErrorMalformed ParseErrorKind = iota
	ParseErrorFileNotFound
)

// ParseError is the typed error produced by the parser. The public
// package converts it into its error surface.
type ParseError struct {
	Kind      ParseErrorKind
	Message   string
	Position  Position
	Key       string // section key involved, if any
	Expected  string // expected close key for mismatches
	Actual    string // actual close key for mismatches
	Directive string // raw directive text for delimiter errors
	Partial   string // partial name for file and depth errors
	Path      string // resolved path for file errors
	Depth     int    // inclusion depth for depth errors
	Cause     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(ErrFmtWithPosition, e.Message, e.Position.String())
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Parser error message constants
const (
	ErrMsgUnterminatedTag    = "unterminated tag"
	ErrMsgUnterminatedTriple = "unterminated triple mustache"
	ErrMsgUnclosedSection    = "unclosed section"
	ErrMsgMismatchedClose    = "mismatched section close"
	ErrMsgCloseWithoutOpen   = "section close without open"
	ErrMsgBadDelimDirective  = "malformed delimiter directive"
	ErrMsgPartialNotFound    = "partial not found"
	ErrMsgPartialDepth       = "maximum partial inclusion depth exceeded"
)
