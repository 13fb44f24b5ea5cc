package refscan

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// regexKeywords are the keywords after which a slash starts a regular expression.
var regexKeywords = map[string]struct{}{
	"return": {}, "typeof": {}, "case": {}, "do": {}, "else": {}, "in": {},
	"of": {}, "new": {}, "delete": {}, "void": {}, "throw": {},
	"instanceof": {}, "yield": {}, "await": {},
}

// statementHeads are the keywords whose parenthesized head may be followed by
// a statement, so a slash after the closing paren starts a regular expression.
var statementHeads = map[string]struct{}{
	"if": {}, "while": {}, "for": {}, "with": {},
}

// jsxExtensions are the file types parsed with JSX enabled.
var jsxExtensions = map[string]struct{}{
	".tsx": {}, ".jsx": {}, ".js": {}, ".mjs": {}, ".cjs": {},
}

type declState uint8

const (
	declNone      declState = iota
	declKeyword             // saw "import" at top level
	declClause              // inside an import clause
	declSpecifier           // saw "from", expecting the module specifier
)

type parser struct {
	src    string
	path   string
	jsx    bool
	lexer  *js.Lexer
	offset int // absolute offset of the next token
	depth  int
	prev   string // last significant token
	before string // significant token before prev

	parens    []bool // open parens, true for a statement head
	afterHead bool   // prev closed a statement head

	state declState
	decl  ImportDecl
	file  *File
}

// Parse reads the top-level static import declarations of a TypeScript or
// JavaScript source. Only the syntax needed to tell top-level imports apart
// from dynamic imports, nested code and string contents is understood.
func Parse(path string, content []byte) (*File, error) {
	p := &parser{
		src:  string(content),
		path: path,
		file: &File{Path: path},
	}
	_, p.jsx = jsxExtensions[strings.ToLower(filepath.Ext(path))]

	start := 0
	if strings.HasPrefix(p.src, "#!") {
		start = strings.IndexByte(p.src, '\n')
		if start < 0 {
			start = len(p.src)
		}
	}
	p.restart(start)

	if err := p.run(); err != nil {
		return nil, err
	}
	return p.file, nil
}

func (p *parser) restart(offset int) {
	p.offset = offset
	p.lexer = js.NewLexer(parse.NewInputString(p.src[offset:]))
}

func (p *parser) run() error {
	for {
		tt, text := p.lexer.Next()
		if tt == js.ErrorToken {
			err := p.lexer.Err()
			if err == nil || errors.Is(err, io.EOF) {
				return nil
			}
			// Decorators are not part of the lexer's grammar.
			if p.offset < len(p.src) && p.src[p.offset] == '@' {
				p.restart(p.offset + 1)
				p.shift("@")
				continue
			}
			return p.errorAt(p.offset, err)
		}

		start := p.offset
		p.offset += len(text)

		switch tt {
		case js.WhitespaceToken, js.LineTerminatorToken, js.CommentToken, js.CommentLineTerminatorToken:
			continue
		}

		tok := string(text)
		if (tok == "/" || tok == "/=") && p.exprAllowed() {
			tt, text = p.lexer.RegExp()
			if tt == js.ErrorToken {
				return p.errorAt(start, p.lexer.Err())
			}
			p.offset = start + len(text)
			tok = string(text)
		}

		if tok == "<" && p.jsx && p.exprAllowed() && startsJSX(p.src, start) {
			if end, ok := skipJSXElement(p.src, start); ok {
				p.restart(end)
				p.shift(")")
				continue
			}
		}

		p.token(tt, tok, start)
		head := p.trackParens(tok)
		p.shift(tok)
		p.afterHead = head
	}
}

func (p *parser) shift(tok string) {
	p.before, p.prev = p.prev, tok
	p.afterHead = false
}

// exprAllowed reports whether an expression may start at the next token.
func (p *parser) exprAllowed() bool {
	return p.afterHead || regexAllowed(p.prev)
}

// trackParens reports whether tok closes the head of an if, while, for or
// with statement.
func (p *parser) trackParens(tok string) bool {
	switch tok {
	case "(":
		_, head := statementHeads[p.prev]
		if p.before == "." || p.before == "?." {
			head = false
		}
		p.parens = append(p.parens, head)
	case ")":
		if n := len(p.parens); n > 0 {
			head := p.parens[n-1]
			p.parens = p.parens[:n-1]
			return head
		}
	}
	return false
}

// token advances the import declaration state machine by one significant token.
func (p *parser) token(tt js.TokenType, tok string, start int) {
	switch p.state {
	case declKeyword:
		p.state = declNone
		switch {
		case tok == "(" || tok == ".":
			// import(...) and import.meta are expressions
		case tt == js.StringToken:
			p.emit(tok, start)
		default:
			p.state = declClause
			p.clause(tok)
		}
	case declClause:
		p.clause(tok)
	case declSpecifier:
		if tt == js.StringToken {
			p.emit(tok, start)
			p.state = declNone
		} else {
			p.state = declClause
			p.clause(tok)
		}
	case declNone:
		if tok == "import" && p.depth == 0 && p.prev != "." && p.prev != "?." {
			p.state = declKeyword
			p.decl = ImportDecl{Line: p.line(start)}
		}
	}

	switch tok {
	case "(", "[", "{":
		p.depth++
	case ")", "]", "}":
		if p.depth > 0 {
			p.depth--
		}
	}
}

// clause handles a token inside an import clause, before the depth update.
func (p *parser) clause(tok string) {
	if p.depth != 0 {
		return
	}
	switch tok {
	case "from":
		p.state = declSpecifier
	case "=", ";":
		// import x = require(...) or a malformed clause
		p.state = declNone
	}
}

func (p *parser) emit(raw string, start int) {
	p.decl.Strings = append(p.decl.Strings, StringLiteral{
		Raw:    raw,
		Line:   p.line(start),
		Column: p.column(start),
	})
	p.file.Imports = append(p.file.Imports, p.decl)
	p.decl = ImportDecl{}
}

func (p *parser) line(offset int) int {
	return strings.Count(p.src[:offset], "\n") + 1
}

func (p *parser) column(offset int) int {
	return offset - strings.LastIndexByte(p.src[:offset], '\n')
}

func (p *parser) errorAt(offset int, err error) error {
	if offset > len(p.src) {
		offset = len(p.src)
	}
	msg := "unexpected input"
	var perr *parse.Error
	if errors.As(err, &perr) {
		msg = perr.Message
	} else if err != nil {
		msg = err.Error()
	}
	return &ParseError{
		Path:    p.path,
		Line:    p.line(offset),
		Column:  p.column(offset),
		Message: msg,
	}
}

// regexAllowed reports whether an expression may start after prev, which
// decides between division and a regular expression (or a JSX element).
func regexAllowed(prev string) bool {
	if prev == "" {
		return true
	}
	if strings.HasSuffix(prev, "${") {
		return true
	}
	switch c := prev[0]; {
	case isIdentByte(c) || c >= 0x80 || c == '#':
		_, ok := regexKeywords[prev]
		return ok
	case c == '"' || c == '\'' || c == '`':
		return false
	}
	switch prev {
	case ")", "]", "++", "--":
		return false
	}
	return true
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
