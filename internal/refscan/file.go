// Package refscan finds stylesheet imports in TypeScript and JavaScript sources.
package refscan

import (
	"fmt"

	"go.trai.ch/zerr"
)

// ErrParse is returned (wrapped in a *ParseError) when a source file cannot be tokenized.
var ErrParse = zerr.New("failed to parse source file")

// File is the top-level outline of a source file: just enough syntax to
// find its static import declarations.
type File struct {
	Path    string
	Imports []ImportDecl
}

// ImportDecl is a top-level static import declaration.
type ImportDecl struct {
	Line    int             // 1-based line of the import keyword
	Strings []StringLiteral // String literals that are direct children (the module specifier)
}

// StringLiteral is a quoted string as written in the source.
type StringLiteral struct {
	Raw    string // Including the quotes
	Line   int
	Column int
}

// Value returns the literal with its surrounding quotes stripped.
// Escape sequences are kept as written.
func (s StringLiteral) Value() string {
	if len(s.Raw) >= 2 {
		return s.Raw[1 : len(s.Raw)-1]
	}
	return s.Raw
}

// ParseError locates a tokenizer failure.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
}

// Unwrap lets callers match ErrParse with errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrParse
}
