package dts

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// parserState maintains context while collecting exported tokens
type parserState struct {
	seen   map[string]bool
	tokens []string // In order of first appearance
	global bool     // Inside a `:global` selector scope
}

// ParseTokens returns the locally scoped class names and keyframes names a
// CSS module exports, in order of first appearance.
func ParseTokens(content string) ([]string, error) {
	state := &parserState{seen: make(map[string]bool)}
	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			break
		}

		switch tt {
		case css.AtKeywordToken:
			if isKeyframes(string(text)) {
				state.handleKeyframes(lexer)
			}
		case css.ColonToken:
			state.handlePseudo(lexer)
		case css.DelimToken:
			if len(text) == 1 && text[0] == '.' {
				state.handleClass(lexer)
			}
		case css.LeftBraceToken, css.RightBraceToken, css.CommaToken:
			// A bare :global only lasts until the end of the selector
			state.global = false
		}
	}

	return state.tokens, nil
}

// isKeyframes matches @keyframes including vendor-prefixed variants
func isKeyframes(atKeyword string) bool {
	return strings.HasSuffix(strings.ToLower(atKeyword), "keyframes")
}

func (s *parserState) add(name string) {
	if name == "" || s.seen[name] {
		return
	}
	s.seen[name] = true
	s.tokens = append(s.tokens, name)
}

// handleClass reads the identifier following a '.' delimiter
func (s *parserState) handleClass(lexer *css.Lexer) {
	tt, text := lexer.Next()
	if tt != css.IdentToken {
		return
	}
	if !s.global {
		s.add(string(text))
	}
}

// handleKeyframes records the animation name of a @keyframes rule
func (s *parserState) handleKeyframes(lexer *css.Lexer) {
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.IdentToken:
			s.add(string(text))
		case css.StringToken:
			s.add(strings.Trim(string(text), `"'`))
		case css.FunctionToken:
			// @keyframes :global(name) is rare; @keyframes global(name) is not valid CSS
		}
		return
	}
}

// handlePseudo processes the token after a ':' in a selector.
//
// :global(.foo) hides everything inside the parentheses, a bare :global
// hides the rest of the selector, and :local(.foo) is treated as plain.
func (s *parserState) handlePseudo(lexer *css.Lexer) {
	tt, text := lexer.Next()
	switch {
	case tt == css.IdentToken && string(text) == "global":
		s.global = true
	case tt == css.IdentToken && string(text) == "local":
		s.global = false
	case tt == css.FunctionToken && string(text) == "global(":
		skipParenthesized(lexer)
	case tt == css.DelimToken && len(text) == 1 && text[0] == '.':
		// "a:.b" is not valid CSS, but don't lose the class
		s.handleClass(lexer)
	}
}

// skipParenthesized consumes tokens until the parenthesis opened by the
// previous function token is closed
func skipParenthesized(lexer *css.Lexer) {
	depth := 1
	for depth > 0 {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftParenthesisToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		}
	}
}
