package refscan

import "strings"

// The JS lexer has no JSX mode: element text such as "Don't" would be read
// as an unterminated string. Elements are skipped at byte level and lexing
// resumes after the closing tag. Any shape not recognized here makes the
// skipper give up and leaves the input to the lexer.

// startsJSX reports whether the '<' at src[i] can open an element or fragment.
func startsJSX(src string, i int) bool {
	if i+1 >= len(src) {
		return false
	}
	c := src[i+1]
	return c == '>' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$'
}

// skipJSXElement returns the offset just past the element starting at src[i].
func skipJSXElement(src string, i int) (int, bool) {
	i = skipSpace(src, i+1)
	if i < len(src) && src[i] == '>' {
		return skipJSXChildren(src, i+1, "")
	}

	name, i := readJSXName(src, i)
	if name == "" {
		return 0, false
	}

	for {
		i = skipSpace(src, i)
		if i >= len(src) {
			return 0, false
		}
		switch c := src[i]; {
		case c == '/':
			if i+1 < len(src) && src[i+1] == '>' {
				return i + 2, true
			}
			return 0, false
		case c == '>':
			return skipJSXChildren(src, i+1, name)
		case c == '{':
			end, ok := skipBraces(src, i)
			if !ok {
				return 0, false
			}
			i = end
		case c == '"' || c == '\'':
			end := indexByteFrom(src, i+1, c)
			if end < 0 {
				return 0, false
			}
			i = end + 1
		case c == '=':
			i++
		case isJSXNameByte(c):
			_, i = readJSXName(src, i)
		default:
			return 0, false
		}
	}
}

// skipJSXChildren skips element content up to and including the closing tag for name.
func skipJSXChildren(src string, i int, name string) (int, bool) {
	for i < len(src) {
		switch src[i] {
		case '{':
			end, ok := skipBraces(src, i)
			if !ok {
				return 0, false
			}
			i = end
		case '<':
			j := skipSpace(src, i+1)
			if j < len(src) && src[j] == '/' {
				closing, k := readJSXName(src, skipSpace(src, j+1))
				k = skipSpace(src, k)
				if k >= len(src) || src[k] != '>' || closing != name {
					return 0, false
				}
				return k + 1, true
			}
			end, ok := skipJSXElement(src, i)
			if !ok {
				return 0, false
			}
			i = end
		default:
			i++
		}
	}
	return 0, false
}

// skipBraces skips a JSX expression container starting at src[i] == '{'.
func skipBraces(src string, i int) (int, bool) {
	depth := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '{':
			depth++
			i++
		case c == '}':
			depth--
			i++
			if depth == 0 {
				return i, true
			}
		case c == '"' || c == '\'':
			end, ok := skipQuoted(src, i)
			if !ok {
				return 0, false
			}
			i = end
		case c == '`':
			end, ok := skipTemplate(src, i)
			if !ok {
				return 0, false
			}
			i = end
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			end := indexByteFrom(src, i, '\n')
			if end < 0 {
				return 0, false
			}
			i = end
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := indexFrom(src, i+2, "*/")
			if end < 0 {
				return 0, false
			}
			i = end + 2
		case c == '<' && startsJSX(src, i) && jsxOperandPosition(src, i):
			end, ok := skipJSXElement(src, i)
			if !ok {
				return 0, false
			}
			i = end
		default:
			i++
		}
	}
	return 0, false
}

// jsxOperandPosition reports whether the '<' at src[i] follows a token after
// which an expression starts, as opposed to a comparison.
func jsxOperandPosition(src string, i int) bool {
	j := i - 1
	for j >= 0 && isSpace(src[j]) {
		j--
	}
	if j < 0 {
		return true
	}
	switch src[j] {
	case '(', ',', '=', ':', '?', '&', '|', '{', '[', '!':
		return true
	case '>':
		return j > 0 && src[j-1] == '='
	}
	return j >= 5 && src[j-5:j+1] == "return"
}

func skipQuoted(src string, i int) (int, bool) {
	quote := src[i]
	for i++; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case quote:
			return i + 1, true
		case '\n':
			return 0, false
		}
	}
	return 0, false
}

func skipTemplate(src string, i int) (int, bool) {
	for i++; i < len(src); {
		switch src[i] {
		case '\\':
			i += 2
		case '`':
			return i + 1, true
		case '$':
			if i+1 < len(src) && src[i+1] == '{' {
				end, ok := skipBraces(src, i+1)
				if !ok {
					return 0, false
				}
				i = end
			} else {
				i++
			}
		default:
			i++
		}
	}
	return 0, false
}

func readJSXName(src string, i int) (string, int) {
	start := i
	for i < len(src) && isJSXNameByte(src[i]) {
		i++
	}
	return src[start:i], i
}

func isJSXNameByte(c byte) bool {
	return isIdentByte(c) || c == '-' || c == '.' || c == ':' || c >= 0x80
}

func skipSpace(src string, i int) int {
	for i < len(src) && isSpace(src[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func indexByteFrom(src string, i int, c byte) int {
	if j := strings.IndexByte(src[i:], c); j >= 0 {
		return i + j
	}
	return -1
}

func indexFrom(src string, i int, sub string) int {
	if j := strings.Index(src[i:], sub); j >= 0 {
		return i + j
	}
	return -1
}
