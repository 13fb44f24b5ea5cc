package dts

import (
	"sort"
	"strconv"
	"strings"
)

// reservedWords cannot be used as `export const` names
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true, "let": true, "static": true, "implements": true,
	"interface": true, "package": true, "private": true, "protected": true,
	"public": true, "await": true,
}

// render formats the declaration file body.
// Names are sorted so regenerating an unchanged stylesheet is byte-identical.
func render(names []string, namedExports bool, eol string) string {
	if eol == "" {
		eol = "\n"
	}

	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	var b strings.Builder
	if namedExports {
		for _, name := range sorted {
			if !isExportableIdentifier(name) {
				continue
			}
			b.WriteString("export const " + name + ": string;" + eol)
		}
		return b.String()
	}

	b.WriteString("declare const styles: {" + eol)
	for _, name := range sorted {
		b.WriteString("  readonly " + strconv.Quote(name) + ": string;" + eol)
	}
	b.WriteString("};" + eol)
	b.WriteString("export = styles;" + eol)
	return b.String()
}

// isExportableIdentifier reports whether name can be a JavaScript binding
func isExportableIdentifier(name string) bool {
	if name == "" || reservedWords[name] {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
