package dts

import (
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// ParseNaming validates a naming convention name. Empty means as-is.
func ParseNaming(s string) (NamingConvention, error) {
	switch n := NamingConvention(s); n {
	case "":
		return NamingAsIs, nil
	case NamingAsIs, NamingCamelCase, NamingCamelCaseOnly, NamingDashes, NamingDashesOnly:
		return n, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidNaming, "parsing naming convention"), "naming", s)
	}
}

// Apply maps stylesheet tokens to exported names, dropping duplicates
func (n NamingConvention) Apply(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	names := make([]string, 0, len(tokens))
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, token := range tokens {
		switch n {
		case NamingCamelCase:
			add(token)
			add(toCamelCase(token))
		case NamingCamelCaseOnly:
			add(toCamelCase(token))
		case NamingDashes:
			add(token)
			add(dashesToCamelCase(token))
		case NamingDashesOnly:
			add(dashesToCamelCase(token))
		default:
			add(token)
		}
	}

	return names
}

// toCamelCase converts kebab-case and BEM names to camelCase:
// "btn--primary" -> "btnPrimary", "card__header" -> "cardHeader"
func toCamelCase(className string) string {
	parts := strings.FieldsFunc(className, func(r rune) bool {
		return r == '-' || r == '_'
	})

	for i, part := range parts {
		runes := []rune(part)
		if i == 0 {
			runes[0] = unicode.ToLower(runes[0])
		} else {
			runes[0] = unicode.ToUpper(runes[0])
		}
		parts[i] = string(runes)
	}

	return strings.Join(parts, "")
}

// dashesToCamelCase only folds dashes: "btn--primary" -> "btnPrimary",
// "card__header" is kept
func dashesToCamelCase(className string) string {
	var b strings.Builder
	upper := false
	for i, r := range className {
		if r == '-' && i > 0 {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
