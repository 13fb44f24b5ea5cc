package refscan

import (
	"path/filepath"
	"strings"
)

// DefaultExtension is the suffix that marks a module specifier as a stylesheet.
const DefaultExtension = ".css"

// StylesheetReferences returns the absolute paths of the stylesheets
// imported by the top-level static imports of file, in source order.
//
// Specifiers are matched on the exact, case-sensitive suffix ext (".css" when
// empty). Relative specifiers resolve against the directory of file.Path;
// bare package specifiers are resolved the same way. Duplicates are kept.
func StylesheetReferences(file *File, ext string) []string {
	if ext == "" {
		ext = DefaultExtension
	}

	dir := filepath.Dir(absPath(file.Path))

	var refs []string
	for _, decl := range file.Imports {
		for _, lit := range decl.Strings {
			spec := lit.Value()
			if !strings.HasSuffix(spec, ext) {
				continue
			}
			refs = append(refs, resolve(dir, spec))
		}
	}
	return refs
}

// Scan parses content and returns its stylesheet references.
func Scan(path string, content []byte, ext string) ([]string, error) {
	file, err := Parse(path, content)
	if err != nil {
		return nil, err
	}
	return StylesheetReferences(file, ext), nil
}

func resolve(dir, spec string) string {
	spec = filepath.FromSlash(spec)
	if filepath.IsAbs(spec) {
		return filepath.Clean(spec)
	}
	return filepath.Join(dir, spec)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
