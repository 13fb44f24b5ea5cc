package cssdts

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually processed (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// fileFilter excludes generated and ignored files from discovery
type fileFilter struct {
	root      string
	gitignore *ignore.GitIgnore
}

// newFileFilter loads root/.gitignore.
// Gracefully degrades if .gitignore doesn't exist
func newFileFilter(root string) fileFilter {
	f := fileFilter{root: root}
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err == nil {
		f.gitignore = gi
	}
	return f
}

// isGenerated reports whether path is a declaration file or a dependency
func isGenerated(path string) bool {
	if strings.HasSuffix(path, ".d.ts") {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "node_modules" {
			return true
		}
	}
	return false
}

// shouldSkipFile determines if a file should be excluded from processing
//
// Two-layer filtering:
// 1. Pattern check (fast): skip declarations and node_modules
// 2. Gitignore check: only for paths inside the root
func (f fileFilter) shouldSkipFile(path string) bool {
	if isGenerated(path) {
		return true
	}
	if f.gitignore == nil {
		return false
	}

	rel := path
	if filepath.IsAbs(path) || f.root != "." {
		r, err := filepath.Rel(f.root, path)
		if err != nil || strings.HasPrefix(r, "..") {
			return false
		}
		rel = r
	}
	return f.gitignore.MatchesPath(filepath.ToSlash(rel))
}

// expandGlobPatternsWithStats expands globs, deduplicates, filters and tracks statistics
func expandGlobPatternsWithStats(patterns []string, filter fileFilter) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if filter.shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// RelativePath returns path relative to the current working directory
func RelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return rel
}
