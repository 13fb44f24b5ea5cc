package dts

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrRead is returned when the stylesheet cannot be read.
	ErrRead = zerr.New("failed to read stylesheet")

	// ErrParse is returned when the stylesheet cannot be tokenized.
	ErrParse = zerr.New("failed to parse stylesheet")

	// ErrWrite is returned when the declaration file cannot be written.
	ErrWrite = zerr.New("failed to write declaration file")

	// ErrOutsideSearchDir is returned when OutDir is set and the stylesheet is not under SearchDir.
	ErrOutsideSearchDir = zerr.New("stylesheet is outside the search directory")

	// ErrInvalidNaming is returned for an unknown naming convention.
	ErrInvalidNaming = zerr.New("invalid naming convention, expected as-is, camel-case, camel-case-only, dashes or dashes-only")
)

// wrapPath tags err with its sentinel and the offending path
func wrapPath(sentinel, err error, path string) error {
	return zerr.With(errors.Join(sentinel, err), "path", path)
}
