package cssdts

import (
	"github.com/yacobolo/cssdts/internal/dts"
	"github.com/yacobolo/cssdts/internal/freshness"
	"github.com/yacobolo/cssdts/internal/instances"
	"github.com/yacobolo/cssdts/internal/refscan"
	"go.trai.ch/zerr"
)

var (
	// ErrUnknownMode is returned by ParseMode for a name other than "css" or "ts".
	ErrUnknownMode = zerr.New("unknown loader type")

	// ErrUnknownInstance is returned when InstanceName names no registered instance.
	ErrUnknownInstance = instances.ErrUnknownInstance

	// ErrStat is returned when a stylesheet cannot be stat'ed.
	ErrStat = freshness.ErrStat

	// ErrParse is returned when a source file cannot be tokenized.
	ErrParse = refscan.ErrParse

	// Declaration generator failures.
	ErrReadStylesheet   = dts.ErrRead
	ErrParseStylesheet  = dts.ErrParse
	ErrWrite            = dts.ErrWrite
	ErrOutsideSearchDir = dts.ErrOutsideSearchDir
	ErrInvalidNaming    = dts.ErrInvalidNaming
)

// ParseError locates a source syntax error.
type ParseError = refscan.ParseError
