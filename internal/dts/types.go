package dts

import "context"

// Generator creates declaration files for stylesheets.
//
//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=types.go
type Generator interface {
	// Create parses the stylesheet at path and prepares its declaration.
	// Nothing is written until WriteFile is called on the result.
	Create(ctx context.Context, path string, opts CreateOptions) (Declaration, error)
}

// Declaration is a prepared declaration file that can be written to disk.
type Declaration interface {
	WriteFile(ctx context.Context) error
}

// CreateOptions controls a single Create call.
type CreateOptions struct {
	InitialContents []byte // Used instead of reading the file when non-nil
	ClearCache      bool   // Drop any cached tokens for the path first
}

// Config holds generator configuration
type Config struct {
	SearchDir    string           // Root the stylesheets are discovered under (used with OutDir)
	OutDir       string           // Mirror declarations here instead of next to the stylesheet
	Naming       NamingConvention // How class names are exported (default: as-is)
	NamedExports bool             // Emit `export const x: string;` instead of a styles object
	EOL          string           // Line ending (default: "\n")
	CacheSize    int              // Token cache entries (default: 256)
}

// NamingConvention selects how stylesheet tokens are exposed to TypeScript.
type NamingConvention string

// Naming conventions, named after css-loader's exportLocalsConvention values.
const (
	NamingAsIs          NamingConvention = "as-is"
	NamingCamelCase     NamingConvention = "camel-case"
	NamingCamelCaseOnly NamingConvention = "camel-case-only"
	NamingDashes        NamingConvention = "dashes"
	NamingDashesOnly    NamingConvention = "dashes-only"
)
