package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssdts"
	"github.com/yacobolo/cssdts/internal/report"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, defaultConfigPath)
	configContent := `
verbose: true
extension: .pcss
concurrency: 4

generate:
  source: web/styles
  out-dir: types
  naming: camel-case
  named-exports: true
  include:
    - "components/**/*.pcss"

scan:
  paths:
    - "web/**/*.tsx"

watch:
  debounce: 250ms
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, ".pcss", k.String("extension"))
	assert.Equal(t, "web/styles", k.String("generate.source"))
	assert.Equal(t, "camel-case", k.String("generate.naming"))

	gen := buildGenerateConfig()
	assert.Equal(t, "web/styles", gen.SourceDir)
	assert.Equal(t, []string{"components/**/*.pcss"}, gen.Includes)
	assert.Equal(t, 4, gen.Concurrency)

	assert.Equal(t, []string{"web/**/*.tsx"}, buildScanConfig().Patterns)
	assert.Equal(t, 250*time.Millisecond, buildWatchConfig().Debounce)

	config, err := buildGeneratorConfig()
	require.NoError(t, err)
	assert.Equal(t, cssdts.NamingConvention("camel-case"), config.Naming)
	assert.True(t, config.NamedExports)
	assert.True(t, filepath.IsAbs(config.OutDir))
	assert.Equal(t, "types", filepath.Base(config.OutDir))
	assert.Equal(t, "styles", filepath.Base(config.SearchDir))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/"+defaultConfigPath))

	gen := buildGenerateConfig()
	assert.Equal(t, ".", gen.SourceDir)
	assert.Equal(t, cssdts.DefaultIncludes, gen.Includes)
	assert.Equal(t, 0, gen.Concurrency)

	scan := buildScanConfig()
	assert.Equal(t, defaultScanPaths, scan.Patterns)
	assert.Empty(t, scan.InstanceName)

	assert.Equal(t, 100*time.Millisecond, buildWatchConfig().Debounce)

	config, err := buildGeneratorConfig()
	require.NoError(t, err)
	assert.Equal(t, cssdts.GeneratorConfig{Naming: "as-is"}, config)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, defaultConfigPath)
	configContent := `
generate:
  source: from-file
  named-exports: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	t.Setenv("CSSDTS_GENERATE_SOURCE", "from-env")
	t.Setenv("CSSDTS_GENERATE_NAMED_EXPORTS", "true")
	t.Setenv("CSSDTS_GENERATE_INCLUDE", "a/*.css, b/*.css")
	t.Setenv("CSSDTS_INSTANCE_NAME", "web")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env", k.String("generate.source"))
	assert.True(t, k.Bool("generate.named-exports"))
	assert.Equal(t, []string{"a/*.css", "b/*.css"}, buildGenerateConfig().Includes)
	assert.Equal(t, "web", buildScanConfig().InstanceName)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{env: "CSSDTS_VERBOSE", want: "verbose"},
		{env: "CSSDTS_LOG_FORMAT", want: "log-format"},
		{env: "CSSDTS_GENERATE_OUT_DIR", want: "generate.out-dir"},
		{env: "CSSDTS_SCAN_PATHS", want: "scan.paths"},
		{env: "CSSDTS_WATCH_DEBOUNCE", want: "watch.debounce"},
		{env: "CSSDTS_MAX_ISSUES", want: "max-issues"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestFlagOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, defaultConfigPath)
	require.NoError(t, os.WriteFile(configPath, []byte("generate:\n  source: from-file\n"), 0o644))

	cmd := &cobra.Command{Use: "generate"}
	cmd.Flags().String("config", defaultConfigPath, "")
	cmd.Flags().String("source", ".", "")
	cmd.Flags().StringSlice("include", nil, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--config", configPath, "--include", "x/*.css"}))

	require.NoError(t, loadConfig(cmd))

	config := buildGenerateConfig()
	assert.Equal(t, "from-file", config.SourceDir, "unset flag defaults do not shadow the file")
	assert.Equal(t, []string{"x/*.css"}, config.Includes)
}

func TestBuildGeneratorConfig_InvalidNaming(t *testing.T) {
	resetKoanf()
	k.Set("generate.naming", "kebab")

	_, err := buildGeneratorConfig()
	require.ErrorIs(t, err, cssdts.ErrInvalidNaming)
}

func TestBuildReportOptions_Defaults(t *testing.T) {
	resetKoanf()
	k.Set("color", "never")

	assert.Equal(t, report.Options{PrintLines: true, PrintLinterName: true}, buildReportOptions())
}

func TestWriteReport(t *testing.T) {
	resetKoanf()
	k.Set("quiet", true)

	require.NoError(t, writeReport(&report.Report{FilesScanned: 1, Regenerated: 1}))

	err := writeReport(&report.Report{Issues: []report.Issue{{Severity: report.SeverityError}}})
	require.ErrorIs(t, err, errIssues)
}

func TestInitCmd(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, initCmd.RunE(initCmd, nil))
	assert.FileExists(t, defaultConfigPath)

	require.Error(t, initCmd.RunE(initCmd, nil), "refuses to overwrite")

	resetKoanf()
	require.NoError(t, loadConfigFromPath(defaultConfigPath))
	assert.Equal(t, "as-is", k.String("generate.naming"))
	assert.Equal(t, 100*time.Millisecond, buildWatchConfig().Debounce)
	assert.Equal(t, []string{"src/main.ts"}, k.Strings("build.entry"))
}
