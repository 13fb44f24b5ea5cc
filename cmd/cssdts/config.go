package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssdts"
	"github.com/yacobolo/cssdts/internal/report"
)

const defaultConfigPath = ".cssdts.yaml"

// configSections are the nested blocks of the config file. Env vars whose
// first word names one map into it: CSSDTS_GENERATE_OUT_DIR -> generate.out-dir.
var configSections = map[string]bool{
	"generate": true,
	"scan":     true,
	"build":    true,
	"watch":    true,
}

var defaultScanPaths = []string{"src/**/*.{ts,tsx,mts,cts,js,jsx}"}

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags, only those explicitly set. Flag defaults are applied by
	// the getters below so they never shadow file or env values.
	if err := k.Load(posflag.ProviderWithFlag(cmd.Flags(), ".", k, changedFlag(cmd.Flags())), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

func changedFlag(fs *pflag.FlagSet) func(*pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSDTS_* prefix)
	if err := k.Load(env.Provider("CSSDTS_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key:
// CSSDTS_GENERATE_NAMED_EXPORTS -> generate.named-exports
// CSSDTS_LOG_FORMAT -> log-format
func envKey(s string) string {
	name := strings.ToLower(strings.TrimPrefix(s, "CSSDTS_"))
	if section, rest, ok := strings.Cut(name, "_"); ok && configSections[section] {
		return section + "." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(name, "_", "-")
}

// newLoader builds the loader every command shares.
func newLoader() (*cssdts.Loader, error) {
	config, err := buildGeneratorConfig()
	if err != nil {
		return nil, err
	}

	gen, err := cssdts.NewGenerator(config)
	if err != nil {
		return nil, err
	}

	return cssdts.New(gen,
		cssdts.WithExtension(getStringWithFallback("extension", "extension", ".css")),
		cssdts.WithLogger(cliLogger),
	), nil
}

// buildGeneratorConfig constructs the declaration generator config from koanf state.
func buildGeneratorConfig() (cssdts.GeneratorConfig, error) {
	naming, err := cssdts.ParseNaming(getStringWithFallback("naming", "generate.naming", ""))
	if err != nil {
		return cssdts.GeneratorConfig{}, err
	}

	config := cssdts.GeneratorConfig{
		Naming:       naming,
		NamedExports: getBoolWithFallback("named-exports", "generate.named-exports", false),
	}

	// Mirrored output maps each stylesheet's position under the source root.
	if outDir := getStringWithFallback("out-dir", "generate.out-dir", ""); outDir != "" {
		if config.OutDir, err = filepath.Abs(outDir); err != nil {
			return cssdts.GeneratorConfig{}, err
		}
		source := getStringWithFallback("source", "generate.source", ".")
		if config.SearchDir, err = filepath.Abs(source); err != nil {
			return cssdts.GeneratorConfig{}, err
		}
	}

	return config, nil
}

// buildGenerateConfig constructs the batch generate config from koanf state.
func buildGenerateConfig() cssdts.GenerateConfig {
	return cssdts.GenerateConfig{
		SourceDir:   getStringWithFallback("source", "generate.source", "."),
		Includes:    getStringsWithFallback("include", "generate.include", cssdts.DefaultIncludes),
		Concurrency: getIntWithFallback("concurrency", "concurrency", 0),
	}
}

// buildScanConfig constructs the batch scan config from koanf state.
func buildScanConfig() cssdts.ScanConfig {
	return cssdts.ScanConfig{
		Root:         ".",
		Patterns:     getStringsWithFallback("paths", "scan.paths", defaultScanPaths),
		InstanceName: getStringWithFallback("instance-name", "instance-name", ""),
		Concurrency:  getIntWithFallback("concurrency", "concurrency", 0),
	}
}

// buildWatchConfig constructs the watch config from koanf state.
func buildWatchConfig() cssdts.WatchConfig {
	return cssdts.WatchConfig{
		Root:         getStringWithFallback("root", "watch.root", "."),
		InstanceName: getStringWithFallback("instance-name", "instance-name", ""),
		Debounce:     getDurationWithFallback("debounce", "watch.debounce", 100*time.Millisecond),
	}
}

// buildReportOptions constructs terminal output options from koanf state.
func buildReportOptions() report.Options {
	return report.Options{
		UseColors:       report.ShouldUseColors(getStringWithFallback("color", "color", "auto")),
		PrintLines:      getBoolWithFallback("print-lines", "print-lines", true),
		PrintLinterName: getBoolWithFallback("print-linter-name", "print-linter-name", true),
		Verbose:         getBoolWithFallback("verbose", "verbose", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := stringsAt(flagKey); len(v) > 0 {
		return v
	}
	if v := stringsAt(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// stringsAt reads a list, accepting a comma-separated string as env vars provide.
func stringsAt(key string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	s := k.String(key)
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getDurationWithFallback checks the flag key first, then the config file key, then returns the default.
func getDurationWithFallback(flagKey, configKey string, defaultVal time.Duration) time.Duration {
	if k.Exists(flagKey) {
		return k.Duration(flagKey)
	}
	if k.Exists(configKey) {
		return k.Duration(configKey)
	}
	return defaultVal
}
