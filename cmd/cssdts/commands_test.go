package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssdts"
	"github.com/yacobolo/cssdts/internal/logger"
)

func testCommand(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(t.Context())
	cmd.SetOut(&out)
	return cmd, &out
}

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	t.Chdir(dir)
	return dir
}

func TestRunLoad(t *testing.T) {
	resetKoanf()
	source := "import styles from './Button.css';\nexport const cls = styles.btn;\n"
	dir := writeProject(t, map[string]string{
		"src/Button.css": ".btn { color: red }",
		"src/Button.ts":  source,
	})

	cmd, out := testCommand(t)
	require.NoError(t, runLoad(cmd, []string{"src/Button.ts"}))

	assert.Equal(t, source, out.String())
	assert.FileExists(t, filepath.Join(dir, "src", "Button.css.d.ts"))
}

func TestLogInvalidated(t *testing.T) {
	var buf bytes.Buffer
	prev := cliLogger
	cliLogger = logger.New(&buf, logger.Options{Level: slog.LevelDebug})
	t.Cleanup(func() { cliLogger = prev })

	tracker := cssdts.NewTracker()
	tracker.MarkUnprocessed("/app/src/Button.ts")

	logInvalidated("app", tracker)
	assert.Contains(t, buf.String(), "invalidated")
	assert.Contains(t, buf.String(), "instance=app")
	assert.Empty(t, tracker.Pending())

	buf.Reset()
	logInvalidated("app", tracker)
	assert.Empty(t, buf.String())
}

func TestRunLoad_UnknownType(t *testing.T) {
	resetKoanf()
	writeProject(t, map[string]string{"a.css": ".a {}"})
	require.NoError(t, k.Set("type", "scss"))

	cmd, _ := testCommand(t)
	err := runLoad(cmd, []string{"a.css"})
	require.ErrorIs(t, err, cssdts.ErrUnknownMode)
}

func TestRunGenerate(t *testing.T) {
	resetKoanf()
	dir := writeProject(t, map[string]string{
		"styles/Card.css": ".card-title { margin: 0 }",
	})
	require.NoError(t, k.Set("quiet", true))
	require.NoError(t, k.Set("generate.naming", "camel-case-only"))

	cmd, _ := testCommand(t)
	require.NoError(t, runGenerate(cmd, nil))

	got, err := os.ReadFile(filepath.Join(dir, "styles", "Card.css.d.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "cardTitle")
}

func TestRunGenerate_OutDir(t *testing.T) {
	resetKoanf()
	dir := writeProject(t, map[string]string{
		"styles/nested/Card.css": ".card {}",
	})
	require.NoError(t, k.Set("quiet", true))
	require.NoError(t, k.Set("generate.source", "styles"))
	require.NoError(t, k.Set("generate.out-dir", "types"))

	cmd, _ := testCommand(t)
	require.NoError(t, runGenerate(cmd, nil))

	assert.FileExists(t, filepath.Join(dir, "types", "nested", "Card.css.d.ts"))
	assert.NoFileExists(t, filepath.Join(dir, "styles", "nested", "Card.css.d.ts"))
}

func TestRunScan_ReportsFailures(t *testing.T) {
	resetKoanf()
	writeProject(t, map[string]string{
		"src/Ok.tsx":      "import s from './Ok.css';\nexport const Ok = () => <p className={s.ok} />;\n",
		"src/Ok.css":      ".ok {}",
		"src/Missing.tsx": "import './Missing.css';\n",
	})
	require.NoError(t, k.Set("quiet", true))
	require.NoError(t, k.Set("instance-name", "web"))

	cmd, _ := testCommand(t)
	err := runScan(cmd, nil)

	require.ErrorIs(t, err, errIssues)
	assert.FileExists(t, "src/Ok.css.d.ts")
}

func TestRunBuild(t *testing.T) {
	resetKoanf()
	dir := writeProject(t, map[string]string{
		"src/main.ts":    "import './app.css';\nconsole.log('ready');\n",
		"src/app.css":    ".app { display: grid }",
		"src/unused.css": ".unused {}",
	})
	require.NoError(t, k.Set("quiet", true))
	require.NoError(t, k.Set("build.entry", []string{"src/main.ts"}))
	require.NoError(t, k.Set("build.outdir", "dist"))

	cmd, _ := testCommand(t)
	require.NoError(t, runBuild(cmd, nil))

	assert.FileExists(t, filepath.Join(dir, "src", "app.css.d.ts"))
	assert.NoFileExists(t, filepath.Join(dir, "src", "unused.css.d.ts"), "only loaded stylesheets")
	assert.FileExists(t, filepath.Join(dir, "dist", "main.js"))
}

func TestRunBuild_NoEntryPoints(t *testing.T) {
	resetKoanf()
	cmd, _ := testCommand(t)
	require.ErrorIs(t, runBuild(cmd, nil), errNoEntryPoints)
}
