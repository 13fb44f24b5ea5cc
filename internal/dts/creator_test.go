package dts

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSS(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCreatorEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := writeCSS(t, dir, "Button.css", `.btn { color: red; } .btn--primary { background: blue; }`)

	creator, err := NewCreator(Config{})
	require.NoError(t, err)

	decl, err := creator.Create(context.Background(), path, CreateOptions{ClearCache: true})
	require.NoError(t, err)

	result, ok := decl.(*Result)
	require.True(t, ok)
	assert.Equal(t, path+".d.ts", result.OutputPath)
	assert.Equal(t, []string{"btn", "btn--primary"}, result.Tokens)

	require.NoError(t, decl.WriteFile(context.Background()))
	assert.True(t, result.Written())

	output, err := os.ReadFile(path + ".d.ts")
	require.NoError(t, err)
	assert.Equal(t, `declare const styles: {
  readonly "btn": string;
  readonly "btn--primary": string;
};
export = styles;
`, string(output))
}

func TestCreatorNamedExports(t *testing.T) {
	dir := t.TempDir()
	path := writeCSS(t, dir, "card.css", `.card { } .card--raised { } .default { }`)

	creator, err := NewCreator(Config{Naming: NamingCamelCaseOnly, NamedExports: true})
	require.NoError(t, err)

	decl, err := creator.Create(context.Background(), path, CreateOptions{})
	require.NoError(t, err)

	// "default" is a reserved word and can't be a named export
	assert.Equal(t, "export const card: string;\nexport const cardRaised: string;\n", decl.(*Result).Contents())
}

func TestCreatorSkipsIdenticalWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeCSS(t, dir, "a.css", `.a { }`)

	creator, err := NewCreator(Config{})
	require.NoError(t, err)

	first, err := creator.Create(context.Background(), path, CreateOptions{})
	require.NoError(t, err)
	require.NoError(t, first.WriteFile(context.Background()))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path+".d.ts", old, old))

	second, err := creator.Create(context.Background(), path, CreateOptions{ClearCache: true})
	require.NoError(t, err)
	require.NoError(t, second.WriteFile(context.Background()))
	assert.False(t, second.(*Result).Written())

	info, err := os.Stat(path + ".d.ts")
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "unchanged declaration must not be rewritten")
}

func TestCreatorInitialContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "virtual.css")

	creator, err := NewCreator(Config{})
	require.NoError(t, err)

	decl, err := creator.Create(context.Background(), path, CreateOptions{InitialContents: []byte(".x { }")})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, decl.(*Result).Tokens)
}

func TestCreatorCache(t *testing.T) {
	dir := t.TempDir()
	path := writeCSS(t, dir, "a.css", `.a { }`)

	creator, err := NewCreator(Config{CacheSize: 4})
	require.NoError(t, err)

	_, err = creator.Create(context.Background(), path, CreateOptions{})
	require.NoError(t, err)
	assert.True(t, creator.cache.Contains(path))

	// Changed content is never served from the cache
	require.NoError(t, os.WriteFile(path, []byte(`.b { }`), 0o644))
	decl, err := creator.Create(context.Background(), path, CreateOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, decl.(*Result).Tokens)
}

func TestCreatorOutDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	out := filepath.Join(dir, "types")
	path := writeCSS(t, src, "components/Button.css", `.btn { }`)

	creator, err := NewCreator(Config{SearchDir: src, OutDir: out})
	require.NoError(t, err)

	decl, err := creator.Create(context.Background(), path, CreateOptions{})
	require.NoError(t, err)
	require.NoError(t, decl.WriteFile(context.Background()))

	_, err = os.Stat(filepath.Join(out, "components", "Button.css.d.ts"))
	require.NoError(t, err)

	outside := writeCSS(t, dir, "other/x.css", `.x { }`)
	_, err = creator.Create(context.Background(), outside, CreateOptions{})
	require.ErrorIs(t, err, ErrOutsideSearchDir)
}

func TestCreatorMissingFile(t *testing.T) {
	creator, err := NewCreator(Config{})
	require.NoError(t, err)

	_, err = creator.Create(context.Background(), filepath.Join(t.TempDir(), "missing.css"), CreateOptions{})
	require.ErrorIs(t, err, ErrRead)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreatorCanceledContext(t *testing.T) {
	creator, err := NewCreator(Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = creator.Create(ctx, "whatever.css", CreateOptions{})
	require.ErrorIs(t, err, context.Canceled)
}
