package refscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesheetReferences(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    []string
	}{
		{
			name:    "default import",
			path:    "/app/src/Button.ts",
			content: `import styles from "./Button.css";`,
			want:    []string{"/app/src/Button.css"},
		},
		{
			name:    "side effect import with single quotes",
			path:    "/app/src/index.ts",
			content: `import './global.css'`,
			want:    []string{"/app/src/global.css"},
		},
		{
			name:    "named and namespace imports",
			path:    "/app/src/a.ts",
			content: `import { a, "b-c" as bc } from "./a.css";
import * as ns from '../shared/b.css';
import type { T } from "./types";`,
			want: []string{"/app/src/a.css", "/app/shared/b.css"},
		},
		{
			name:    "absolute specifier",
			path:    "/app/src/a.ts",
			content: `import x from "/styles/../theme.css";`,
			want:    []string{"/theme.css"},
		},
		{
			name:    "duplicates are kept",
			path:    "/app/src/a.ts",
			content: `import a from "./a.css";
import b from "./a.css";`,
			want: []string{"/app/src/a.css", "/app/src/a.css"},
		},
		{
			name:    "non-stylesheet imports ignored",
			path:    "/app/src/a.ts",
			content: `import React from "react";
import s from "./a.scss";
import u from "./a.CSS";
import c from "./a.css?inline";`,
			want: nil,
		},
		{
			name:    "dynamic import ignored",
			path:    "/app/src/a.ts",
			content: `const s = import("./lazy.css");
import("./other.css").then(() => {});`,
			want: nil,
		},
		{
			name:    "import meta ignored",
			path:    "/app/src/a.ts",
			content: `const u = new URL("./a.css", import.meta.url);`,
			want:    nil,
		},
		{
			name:    "require and re-export ignored",
			path:    "/app/src/a.ts",
			content: "const s = require(\"./a.css\");\nexport { default } from \"./b.css\";\nexport * from './c.css';",
			want:    nil,
		},
		{
			name:    "import equals ignored",
			path:    "/app/src/a.ts",
			content: `import s = require("./a.css");`,
			want:    nil,
		},
		{
			name:    "nested code ignored",
			path:    "/app/src/a.ts",
			content: `function load() {
  const css = "./inner.css";
  return css;
}
import top from "./top.css";`,
			want: []string{"/app/src/top.css"},
		},
		{
			name:    "strings and comments ignored",
			path:    "/app/src/a.ts",
			content: `// import a from "./comment.css";
/* import b from "./block.css"; */
const s = 'import c from "./string.css"';
const t = ` + "`import d from \"./template.css\"`" + `;`,
			want: nil,
		},
		{
			name:    "regular expressions",
			path:    "/app/src/a.ts",
			content: `const re = /import x from "\.\/re.css"/g;
const half = total / 2 / 1;
import after from "./after.css";`,
			want: []string{"/app/src/after.css"},
		},
		{
			name:    "regular expression after statement head",
			path:    "/app/src/a.ts",
			content: `if (ok) /'/.test(s);
while (next()) /"/g.exec(s);
for (const c of cs) /'/.test(c);
import a from './a.css';`,
			want: []string{"/app/src/a.css"},
		},
		{
			name:    "division after call paren",
			path:    "/app/src/a.ts",
			content: `const r = obj.if(x) / 2 / y;
const q = f(a) / g(b);
import a from './a.css';`,
			want: []string{"/app/src/a.css"},
		},
		{
			name:    "from as binding name",
			path:    "/app/src/a.ts",
			content: `import from from "./from.css";`,
			want:    []string{"/app/src/from.css"},
		},
		{
			name:    "decorators",
			path:    "/app/src/a.ts",
			content: `import s from "./a.css";
@Component({ selector: "x" })
class A {}`,
			want: []string{"/app/src/a.css"},
		},
		{
			name:    "shebang",
			path:    "/app/bin/cli.js",
			content: "#!/usr/bin/env node\nimport './cli.css';",
			want:    []string{"/app/bin/cli.css"},
		},
		{
			name:    "jsx text with apostrophe",
			path:    "/app/src/App.tsx",
			content: `import styles from "./App.css";

export function App() {
  return (
    <div className={styles.root}>
      <p>Don't {"stop"} <b>now</b></p>
      <>It's fine</>
    </div>
  );
}

import late from "./late.css";`,
			want: []string{"/app/src/App.css", "/app/src/late.css"},
		},
		{
			name:    "generics are not jsx in ts files",
			path:    "/app/src/a.ts",
			content: `const m = new Map<string, number>();
const ok = a < b && c > d;
import s from "./a.css";`,
			want: []string{"/app/src/a.css"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scan(tt.path, []byte(tt.content), "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStylesheetReferences_CustomExtension(t *testing.T) {
	content := `import a from "./a.module.css";
import b from "./b.css";`

	got, err := Scan("/app/src/a.ts", []byte(content), ".module.css")
	require.NoError(t, err)
	assert.Equal(t, []string{"/app/src/a.module.css"}, got)
}

func TestParse_ImportDecls(t *testing.T) {
	content := "const x = 1;\n\nimport a from './a.css';\nimport 'b';\n"

	file, err := Parse("/app/src/a.ts", []byte(content))
	require.NoError(t, err)
	require.Len(t, file.Imports, 2)

	first := file.Imports[0]
	assert.Equal(t, 3, first.Line)
	require.Len(t, first.Strings, 1)
	assert.Equal(t, "'./a.css'", first.Strings[0].Raw)
	assert.Equal(t, "./a.css", first.Strings[0].Value())
	assert.Equal(t, 3, first.Strings[0].Line)
	assert.Equal(t, 15, first.Strings[0].Column)

	assert.Equal(t, 4, file.Imports[1].Line)
	assert.Equal(t, "b", file.Imports[1].Strings[0].Value())
}

func TestParse_Error(t *testing.T) {
	content := "import a from './a.css';\nconst s = \"unterminated\n"

	_, err := Parse("/app/src/a.ts", []byte(content))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrParse)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "/app/src/a.ts", perr.Path)
	assert.Equal(t, 2, perr.Line)
	assert.NotEmpty(t, perr.Message)
}

func TestStylesheetReferences_RelativePath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := Scan(filepath.Join("src", "a.ts"), []byte(`import s from "./a.css"`), "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(wd, "src", "a.css")}, got)
}
