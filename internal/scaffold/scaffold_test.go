package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/newcomp/internal/component"
	oerrors "github.com/opmodel/newcomp/internal/errors"
	"github.com/opmodel/newcomp/internal/templates"
)

func spec(name string) component.Spec {
	return component.Spec{
		Name:     name,
		Style:    "css",
		Language: component.JavaScript,
		Kind:     component.Functional,
	}
}

func writeTemplate(t *testing.T, dir, name, content string) *templates.Descriptor {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	d := templates.Descriptor{Name: name[:len(name)-len(filepath.Ext(name))], Path: path}
	return &d
}

func TestPlan_Builtin(t *testing.T) {
	files, source, err := Plan(Request{Spec: spec("Button")})
	require.NoError(t, err)
	assert.Equal(t, SourceBuiltin, source)
	require.Len(t, files, 3)

	assert.Equal(t, "Button.jsx", files[0].Path)
	want, err := component.Render(spec("Button"))
	require.NoError(t, err)
	assert.Equal(t, want, files[0].Content)

	assert.Equal(t, "index.js", files[1].Path)
	assert.Equal(t, "export { default } from './Button';\n", files[1].Content)

	assert.Equal(t, "Button.module.css", files[2].Path)
	assert.Equal(t, "/* Add your component styles here */\n.Button {\n}\n", files[2].Content)
}

func TestPlan_StyleVariants(t *testing.T) {
	tests := []struct {
		style string
		want  []string
	}{
		{"", []string{"Card.tsx", "index.ts"}},
		{"scss", []string{"Card.tsx", "index.ts", "Card.module.scss"}},
		{".less", []string{"Card.tsx", "index.ts", "Card.module.less"}},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			s := spec("Card")
			s.Language = component.TypeScript
			s.Style = tt.style

			files, _, err := Plan(Request{Spec: s})
			require.NoError(t, err)

			paths := make([]string, 0, len(files))
			for _, f := range files {
				paths = append(paths, f.Path)
			}
			assert.Equal(t, tt.want, paths)
		})
	}
}

func TestPlan_EmptyName(t *testing.T) {
	_, _, err := Plan(Request{Spec: spec("")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrConfiguration))
}

func TestPlan_CustomTemplate(t *testing.T) {
	d := writeTemplate(t, t.TempDir(), "card.jsx",
		"// {{COMPONENT_NAME}} {{component_name}}\nexport const {{ComponentName}} = () => <div>{{unknown}}</div>;\n")

	files, source, err := Plan(Request{Spec: spec("UserCard"), Template: d})
	require.NoError(t, err)
	assert.Equal(t, "card", source)
	assert.Equal(t,
		"// USERCARD usercard\nexport const UserCard = () => <div>{{unknown}}</div>;\n",
		files[0].Content)
}

func TestPlan_DangerousTemplate(t *testing.T) {
	d := writeTemplate(t, t.TempDir(), "evil.jsx", "import fs from 'fs';\nexport default {{ComponentName}};\n")

	t.Run("fails without fallback", func(t *testing.T) {
		files, _, err := Plan(Request{Spec: spec("Evil"), Template: d})
		require.Error(t, err)
		assert.Nil(t, files)
		assert.True(t, errors.Is(err, oerrors.ErrTemplateSecurity))
	})

	t.Run("falls back to built-in", func(t *testing.T) {
		files, source, err := Plan(Request{Spec: spec("Evil"), Template: d, FallbackBuiltin: true})
		require.NoError(t, err)
		assert.Equal(t, SourceBuiltin, source)
		assert.Contains(t, files[0].Content, "function Evil()")
	})
}

func TestWrite(t *testing.T) {
	files := []File{{Path: "A.jsx", Content: "a"}, {Path: "index.js", Content: "b"}}

	t.Run("creates directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "A")
		existed, err := Write(dir, files, false)
		require.NoError(t, err)
		assert.False(t, existed)

		data, err := os.ReadFile(filepath.Join(dir, "index.js"))
		require.NoError(t, err)
		assert.Equal(t, "b", string(data))
	})

	t.Run("refuses existing directory", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Write(dir, files, false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrExists))
		assert.Contains(t, err.Error(), "--force")

		_, statErr := os.Stat(filepath.Join(dir, "A.jsx"))
		assert.True(t, errors.Is(statErr, os.ErrNotExist))
	})

	t.Run("force overwrites", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "A.jsx"), []byte("old"), 0o644))

		existed, err := Write(dir, files, true)
		require.NoError(t, err)
		assert.True(t, existed)

		data, err := os.ReadFile(filepath.Join(dir, "A.jsx"))
		require.NoError(t, err)
		assert.Equal(t, "a", string(data))
	})

	t.Run("file in the way", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "A")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		_, err := Write(path, files, true)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrExists))
	})

	t.Run("removes created directory on failure", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "A")
		bad := []File{{Path: "A.jsx", Content: "a"}, {Path: "x\x00.js", Content: "b"}}

		_, err := Write(dir, bad, false)
		require.Error(t, err)

		_, statErr := os.Stat(dir)
		assert.True(t, errors.Is(statErr, os.ErrNotExist))
	})

	t.Run("keeps pre-existing directory on failure", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "x.js"), 0o755))
		bad := []File{{Path: "x.js", Content: "b"}}

		_, err := Write(dir, bad, true)
		require.Error(t, err)
		assert.DirExists(t, dir)
	})

	t.Run("refuses paths outside the directory", func(t *testing.T) {
		for _, p := range []string{"A.module.css/../../Escaped", "../x.js", "sub/x.js", "/tmp/x.js", ".", ""} {
			root := t.TempDir()
			dir := filepath.Join(root, "A")

			_, err := Write(dir, []File{{Path: "A.jsx", Content: "a"}, {Path: p, Content: "b"}}, false)
			require.Error(t, err, p)
			assert.True(t, errors.Is(err, oerrors.ErrValidation), p)
			assert.NoDirExists(t, dir, p)
			assert.NoFileExists(t, filepath.Join(root, "Escaped"), p)
		}
	})

	t.Run("force keeps unrelated files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "A.tsx"), []byte("old"), 0o644))

		_, err := Write(dir, files, true)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "A.tsx"))
	})
}

func TestGenerate_ForceReportsKeptFiles(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "Card")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	for _, name := range []string{"Card.jsx", "index.js", "Card.module.css"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("old"), 0o644))
	}

	s := spec("Card")
	s.Language = component.TypeScript
	res, err := Generate(context.Background(), Request{Spec: s, TargetDir: parent, Force: true})
	require.NoError(t, err)

	assert.True(t, res.Overwritten)
	assert.Equal(t, []string{"Card.jsx", "assets/", "index.js"}, res.Kept)
	assert.FileExists(t, filepath.Join(dir, "Card.tsx"))
}

func TestGenerate_NewDirHasNoKeptFiles(t *testing.T) {
	res, err := Generate(context.Background(), Request{Spec: spec("Card"), TargetDir: t.TempDir()})
	require.NoError(t, err)
	assert.False(t, res.Overwritten)
	assert.Empty(t, res.Kept)
}

func TestGenerate_DryRunWritesNothing(t *testing.T) {
	parent := t.TempDir()
	res, err := Generate(context.Background(), Request{Spec: spec("Modal"), TargetDir: parent, DryRun: true})
	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.Equal(t, filepath.Join(parent, "Modal"), res.Dir)
	assert.Len(t, res.Files, 3)
	assert.NoDirExists(t, res.Dir)
}

func TestGenerate_SecurityRejectionWritesNothing(t *testing.T) {
	parent := t.TempDir()
	d := writeTemplate(t, t.TempDir(), "evil.jsx", "eval('x');\nexport default {{ComponentName}};\n")

	_, err := Generate(context.Background(), Request{Spec: spec("Modal"), TargetDir: parent, Template: d})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTemplateSecurity))
	assert.NoDirExists(t, filepath.Join(parent, "Modal"))
}

func TestGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	parent := t.TempDir()
	_, err := Generate(ctx, Request{Spec: spec("Modal"), TargetDir: parent})
	require.ErrorIs(t, err, context.Canceled)
	assert.NoDirExists(t, filepath.Join(parent, "Modal"))
}

func TestGenerateAll(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(parent, "Taken"), 0o755))

	names := []string{"Alpha", "Taken", "Beta", "Gamma"}
	reqs := make([]Request, 0, len(names))
	for _, n := range names {
		reqs = append(reqs, Request{Spec: spec(n), TargetDir: parent})
	}

	outcomes, err := GenerateAll(context.Background(), reqs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrExists))
	assert.Contains(t, err.Error(), "component Taken")

	require.Len(t, outcomes, len(names))
	for i, o := range outcomes {
		assert.Equal(t, names[i], o.Request.Spec.Name)
		if names[i] == "Taken" {
			assert.Error(t, o.Err)
			assert.Nil(t, o.Result)
			continue
		}
		require.NoError(t, o.Err)
		assert.FileExists(t, filepath.Join(parent, names[i], names[i]+".jsx"))
	}
}

func TestGenerateAll_Duplicates(t *testing.T) {
	parent := t.TempDir()
	reqs := []Request{
		{Spec: spec("Alpha"), TargetDir: parent},
		{Spec: spec("Alpha"), TargetDir: parent},
	}

	outcomes, err := GenerateAll(context.Background(), reqs)
	require.Error(t, err)
	assert.Nil(t, outcomes)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.NoDirExists(t, filepath.Join(parent, "Alpha"))
}
