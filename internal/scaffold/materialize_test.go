package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// templateFixture builds an in-memory template tree exercising the
// interesting copy rules: a root descriptor, nested directories, a
// placeholder rename, and registry metadata that must not be copied.
func templateFixture() fstest.MapFS {
	return fstest.MapFS{
		"package.json": &fstest.MapFile{Data: []byte(`{"name": "template", "version": "0.0.0"}`)},
		"template.yml": &fstest.MapFile{Data: []byte("display: Test Template\n")},
		"index.html":   &fstest.MapFile{Data: []byte("<!doctype html>\n<title>app</title>\n")},
		"_gitignore":   &fstest.MapFile{Data: []byte("node_modules\ndist\n")},
		"src/main.ts":  &fstest.MapFile{Data: []byte("console.log('hello')\n")},
		"src/lib/util.ts": &fstest.MapFile{
			Data: []byte{0x63, 0x6f, 0x6e, 0x73, 0x74, 0x00, 0x78, 0x0a},
		},
	}
}

func TestMaterialize(t *testing.T) {
	tree := templateFixture()
	target := filepath.Join(t.TempDir(), "my-app")

	err := Materialize(tree, Options{TargetDir: target, PackageName: "my-app"})
	require.NoError(t, err)

	// The descriptor is rewritten: parsed name equals the supplied
	// package identifier and the file ends with a newline.
	data, err := os.ReadFile(filepath.Join(target, "package.json"))
	require.NoError(t, err)
	var descriptor map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &descriptor))
	assert.Equal(t, "my-app", descriptor["name"])
	assert.Equal(t, "0.0.0", descriptor["version"])
	assert.Equal(t, byte('\n'), data[len(data)-1])

	// Every non-descriptor file is reproduced byte-for-byte.
	html, err := os.ReadFile(filepath.Join(target, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, tree["index.html"].Data, html)

	util, err := os.ReadFile(filepath.Join(target, "src", "lib", "util.ts"))
	require.NoError(t, err)
	assert.Equal(t, tree["src/lib/util.ts"].Data, util,
		"nested file bytes must be preserved exactly, including NUL bytes")

	// The placeholder is renamed on the way out.
	ignore, err := os.ReadFile(filepath.Join(target, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, tree["_gitignore"].Data, ignore)
	assert.NoFileExists(t, filepath.Join(target, "_gitignore"))

	// Registry metadata never becomes part of the project.
	assert.NoFileExists(t, filepath.Join(target, "template.yml"))
}

// TestMaterialize_CreatesMissingAncestors verifies that the target
// directory (including missing ancestors) is created before any copy.
func TestMaterialize_CreatesMissingAncestors(t *testing.T) {
	target := filepath.Join(t.TempDir(), "deep", "nested", "my-app")

	err := Materialize(templateFixture(), Options{TargetDir: target, PackageName: "my-app"})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "package.json"))
}

// TestMaterialize_OverwritesInPlace verifies the IgnoreAndProceed
// contract: a pre-existing file with a template name is replaced, while
// files the template does not know about are left alone.
func TestMaterialize_OverwritesInPlace(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "index.html"), []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(target, "notes.txt"), []byte("keep"), 0o644))

	tree := templateFixture()
	require.NoError(t, Materialize(tree, Options{TargetDir: target, PackageName: "my-app"}))

	html, err := os.ReadFile(filepath.Join(target, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, tree["index.html"].Data, html, "same-named files are overwritten")

	notes, err := os.ReadFile(filepath.Join(target, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("keep"), notes, "unrelated files are not touched")
}

// TestMaterialize_OnlyRootDescriptorRewritten verifies that only the
// descriptor at the template root is transformed; a nested package.json
// (e.g. a fixture inside the template) is copied verbatim.
func TestMaterialize_OnlyRootDescriptorRewritten(t *testing.T) {
	tree := fstest.MapFS{
		"package.json":          &fstest.MapFile{Data: []byte(`{"name": "template"}`)},
		"fixtures/package.json": &fstest.MapFile{Data: []byte(`{"name": "fixture"}`)},
	}
	target := t.TempDir()

	require.NoError(t, Materialize(tree, Options{TargetDir: target, PackageName: "my-app"}))

	nested, err := os.ReadFile(filepath.Join(target, "fixtures", "package.json"))
	require.NoError(t, err)
	assert.Equal(t, tree["fixtures/package.json"].Data, nested,
		"nested descriptors must be copied byte-for-byte")
}

func TestMaterialize_MalformedDescriptorFailsRun(t *testing.T) {
	tree := fstest.MapFS{
		"package.json": &fstest.MapFile{Data: []byte(`{not json`)},
	}

	err := Materialize(tree, Options{TargetDir: t.TempDir(), PackageName: "my-app"})
	assert.Error(t, err)
}
