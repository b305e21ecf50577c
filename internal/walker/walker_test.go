package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardgate/scanengine/internal/config"
	"github.com/hardgate/scanengine/internal/model"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWalkSkipsVendorDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "print('hi')\n")
	writeFile(t, root, "node_modules/lib/index.js", "module.exports = {}\n")
	writeFile(t, root, ".git/HEAD", "ref: refs/heads/main\n")

	settings := config.Default()
	settings.RootPath = root

	result, err := Walk(settings)
	require.NoError(t, err)

	var paths []string
	for _, f := range result.Files {
		paths = append(paths, f.Record.Path)
	}
	assert.Contains(t, paths, "main.py")
	assert.NotContains(t, paths, "node_modules/lib/index.js")
}

func TestWalkAppliesMaxFileSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "big.py", "x = 1\n")

	settings := config.Default()
	settings.RootPath = root
	settings.MaxFileSize = 1

	result, err := Walk(settings)
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	require.Len(t, result.Skips, 1)
	assert.Equal(t, "exceeds max_file_size", result.Skips[0].Detail)
}

func TestWalkAppliesExcludeGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main.py", "print(1)\n")
	writeFile(t, root, "src/generated/codegen.py", "print(2)\n")

	settings := config.Default()
	settings.RootPath = root
	settings.ExcludeGlobs = []string{"**/generated/**"}

	result, err := Walk(settings)
	require.NoError(t, err)

	var paths []string
	for _, f := range result.Files {
		paths = append(paths, f.Record.Path)
	}
	assert.Contains(t, paths, "src/main.py")
	assert.NotContains(t, paths, "src/generated/codegen.py")
}

func TestWalkFiltersByLanguageSet(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.py", "print(1)\n")
	writeFile(t, root, "app.java", "class App {}\n")

	settings := config.Default()
	settings.RootPath = root
	settings.Languages = []model.Language{model.LanguagePython}

	result, err := Walk(settings)
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, model.LanguagePython, result.Files[0].Record.Language)
}

func TestWalkMissingRootIsError(t *testing.T) {
	settings := config.Default()
	settings.RootPath = filepath.Join(t.TempDir(), "does-not-exist")

	_, err := Walk(settings)
	assert.Error(t, err)
}
