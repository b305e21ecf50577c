package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardgate/scanengine/internal/config"
	"github.com/hardgate/scanengine/internal/llmhook"
	"github.com/hardgate/scanengine/internal/model"
)

func writeFixture(t *testing.T, root string, rel string, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunAssemblesCompleteValidationResult(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "requirements.txt", "flask\n")
	writeFixture(t, root, "app.py", "import logging\n\n"+
		"def handler():\n"+
		"    logger.info('handling request')\n"+
		"    logger.error('api_key=sk-should-not-be-logged')\n"+
		"    return True\n")

	settings := config.Default()
	settings.RootPath = root

	result, err := Run(context.Background(), settings, llmhook.NoOp{})
	require.NoError(t, err)

	assert.Equal(t, model.LanguagePython, result.PrimaryLanguage)
	assert.Equal(t, filepath.Base(root), result.ProjectName)
	assert.NotEmpty(t, result.GateScores)
	assert.Len(t, result.GateScores, len(model.Gates))
	assert.GreaterOrEqual(t, result.OverallScore, 0.0)

	total := result.Passed + result.Warnings + result.Failed
	assert.LessOrEqual(t, total, len(model.Gates))
}

func TestRunRejectsRootWithNoDetectableLanguage(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "notes.txt", "just some plain text, nothing recognizable here\n")

	settings := config.Default()
	settings.RootPath = root

	_, err := Run(context.Background(), settings, llmhook.NoOp{})
	assert.Error(t, err)
}

func TestRunHonorsExplicitLanguageOverride(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "Main.java", "public class Main {\n    public static void main(String[] args) {}\n}\n")
	writeFixture(t, root, "app.py", "def run():\n    pass\n")

	settings := config.Default()
	settings.RootPath = root
	settings.Languages = []model.Language{model.LanguageJava}

	result, err := Run(context.Background(), settings, llmhook.NoOp{})
	require.NoError(t, err)
	assert.Equal(t, model.LanguageJava, result.PrimaryLanguage)
}
