package techdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/walker"
)

func TestDetectFindsTechnologiesAcrossCategories(t *testing.T) {
	files := []walker.File{
		{Record: model.FileRecord{Path: "app.py", Language: model.LanguagePython}, Content: "import logging\nfrom flask import Flask\n"},
		{Record: model.FileRecord{Path: "worker.py", Language: model.LanguagePython}, Content: "import asyncio\nimport pytest\n"},
		{Record: model.FileRecord{Path: "README.md", Language: model.Language("markdown")}, Content: "import logging\n"},
	}

	result := Detect(files, model.LanguagePython)

	assert.Contains(t, result["logging"], "logging")
	assert.Contains(t, result["web_frameworks"], "flask")
	assert.Contains(t, result["async"], "asyncio")
	assert.Contains(t, result["testing"], "pytest")
	assert.NotContains(t, result, "frontend")
}

func TestDetectIgnoresFilesOfOtherLanguages(t *testing.T) {
	files := []walker.File{
		{Record: model.FileRecord{Path: "App.java", Language: model.LanguageJava}, Content: "import org.slf4j.Logger;\n"},
	}

	result := Detect(files, model.LanguagePython)
	assert.Empty(t, result["logging"])
}

func TestDetectUnknownLanguageReturnsEmptyMap(t *testing.T) {
	result := Detect(nil, model.Language("cobol"))
	assert.Empty(t, result)
}

func TestDetectRespectsSampleCap(t *testing.T) {
	files := make([]walker.File, 0, sampleCap+10)
	for i := 0; i < sampleCap+10; i++ {
		files = append(files, walker.File{Record: model.FileRecord{Path: "f.py", Language: model.LanguagePython}, Content: "plain text\n"})
	}
	files = append(files, walker.File{Record: model.FileRecord{Path: "late.py", Language: model.LanguagePython}, Content: "import logging\n"})

	result := Detect(files, model.LanguagePython)
	assert.Empty(t, result["logging"])
}

func TestHasManifestReferenceFindsToken(t *testing.T) {
	manifests := []string{`{"dependencies": {"react": "^18.0.0"}}`}
	assert.True(t, HasManifestReference(manifests, "react"))
	assert.False(t, HasManifestReference(manifests, "vue"))
}
