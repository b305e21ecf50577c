package applicability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/walker"
)

func TestAppliesUnconditionalGates(t *testing.T) {
	assert.True(t, Applies(model.GateStructuredLogs, nil, nil))
	assert.True(t, Applies(model.GateAvoidLoggingSecrets, nil, nil))
}

func TestUIErrorsRequiresEvidence(t *testing.T) {
	pyFiles := []walker.File{
		{Record: model.FileRecord{Path: "app/main.py", Language: model.LanguagePython}, Content: "def handler():\n    pass\n"},
	}
	assert.False(t, Applies(model.GateUIErrors, pyFiles, nil))

	jsxFiles := []walker.File{
		{Record: model.FileRecord{Path: "src/App.jsx", Language: model.LanguageJavaScript}, Content: "export default function App() { return <div/> }"},
	}
	assert.True(t, Applies(model.GateUIErrors, jsxFiles, nil))
}

func TestUIErrorsAppliesFromManifestToken(t *testing.T) {
	files := []walker.File{
		{Record: model.FileRecord{Path: "server.py", Language: model.LanguagePython}, Content: "print('hi')"},
	}
	manifests := []string{`{"dependencies": {"react": "^18.0.0"}}`}
	assert.True(t, Applies(model.GateUIErrorTools, files, manifests))
}

func TestUIErrorsFromHTMLTagDensity(t *testing.T) {
	files := []walker.File{
		{Record: model.FileRecord{Path: "index.html", Language: ""}, Content: "<html><body><div>hi</div></body></html>"},
	}
	assert.True(t, Applies(model.GateUIErrors, files, nil))
}

func TestUIErrorsIgnoresSparseHTMLStub(t *testing.T) {
	files := []walker.File{
		{Record: model.FileRecord{Path: "stub.html", Language: ""}, Content: "<div>generated placeholder</div>"},
	}
	assert.False(t, Applies(model.GateUIErrors, files, nil))
}

func TestBackgroundJobsRequiresEvidence(t *testing.T) {
	plain := []walker.File{
		{Record: model.FileRecord{Path: "app/main.py", Language: model.LanguagePython}, Content: "def handler():\n    pass\n"},
	}
	assert.False(t, Applies(model.GateLogBackgroundJobs, plain, nil))

	workerPath := []walker.File{
		{Record: model.FileRecord{Path: "app/worker.py", Language: model.LanguagePython}, Content: "def run():\n    pass\n"},
	}
	assert.True(t, Applies(model.GateLogBackgroundJobs, workerPath, nil))

	celerySignature := []walker.File{
		{Record: model.FileRecord{Path: "app/tasks.py", Language: model.LanguagePython}, Content: "@shared_task\ndef process():\n    pass\n"},
	}
	assert.True(t, Applies(model.GateLogBackgroundJobs, celerySignature, nil))
}
