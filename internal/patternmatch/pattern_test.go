package patternmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/walker"
)

func TestMatchFilesFindsMatchWithFullMetadata(t *testing.T) {
	files := []walker.File{
		{
			Record: model.FileRecord{Path: "app/service.py", Language: model.LanguagePython, SizeBytes: 42},
			Content: "def handle_request():\n" +
				"    # not a log line\n" +
				"    logger.info('starting request')\n" +
				"    return True\n",
		},
	}
	patterns := []Pattern{
		{Name: "python_logging_call", Regex: `logger\.(info|warning|error|debug)\(`, PatternType: "logging", Category: "structured_logs", Severity: model.SeverityLow},
	}

	matches, skips, err := MatchFiles(files, patterns, model.GateStructuredLogs, false, 2)
	require.NoError(t, err)
	assert.Empty(t, skips)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, "app/service.py", m.RelativePath)
	assert.Equal(t, 3, m.Line)
	assert.Equal(t, model.GateStructuredLogs, m.Gate)
	assert.False(t, m.IsComment)
	require.NotNil(t, m.Function)
	assert.Equal(t, "handle_request", m.Function.Name)
}

func TestMatchFilesDetectsCommentedOutMatch(t *testing.T) {
	files := []walker.File{
		{
			Record:  model.FileRecord{Path: "app/service.py", Language: model.LanguagePython},
			Content: "# logger.info('disabled')\n",
		},
	}
	patterns := []Pattern{
		{Name: "python_logging_call", Regex: `logger\.(info|warning|error|debug)\(`, Category: "structured_logs"},
	}

	matches, _, err := MatchFiles(files, patterns, model.GateStructuredLogs, false, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.True(t, matches[0].IsComment)
}

func TestMatchFilesInvalidPatternReturnsCompileError(t *testing.T) {
	patterns := []Pattern{{Name: "broken", Regex: `(unterminated`}}
	_, _, err := MatchFiles(nil, patterns, model.GateStructuredLogs, false, 1)
	assert.Error(t, err)
}

func TestMatchFilesCaseInsensitiveByDefault(t *testing.T) {
	files := []walker.File{
		{Record: model.FileRecord{Path: "a.py", Language: model.LanguagePython}, Content: "LOGGER.INFO('x')\n"},
	}
	patterns := []Pattern{{Name: "python_logging_call", Regex: `logger\.info\(`}}

	matches, _, err := MatchFiles(files, patterns, model.GateStructuredLogs, false, 1)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
