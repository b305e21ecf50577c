// Package applicability implements the Applicability Engine (C7): gate
// preconditions that exclude gates with no evidence of applying from the
// overall score, per spec §4.7.
package applicability

import (
	"regexp"
	"strings"

	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/walker"
)

// uiFileExts are extensions that are unconditional UI evidence on their own.
// html is deliberately excluded: it only counts as evidence once it clears
// the tag-density guard below, since a stub or generated .html file with a
// single tag isn't evidence of a hand-built UI.
var uiFileExts = map[string]bool{
	"css": true, "jsx": true, "tsx": true, "vue": true, "svelte": true,
}

var uiContentSignature = regexp.MustCompile(`(?i)from\s+['"]react['"]|from\s+['"]vue['"]|@angular/core|svelte`)

var htmlTag = regexp.MustCompile(`(?i)<(div|span|html|body|button|input|form)\b`)

var uiManifestToken = []string{"\"react\"", "\"vue\"", "\"@angular/core\"", "\"svelte\""}

var backgroundSignature = regexp.MustCompile(`(?i)celery|@scheduled|bull\b|node-cron|hangfire|ihostedservice|backgroundservice|@shared_task`)

// Applies reports whether gate applies to this repository, given its walked
// files and any manifest file contents gathered at the repository root.
// Every gate besides ui_errors/ui_error_tools/log_background_jobs applies
// unconditionally.
func Applies(gate model.GateKind, files []walker.File, manifests []string) bool {
	switch gate {
	case model.GateUIErrors, model.GateUIErrorTools:
		return hasUIEvidence(files, manifests)
	case model.GateLogBackgroundJobs:
		return hasBackgroundEvidence(files)
	default:
		return true
	}
}

func hasUIEvidence(files []walker.File, manifests []string) bool {
	for _, f := range files {
		ext := strings.ToLower(extOf(f.Record.Path))
		if uiFileExts[ext] {
			return true
		}
	}
	for _, f := range files {
		if ext := strings.ToLower(extOf(f.Record.Path)); ext == "html" {
			if len(htmlTag.FindAllString(f.Content, 2)) < 2 {
				continue
			}
			return true
		}
		if isServerSideLang(f.Record.Language) {
			continue
		}
		if uiContentSignature.MatchString(f.Content) {
			return true
		}
	}
	for _, m := range manifests {
		for _, token := range uiManifestToken {
			if strings.Contains(m, token) {
				return true
			}
		}
	}
	return false
}

func hasBackgroundEvidence(files []walker.File) bool {
	for _, f := range files {
		lower := strings.ToLower(f.Record.Path)
		if strings.Contains(lower, "worker") || strings.Contains(lower, "job") || strings.Contains(lower, "scheduler") {
			return true
		}
		if backgroundSignature.MatchString(f.Content) {
			return true
		}
	}
	return false
}

func isServerSideLang(lang model.Language) bool {
	switch lang {
	case model.LanguagePython, model.LanguageJava, model.LanguageCSharp, model.LanguageDotNet:
		return true
	default:
		return false
	}
}

func extOf(path string) string {
	idx := strings.LastIndex(path, ".")
	if idx == -1 {
		return ""
	}
	return path[idx+1:]
}
