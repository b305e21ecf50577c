// Package langdetect implements the Language Detector (C2): confidence-
// scored language discovery over a walked repository.
package langdetect

import (
	"path/filepath"
	"regexp"
	"sort"

	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/walker"
)

// Detected is one language's detection outcome.
type Detected struct {
	Language   model.Language
	Confidence int
}

var signatures = map[model.Language]*regexp.Regexp{
	model.LanguageJava:       regexp.MustCompile(`(?m)^\s*package\s+[\w.]+;|^\s*import\s+java\.`),
	model.LanguagePython:     regexp.MustCompile(`(?m)^\s*import\s+\w+|^\s*from\s+\w+\s+import|^\s*def\s+\w+\(`),
	model.LanguageJavaScript: regexp.MustCompile(`(?m)^\s*(const|let|var)\s+\w+\s*=|require\(|module\.exports`),
	model.LanguageTypeScript: regexp.MustCompile(`(?m)^\s*import\s+.*from\s+['"]|interface\s+\w+\s*\{|:\s*(string|number|boolean)\b`),
	model.LanguageCSharp:     regexp.MustCompile(`(?m)^\s*namespace\s+[\w.]+|^\s*using\s+System`),
	model.LanguageDotNet:     regexp.MustCompile(`(?m)^\s*Imports\s+System|^\s*Module\s+\w+`),
}

var manifestFiles = map[model.Language][]string{
	model.LanguageJava:       {"pom.xml", "build.gradle", "build.gradle.kts"},
	model.LanguagePython:     {"requirements.txt", "setup.py", "pyproject.toml", "Pipfile"},
	model.LanguageJavaScript: {"package.json"},
	model.LanguageTypeScript: {"tsconfig.json"},
	model.LanguageCSharp:     {"*.csproj", "*.sln"},
	model.LanguageDotNet:     {"*.vbproj", "*.fsproj"},
}

const contentSampleBytes = 2 * 1024

// Detect scores the already-walked files and the repository root's entry
// names (for language config files) and returns every language
// with confidence >= 30, ordered by descending confidence. If none qualifies
// it falls back to the single language with the highest file count. The
// first element is always the primary language.
func Detect(files []walker.File, rootEntries []string) []Detected {
	fileCount := map[model.Language]int{}
	contentMatches := map[model.Language]int{}
	hasConfig := map[model.Language]bool{}

	for _, f := range files {
		if f.Record.Language == "" {
			continue
		}
		fileCount[f.Record.Language]++

		sample := f.Content
		if len(sample) > contentSampleBytes {
			sample = sample[:contentSampleBytes]
		}
		if re, ok := signatures[f.Record.Language]; ok {
			contentMatches[f.Record.Language] += len(re.FindAllString(sample, -1))
		}
	}

	for lang, globs := range manifestFiles {
		for _, entry := range rootEntries {
			for _, g := range globs {
				if ok, _ := filepath.Match(g, entry); ok {
					hasConfig[lang] = true
				}
			}
		}
	}

	var out []Detected
	for _, lang := range model.Languages {
		confBool := 0
		if hasConfig[lang] {
			confBool = 1
		}
		confidence := 2*fileCount[lang] + 3*contentMatches[lang] + 20*confBool
		if confidence > 100 {
			confidence = 100
		}
		if confidence >= 30 {
			out = append(out, Detected{Language: lang, Confidence: confidence})
		}
	}

	if len(out) == 0 {
		var best model.Language
		bestCount := -1
		for _, lang := range model.Languages {
			if fileCount[lang] > bestCount {
				best = lang
				bestCount = fileCount[lang]
			}
		}
		if bestCount > 0 {
			out = append(out, Detected{Language: best, Confidence: 2 * bestCount})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})

	return out
}

// Primary returns the first (highest-confidence) language, or empty string
// if nothing was detected.
func Primary(detected []Detected) model.Language {
	if len(detected) == 0 {
		return ""
	}
	return detected[0].Language
}
