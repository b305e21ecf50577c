// Package techdetect implements the Technology Detector (C4): advisory
// per-category technology discovery, adapted from the technology pattern
// tables in codegates' BaseGateValidator and qlp-hq-QLP's adapter.go
// framework/build-tool detectors.
package techdetect

import (
	"regexp"
	"strings"

	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/walker"
)

// technology is one named pattern to look for within a category.
type technology struct {
	name  string
	regex *regexp.Regexp
}

// catalog maps language -> category -> technologies. Not exhaustive; it
// covers the categories spec §4.4 names explicitly.
var catalog = map[model.Language]map[string][]technology{
	model.LanguagePython: {
		"logging":        {{"logging", regexp.MustCompile(`(?i)import\s+logging`)}, {"structlog", regexp.MustCompile(`(?i)import\s+structlog`)}, {"loguru", regexp.MustCompile(`(?i)from\s+loguru`)}},
		"web_frameworks": {{"flask", regexp.MustCompile(`(?i)from\s+flask\s+import|Flask\(`)}, {"django", regexp.MustCompile(`(?i)from\s+django`)}, {"fastapi", regexp.MustCompile(`(?i)from\s+fastapi`)}},
		"async":          {{"asyncio", regexp.MustCompile(`(?i)import\s+asyncio|async\s+def`)}, {"celery", regexp.MustCompile(`(?i)from\s+celery`)}},
		"testing":        {{"pytest", regexp.MustCompile(`(?i)import\s+pytest`)}, {"unittest", regexp.MustCompile(`(?i)import\s+unittest`)}},
		"database":       {{"sqlalchemy", regexp.MustCompile(`(?i)from\s+sqlalchemy`)}, {"psycopg2", regexp.MustCompile(`(?i)import\s+psycopg2`)}},
		"monitoring":     {{"prometheus_client", regexp.MustCompile(`(?i)from\s+prometheus_client`)}, {"sentry", regexp.MustCompile(`(?i)import\s+sentry_sdk`)}},
	},
	model.LanguageJava: {
		"logging":        {{"slf4j", regexp.MustCompile(`(?i)org\.slf4j`)}, {"log4j", regexp.MustCompile(`(?i)org\.apache\.log4j`)}, {"logback", regexp.MustCompile(`(?i)ch\.qos\.logback`)}},
		"web_frameworks": {{"spring", regexp.MustCompile(`(?i)org\.springframework`)}, {"jersey", regexp.MustCompile(`(?i)javax\.ws\.rs`)}},
		"async":          {{"completablefuture", regexp.MustCompile(`(?i)CompletableFuture`)}, {"reactor", regexp.MustCompile(`(?i)reactor\.core`)}},
		"testing":        {{"junit", regexp.MustCompile(`(?i)org\.junit`)}, {"mockito", regexp.MustCompile(`(?i)org\.mockito`)}},
		"database":       {{"jpa", regexp.MustCompile(`(?i)javax\.persistence|jakarta\.persistence`)}, {"jdbc", regexp.MustCompile(`(?i)java\.sql`)}},
		"monitoring":     {{"micrometer", regexp.MustCompile(`(?i)io\.micrometer`)}},
	},
	model.LanguageJavaScript: {
		"logging":        {{"winston", regexp.MustCompile(`(?i)require\(['"]winston|from\s+['"]winston`)}, {"pino", regexp.MustCompile(`(?i)require\(['"]pino|from\s+['"]pino`)}},
		"web_frameworks": {{"express", regexp.MustCompile(`(?i)require\(['"]express|from\s+['"]express`)}, {"koa", regexp.MustCompile(`(?i)require\(['"]koa|from\s+['"]koa`)}},
		"async":          {{"bull", regexp.MustCompile(`(?i)require\(['"]bull|from\s+['"]bull`)}, {"async", regexp.MustCompile(`(?i)\basync\s+function\b`)}},
		"testing":        {{"jest", regexp.MustCompile(`(?i)require\(['"]jest|describe\(|test\(`)}, {"mocha", regexp.MustCompile(`(?i)require\(['"]mocha`)}},
		"database":       {{"mongoose", regexp.MustCompile(`(?i)require\(['"]mongoose|from\s+['"]mongoose`)}, {"sequelize", regexp.MustCompile(`(?i)require\(['"]sequelize`)}},
		"frontend":       {{"react", regexp.MustCompile(`(?i)from\s+['"]react['"]|require\(['"]react['"]\)`)}, {"vue", regexp.MustCompile(`(?i)from\s+['"]vue['"]`)}, {"angular", regexp.MustCompile(`(?i)@angular/core`)}},
	},
	model.LanguageTypeScript: {
		"web_frameworks": {{"nestjs", regexp.MustCompile(`(?i)@nestjs/`)}, {"express", regexp.MustCompile(`(?i)from\s+['"]express['"]`)}},
		"testing":        {{"jest", regexp.MustCompile(`(?i)describe\(|test\(`)}},
		"frontend":       {{"react", regexp.MustCompile(`(?i)from\s+['"]react['"]`)}, {"angular", regexp.MustCompile(`(?i)@angular/core`)}},
	},
	model.LanguageCSharp: {
		"logging":        {{"serilog", regexp.MustCompile(`(?i)Serilog`)}, {"nlog", regexp.MustCompile(`(?i)NLog`)}},
		"web_frameworks": {{"aspnetcore", regexp.MustCompile(`(?i)Microsoft\.AspNetCore`)}},
		"testing":        {{"xunit", regexp.MustCompile(`(?i)Xunit`)}, {"nunit", regexp.MustCompile(`(?i)NUnit`)}},
		"database":       {{"entityframework", regexp.MustCompile(`(?i)Microsoft\.EntityFrameworkCore`)}},
	},
}

const sampleCap = 200

// Detect scans up to sampleCap files per language and returns, for each
// category known for the primary language, the deduplicated list of
// technology names whose pattern matched anywhere in the sample.
func Detect(files []walker.File, language model.Language) map[string][]string {
	categories, ok := catalog[language]
	if !ok {
		return map[string][]string{}
	}

	sampled := 0
	out := map[string]map[string]bool{}
	for cat := range categories {
		out[cat] = map[string]bool{}
	}

	for _, f := range files {
		if f.Record.Language != language {
			continue
		}
		if sampled >= sampleCap {
			break
		}
		sampled++

		for cat, techs := range categories {
			for _, t := range techs {
				if t.regex.MatchString(f.Content) {
					out[cat][t.name] = true
				}
			}
		}
	}

	result := make(map[string][]string, len(out))
	for cat, set := range out {
		for name := range set {
			result[cat] = append(result[cat], name)
		}
	}
	return result
}

// HasManifestReference reports whether any of the given top-level manifest
// file contents reference the named package/dependency token.
func HasManifestReference(manifestContents []string, token string) bool {
	for _, c := range manifestContents {
		if strings.Contains(c, token) {
			return true
		}
	}
	return false
}
