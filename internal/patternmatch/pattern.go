// Package patternmatch implements the Pattern Matcher (C3): regex scanning
// of walked files with full Match metadata, adapted from the pattern engine
// in qlp-hq-QLP's internal/validation/core package.
package patternmatch

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/hardgate/scanengine/internal/engineerr"
	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/walker"
)

// Pattern is one named regex to scan for, with the metadata a Match inherits
// when nothing downstream overrides it.
type Pattern struct {
	Name        string
	Regex       string
	PatternType string
	Category    string
	Severity    model.Severity
	SuggestedFix string
}

const contextRadius = 3

var funcSignature = map[model.Language]*regexp.Regexp{
	model.LanguageJava:       regexp.MustCompile(`(?m)^\s*(?:public|private|protected|static|final|\s)*\s*[\w<>\[\]]+\s+(\w+)\s*\([^)]*\)\s*\{?`),
	model.LanguagePython:     regexp.MustCompile(`(?m)^\s*def\s+(\w+)\s*\(`),
	model.LanguageJavaScript: regexp.MustCompile(`(?m)^\s*(?:async\s+)?function\s+(\w+)\s*\(|^\s*(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s*)?\(`),
	model.LanguageTypeScript: regexp.MustCompile(`(?m)^\s*(?:public|private|protected|static|async)?\s*(\w+)\s*\([^)]*\)\s*(?::\s*\w+\s*)?\{`),
	model.LanguageCSharp:     regexp.MustCompile(`(?m)^\s*(?:public|private|protected|internal|static|\s)*\s*[\w<>\[\]]+\s+(\w+)\s*\([^)]*\)\s*\{?`),
	model.LanguageDotNet:     regexp.MustCompile(`(?m)^\s*(?:Public|Private|Protected|Friend)?\s*(?:Function|Sub)\s+(\w+)\s*\(`),
}

var lineCommentPrefix = map[model.Language]string{
	model.LanguageJava:       "//",
	model.LanguagePython:     "#",
	model.LanguageJavaScript: "//",
	model.LanguageTypeScript: "//",
	model.LanguageCSharp:     "//",
	model.LanguageDotNet:     "'",
}

// MatchFiles scans every file against patterns, tagging each resulting Match
// with gate and language. Files are processed by a bounded worker pool of
// size workers (>= 1); result ordering across files is not meaningful. A
// regex compile error aborts the scan for that pattern set only.
func MatchFiles(files []walker.File, patterns []Pattern, gate model.GateKind, caseSensitive bool, workers int) ([]*model.Match, []string, error) {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		expr := p.Regex
		if !caseSensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: pattern %q: %v", engineerr.ErrPatternCompileError, p.Name, err)
		}
		compiled[i] = re
	}

	if workers < 1 {
		workers = 1
	}

	type job struct {
		idx int
		f   walker.File
	}
	jobs := make(chan job)
	resultsCh := make(chan []*model.Match, len(files))
	skipsCh := make(chan string, len(files))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				matches := matchFile(j.f, patterns, compiled, gate)
				resultsCh <- matches
			}
		}()
	}

	go func() {
		for i, f := range files {
			jobs <- job{idx: i, f: f}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(resultsCh)
		close(skipsCh)
	}()

	var all []*model.Match
	for ms := range resultsCh {
		all = append(all, ms...)
	}
	var skips []string
	for s := range skipsCh {
		skips = append(skips, s)
	}

	return all, skips, nil
}

func matchFile(f walker.File, patterns []Pattern, compiled []*regexp.Regexp, gate model.GateKind) []*model.Match {
	lines := strings.Split(f.Content, "\n")
	var out []*model.Match

	for pi, re := range compiled {
		p := patterns[pi]
		for lineIdx, line := range lines {
			loc := re.FindStringIndex(line)
			if loc == nil {
				continue
			}
			lineNum := lineIdx + 1
			m := &model.Match{
				RelativePath: f.Record.Path,
				FileName:     filepath.Base(f.Record.Path),
				Extension:    strings.TrimPrefix(filepath.Ext(f.Record.Path), "."),
				SizeBytes:    f.Record.SizeBytes,

				Line:        lineNum,
				ColumnStart: loc[0] + 1,
				ColumnEnd:   loc[1],
				MatchedText: line[loc[0]:loc[1]],
				LineText:    line,

				Pattern:     p.Regex,
				PatternType: p.PatternType,
				Category:    p.Category,
				Language:    f.Record.Language,
				Gate:        gate,

				Severity: p.Severity,
				Priority: model.PriorityForSeverity(p.Severity),

				LineLength:        len(line),
				LeadingWhitespace: leadingWhitespace(line),
				IsComment:         isComment(line, f.Record.Language),
				IsStringLiteral:   isStringLiteral(line, loc[0]),

				SuggestedFix: p.SuggestedFix,
			}

			start, end := lineIdx-contextRadius, lineIdx+contextRadius
			if start < 0 {
				start = 0
			}
			if end >= len(lines) {
				end = len(lines) - 1
			}
			m.ContextLines = append([]string{}, lines[start:end+1]...)
			m.ContextStart = start + 1
			m.ContextEnd = end + 1

			m.Function = nearestFunction(lines, lineIdx, f.Record.Language)

			out = append(out, m)
		}
	}

	return out
}

func leadingWhitespace(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

func isComment(line string, lang model.Language) bool {
	prefix, ok := lineCommentPrefix[lang]
	if !ok {
		return false
	}
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, prefix)
}

func isStringLiteral(line string, col int) bool {
	if col < 0 || col > len(line) {
		return false
	}
	before := line[:col]
	singles := strings.Count(before, "'")
	doubles := strings.Count(before, "\"")
	return singles%2 == 1 || doubles%2 == 1
}

// nearestFunction scans backward from matchLine for a language-specific
// function-declaration signature, returning nil if none is found within a
// reasonable window.
func nearestFunction(lines []string, matchLine int, lang model.Language) *model.FunctionContext {
	re, ok := funcSignature[lang]
	if !ok {
		return nil
	}
	const window = 200
	floor := matchLine - window
	if floor < 0 {
		floor = 0
	}
	for i := matchLine; i >= floor; i-- {
		sub := re.FindStringSubmatch(lines[i])
		if sub == nil {
			continue
		}
		name := ""
		for _, g := range sub[1:] {
			if g != "" {
				name = g
				break
			}
		}
		if name == "" {
			continue
		}
		return &model.FunctionContext{
			Name:          name,
			DeclLine:      i + 1,
			Signature:     strings.TrimSpace(lines[i]),
			DistanceLines: matchLine - i,
		}
	}
	return nil
}
