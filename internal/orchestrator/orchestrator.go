// Package orchestrator implements the Validation Orchestrator (C9): the
// end-to-end pipeline from a root path to a complete ValidationResult,
// driving every other core component in the order spec §4.9 describes.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hardgate/scanengine/internal/applicability"
	"github.com/hardgate/scanengine/internal/config"
	"github.com/hardgate/scanengine/internal/engineerr"
	"github.com/hardgate/scanengine/internal/gates"
	"github.com/hardgate/scanengine/internal/langdetect"
	"github.com/hardgate/scanengine/internal/llmhook"
	"github.com/hardgate/scanengine/internal/logger"
	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/scoring"
	"github.com/hardgate/scanengine/internal/techdetect"
	"github.com/hardgate/scanengine/internal/walker"
	"go.uber.org/zap"
)

// Run executes the full pipeline for settings.RootPath and returns the
// completed ValidationResult. ctx's deadline, if any, bounds the whole scan
// per spec §4.9's cancellation rule: a gate that cannot start before the
// deadline is skipped with a FAILED/"timeout" GateScore.
func Run(ctx context.Context, settings config.Settings, hook llmhook.Hook) (*model.ValidationResult, error) {
	if hook == nil {
		hook = llmhook.NoOp{}
	}

	start := time.Now()

	walked, err := walker.Walk(settings)
	if err != nil {
		return nil, err
	}

	rootEntries := readRootEntries(settings.RootPath)
	manifests := readManifestContents(settings.RootPath, rootEntries)

	languages := settings.Languages
	if len(languages) == 0 {
		detected := langdetect.Detect(walked.Files, rootEntries)
		for _, d := range detected {
			languages = append(languages, d.Language)
		}
	}
	if len(languages) == 0 {
		return nil, fmt.Errorf("%w: no supported language detected under %q", engineerr.ErrInvalidInput, settings.RootPath)
	}
	primary := languages[0]

	var records []model.FileRecord
	totalLines := 0
	for _, f := range walked.Files {
		records = append(records, f.Record)
		totalLines += f.Record.Lines
	}

	techs := techdetect.Detect(walked.Files, primary)

	log := logger.WithComponent("orchestrator")

	var scores []*model.GateScore
	for _, gate := range model.Gates {
		scores = append(scores, runGate(ctx, gate, walked.Files, records, totalLines, languages, techs, manifests, settings, hook, log))
	}

	result := &model.ValidationResult{
		ProjectName:     filepath.Base(strings.TrimRight(settings.RootPath, "/")),
		RootPath:        settings.RootPath,
		PrimaryLanguage: primary,
		TotalFiles:      len(records),
		TotalLines:      totalLines,
		Duration:        time.Since(start),
		Timestamp:       start,
		GateScores:      scores,
	}

	result.OverallScore = scoring.Overall(scores)
	result.Passed, result.Warnings, result.Failed = model.CountStatuses(scores)
	result.CriticalIssues = criticalIssues(scores)
	result.Recommendations = dedupRecommendations(scores)

	return result, nil
}

// runGate resolves applicability, runs the validator across every detected
// language, merges per-language results, applies the LLM hook, and scores
// the gate. A validator panic is recovered here and materialized as a
// FAILED GateScore, per spec §4.5's failure semantics; a validator error
// (such as a pattern that does not compile) fails the gate the same way.
func runGate(ctx context.Context, gate model.GateKind, files []walker.File, records []model.FileRecord, totalLines int, languages []model.Language, techs map[string][]string, manifests []string, settings config.Settings, hook llmhook.Hook, log *zap.Logger) (score *model.GateScore) {
	if !applicability.Applies(gate, files, manifests) {
		return &model.GateScore{Gate: gate, Status: model.StatusNotApplicable}
	}

	if deadline, ok := ctx.Deadline(); ok && time.Now().After(deadline) {
		return &model.GateScore{
			Gate:    gate,
			Status:  model.StatusFailed,
			Details: []string{"timeout: scan deadline exceeded before this gate could start"},
		}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("gate validator panicked", zap.String("gate", string(gate)), zap.Any("panic", r))
			score = &model.GateScore{
				Gate:       gate,
				Status:     model.StatusFailed,
				FinalScore: 0,
				Details:    []string{fmt.Sprintf("validator error: %v", r)},
			}
		}
	}()

	var results []*model.GateResult
	supported := false
	for _, lang := range languages {
		v := gates.New(gate, lang)
		if v == nil {
			continue
		}
		supported = true
		res, err := v.Validate(files, records, totalLines, techs, settings)
		if err != nil {
			log.Warn("gate validator failed", zap.String("gate", string(gate)), zap.String("language", string(lang)), zap.Error(err))
			return &model.GateScore{
				Gate:    gate,
				Status:  model.StatusFailed,
				Details: []string{fmt.Sprintf("validator error: %v", err)},
			}
		}
		results = append(results, res)
	}

	if !supported {
		return &model.GateScore{
			Gate:            gate,
			Status:          model.StatusUnsupported,
			Recommendations: []string{"no validator available"},
		}
	}

	merged := mergeResults(gate, results)

	if !llmhook.ShouldSkip(gate, scoring.Weight[gate], len(merged.Matches)) {
		enh, _ := hook.Enhance(ctx, gate, primaryOf(languages), techs, merged.Matches, merged.Recommendations)
		applyEnhancement(merged, enh)
	}

	coverage := model.Coverage(merged.Expected, merged.Found)
	final := scoring.FinalScore(gate, coverage, merged.QualityScore)

	return &model.GateScore{
		Gate:            gate,
		Expected:        merged.Expected,
		Found:           merged.Found,
		Coverage:        coverage,
		QualityScore:    merged.QualityScore,
		FinalScore:      final,
		Status:          model.StatusForScore(final),
		Details:         merged.Details,
		Recommendations: merged.Recommendations,
		Matches:         merged.Matches,
	}
}

func primaryOf(languages []model.Language) model.Language {
	if len(languages) == 0 {
		return ""
	}
	return languages[0]
}

// mergeResults sums expected/found, averages quality, and concatenates
// matches/details/recommendations (deduplicating recommendations while
// preserving first-seen order), per spec §4.9 step 4.
func mergeResults(gate model.GateKind, results []*model.GateResult) *model.GateResult {
	merged := &model.GateResult{Gate: gate}
	if len(results) == 0 {
		return merged
	}

	var qualitySum float64
	seenRec := map[string]bool{}

	for _, r := range results {
		merged.Expected += r.Expected
		merged.Found += r.Found
		qualitySum += r.QualityScore
		merged.Details = append(merged.Details, r.Details...)
		merged.Matches = append(merged.Matches, r.Matches...)
		for _, rec := range r.Recommendations {
			if seenRec[rec] {
				continue
			}
			seenRec[rec] = true
			merged.Recommendations = append(merged.Recommendations, rec)
		}
	}
	merged.QualityScore = qualitySum / float64(len(results))

	return merged
}

func applyEnhancement(merged *model.GateResult, enh llmhook.EnhancementResult) {
	if enh.EnhancedQualityScore != nil {
		merged.QualityScore = *enh.EnhancedQualityScore
	}
	if len(enh.Recommendations) > 0 {
		merged.Recommendations = enh.Recommendations
	}
	merged.Details = append(merged.Details, enh.ExtraDetails...)
}

func criticalIssues(scores []*model.GateScore) []string {
	var issues []string
	for _, s := range scores {
		if s.Gate == model.GateAvoidLoggingSecrets && s.Found > 0 {
			issues = append(issues, fmt.Sprintf("%d secret-logging violation(s) detected", s.Found))
		}
	}
	return issues
}

func dedupRecommendations(scores []*model.GateScore) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range scores {
		for _, r := range s.Recommendations {
			if seen[r] {
				continue
			}
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

func readRootEntries(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func readManifestContents(root string, entries []string) []string {
	var out []string
	for _, name := range entries {
		lower := strings.ToLower(name)
		if !strings.HasSuffix(lower, ".json") && !strings.HasSuffix(lower, ".xml") &&
			!strings.HasSuffix(lower, ".toml") && name != "requirements.txt" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		out = append(out, string(content))
	}
	return out
}
