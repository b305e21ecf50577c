// Package gates implements the shared Gate Validator skeleton (C5) and the
// Validator Factory (C6): all fifteen gates share one implementation
// parameterized by (GateKind, Language) over the tables in internal/gatedata,
// following the "single template" design in spec §4.5.
package gates

import (
	"strconv"

	"github.com/hardgate/scanengine/internal/config"
	"github.com/hardgate/scanengine/internal/gatedata"
	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/patternmatch"
	"github.com/hardgate/scanengine/internal/walker"
)

// Validator runs one gate against one language's files.
type Validator interface {
	Validate(files []walker.File, records []model.FileRecord, totalLines int, techs map[string][]string, settings config.Settings) (*model.GateResult, error)
}

type genericValidator struct {
	gate model.GateKind
	lang model.Language
}

// New returns the validator for (gate, lang), or nil if no pattern table is
// registered for that pair — the caller treats a nil return as UNSUPPORTED.
func New(gate model.GateKind, lang model.Language) Validator {
	if len(gatedata.Patterns(gate, lang)) == 0 {
		return nil
	}
	return &genericValidator{gate: gate, lang: lang}
}

func (v *genericValidator) Validate(files []walker.File, records []model.FileRecord, totalLines int, techs map[string][]string, settings config.Settings) (*model.GateResult, error) {
	expected := gatedata.ExpectedCount(v.gate, records, totalLines)

	var langFiles []walker.File
	for _, f := range files {
		if f.Record.Language == v.lang {
			langFiles = append(langFiles, f)
		}
	}

	patterns := gatedata.Patterns(v.gate, v.lang)
	matches, skips, err := patternmatch.MatchFiles(langFiles, patterns, v.gate, settings.CaseSensitivePatterns, settings.PerScanWorkers)
	if err != nil {
		return nil, err
	}

	found := len(matches)
	coverage := model.Coverage(expected, found)
	quality := gatedata.QualityScore(v.gate, matches, techs)

	details := buildDetails(matches, v.gate)
	for _, s := range skips {
		details = append(details, "skipped file: "+s)
	}

	return &model.GateResult{
		Gate:            v.gate,
		Language:        v.lang,
		Expected:        expected,
		Found:           found,
		QualityScore:    quality,
		Details:         details,
		Recommendations: []string{gatedata.Recommendation(v.gate, coverage)},
		Technologies:    techs,
		Matches:         matches,
	}, nil
}

const maxDetailsPerFile = 3

func buildDetails(matches []*model.Match, gate model.GateKind) []string {
	perFile := map[string]int{}
	var details []string
	for _, m := range matches {
		if perFile[m.RelativePath] >= maxDetailsPerFile {
			continue
		}
		perFile[m.RelativePath]++
		details = append(details, m.RelativePath+":"+strconv.Itoa(m.Line)+": "+m.Category)
	}
	return details
}
