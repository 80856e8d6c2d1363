// Package evaluation implements the offline quality check: it replays a
// fixture of selection cases through the selector and scores the output
// against expected top skills with a per-category Jaccard index.
package evaluation

import (
	"encoding/json"
	"math"
	"sort"

	"skillrank/internal/errors"
	"skillrank/internal/scoring"
	"skillrank/internal/selector"
	"skillrank/internal/types"
)

// Case is one fixture entry: a selection input and the expected top skills
// per category.
type Case struct {
	Input    CaseInput           `json:"input"`
	Expected map[string][]string `json:"expected"`
}

// CaseInput mirrors the selection request fields the fixture provides.
type CaseInput struct {
	JobRole     string   `json:"job_role"`
	Technology  []string `json:"technology"`
	Programming []string `json:"programming"`
	Concepts    []string `json:"concepts"`
}

// Mistakes lists what a category selection got wrong, both directions.
type Mistakes struct {
	Missing    []string `json:"missing"`
	Unexpected []string `json:"unexpected"`
}

// CaseEvaluation scores one case: per-category Jaccard scores in [0,1],
// their mean, and the concrete mistakes behind each score.
type CaseEvaluation struct {
	Scores       map[string]float64  `json:"scores"`
	AverageScore float64             `json:"average_score"`
	Mistakes     map[string]Mistakes `json:"mistakes"`
}

// CaseResult pairs a case's job role with its evaluation.
type CaseResult struct {
	JobRole    string         `json:"job_role"`
	Evaluation CaseEvaluation `json:"evaluation"`
}

// Report is the full evaluation output across all fixture cases.
type Report struct {
	Results      []CaseResult `json:"results"`
	OverallScore float64      `json:"overall_score"`
	TopN         int          `json:"top_n"`
}

// ParseCases decodes a fixture file's contents.
func ParseCases(data []byte) ([]Case, error) {
	var cases []Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidFixture,
			"fixture file is not a valid JSON case list", err)
	}
	if len(cases) == 0 {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidFixture,
			"fixture file contains no cases", nil)
	}
	return cases, nil
}

// EvaluateCase compares a selection against the expected skills, trimmed to
// topN per category. The score per category is the Jaccard index
// |hits| / (|hits| + |missing| + |unexpected|), which penalises missing
// expected items and unexpected extras equally. An empty denominator counts
// as a perfect 1.0.
func EvaluateCase(selected *types.SelectSkillsResponse, expected map[string][]string, topN int) CaseEvaluation {
	scores := make(map[string]float64, len(scoring.Categories))
	mistakes := make(map[string]Mistakes, len(scoring.Categories))

	scoreSum := 0.0
	for _, cat := range scoring.Categories {
		selectedSet := toSet(selected.Selected(cat))
		expectedList := expected[string(cat)]
		if topN > 0 && len(expectedList) > topN {
			expectedList = expectedList[:topN]
		}
		expectedSet := toSet(expectedList)

		hits := 0
		var missing, unexpected []string
		for skill := range expectedSet {
			if _, ok := selectedSet[skill]; ok {
				hits++
			} else {
				missing = append(missing, skill)
			}
		}
		for skill := range selectedSet {
			if _, ok := expectedSet[skill]; !ok {
				unexpected = append(unexpected, skill)
			}
		}
		sort.Strings(missing)
		sort.Strings(unexpected)

		score := 1.0
		if denominator := hits + len(missing) + len(unexpected); denominator > 0 {
			score = round4(float64(hits) / float64(denominator))
		}

		scores[string(cat)] = score
		mistakes[string(cat)] = Mistakes{Missing: missing, Unexpected: unexpected}
		scoreSum += score
	}

	return CaseEvaluation{
		Scores:       scores,
		AverageScore: round4(scoreSum / float64(len(scoring.Categories))),
		Mistakes:     mistakes,
	}
}

// Run replays every case through the selector with diagnostics on and
// zero-scoring skills dropped, and aggregates the per-case evaluations.
func Run(svc *selector.Service, cases []Case, topN int) (*Report, error) {
	devMode := true
	includeZero := false

	results := make([]CaseResult, 0, len(cases))
	scoreSum := 0.0
	for _, c := range cases {
		resp, err := svc.SelectSkills(types.SelectSkillsRequest{
			JobRole:     c.Input.JobRole,
			Technology:  c.Input.Technology,
			Programming: c.Input.Programming,
			Concepts:    c.Input.Concepts,
			TopN:        &topN,
			DevMode:     &devMode,
			IncludeZero: &includeZero,
		})
		if err != nil {
			return nil, err
		}

		evaluation := EvaluateCase(&resp, c.Expected, topN)
		results = append(results, CaseResult{JobRole: c.Input.JobRole, Evaluation: evaluation})
		scoreSum += evaluation.AverageScore
	}

	return &Report{
		Results:      results,
		OverallScore: round4(scoreSum / float64(len(results))),
		TopN:         topN,
	}, nil
}

func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
