package evaluation

import (
	"reflect"
	"testing"

	"skillrank/internal/config"
	"skillrank/internal/selector"
	"skillrank/internal/types"
)

func TestParseCases(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expectError bool
		expectCases int
	}{
		{
			name: "valid fixture",
			data: `[{"input": {"job_role": "Backend Engineer", "technology": ["Docker"]},
			        "expected": {"technology": ["Docker"]}}]`,
			expectCases: 1,
		},
		{
			name:        "invalid json",
			data:        `{not json`,
			expectError: true,
		},
		{
			name:        "wrong shape",
			data:        `{"input": {}}`,
			expectError: true,
		},
		{
			name:        "empty case list",
			data:        `[]`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cases, err := ParseCases([]byte(tt.data))
			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if len(cases) != tt.expectCases {
				t.Errorf("Expected %d cases, got %d", tt.expectCases, len(cases))
			}
		})
	}
}

func TestEvaluateCase(t *testing.T) {
	selected := &types.SelectSkillsResponse{
		Technology:  []string{"Docker", "Kubernetes"},
		Programming: []string{"Python"},
		Concepts:    []string{},
	}

	expected := map[string][]string{
		"technology":  {"Docker", "Terraform"},
		"programming": {"Python"},
		"concepts":    {},
	}

	eval := EvaluateCase(selected, expected, 10)

	// Technology: 1 hit (Docker), 1 missing (Terraform), 1 unexpected
	// (Kubernetes) -> 1/3.
	if eval.Scores["technology"] != 0.3333 {
		t.Errorf("Expected technology score 0.3333, got %v", eval.Scores["technology"])
	}
	if eval.Scores["programming"] != 1.0 {
		t.Errorf("Expected programming score 1.0, got %v", eval.Scores["programming"])
	}
	// Both sides empty: denominator is zero, counted as perfect.
	if eval.Scores["concepts"] != 1.0 {
		t.Errorf("Expected concepts score 1.0, got %v", eval.Scores["concepts"])
	}

	if !reflect.DeepEqual(eval.Mistakes["technology"].Missing, []string{"Terraform"}) {
		t.Errorf("Expected missing [Terraform], got %v", eval.Mistakes["technology"].Missing)
	}
	if !reflect.DeepEqual(eval.Mistakes["technology"].Unexpected, []string{"Kubernetes"}) {
		t.Errorf("Expected unexpected [Kubernetes], got %v", eval.Mistakes["technology"].Unexpected)
	}

	// Average of 0.3333, 1.0, 1.0.
	if eval.AverageScore != 0.7778 {
		t.Errorf("Expected average score 0.7778, got %v", eval.AverageScore)
	}
}

func TestEvaluateCaseTruncatesExpectedToTopN(t *testing.T) {
	selected := &types.SelectSkillsResponse{
		Technology: []string{"Docker"},
	}
	expected := map[string][]string{
		"technology": {"Docker", "Terraform", "Ansible"},
	}

	eval := EvaluateCase(selected, expected, 1)
	if eval.Scores["technology"] != 1.0 {
		t.Errorf("Expected score 1.0 after truncating expected to topN, got %v", eval.Scores["technology"])
	}
}

func TestRun(t *testing.T) {
	cfg := &config.Config{Scoring: config.ScoringConfig{
		Method: config.MethodBaseline,
		TopN:   10,
	}}
	svc := selector.New(cfg, nil, nil)

	cases := []Case{
		{
			Input: CaseInput{
				JobRole:     "Backend Engineer",
				Technology:  []string{"Docker", "Photoshop"},
				Programming: []string{"Python"},
			},
			Expected: map[string][]string{
				"technology":  {"Docker"},
				"programming": {"Python"},
			},
		},
	}

	report, err := Run(svc, cases, 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(report.Results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(report.Results))
	}
	// Photoshop scores zero and is dropped, so every category matches.
	if report.OverallScore != 1.0 {
		t.Errorf("Expected overall score 1.0, got %v", report.OverallScore)
	}
	if report.TopN != 5 {
		t.Errorf("Expected topN 5, got %d", report.TopN)
	}
	if report.Results[0].JobRole != "Backend Engineer" {
		t.Errorf("Expected job role in result, got %q", report.Results[0].JobRole)
	}
}

func TestRunPropagatesSelectorErrors(t *testing.T) {
	// A method other than baseline makes every selection fail; Run should
	// surface that instead of producing a partial report.
	cfg := &config.Config{Scoring: config.ScoringConfig{Method: "embeddings", TopN: 10}}
	svc := selector.New(cfg, nil, nil)

	_, err := Run(svc, []Case{{Input: CaseInput{JobRole: "Backend Engineer"}}}, 5)
	if err == nil {
		t.Fatal("Expected error from selector, got none")
	}
}
