package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"skillrank/internal/evaluation"
	"skillrank/internal/scoring"
	"skillrank/internal/types"
)

func sampleSelection() types.SelectSkillsResponse {
	return types.SelectSkillsResponse{
		Technology:  []string{"Docker", "redis"},
		Programming: []string{"Python"},
		Concepts:    []string{},
		Details: map[string]types.CategoryDetails{
			"technology": {
				"Docker": scoring.Detail{Score: 3.0, NormalizedSkill: "docker", MatchedKeywords: []string{"docker", "redis"}},
				"redis":  scoring.Detail{Score: 3.0, NormalizedSkill: "redis", MatchedKeywords: []string{"docker", "redis"}},
			},
			"programming": {
				"Python": scoring.Detail{Score: 3.0, NormalizedSkill: "python", MatchedKeywords: []string{"python"}},
			},
			"concepts": {},
		},
	}
}

func sampleReport() evaluation.Report {
	return evaluation.Report{
		Results: []evaluation.CaseResult{
			{
				JobRole: "Backend Engineer",
				Evaluation: evaluation.CaseEvaluation{
					Scores:       map[string]float64{"technology": 0.5, "programming": 1.0, "concepts": 1.0},
					AverageScore: 0.8333,
					Mistakes: map[string]evaluation.Mistakes{
						"technology":  {Missing: []string{"Terraform"}},
						"programming": {},
						"concepts":    {},
					},
				},
			},
		},
		OverallScore: 0.8333,
		TopN:         5,
	}
}

func TestJSONFormatter(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleSelection(), "json")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var parsed types.SelectSkillsResponse
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("JSON output does not round-trip: %v", err)
	}
	if len(parsed.Technology) != 2 {
		t.Errorf("Expected 2 technology skills, got %v", parsed.Technology)
	}
}

func TestSelectionTextFormatter(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleSelection(), "text")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, want := range []string{"SELECTED SKILLS", "TECHNOLOGY:", "Docker", "score 3.0", "(none)"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestSelectionMarkdownFormatter(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleSelection(), "markdown")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, want := range []string{"# Selected Skills", "## Technology", "- Docker", "_none_"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestReportFormatters(t *testing.T) {
	text, err := GlobalRegistry.Format(sampleReport(), "text")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, want := range []string{"EVALUATION REPORT", "Backend Engineer", "0.8333", "Terraform"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected text report to contain %q, got:\n%s", want, text)
		}
	}

	report := sampleReport()
	markdown, err := GlobalRegistry.Format(&report, "markdown")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, want := range []string{"# Evaluation Report", "| Backend Engineer |", "0.5000"} {
		if !strings.Contains(markdown, want) {
			t.Errorf("Expected markdown report to contain %q, got:\n%s", want, markdown)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleSelection(), "xml"); err == nil {
		t.Error("Expected error for unknown format, got none")
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := GlobalRegistry.GetSupportedFormats()
	expected := []string{"json", "markdown", "text"}
	if len(formats) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, formats)
	}
	for i, f := range expected {
		if formats[i] != f {
			t.Errorf("Expected %v, got %v", expected, formats)
			break
		}
	}
}
