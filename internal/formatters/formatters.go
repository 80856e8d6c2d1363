package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"skillrank/internal/evaluation"
	"skillrank/internal/scoring"
	"skillrank/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "SelectSkillsResponse", &SelectionTextFormatter{})
	registry.RegisterFormatter("markdown", "SelectSkillsResponse", &SelectionMarkdownFormatter{})
	registry.RegisterFormatter("text", "Report", &ReportTextFormatter{})
	registry.RegisterFormatter("markdown", "Report", &ReportMarkdownFormatter{})

	return registry
}

// GlobalRegistry is the default formatter registry
var GlobalRegistry = NewFormatterRegistry()

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.SelectSkillsResponse, *types.SelectSkillsResponse:
		return "SelectSkillsResponse"
	case evaluation.Report, *evaluation.Report:
		return "Report"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func asSelection(data any) (*types.SelectSkillsResponse, error) {
	switch v := data.(type) {
	case types.SelectSkillsResponse:
		return &v, nil
	case *types.SelectSkillsResponse:
		return v, nil
	}
	return nil, fmt.Errorf("expected SelectSkillsResponse, got %T", data)
}

func asReport(data any) (*evaluation.Report, error) {
	switch v := data.(type) {
	case evaluation.Report:
		return &v, nil
	case *evaluation.Report:
		return v, nil
	}
	return nil, fmt.Errorf("expected evaluation Report, got %T", data)
}

// SelectionTextFormatter handles text formatting for selection results
type SelectionTextFormatter struct{}

func (stf *SelectionTextFormatter) Format(data any) (string, error) {
	result, err := asSelection(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	output.WriteString("=== SELECTED SKILLS ===\n\n")
	for _, cat := range scoring.Categories {
		output.WriteString(strings.ToUpper(string(cat)))
		output.WriteString(":\n")
		selected := result.Selected(cat)
		if len(selected) == 0 {
			output.WriteString("  (none)\n")
		}
		for i, skill := range selected {
			output.WriteString(fmt.Sprintf("  %d. %s", i+1, skill))
			if details, ok := result.Details[string(cat)]; ok {
				if d, ok := details[skill]; ok {
					output.WriteString(fmt.Sprintf(" (score %.1f, normalized %q)", d.Score, d.NormalizedSkill))
				}
			}
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (stf *SelectionTextFormatter) SupportedType() string {
	return "SelectSkillsResponse"
}

// SelectionMarkdownFormatter handles markdown formatting for selection results
type SelectionMarkdownFormatter struct{}

func (smf *SelectionMarkdownFormatter) Format(data any) (string, error) {
	result, err := asSelection(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	output.WriteString("# Selected Skills\n\n")
	for _, cat := range scoring.Categories {
		output.WriteString(fmt.Sprintf("## %s\n\n", titleCase(string(cat))))
		selected := result.Selected(cat)
		if len(selected) == 0 {
			output.WriteString("_none_\n\n")
			continue
		}
		for _, skill := range selected {
			output.WriteString(fmt.Sprintf("- %s", skill))
			if details, ok := result.Details[string(cat)]; ok {
				if d, ok := details[skill]; ok {
					output.WriteString(fmt.Sprintf(" — score %.1f", d.Score))
				}
			}
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (smf *SelectionMarkdownFormatter) SupportedType() string {
	return "SelectSkillsResponse"
}

// ReportTextFormatter handles text formatting for evaluation reports
type ReportTextFormatter struct{}

func (rtf *ReportTextFormatter) Format(data any) (string, error) {
	report, err := asReport(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	output.WriteString("=== EVALUATION REPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Overall score: %.4f (top_n=%d, %d cases)\n\n", report.OverallScore, report.TopN, len(report.Results)))

	for _, result := range report.Results {
		output.WriteString(fmt.Sprintf("Case: %s (average %.4f)\n", result.JobRole, result.Evaluation.AverageScore))
		for _, cat := range scoring.Categories {
			key := string(cat)
			mistakes := result.Evaluation.Mistakes[key]
			output.WriteString(fmt.Sprintf("  %-12s %.4f", key, result.Evaluation.Scores[key]))
			if len(mistakes.Missing) > 0 {
				output.WriteString(fmt.Sprintf("  missing: %v", mistakes.Missing))
			}
			if len(mistakes.Unexpected) > 0 {
				output.WriteString(fmt.Sprintf("  unexpected: %v", mistakes.Unexpected))
			}
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (rtf *ReportTextFormatter) SupportedType() string {
	return "Report"
}

// ReportMarkdownFormatter handles markdown formatting for evaluation reports
type ReportMarkdownFormatter struct{}

func (rmf *ReportMarkdownFormatter) Format(data any) (string, error) {
	report, err := asReport(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	output.WriteString("# Evaluation Report\n\n")
	output.WriteString(fmt.Sprintf("**Overall score:** %.4f (top_n=%d, %d cases)\n\n", report.OverallScore, report.TopN, len(report.Results)))
	output.WriteString("| Job Role | Technology | Programming | Concepts | Average |\n")
	output.WriteString("|----------|-----------|-------------|----------|---------|\n")

	for _, result := range report.Results {
		output.WriteString(fmt.Sprintf("| %s | %.4f | %.4f | %.4f | %.4f |\n",
			result.JobRole,
			result.Evaluation.Scores[string(scoring.CategoryTechnology)],
			result.Evaluation.Scores[string(scoring.CategoryProgramming)],
			result.Evaluation.Scores[string(scoring.CategoryConcepts)],
			result.Evaluation.AverageScore))
	}

	return output.String(), nil
}

func (rmf *ReportMarkdownFormatter) SupportedType() string {
	return "Report"
}
