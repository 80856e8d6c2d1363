package types

import "skillrank/internal/scoring"

// SelectSkillsRequest is the input for a skill selection call. The three
// category lists are required but may be empty. TopN, DevMode and
// IncludeZero are pointers so an absent field falls back to the configured
// default instead of the zero value. JobText is accepted but not used by the
// baseline scoring method; it is reserved for future methods.
type SelectSkillsRequest struct {
	JobRole     string   `json:"job_role"`
	Technology  []string `json:"technology"`
	Programming []string `json:"programming"`
	Concepts    []string `json:"concepts"`
	JobText     string   `json:"job_text,omitempty"`
	TopN        *int     `json:"top_n,omitempty"`
	Method      string   `json:"method,omitempty"`
	DevMode     *bool    `json:"dev_mode,omitempty"`
	IncludeZero *bool    `json:"include_zero,omitempty"`
}

// CategoryDetails maps an original (verbatim) skill string to its
// diagnostic record.
type CategoryDetails map[string]scoring.Detail

// SelectSkillsResponse carries the ranked selection per category. Details is
// only populated when dev mode is on; otherwise the field is absent from the
// JSON output entirely.
type SelectSkillsResponse struct {
	Technology  []string                   `json:"technology"`
	Programming []string                   `json:"programming"`
	Concepts    []string                   `json:"concepts"`
	Details     map[string]CategoryDetails `json:"details,omitempty"`
}

// Selected returns the ranked list for a category.
func (r *SelectSkillsResponse) Selected(cat scoring.Category) []string {
	switch cat {
	case scoring.CategoryTechnology:
		return r.Technology
	case scoring.CategoryProgramming:
		return r.Programming
	case scoring.CategoryConcepts:
		return r.Concepts
	}
	return nil
}
