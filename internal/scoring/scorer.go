package scoring

import "strings"

// Skill match scores. Exact keyword membership outranks substring
// containment; anything else scores zero.
const (
	ScoreExact   = 3.0
	ScorePartial = 1.0
	ScoreNone    = 0.0
)

// ScoreDetail is the per-skill diagnostic returned alongside every score.
// MatchedKeywords is the full effective keyword set the skill was scored
// against, sorted for deterministic output.
type ScoreDetail struct {
	NormalizedSkill string   `json:"normalized_skill"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// ScoreSkill scores one raw skill string against a role family's keyword set
// for a category. An unknown family resolves to the general profile. The
// score is 3.0 for an exact member of the effective keyword set, 1.0 when
// the normalized skill is a substring of any keyword, and 0.0 otherwise
// (including empty input). ScoreSkill never fails.
func ScoreSkill(skill, roleFamily string, category Category) (float64, ScoreDetail) {
	normalized := Normalize(skill)
	profile := lookupProfile(roleFamily)

	detail := ScoreDetail{
		NormalizedSkill: normalized,
		MatchedKeywords: profile.sorted[category],
	}

	if normalized == "" {
		return ScoreNone, detail
	}
	if _, ok := profile.members[category][normalized]; ok {
		return ScoreExact, detail
	}
	// Containment is keyword-contains-skill: normalized "dock" partial
	// matches keyword "docker", not the reverse.
	for _, keyword := range profile.sorted[category] {
		if strings.Contains(keyword, normalized) {
			return ScorePartial, detail
		}
	}
	return ScoreNone, detail
}
