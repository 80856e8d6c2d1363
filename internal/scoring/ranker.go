package scoring

import "sort"

// Detail is the diagnostic record kept for each skill that survives ranking.
type Detail struct {
	Score           float64  `json:"score"`
	NormalizedSkill string   `json:"normalized_skill"`
	MatchedKeywords []string `json:"matched_keywords"`
}

type rankedSkill struct {
	skill  string
	score  float64
	detail Detail
}

// Rank scores every input skill against (roleFamily, category), orders them
// by score descending with ties broken by the original skill string
// ascending, and truncates to topN. A topN of zero or less means unbounded.
// Zero-scoring skills are dropped unless includeZero is set. The returned
// list always contains original input strings verbatim, never normalized
// forms, and the detail map covers exactly the retained entries.
func Rank(skills []string, roleFamily string, category Category, topN int, includeZero bool) ([]string, map[string]Detail) {
	ranked := make([]rankedSkill, 0, len(skills))
	for _, skill := range skills {
		score, sd := ScoreSkill(skill, roleFamily, category)
		if score == ScoreNone && !includeZero {
			continue
		}
		ranked = append(ranked, rankedSkill{
			skill: skill,
			score: score,
			detail: Detail{
				Score:           score,
				NormalizedSkill: sd.NormalizedSkill,
				MatchedKeywords: sd.MatchedKeywords,
			},
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].skill < ranked[j].skill
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	selected := make([]string, 0, len(ranked))
	details := make(map[string]Detail, len(ranked))
	for _, r := range ranked {
		selected = append(selected, r.skill)
		details[r.skill] = r.detail
	}
	return selected, details
}
