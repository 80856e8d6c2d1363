package scoring

import "strings"

// ClassifyRole maps a free-text job role to a role family key. Matching is
// token based with a fixed precedence; the first rule that fires wins. Roles
// matching nothing fall through to the general family.
func ClassifyRole(jobRole string) string {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(jobRole)), "-", " ")

	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(normalized) {
		tokens[tok] = struct{}{}
	}
	has := func(tok string) bool {
		_, ok := tokens[tok]
		return ok
	}

	switch {
	case has("mobile"):
		return "mobile"
	case has("fullstack") || (has("full") && has("stack")):
		return "fullstack"
	case has("backend"):
		return "backend"
	case has("frontend"):
		return "frontend"
	case has("devops"):
		return "devops"
	// Grouping is deliberately ml OR (machine AND learning) OR ai; "machine
	// vision engineer" alone does not classify as ml.
	case has("ml") || (has("machine") && has("learning")) || has("ai"):
		return "ml"
	case has("data"):
		return "data"
	case has("security") || has("cybersecurity"):
		return "security"
	}
	return GeneralRole
}
