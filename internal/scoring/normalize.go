package scoring

import "strings"

// Normalize collapses a raw skill string to its canonical form: leading and
// trailing whitespace is trimmed, the string is lowercased, and known
// synonyms fold to a single canonical spelling ("ReactJS" -> "react").
// Unknown skills pass through lowercased and trimmed. An empty or
// whitespace-only input normalizes to the empty string. Normalize never
// fails and is idempotent for anything it returns.
func Normalize(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := synonymToCanonical[s]; ok {
		return canonical
	}
	return s
}
