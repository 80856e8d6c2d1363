package scoring

import (
	"fmt"
	"sort"
)

// Category is one of the three fixed skill buckets every request carries.
type Category string

const (
	CategoryTechnology  Category = "technology"
	CategoryProgramming Category = "programming"
	CategoryConcepts    Category = "concepts"
)

// Categories lists the fixed buckets in their canonical order.
var Categories = []Category{CategoryTechnology, CategoryProgramming, CategoryConcepts}

// GeneralRole is the fallback role family used when classification finds no
// match or a caller passes a family the registry does not know.
const GeneralRole = "general"

// Profile is the static keyword profile for one role family. Each category
// slot is always present; a family with nothing to say for a category keeps
// an empty slice rather than a missing entry. Inherits names the direct
// parent families whose keyword sets are unioned in at load time.
type Profile struct {
	Inherits    []string
	Technology  []string
	Programming []string
	Concepts    []string
}

func (p Profile) keywords(cat Category) []string {
	switch cat {
	case CategoryTechnology:
		return p.Technology
	case CategoryProgramming:
		return p.Programming
	case CategoryConcepts:
		return p.Concepts
	}
	return nil
}

var roleProfiles = map[string]Profile{
	"backend": {
		Technology:  []string{"node.js", "django", "spring", "fastapi", "postgresql", "mysql", "mongodb", "redis", "docker", "kubernetes", "kafka", "aws"},
		Programming: []string{"java", "python", "c#"},
		Concepts:    []string{"database", "server", "api", "microservices", "cloud", "authentication", "authorization"},
	},
	"frontend": {
		Technology:  []string{"react", "vue", "angular", "bootstrap", "tailwind"},
		Programming: []string{"javascript", "typescript", "css", "html"},
		Concepts:    []string{"ui", "ux", "accessibility", "responsive", "web", "design", "components", "state"},
	},
	"fullstack": {
		Inherits: []string{"backend", "frontend", "devops"},
	},
	"data": {
		Technology:  []string{"aws", "matplotlib", "tensorflow", "spark", "hadoop"},
		Programming: []string{"r", "python", "sql"},
		Concepts:    []string{"nosql", "bi tools", "analysis", "cluster", "cloud", "visualization", "statistics", "big data"},
	},
	"devops": {
		Technology:  []string{"linux", "aws", "azure", "docker", "kubernetes", "ansible", "terraform", "jenkins", "prometheus", "grafana", "google cloud"},
		Programming: []string{"python", "bash", "powershell", "rust", "go", "c", "c++"},
		Concepts:    []string{"system", "infrastructure", "automation", "ci/cd", "monitoring", "cloud", "containerization", "orchestration", "networking", "scripting"},
	},
	"security": {
		Technology:  []string{"linux", "windows", "aws", "azure", "gcp", "metasploit", "nmap", "wireshark", "burp suite"},
		Programming: []string{"rust", "c", "assembly", "python", "c++", "bash"},
		Concepts:    []string{"networking", "cryptography", "system", "encryption", "cybersecurity", "vulnerability", "penetration testing", "compliance", "firewall", "intrusion detection", "incident response", "reverse engineering", "fuzzing", "malware analysis"},
	},
	"mobile": {
		Technology:  []string{"react native", "flutter"},
		Programming: []string{"swift", "kotlin", "java", "javascript"},
		Concepts:    []string{"mobile", "app", "android", "ios"},
	},
	"ml": {
		Technology:  []string{"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy"},
		Programming: []string{"python", "c++"},
		Concepts:    []string{"machine learning", "deep learning", "neural networks", "data science", "artificial intelligence", "rnn", "cnn", "nlp", "computer vision", "reinforcement learning", "genai", "random forest", "decision tree"},
	},
	GeneralRole: {
		Technology:  []string{"git", "github", "docker", "linux", "sql", "excel"},
		Programming: []string{"python", "javascript", "java", "sql"},
		Concepts:    []string{"api", "agile", "testing", "debugging", "version control", "communication", "problem solving"},
	},
}

// resolvedProfile holds a family's effective keywords per category after
// inheritance has been applied: a membership set for exact-match lookups and
// a sorted slice for deterministic diagnostic output.
type resolvedProfile struct {
	members map[Category]map[string]struct{}
	sorted  map[Category][]string
}

// registry maps role family -> resolved profile. Built once at package load,
// read-only afterwards. Inheritance is one union pass over the direct
// parents; a parent's own Inherits list is not followed.
var registry = mustResolveProfiles(roleProfiles)

func mustResolveProfiles(profiles map[string]Profile) map[string]*resolvedProfile {
	resolved := make(map[string]*resolvedProfile, len(profiles))
	for family, profile := range profiles {
		for _, parent := range profile.Inherits {
			if _, ok := profiles[parent]; !ok {
				// A dangling parent reference is a programming error in the
				// static tables; refuse to start rather than silently score
				// against an incomplete keyword set.
				panic(fmt.Sprintf("scoring: role profile %q inherits unknown family %q", family, parent))
			}
		}

		rp := &resolvedProfile{
			members: make(map[Category]map[string]struct{}, len(Categories)),
			sorted:  make(map[Category][]string, len(Categories)),
		}
		for _, cat := range Categories {
			members := make(map[string]struct{})
			for _, kw := range profile.keywords(cat) {
				members[kw] = struct{}{}
			}
			for _, parent := range profile.Inherits {
				for _, kw := range profiles[parent].keywords(cat) {
					members[kw] = struct{}{}
				}
			}

			keywords := make([]string, 0, len(members))
			for kw := range members {
				keywords = append(keywords, kw)
			}
			sort.Strings(keywords)

			rp.members[cat] = members
			rp.sorted[cat] = keywords
		}
		resolved[family] = rp
	}
	return resolved
}

// lookupProfile resolves a role family, falling back to the general profile
// for families the registry does not know.
func lookupProfile(family string) *resolvedProfile {
	if rp, ok := registry[family]; ok {
		return rp
	}
	return registry[GeneralRole]
}

// RoleFamilies returns the sorted list of known role family keys.
func RoleFamilies() []string {
	families := make([]string, 0, len(registry))
	for family := range registry {
		families = append(families, family)
	}
	sort.Strings(families)
	return families
}
