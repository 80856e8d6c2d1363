package scoring

import (
	"testing"
)

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		name     string
		jobRole  string
		expected string
	}{
		{
			name:     "hyphenated full stack",
			jobRole:  "Full-Stack Developer",
			expected: "fullstack",
		},
		{
			name:     "single token fullstack",
			jobRole:  "Fullstack Engineer",
			expected: "fullstack",
		},
		{
			name:     "backend engineer",
			jobRole:  "Senior Backend Engineer",
			expected: "backend",
		},
		{
			name:     "frontend developer",
			jobRole:  "Frontend Developer",
			expected: "frontend",
		},
		{
			name:     "devops",
			jobRole:  "DevOps Engineer",
			expected: "devops",
		},
		{
			name:     "mobile outranks everything",
			jobRole:  "Mobile Backend Developer",
			expected: "mobile",
		},
		{
			name:     "machine learning engineer",
			jobRole:  "Machine Learning Engineer",
			expected: "ml",
		},
		{
			name:     "ai engineer",
			jobRole:  "AI Engineer",
			expected: "ml",
		},
		{
			name:     "ml token",
			jobRole:  "ML Ops Specialist",
			expected: "ml",
		},
		{
			name:     "machine alone is not ml",
			jobRole:  "Machine Vision Engineer",
			expected: "general",
		},
		{
			name:     "data scientist",
			jobRole:  "Data Scientist",
			expected: "data",
		},
		{
			name:     "ml outranks data",
			jobRole:  "Machine Learning Data Engineer",
			expected: "ml",
		},
		{
			name:     "security engineer",
			jobRole:  "Security Engineer",
			expected: "security",
		},
		{
			name:     "cybersecurity analyst",
			jobRole:  "Cybersecurity Analyst",
			expected: "security",
		},
		{
			name:     "unknown role falls back to general",
			jobRole:  "Product Manager",
			expected: "general",
		},
		{
			name:     "empty role",
			jobRole:  "",
			expected: "general",
		},
		{
			name:     "case insensitive",
			jobRole:  "BACKEND developer",
			expected: "backend",
		},
		{
			name:     "substring tokens do not match",
			jobRole:  "Backender",
			expected: "general",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyRole(tt.jobRole)
			if result != tt.expected {
				t.Errorf("ClassifyRole(%q): expected %q, got %q", tt.jobRole, tt.expected, result)
			}
		})
	}
}

func TestClassifyRoleAlwaysResolvable(t *testing.T) {
	// Every family the classifier can emit must exist in the profile
	// registry, otherwise scoring silently degrades to the general profile.
	roles := []string{
		"Mobile Developer", "Full-Stack Developer", "Backend Engineer",
		"Frontend Engineer", "DevOps Engineer", "ML Engineer",
		"Data Analyst", "Security Researcher", "Product Owner",
	}
	for _, role := range roles {
		family := ClassifyRole(role)
		if _, ok := registry[family]; !ok {
			t.Errorf("ClassifyRole(%q) returned %q which is not a registered profile", role, family)
		}
	}
}
