package scoring

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		skill    string
		expected string
	}{
		{
			name:     "synonym folds to canonical - ReactJS",
			skill:    "ReactJS",
			expected: "react",
		},
		{
			name:     "trim and synonym - Node.js",
			skill:    "  Node.js ",
			expected: "nodejs",
		},
		{
			name:     "bare node folds to nodejs",
			skill:    "node",
			expected: "nodejs",
		},
		{
			name:     "lowercase passthrough for unknown skill",
			skill:    "PYTHON",
			expected: "python",
		},
		{
			name:     "multi-word synonym - amazon web services",
			skill:    "Amazon Web Services",
			expected: "aws",
		},
		{
			name:     "ci folds to ci/cd",
			skill:    "CI",
			expected: "ci/cd",
		},
		{
			name:     "csharp folds to c#",
			skill:    "CSharp",
			expected: "c#",
		},
		{
			name:     "unknown skill passes through trimmed and lowered",
			skill:    "  Figma  ",
			expected: "figma",
		},
		{
			name:     "empty string",
			skill:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			skill:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.skill)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"ReactJS", "  Node.js ", "Random Forest Classifier", "Figma", ""}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestInvertNormalizationMapUnambiguous(t *testing.T) {
	// Every synonym must map to exactly one canonical form; a duplicate
	// synonym across two canonical entries would make normalization depend
	// on map iteration order.
	seen := make(map[string]string)
	for canonical, synonyms := range normalizationMap {
		for _, synonym := range synonyms {
			if prev, ok := seen[synonym]; ok && prev != canonical {
				t.Errorf("Synonym %q maps to both %q and %q", synonym, prev, canonical)
			}
			seen[synonym] = canonical
		}
	}
}

func BenchmarkNormalize(b *testing.B) {
	b.Run("synonym hit", func(b *testing.B) {
		for b.Loop() {
			Normalize("ReactJS")
		}
	})

	b.Run("passthrough", func(b *testing.B) {
		for b.Loop() {
			Normalize("Figma")
		}
	})
}
