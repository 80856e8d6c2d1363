package scoring

// normalizationMap maps each canonical skill spelling to the alternate
// spellings candidates commonly submit. It is inverted once at package load
// into synonymToCanonical; lookups never touch this table directly.
var normalizationMap = map[string][]string{
	"nodejs":        {"node.js", "node"},
	"react":         {"reactjs", "react.js"},
	"vue":           {"vuejs", "vue.js"},
	"angular":       {"angularjs", "angular.js"},
	"bootstrap":     {"bootstrapcss", "bootstrap css"},
	"tailwind":      {"tailwindcss", "tailwind css"},
	"aws":           {"amazon web services", "amazon cloud"},
	"azure":         {"microsoft azure", "azure cloud"},
	"gcp":           {"google cloud platform", "google cloud"},
	"ci/cd":         {"continuous integration", "continuous delivery", "continuous deployment", "ci", "cd", "cicd", "cicd pipelines"},
	"react native":  {"reactnative", "react-native"},
	"postgresql":    {"postgres"},
	"javascript":    {"js"},
	"c#":            {"csharp"},
	"rnn":           {"recurrent neural network"},
	"cnn":           {"convolutional neural network"},
	"nlp":           {"natural language processing"},
	"genai":         {"generative ai", "generative artificial intelligence"},
	"random forest": {"randomforest", "random-forest", "random forest classifier", "random forests"},
}

// synonymToCanonical is the inverted table: every known synonym maps to
// exactly one canonical form. Canonical forms not present as keys map to
// themselves implicitly (handled by Normalize).
var synonymToCanonical = invertNormalizationMap()

func invertNormalizationMap() map[string]string {
	inverted := make(map[string]string)
	for canonical, synonyms := range normalizationMap {
		for _, synonym := range synonyms {
			inverted[synonym] = canonical
		}
	}
	return inverted
}
