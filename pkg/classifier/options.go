package classifier

import "github.com/teklund/barrelint/pkg/layers"

// SuffixMapping binds a barrel file-name suffix to an architectural layer.
// Order matters for correction suggestions: the first mapping for a layer is
// the canonical suffix used when building a barrel path.
type SuffixMapping struct {
	Suffix string
	Layer  layers.Layer
}

// Options holds the pattern sets the classifier matches against. They are
// explicit data so multiple configurations can coexist side by side.
type Options struct {
	// InternalTokens are directory names that mark a path as implementation
	// detail when they appear as a full segment of an import URI.
	InternalTokens []string

	// DataTokens, DomainTokens and PresentationTokens are directory names
	// that assign a layer to a path. When a path carries tokens for more
	// than one layer, the layers are checked in the fixed priority order
	// Data, Domain, Presentation and the first match wins.
	DataTokens         []string
	DomainTokens       []string
	PresentationTokens []string

	// LayerSuffixes maps barrel file-name suffixes to layers, e.g.
	// "auth_data.dart" is the Data barrel of feature auth.
	LayerSuffixes []SuffixMapping

	// ExcludeDirs and ExcludeSuffixes identify conventional test locations
	// whose files never enter rule evaluation.
	ExcludeDirs     []string
	ExcludeSuffixes []string

	// SourceExt is the file extension of source and barrel files,
	// including the leading dot.
	SourceExt string
}

// DefaultOptions returns the conventional pattern sets for feature-first
// Flutter-style trees.
func DefaultOptions() Options {
	return Options{
		InternalTokens: []string{
			"data", "ui", "domain", "presentation", "application",
			"infrastructure", "services", "repositories", "providers",
			"blocs", "cubits", "widgets", "utils", "config", "helpers",
			"exceptions", "extensions", "models",
		},
		DataTokens: []string{"data", "repositories", "infrastructure"},
		DomainTokens: []string{
			"domain", "entities", "use_cases", "usecases",
		},
		PresentationTokens: []string{
			"ui", "presentation", "widgets", "pages", "screens", "views",
			"blocs", "cubits", "providers",
		},
		LayerSuffixes: []SuffixMapping{
			{Suffix: "data", Layer: layers.Data},
			{Suffix: "domain", Layer: layers.Domain},
			{Suffix: "presentation", Layer: layers.Presentation},
			{Suffix: "ui", Layer: layers.Presentation},
		},
		ExcludeDirs:     []string{"test", "tests", "integration_test", "test_driver"},
		ExcludeSuffixes: []string{"_test.dart"},
		SourceExt:       ".dart",
	}
}
