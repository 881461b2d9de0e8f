// Package classifier maps file paths and import URIs to feature identities,
// architectural layers and barrel roles. Every function is a pure, total
// function of the path string: malformed input degrades to "no match",
// never to an error.
package classifier

import (
	"strings"

	"github.com/teklund/barrelint/pkg/layers"
)

const (
	prefixedMarker = "feature_"
	nestedMarker   = "features"
	packageScheme  = "package:"
)

// NamingStyle distinguishes the two recognized feature conventions.
type NamingStyle int

const (
	// Prefixed is the single-segment form "feature_<name>/…".
	Prefixed NamingStyle = iota
	// Nested is the two-segment form "features/<name>/…".
	Nested
)

// FeatureIdentity identifies the feature a path belongs to. Two paths with
// the same Directory denote the same feature.
type FeatureIdentity struct {
	// Directory is the path from the tree root up to and including the
	// feature root segment, e.g. "lib/feature_auth" or "lib/features/auth".
	Directory string
	// Name is the bare feature name, e.g. "auth".
	Name string
	// Style records which convention matched.
	Style NamingStyle
}

// BarrelKind classifies a file's barrel role.
type BarrelKind int

const (
	NotABarrel BarrelKind = iota
	Monolithic
	LayerSpecific
)

// BarrelRole is the barrel classification of a file. Layer is meaningful
// only when Kind is LayerSpecific.
type BarrelRole struct {
	Kind  BarrelKind
	Layer layers.Layer
}

// IsBarrel reports whether the role denotes any recognized barrel.
func (r BarrelRole) IsBarrel() bool {
	return r.Kind != NotABarrel
}

// Classifier answers classification queries against one set of pattern
// options. It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	internal      map[string]bool
	layerTokens   map[layers.Layer]map[string]bool
	layerOrder    []layers.Layer
	suffixes      []SuffixMapping
	suffixIndex   map[string]layers.Layer
	excludeDirs   map[string]bool
	excludeSuffix []string
	ext           string
}

// New creates a Classifier from explicit options.
func New(opts Options) *Classifier {
	c := &Classifier{
		internal: toSet(opts.InternalTokens),
		layerTokens: map[layers.Layer]map[string]bool{
			layers.Data:         toSet(opts.DataTokens),
			layers.Domain:       toSet(opts.DomainTokens),
			layers.Presentation: toSet(opts.PresentationTokens),
		},
		// Tie-break order when one path carries tokens for several
		// layers. This is a documented priority list, not an accident
		// of iteration.
		layerOrder:    []layers.Layer{layers.Data, layers.Domain, layers.Presentation},
		suffixes:      opts.LayerSuffixes,
		suffixIndex:   make(map[string]layers.Layer, len(opts.LayerSuffixes)),
		excludeDirs:   toSet(opts.ExcludeDirs),
		excludeSuffix: opts.ExcludeSuffixes,
		ext:           opts.SourceExt,
	}
	for _, m := range opts.LayerSuffixes {
		c.suffixIndex[m.Suffix] = m.Layer
	}
	return c
}

// Default returns a classifier built from DefaultOptions.
func Default() *Classifier {
	return New(DefaultOptions())
}

// Ext returns the configured source-file extension.
func (c *Classifier) Ext() string {
	return c.ext
}

// Classify maps a path to its feature identity, or nil when the path
// matches neither convention. The prefixed form is tried before the nested
// form so that a path matching both classifies deterministically.
func (c *Classifier) Classify(path string) *FeatureIdentity {
	segs := Segments(path)

	for i, seg := range segs {
		if name, ok := strings.CutPrefix(seg, prefixedMarker); ok && name != "" && i < len(segs)-1 {
			return &FeatureIdentity{
				Directory: strings.Join(segs[:i+1], "/"),
				Name:      name,
				Style:     Prefixed,
			}
		}
	}

	for i, seg := range segs {
		if seg == nestedMarker && i+1 < len(segs)-1 && segs[i+1] != "" {
			return &FeatureIdentity{
				Directory: strings.Join(segs[:i+2], "/"),
				Name:      segs[i+1],
				Style:     Nested,
			}
		}
	}

	return nil
}

// LayerOf derives the architectural layer of a path from its directory
// segments. Layers are checked in priority order; the first layer with any
// matching token wins. Paths with no recognized token are Unknown.
func (c *Classifier) LayerOf(path string) layers.Layer {
	segs := Segments(path)

	for _, layer := range c.layerOrder {
		tokens := c.layerTokens[layer]
		for _, seg := range segs {
			if tokens[seg] {
				return layer
			}
		}
	}

	return layers.Unknown
}

// RoleOf classifies a file's barrel role within its feature. A file is
// barrel-eligible only when it sits directly inside the feature root; its
// name must be the feature name (monolithic) or the feature name plus a
// recognized layer suffix (layer-specific).
func (c *Classifier) RoleOf(path string, feature *FeatureIdentity) BarrelRole {
	if feature == nil {
		return BarrelRole{Kind: NotABarrel}
	}

	segs := Segments(path)
	if len(segs) == 0 {
		return BarrelRole{Kind: NotABarrel}
	}

	dir := strings.Join(segs[:len(segs)-1], "/")
	if dir != normalize(feature.Directory) {
		return BarrelRole{Kind: NotABarrel}
	}

	base := segs[len(segs)-1]
	name, ok := strings.CutSuffix(base, c.ext)
	if !ok {
		return BarrelRole{Kind: NotABarrel}
	}

	if name == feature.Name {
		return BarrelRole{Kind: Monolithic}
	}

	if rest, ok := strings.CutPrefix(name, feature.Name+"_"); ok {
		if layer, known := c.suffixIndex[rest]; known {
			return BarrelRole{Kind: LayerSpecific, Layer: layer}
		}
	}

	return BarrelRole{Kind: NotABarrel}
}

// IsInternal reports whether an import URI reaches into a feature's
// implementation, i.e. whether any full path segment is a configured
// internal token.
func (c *Classifier) IsInternal(uri string) bool {
	for _, seg := range Segments(uri) {
		if c.internal[seg] {
			return true
		}
	}
	return false
}

// IsExcluded reports whether a path lives in a conventional test location
// or carries a test suffix. Excluded files never enter rule evaluation.
func (c *Classifier) IsExcluded(path string) bool {
	segs := Segments(path)
	for _, seg := range segs {
		if c.excludeDirs[seg] {
			return true
		}
	}
	if len(segs) > 0 {
		base := segs[len(segs)-1]
		for _, suffix := range c.excludeSuffix {
			if strings.HasSuffix(base, suffix) {
				return true
			}
		}
	}
	return false
}

// DepthBelow returns the number of directories between the feature root and
// the file at path, or -1 when the path does not live under the feature.
// The feature's own barrel files sit at depth 0.
func (c *Classifier) DepthBelow(path string, feature *FeatureIdentity) int {
	if feature == nil {
		return -1
	}
	segs := Segments(path)
	featSegs := Segments(feature.Directory)
	if len(segs) <= len(featSegs) {
		return -1
	}
	for i, s := range featSegs {
		if segs[i] != s {
			return -1
		}
	}
	return len(segs) - len(featSegs) - 1
}

// BarrelPath builds the path of a feature's barrel file: the monolithic
// barrel when layer is Unknown, the layer-specific barrel otherwise. The
// result always classifies as a barrel under the same options.
func (c *Classifier) BarrelPath(feature *FeatureIdentity, layer layers.Layer) string {
	if feature == nil {
		return ""
	}
	name := feature.Name
	if layer.Known() {
		if suffix, ok := c.suffixFor(layer); ok {
			name += "_" + suffix
		}
	}
	return normalize(feature.Directory) + "/" + name + c.ext
}

// suffixFor returns the canonical suffix for a layer: the first configured
// mapping that names it.
func (c *Classifier) suffixFor(layer layers.Layer) (string, bool) {
	for _, m := range c.suffixes {
		if m.Layer == layer {
			return m.Suffix, true
		}
	}
	return "", false
}

// Segments splits a path or import URI into its non-empty path segments.
// Backslashes are treated as separators and "." segments are dropped, so
// degenerate input (doubled separators, trailing slashes) still yields a
// usable segment list.
func Segments(path string) []string {
	path = strings.ReplaceAll(path, "\\", "/")
	parts := strings.Split(path, "/")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || p == "." {
			continue
		}
		segs = append(segs, p)
	}
	return segs
}

// PackagePath strips the "package:<pkg>/" prefix from a package-style
// import URI and returns the path inside the package. The second return is
// false when the URI is not package-style.
func PackagePath(uri string) (string, bool) {
	rest, ok := strings.CutPrefix(uri, packageScheme)
	if !ok {
		return "", false
	}
	idx := strings.Index(rest, "/")
	if idx < 0 {
		return "", false
	}
	return rest[idx+1:], true
}

// IsRelative reports whether an import URI is a relative reference rather
// than a scheme-qualified one.
func IsRelative(uri string) bool {
	return !strings.Contains(uri, ":")
}

func normalize(path string) string {
	return strings.Join(Segments(path), "/")
}

func toSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
