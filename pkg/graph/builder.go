package graph

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/teklund/barrelint/pkg/classifier"
	"github.com/teklund/barrelint/pkg/logger"
	"github.com/teklund/barrelint/pkg/scanner"
)

// Builder constructs the export graph for one tree scan. Only monolithic
// barrels become nodes: this traversal audits whole-feature cycles, so
// layer-specific barrels are intentionally outside its scope.
type Builder struct {
	classifier *classifier.Classifier
	logger     logger.Logger
}

// NewBuilder creates a Builder using the given classifier.
func NewBuilder(c *classifier.Classifier) *Builder {
	return &Builder{
		classifier: c,
		logger:     logger.Default(),
	}
}

// WithLogger returns a Builder with the specified logger.
func (b *Builder) WithLogger(log logger.Logger) *Builder {
	return &Builder{classifier: b.classifier, logger: log}
}

// Build scans every source file under root, collects the monolithic barrel
// files and adds an edge for every export that resolves to another known
// barrel. Dangling export targets are not edges and not defects; confirming
// that a target exists belongs to the host's own resolution step.
func (b *Builder) Build(root string) (*Graph, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scanning root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning root %q: not a directory", root)
	}

	files, err := scanner.SourceFiles(root, b.classifier.Ext())
	if err != nil {
		return nil, fmt.Errorf("scanning root %q: %w", root, err)
	}

	// Arena pass: assign each barrel a stable index in lexical path order.
	var barrels []string
	features := make(map[string]*classifier.FeatureIdentity)
	for _, rel := range files {
		if b.classifier.IsExcluded(rel) {
			continue
		}
		feature := b.classifier.Classify(rel)
		if feature == nil {
			continue
		}
		if b.classifier.RoleOf(rel, feature).Kind == classifier.Monolithic {
			barrels = append(barrels, rel)
			features[rel] = feature
		}
	}

	g := NewGraph(barrels)
	b.logger.Debug("collected barrels", logger.F("count", len(barrels)))

	for i, rel := range barrels {
		src, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			b.logger.Warn("failed to read barrel",
				logger.F("path", rel),
				logger.F("error", err))
			continue
		}

		for _, stmt := range scanner.Statements(src) {
			if stmt.Kind != scanner.Export {
				continue
			}
			target, ok := b.resolve(g, rel, stmt.URI)
			if !ok {
				continue
			}
			g.AddEdge(i, target)
		}
	}

	b.logger.Info("export graph built",
		logger.F("barrels", g.Len()),
		logger.F("edges", g.EdgeCount()))

	return g, nil
}

// resolve maps an export URI from the barrel at source to a node index.
// Package-style references are matched against the known barrel set by
// trailing-segment comparison; relative references resolve against the
// exporting file's directory. Unresolvable targets return false.
func (b *Builder) resolve(g *Graph, source, uri string) (int, bool) {
	if pkgPath, ok := classifier.PackagePath(uri); ok {
		return b.matchBarrel(g, pkgPath)
	}

	if !classifier.IsRelative(uri) {
		return 0, false
	}

	dir := path.Dir(source)
	resolved := path.Join(dir, uri)
	if resolved == ".." || strings.HasPrefix(resolved, "../") {
		// Escapes the scanned root; nothing to match against.
		return 0, false
	}
	idx, ok := g.Lookup(resolved)
	return idx, ok
}

// matchBarrel finds the barrel whose path matches a package-relative path,
// first exactly and then by full trailing segments. The scanned root often
// sits one directory below the package root (e.g. lib/), so a package path
// usually matches a barrel path's tail rather than the whole path.
func (b *Builder) matchBarrel(g *Graph, pkgPath string) (int, bool) {
	normalized := strings.Join(classifier.Segments(pkgPath), "/")
	if normalized == "" {
		return 0, false
	}
	if idx, ok := g.Lookup(normalized); ok {
		return idx, true
	}
	for i := 0; i < g.Len(); i++ {
		if strings.HasSuffix("/"+g.Path(i), "/"+normalized) {
			return i, true
		}
	}
	return 0, false
}
