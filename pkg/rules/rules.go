// Package rules implements the per-site conformance checks. Each rule is a
// pure function of one import/export site's metadata: no call ordering, no
// retained state, no I/O beyond what the caller supplies. Uncertainty
// always collapses to "no diagnostic" — the rules prefer a false negative
// over surprising the host.
package rules

import (
	"path"
	"strings"

	"github.com/teklund/barrelint/pkg/classifier"
	"github.com/teklund/barrelint/pkg/layers"
)

// Kind identifies the rule that produced a diagnostic.
type Kind int

const (
	InternalImport Kind = iota
	SelfBarrelImport
	CrossFeatureExport
	ImproperLayerImport
)

// String returns the rule identifier.
func (k Kind) String() string {
	switch k {
	case InternalImport:
		return "internal_import"
	case SelfBarrelImport:
		return "self_barrel_import"
	case CrossFeatureExport:
		return "cross_feature_export"
	case ImproperLayerImport:
		return "improper_layer_import"
	default:
		return "unknown"
	}
}

// Severity separates hard violations from advisories.
type Severity int

const (
	Violation Severity = iota
	Advisory
)

// Range is a half-open byte range within the checked file, used as a
// correction target.
type Range struct {
	Start int
	End   int
}

// Site is the per-statement input supplied by the host: the literal
// import/export target as written, the logical path of the file under
// check, and the range of the URI literal.
type Site struct {
	URI      string
	FilePath string
	Range    Range
}

// Correction is a suggested textual edit: replace Range with
// ReplacementText.
type Correction struct {
	Range           Range
	ReplacementText string
}

// Diagnostic is a one-shot, stateless finding. It carries exactly what is
// needed to render a message and, optionally, a correction.
type Diagnostic struct {
	Kind       Kind
	Severity   Severity
	Message    string
	Correction *Correction
}

// Flags enables or disables individual rules. This is supplied
// configuration, not something the engine computes.
type Flags struct {
	InternalImport      bool
	SelfBarrelImport    bool
	CrossFeatureExport  bool
	ImproperLayerImport bool
}

// DefaultFlags enables every rule.
func DefaultFlags() Flags {
	return Flags{
		InternalImport:      true,
		SelfBarrelImport:    true,
		CrossFeatureExport:  true,
		ImproperLayerImport: true,
	}
}

// Engine evaluates the conformance rules against individual sites. It is
// immutable after construction and safe for concurrent use.
type Engine struct {
	c     *classifier.Classifier
	flags Flags
}

// NewEngine creates an Engine over the given classifier and rule flags.
func NewEngine(c *classifier.Classifier, flags Flags) *Engine {
	return &Engine{c: c, flags: flags}
}

// CheckImport evaluates every import rule against one site. The rules are
// independent and do not suppress one another; each contributes at most one
// diagnostic.
func (e *Engine) CheckImport(site Site) []Diagnostic {
	if e.c.IsExcluded(site.FilePath) {
		return nil
	}
	ctx := e.newSiteContext(site)

	var diags []Diagnostic
	if e.flags.InternalImport {
		if d := e.checkInternalImport(ctx); d != nil {
			diags = append(diags, *d)
		}
	}
	if e.flags.SelfBarrelImport {
		if d := e.checkSelfBarrelImport(ctx); d != nil {
			diags = append(diags, *d)
		}
	}
	if e.flags.ImproperLayerImport {
		if d := e.checkImproperLayerImport(ctx); d != nil {
			diags = append(diags, *d)
		}
	}
	return diags
}

// CheckExport evaluates the export rules against one site.
func (e *Engine) CheckExport(site Site) []Diagnostic {
	if e.c.IsExcluded(site.FilePath) {
		return nil
	}
	ctx := e.newSiteContext(site)

	var diags []Diagnostic
	if e.flags.CrossFeatureExport {
		if d := e.checkCrossFeatureExport(ctx); d != nil {
			diags = append(diags, *d)
		}
	}
	return diags
}

// siteContext is the shared, precomputed view of one site that every rule
// reads. Building it once keeps each rule a small pure function.
type siteContext struct {
	site    Site
	feature *classifier.FeatureIdentity
	layer   layers.Layer
	role    classifier.BarrelRole // role of the file under check

	relative bool
	ups      int // number of "../" steps in a relative URI
	depth    int // importer's directory depth below its feature root

	pkgName       string // package name of a package-style URI
	targetPath    string // comparable path of the target, "" when unresolvable
	targetFeature *classifier.FeatureIdentity
	targetRole    classifier.BarrelRole
	targetLayer   layers.Layer
}

func (e *Engine) newSiteContext(site Site) *siteContext {
	ctx := &siteContext{
		site:    site,
		feature: e.c.Classify(site.FilePath),
		layer:   e.c.LayerOf(site.FilePath),
		depth:   -1,
	}
	ctx.role = e.c.RoleOf(site.FilePath, ctx.feature)
	if ctx.feature != nil {
		ctx.depth = e.c.DepthBelow(site.FilePath, ctx.feature)
	}

	uri := site.URI
	if pkgPath, ok := classifier.PackagePath(uri); ok {
		ctx.pkgName = packageName(uri)
		ctx.targetPath = pkgPath
	} else if classifier.IsRelative(uri) {
		ctx.relative = true
		ctx.ups = strings.Count(uri, "../")
		resolved := path.Join(path.Dir(strings.Join(classifier.Segments(site.FilePath), "/")), uri)
		if resolved != ".." && !strings.HasPrefix(resolved, "../") {
			ctx.targetPath = resolved
		}
	}

	if ctx.targetPath != "" {
		ctx.targetFeature = e.c.Classify(ctx.targetPath)
		ctx.targetRole = e.c.RoleOf(ctx.targetPath, ctx.targetFeature)
		ctx.targetLayer = e.c.LayerOf(ctx.targetPath)
	}
	return ctx
}

// sameFeature reports whether two identities denote the same feature.
// Package-style URIs omit the source-root prefix (e.g. lib/), so directory
// equality is relaxed to full-segment suffix equality.
func sameFeature(a, b *classifier.FeatureIdentity) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Name != b.Name || a.Style != b.Style {
		return false
	}
	da := strings.Join(classifier.Segments(a.Directory), "/")
	db := strings.Join(classifier.Segments(b.Directory), "/")
	return da == db ||
		strings.HasSuffix("/"+da, "/"+db) ||
		strings.HasSuffix("/"+db, "/"+da)
}

// correctionURI rebuilds a replacement import target in the same style the
// site used: package URIs stay package URIs, relative and bare paths stay
// plain paths.
func (ctx *siteContext) correctionURI(barrelPath string) string {
	if ctx.pkgName != "" {
		return "package:" + ctx.pkgName + "/" + barrelPath
	}
	return barrelPath
}

func packageName(uri string) string {
	rest, ok := strings.CutPrefix(uri, "package:")
	if !ok {
		return ""
	}
	if idx := strings.Index(rest, "/"); idx >= 0 {
		return rest[:idx]
	}
	return ""
}
