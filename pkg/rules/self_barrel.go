package rules

import (
	"fmt"

	"github.com/teklund/barrelint/pkg/classifier"
)

// checkSelfBarrelImport flags a file importing a barrel of its own feature.
// For layer-specific barrels the check is scoped to the importer's own
// layer: a data file importing its own feature's data barrel is a
// violation, while importing its own feature's domain barrel is legitimate
// cross-layer use. Relative imports that leave the feature via "../" and
// re-enter it are flagged as redundant even when they do not point at a
// barrel.
//
// For relative URIs, "reaches the feature root exactly" is decided by
// comparing the count of "../" steps to the importer's depth below the
// feature root. Only exact equality counts as a barrel match; overshoot
// and undershoot resolve to some other file and are not flagged here.
func (e *Engine) checkSelfBarrelImport(ctx *siteContext) *Diagnostic {
	if ctx.feature == nil {
		return nil
	}

	if ctx.relative {
		if ctx.depth < 0 {
			return nil
		}
		if ctx.ups > ctx.depth {
			// The import climbs above the feature root. If it then
			// re-enters the same feature, the navigation is redundant.
			if sameFeature(ctx.feature, ctx.targetFeature) {
				return &Diagnostic{
					Kind:     SelfBarrelImport,
					Severity: Violation,
					Message: fmt.Sprintf(
						"relative import %q needlessly leaves and re-enters feature %q",
						ctx.site.URI, ctx.feature.Name),
				}
			}
			return nil
		}
		if ctx.ups != ctx.depth {
			// Undershoot: resolves below the feature root, never a barrel.
			return nil
		}
	}

	if !sameFeature(ctx.feature, ctx.targetFeature) {
		return nil
	}

	switch ctx.targetRole.Kind {
	case classifier.Monolithic:
		return &Diagnostic{
			Kind:     SelfBarrelImport,
			Severity: Violation,
			Message: fmt.Sprintf(
				"file imports its own feature's barrel %q", ctx.site.URI),
		}
	case classifier.LayerSpecific:
		if ctx.targetRole.Layer == ctx.layer {
			return &Diagnostic{
				Kind:     SelfBarrelImport,
				Severity: Violation,
				Message: fmt.Sprintf(
					"%s-layer file imports its own feature's %s barrel %q",
					ctx.layer, ctx.targetRole.Layer, ctx.site.URI),
			}
		}
	}
	return nil
}
