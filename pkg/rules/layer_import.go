package rules

import (
	"fmt"

	"github.com/teklund/barrelint/pkg/classifier"
	"github.com/teklund/barrelint/pkg/layers"
)

// checkImproperLayerImport enforces the layer permission matrix on barrel
// imports. Importing a layer-specific barrel whose layer the importer may
// not depend on is a hard violation. A data or domain file importing a
// cross-feature monolithic barrel gets a softer advisory instead: the
// layer composition behind a monolithic barrel is not knowable from the
// import site, so the rule suggests the layer-specific alternative rather
// than condemning the import.
func (e *Engine) checkImproperLayerImport(ctx *siteContext) *Diagnostic {
	if ctx.targetFeature == nil || !ctx.targetRole.IsBarrel() {
		return nil
	}

	switch ctx.targetRole.Kind {
	case classifier.LayerSpecific:
		if layers.ImportAllowed(ctx.layer, ctx.targetRole.Layer) {
			return nil
		}
		return &Diagnostic{
			Kind:     ImproperLayerImport,
			Severity: Violation,
			Message: fmt.Sprintf(
				"%s-layer file may not import the %s barrel %q",
				ctx.layer, ctx.targetRole.Layer, ctx.site.URI),
		}

	case classifier.Monolithic:
		if sameFeature(ctx.feature, ctx.targetFeature) {
			return nil
		}
		if ctx.layer != layers.Data && ctx.layer != layers.Domain {
			return nil
		}
		barrel := e.c.BarrelPath(ctx.targetFeature, ctx.layer)
		return &Diagnostic{
			Kind:     ImproperLayerImport,
			Severity: Advisory,
			Message: fmt.Sprintf(
				"%s-layer file imports the monolithic barrel %q; prefer the layer-specific barrel %s",
				ctx.layer, ctx.site.URI, barrel),
			Correction: &Correction{
				Range:           ctx.site.Range,
				ReplacementText: ctx.correctionURI(barrel),
			},
		}
	}
	return nil
}
