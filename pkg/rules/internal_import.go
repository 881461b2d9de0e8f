package rules

import "fmt"

// checkInternalImport flags imports that reach into another feature's
// implementation instead of going through its barrel. It fires when the
// imported path belongs to a different feature, the URI contains an
// internal directory token, and the target is not itself a recognized
// barrel. The correction points at the target feature's barrel — the
// layer-specific one when the imported path's own layer is determinable,
// the monolithic one otherwise.
func (e *Engine) checkInternalImport(ctx *siteContext) *Diagnostic {
	if ctx.targetFeature == nil {
		return nil
	}
	if sameFeature(ctx.feature, ctx.targetFeature) {
		return nil
	}
	if !e.c.IsInternal(ctx.site.URI) {
		return nil
	}
	if ctx.targetRole.IsBarrel() {
		return nil
	}

	barrel := e.c.BarrelPath(ctx.targetFeature, ctx.targetLayer)
	return &Diagnostic{
		Kind:     InternalImport,
		Severity: Violation,
		Message: fmt.Sprintf(
			"import of %q reaches into the internals of feature %q; import %s instead",
			ctx.site.URI, ctx.targetFeature.Name, barrel),
		Correction: &Correction{
			Range:           ctx.site.Range,
			ReplacementText: ctx.correctionURI(barrel),
		},
	}
}
