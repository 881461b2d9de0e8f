package rules

import "fmt"

// checkCrossFeatureExport flags a barrel file whose export target resolves
// outside its own feature: relative navigation above the feature root that
// does not land back inside it, a package reference naming a different
// feature, or one naming no feature at all. Every violating export in a
// file is reported independently; the host invokes this once per export
// site.
func (e *Engine) checkCrossFeatureExport(ctx *siteContext) *Diagnostic {
	if ctx.feature == nil || !ctx.role.IsBarrel() {
		return nil
	}

	if ctx.relative {
		if ctx.ups == 0 {
			// Barrels sit at the feature root; without "../" the target
			// stays inside the feature.
			return nil
		}
		if sameFeature(ctx.feature, ctx.targetFeature) {
			return nil
		}
		return e.crossFeatureDiag(ctx)
	}

	if ctx.pkgName == "" {
		// Scheme we cannot resolve (e.g. a dart: library); confirming
		// such targets is the host's business.
		return nil
	}
	if sameFeature(ctx.feature, ctx.targetFeature) {
		return nil
	}
	return e.crossFeatureDiag(ctx)
}

func (e *Engine) crossFeatureDiag(ctx *siteContext) *Diagnostic {
	var detail string
	if ctx.targetFeature != nil {
		detail = fmt.Sprintf("which belongs to feature %q", ctx.targetFeature.Name)
	} else {
		detail = "which names no feature"
	}
	return &Diagnostic{
		Kind:     CrossFeatureExport,
		Severity: Violation,
		Message: fmt.Sprintf(
			"barrel of feature %q exports %q, %s",
			ctx.feature.Name, ctx.site.URI, detail),
	}
}
