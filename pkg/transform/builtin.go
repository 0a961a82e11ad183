package transform

import "github.com/arthur-debert/assetpipe/pkg/registry"

func init() {
	registry.MustRegister(factories, "js-min", newJSMin)
	registry.MustRegister(factories, "js-min-plus", newJSMin)
	registry.MustRegister(factories, "js-compress", newJSMin)
	registry.MustRegister(factories, "css-min", newCSSMin)
	registry.MustRegister(factories, "css-compress", newCSSMin)
	registry.MustRegister(factories, "banner", newBanner)
}
