// Package transform provides named content transforms (minifiers and the
// like) and the per-extension chains the pipeline runs them in.
//
// Transforms are created by factories held in a registry keyed by a
// normalised name. Names are compared in kebab case after dropping any
// namespace prefix, so "CSSMin", "css_min" and "Vendor\Filters\CSSMin" all
// resolve to "css-min". Chains are built once with Build, which rejects
// unknown names before any content is processed.
package transform
