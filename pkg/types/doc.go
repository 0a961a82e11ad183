// Package types defines the asset categories and the storage capability
// shared by the locator, the directive parser and the pipeline.
package types
