// Package registry provides a generic, thread-safe registry keyed by name.
// The transform package keeps its factories here; names can be normalised
// on the way in so configuration spellings resolve to one entry.
package registry
