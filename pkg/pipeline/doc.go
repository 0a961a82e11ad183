// Package pipeline ties the locator, the directive parser and the
// transform chains together.
//
// Process resolves one logical filename, appends the files its directives
// require, runs the transform chain for the resolved extension and returns
// the bytes with the metadata needed to serve them. A file that cannot be
// found is not an error: the Result reports Found=false and the caller
// decides how to answer (the HTTP adapter sends a 404).
//
// Publish is the production mode: the processed bytes are written under
// the live assets folder so they can be served as static files.
package pipeline
