// Package server exposes a pipeline over HTTP. It is the front controller:
// the request path is reduced to a filename, processed, and answered with
// the asset's MIME type, ETag and modification time.
package server
