// Package mime holds the static category/extension/MIME table and the
// filename-based detection used by the asset locator.
//
// Detection runs two passes. User override patterns are tried first,
// longest first, as loose substring matches so multi-part extensions such
// as ".min.js" or ".css.less" are recognised; a matching pattern fixes the
// category and, when the static table knows the bare pattern, the MIME type.
// Otherwise the suffix after the last dot is looked up in the static table.
// Anything else is served as application/octet-stream.
package mime
