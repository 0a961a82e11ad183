// Package directives extracts Sprockets-style include/exclude directives
// from asset sources.
//
// A directive is a comment line starting with one of the prefixes
// "//= ", "/*= " or "#= " followed by a keyword and an argument:
//
//	//= require vendor/jquery.js
//	//= require_tree lib
//	/*= require_directory {theme:admin}/css */
//	#= exclude debug.js
//
// Arguments are rewritten by a TagRegistry before they are interpreted, so
// placeholders such as {theme:admin} resolve to real folders. The result of
// a parse is a Manifest: the included paths in first-seen order minus every
// excluded path.
//
// Parsing never fails. Lines that are not directives, or directives that
// lack an argument, are skipped.
package directives
