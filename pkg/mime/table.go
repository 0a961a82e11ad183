package mime

import (
	"github.com/arthur-debert/assetpipe/pkg/types"
)

// DefaultMime is served when no table entry matches, per HTTP/1.1
const DefaultMime = "application/octet-stream"

// Table maps category -> bare extension (no dot) -> MIME type
type Table map[types.FileType]map[string]string

// DefaultTable returns a fresh copy of the built-in table
func DefaultTable() Table {
	return Table{
		types.Javascript: {
			"js": "application/x-javascript",
		},
		types.Stylesheet: {
			"css": "text/css",
		},
		types.Image: {
			"gif":  "image/gif",
			"jpg":  "image/jpeg",
			"jpeg": "image/jpeg",
			"png":  "image/png",
			"tiff": "image/tiff",
			"tif":  "image/tiff",
			"bmp":  "image/bmp",
			"psd":  "application/x-photoshop",
			"ai":   "application/postscript",
		},
		types.Audio: {
			"mid":  "audio/midi",
			"midi": "audio/midi",
			"mpga": "audio/mpeg",
			"mp2":  "audio/mpeg",
			"mp3":  "audio/mp3",
			"aif":  "audio/x-aiff",
			"aiff": "audio/x-aiff",
			"aifc": "audio/x-aiff",
			"ram":  "audio/x-pn-realaudio",
			"rm":   "audio/x-pn-realaudio",
			"rpm":  "audio/x-pn-realaudio-plugin",
			"ra":   "audio/x-pn-realaudio-plugin",
		},
		types.Video: {
			"mpeg":  "video/mpeg",
			"mpg":   "video/mpeg",
			"mpe":   "video/mpeg",
			"qt":    "video/quicktime",
			"mov":   "video/quicktime",
			"avi":   "video/msvideo",
			"movie": "video/x-sgi-movie",
		},
		types.Flash: {
			"dcr": "application/x-director",
			"dir": "application/x-director",
			"dxr": "application/x-director",
			"swf": "application/x-shockwave-flash",
		},
		types.File: {
			"pdf":  "application/pdf",
			"csv":  "text/csv",
			"xls":  "application/excel",
			"ppt":  "application/powerpoint",
			"sit":  "application/x-stuffit",
			"tar":  "application/x-tar",
			"tgz":  "application/gzip",
			"zip":  "application/zip",
			"gzip": "multipart/gzip",
			"html": "text/html",
			"txt":  "text/plain",
			"md":   "text/plain",
		},
	}
}

// Lookup returns the MIME type registered for ext (with or without dot) under t
func (tb Table) Lookup(t types.FileType, ext string) (string, bool) {
	exts, ok := tb[t]
	if !ok {
		return "", false
	}
	m, ok := exts[trimDots(ext)]
	return m, ok
}

// ByExtension scans categories in table order for an exact extension key
func (tb Table) ByExtension(ext string) (types.FileType, string, bool) {
	ext = trimDots(ext)
	if ext == "" {
		return types.Unknown, "", false
	}
	for _, t := range types.AllFileTypes {
		if m, ok := tb[t][ext]; ok {
			return t, m, true
		}
	}
	return types.Unknown, "", false
}
