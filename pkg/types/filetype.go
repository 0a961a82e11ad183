package types

import (
	"strings"
)

// FileType is the asset category a filename is inferred to belong to
type FileType int

const (
	Unknown FileType = iota
	Stylesheet
	Javascript
	Flash
	Audio
	Video
	Image
	File
)

// AllFileTypes lists the known categories in table order, Unknown excluded
var AllFileTypes = []FileType{Javascript, Stylesheet, Image, Audio, Video, Flash, File}

// String returns the configuration name of the type
func (t FileType) String() string {
	switch t {
	case Stylesheet:
		return "stylesheet"
	case Javascript:
		return "javascript"
	case Flash:
		return "flash"
	case Audio:
		return "audio"
	case Video:
		return "video"
	case Image:
		return "image"
	case File:
		return "file"
	default:
		return "unknown"
	}
}

// IsText reports whether assets of this type go through directive expansion
func (t FileType) IsText() bool {
	switch t {
	case Stylesheet, Javascript, File:
		return true
	default:
		return false
	}
}

// ParseFileType maps a configuration category name to a FileType.
// Plural spellings ("stylesheets", "images") are accepted because the
// subfolder convention has always been written that way.
func ParseFileType(name string) (FileType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stylesheet", "stylesheets", "css":
		return Stylesheet, true
	case "javascript", "javascripts", "js":
		return Javascript, true
	case "flash":
		return Flash, true
	case "audio":
		return Audio, true
	case "video", "videos":
		return Video, true
	case "image", "images", "img":
		return Image, true
	case "file", "files":
		return File, true
	default:
		return Unknown, false
	}
}
