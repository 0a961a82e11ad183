package mime

import (
	"sort"
	"strings"

	"github.com/arthur-debert/assetpipe/pkg/types"
)

// Pattern is one user-declared extension pattern for a category,
// e.g. ".min.js" for javascript. Patterns may be multi-part.
type Pattern struct {
	Type    types.FileType
	Pattern string
}

// Overrides are the user-supplied patterns, kept in match order:
// longest pattern first, then category order, then declaration order.
type Overrides []Pattern

// NewOverrides builds Overrides from a category -> patterns map. Unknown
// category names are reported back so configuration can reject them.
func NewOverrides(byCategory map[string][]string) (Overrides, []string) {
	var (
		out     Overrides
		unknown []string
	)
	for name, patterns := range byCategory {
		t, ok := types.ParseFileType(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		for _, p := range patterns {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, Pattern{Type: t, Pattern: p})
			}
		}
	}
	sort.Strings(unknown)
	out.sort()
	return out, unknown
}

func (o Overrides) sort() {
	rank := make(map[types.FileType]int, len(types.AllFileTypes))
	for i, t := range types.AllFileTypes {
		rank[t] = i
	}
	sort.SliceStable(o, func(i, j int) bool {
		if len(o[i].Pattern) != len(o[j].Pattern) {
			return len(o[i].Pattern) > len(o[j].Pattern)
		}
		return rank[o[i].Type] < rank[o[j].Type]
	})
}

// Detection is what a filename alone tells us about an asset
type Detection struct {
	Type      types.FileType
	Mime      string
	Extension string
}

// Detect infers category, MIME type and extension from filename. No file
// access is involved.
func (tb Table) Detect(filename string, overrides Overrides) Detection {
	t, m := tb.detectMime(filename, overrides)
	return Detection{
		Type:      t,
		Mime:      m,
		Extension: DetectExtension(filename, overrides),
	}
}

func (tb Table) detectMime(filename string, overrides Overrides) (types.FileType, string) {
	if filename == "" {
		return types.Unknown, DefaultMime
	}

	found := types.Unknown
	for _, p := range overrides {
		if !contains(filename, p.Pattern) {
			continue
		}
		found = p.Type
		if m, ok := tb.Lookup(p.Type, p.Pattern); ok {
			return found, m
		}
	}

	if t, m, ok := tb.ByExtension(suffix(filename)); ok {
		return t, m
	}

	return found, DefaultMime
}

// DetectExtension returns the longest override pattern found in filename,
// verbatim, or the suffix after the last dot. The result always carries a
// single leading dot, or is empty when filename has no dot.
func DetectExtension(filename string, overrides Overrides) string {
	for _, p := range overrides {
		if contains(filename, p.Pattern) {
			return normalize(p.Pattern)
		}
	}
	return normalize(suffix(filename))
}

// contains is a loose substring match. A pattern at position zero does
// not count: the filename would have no base name.
func contains(filename, pattern string) bool {
	return strings.Index(filename, pattern) > 0
}

func suffix(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return filename[i+1:]
}

func normalize(ext string) string {
	ext = trimDots(ext)
	if ext == "" {
		return ""
	}
	return "." + ext
}

func trimDots(ext string) string {
	return strings.Trim(strings.TrimSpace(ext), ".")
}
