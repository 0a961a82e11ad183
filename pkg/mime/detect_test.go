package mime_test

import (
	"testing"

	"github.com/arthur-debert/assetpipe/pkg/mime"
	"github.com/arthur-debert/assetpipe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOverrides(t *testing.T) mime.Overrides {
	t.Helper()
	o, unknown := mime.NewOverrides(map[string][]string{
		"stylesheet": {".css", ".css.less", ".css.scss", ".less", ".scss", "min.css"},
		"javascript": {".js", ".js.coffee", ".coffee", ".min.js"},
	})
	require.Empty(t, unknown)
	return o
}

func TestDetect_StaticTable(t *testing.T) {
	tb := mime.DefaultTable()

	tests := []struct {
		filename string
		wantType types.FileType
		wantMime string
		wantExt  string
	}{
		{"app.js", types.Javascript, "application/x-javascript", ".js"},
		{"site.css", types.Stylesheet, "text/css", ".css"},
		{"logo.png", types.Image, "image/png", ".png"},
		{"photo.jpeg", types.Image, "image/jpeg", ".jpeg"},
		{"song.mp3", types.Audio, "audio/mp3", ".mp3"},
		{"clip.mov", types.Video, "video/quicktime", ".mov"},
		{"movie.swf", types.Flash, "application/x-shockwave-flash", ".swf"},
		{"README.md", types.File, "text/plain", ".md"},
		{"archive.tgz", types.File, "application/gzip", ".tgz"},
		{"jquery.min.js", types.Javascript, "application/x-javascript", ".js"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := tb.Detect(tt.filename, nil)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantMime, got.Mime)
			assert.Equal(t, tt.wantExt, got.Extension)
		})
	}
}

func TestDetect_DefaultsToOctetStream(t *testing.T) {
	tb := mime.DefaultTable()

	for _, name := range []string{"data.bin", "Makefile", "font.woff2", ""} {
		t.Run(name, func(t *testing.T) {
			got := tb.Detect(name, defaultOverrides(t))
			assert.Equal(t, mime.DefaultMime, got.Mime)
			assert.Equal(t, "application/octet-stream", got.Mime)
			assert.Equal(t, types.Unknown, got.Type)
		})
	}
}

func TestDetect_OverridesConsultedFirst(t *testing.T) {
	tb := mime.DefaultTable()
	tb[types.Javascript]["coffee"] = "text/coffeescript"

	o, _ := mime.NewOverrides(map[string][]string{
		"javascript": {".coffee"},
	})

	got := tb.Detect("app.coffee", o)
	assert.Equal(t, types.Javascript, got.Type)
	assert.Equal(t, "text/coffeescript", got.Mime)
	assert.Equal(t, ".coffee", got.Extension)
}

func TestDetect_OverrideTypeKeptWithoutMime(t *testing.T) {
	got := mime.DefaultTable().Detect("theme.less", defaultOverrides(t))

	assert.Equal(t, types.Stylesheet, got.Type)
	assert.Equal(t, mime.DefaultMime, got.Mime)
	assert.Equal(t, ".less", got.Extension)
}

func TestDetect_LongestPatternWinsForExtension(t *testing.T) {
	o, _ := mime.NewOverrides(map[string][]string{
		"javascript": {".js", ".min.js"},
	})

	got := mime.DefaultTable().Detect("jquery.min.js", o)
	assert.Equal(t, ".min.js", got.Extension)
	assert.Equal(t, types.Javascript, got.Type)
	assert.Equal(t, "application/x-javascript", got.Mime)
}

func TestDetect_MultiPartStylesheet(t *testing.T) {
	got := mime.DefaultTable().Detect("main.css.less", defaultOverrides(t))

	assert.Equal(t, ".css.less", got.Extension)
	assert.Equal(t, types.Stylesheet, got.Type)
	assert.Equal(t, "text/css", got.Mime)
}

func TestDetectExtension_Normalization(t *testing.T) {
	o, _ := mime.NewOverrides(map[string][]string{"stylesheet": {"min.css"}})

	assert.Equal(t, ".min.css", mime.DetectExtension("bootstrap.min.css", o))
	assert.Equal(t, ".css", mime.DetectExtension("site.css", nil))
	assert.Equal(t, "", mime.DetectExtension("LICENSE", nil))
	assert.Equal(t, "", mime.DetectExtension("trailing.", nil))
}

func TestDetect_PatternAtStartIsIgnored(t *testing.T) {
	o, _ := mime.NewOverrides(map[string][]string{"javascript": {".js"}})

	got := mime.DefaultTable().Detect(".js", o)
	assert.Equal(t, types.Javascript, got.Type, "suffix lookup still applies")
	assert.Equal(t, ".js", got.Extension)
}

func TestNewOverrides(t *testing.T) {
	o, unknown := mime.NewOverrides(map[string][]string{
		"javascript":  {".js", ".min.js"},
		"stylesheets": {".css"},
		"fonts":       {".woff"},
	})

	assert.Equal(t, []string{"fonts"}, unknown)
	require.Len(t, o, 3)
	assert.Equal(t, ".min.js", o[0].Pattern)
	assert.Equal(t, types.Stylesheet, o[1].Type)
	assert.Equal(t, ".css", o[1].Pattern)
	assert.Equal(t, types.Javascript, o[2].Type)
	assert.Equal(t, ".js", o[2].Pattern)
}

func TestTable_Lookup(t *testing.T) {
	tb := mime.DefaultTable()

	m, ok := tb.Lookup(types.Stylesheet, ".css")
	assert.True(t, ok)
	assert.Equal(t, "text/css", m)

	_, ok = tb.Lookup(types.Stylesheet, "min.css")
	assert.False(t, ok)

	_, ok = tb.Lookup(types.Unknown, "css")
	assert.False(t, ok)
}
