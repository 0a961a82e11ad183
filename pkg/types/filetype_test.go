package types_test

import (
	"testing"

	"github.com/arthur-debert/assetpipe/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestParseFileType(t *testing.T) {
	tests := []struct {
		in   string
		want types.FileType
		ok   bool
	}{
		{"stylesheet", types.Stylesheet, true},
		{"stylesheets", types.Stylesheet, true},
		{"Javascript", types.Javascript, true},
		{"images", types.Image, true},
		{"image", types.Image, true},
		{" audio ", types.Audio, true},
		{"video", types.Video, true},
		{"flash", types.Flash, true},
		{"file", types.File, true},
		{"fonts", types.Unknown, false},
		{"", types.Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := types.ParseFileType(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestFileType_RoundTripsThroughString(t *testing.T) {
	for _, ft := range types.AllFileTypes {
		got, ok := types.ParseFileType(ft.String())
		assert.True(t, ok, ft.String())
		assert.Equal(t, ft, got)
	}
	assert.Equal(t, "unknown", types.Unknown.String())
}

func TestFileType_IsText(t *testing.T) {
	assert.True(t, types.Stylesheet.IsText())
	assert.True(t, types.Javascript.IsText())
	assert.True(t, types.File.IsText())
	assert.False(t, types.Image.IsText())
	assert.False(t, types.Audio.IsText())
	assert.False(t, types.Unknown.IsText())
}
