// Package ui renders command results as styled terminal output, plain
// text, JSON or YAML.
package ui

import (
	"fmt"
	"io"
	"os"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders one of the view types (AssetView, ManifestView,
	// CompileView)
	RenderResult(result interface{}) error
	RenderError(err error) error
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output
// when it is a file and falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return &terminalRenderer{out: output}, nil
	case FormatText:
		return &textRenderer{out: output}, nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	case FormatYAML:
		return &yamlRenderer{out: output}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
