package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// terminalRenderer styles the same layout as textRenderer
type terminalRenderer struct {
	out io.Writer
}

func (r *terminalRenderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *AssetView:
		return r.asset(v)
	case *ManifestView:
		return r.manifest(v)
	case *CompileView:
		for _, p := range v.Published {
			if _, err := fmt.Fprintf(r.out, "%s %s %s\n",
				FoundStyle.Render("✓"), TitleStyle.Render(p.Filename), PathStyle.Render(p.Path)); err != nil {
				return err
			}
		}
		for _, f := range v.Failed {
			if _, err := fmt.Fprintf(r.out, "%s %s\n", MissingStyle.Render("✗"), TitleStyle.Render(f)); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(r.out, "%+v\n", result)
		return err
	}
}

func (r *terminalRenderer) RenderError(err error) error {
	pterm.Error.WithWriter(r.out).Println(err.Error())
	return nil
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	pterm.Info.WithWriter(r.out).Println(msg)
	return nil
}

func (r *terminalRenderer) asset(v *AssetView) error {
	status := FoundStyle.Render("found")
	if !v.Found {
		status = MissingStyle.Render("not found")
	}
	if _, err := fmt.Fprintf(r.out, "%s %s\n", TitleStyle.Render(v.Filename), status); err != nil {
		return err
	}

	fields := assetFields(v)[2:]
	width := labelWidth(fields)
	for _, f := range fields {
		value := f[1]
		if f[0] == "path" {
			value = PathStyle.Render(value)
		}
		if _, err := fmt.Fprintf(r.out, "  %s %s\n", LabelStyle.Width(width).Render(f[0]+":"), value); err != nil {
			return err
		}
	}
	return nil
}

func (r *terminalRenderer) manifest(v *ManifestView) error {
	if _, err := fmt.Fprintln(r.out, TitleStyle.Render(v.Filename)); err != nil {
		return err
	}
	if !v.Found {
		_, err := fmt.Fprintf(r.out, "  %s\n", MissingStyle.Render("not found"))
		return err
	}
	for i, f := range v.Files {
		if _, err := fmt.Fprintf(r.out, "  %s %s\n", LabelStyle.Render(fmt.Sprintf("%2d.", i+1)), PathStyle.Render(f)); err != nil {
			return err
		}
	}
	for _, f := range v.Excluded {
		if _, err := fmt.Fprintf(r.out, "      %s\n", ExcludedStyle.Render(f)); err != nil {
			return err
		}
	}
	return nil
}
